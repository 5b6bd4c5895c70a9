package books

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Load reads the library snapshot from path and returns the ordered records.
//
// A missing file is not an error: the library simply starts empty. A file
// that exists but cannot be parsed yields a *errors.ParseError (checkable
// via errors.IsMalformedLibrary); the malformed file is left untouched so a
// caller can recover it by hand before the next save overwrites it.
func Load(path string) ([]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var list []Book
	switch FormatForPath(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}
	return list, nil
}
