package books

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Save serializes the complete collection to path, overwriting any prior
// contents. The file is written with stable indentation so it stays
// human-readable and diff-friendly. There is no atomic rename or backup; a
// crash mid-write can corrupt the store, which is an accepted risk at this
// scale.
func Save(path string, list []Book) error {
	// An empty library persists as an empty array, never null.
	if list == nil {
		list = []Book{}
	}

	var data []byte
	var err error
	switch FormatForPath(path) {
	case FormatYAML:
		data, err = yaml.MarshalWithOptions(list,
			yaml.Indent(constants.YAMLIndent),
			yaml.IndentSequence(false),
		)
		if err != nil {
			return errors.WrapParse("yaml", path, err)
		}
	default:
		data, err = json.MarshalIndent(list, "", constants.JSONIndent)
		if err != nil {
			return errors.WrapParse("json", path, err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
