package books

import (
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// json is a drop-in stdlib-compatible codec.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format identifies the serialization format of a library file.
type Format string

const (
	// FormatJSON is the default library file format.
	FormatJSON Format = "json"
	// FormatYAML is used for library files with a .yaml or .yml extension.
	FormatYAML Format = "yaml"
)

// FormatForPath picks the serialization format from the file extension.
// Anything that is not YAML is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
