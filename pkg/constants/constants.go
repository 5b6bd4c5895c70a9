// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes file permissions, well-known file names, and other configuration
// values that should be consistent across the application.
package constants

// DefaultLibraryFile is the well-known file name for the persisted library
// when no explicit path is configured. It lives in the current working
// directory so a shelf travels with the directory it was created in.
const DefaultLibraryFile = "library.json"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// JSONIndent is the indentation used when writing the library file as JSON.
// Four spaces keeps the file diff-friendly and matches what most hand-edited
// library files already look like.
const JSONIndent = "    "

// YAMLIndent is the indentation used when writing the library file as YAML.
const YAMLIndent = 2
