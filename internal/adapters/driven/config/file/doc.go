// Package file provides file-based configuration and prompt storage.
// Configuration lives in a TOML file and prompts in user-editable text
// files, both under the mdwcare config directory.
package file
