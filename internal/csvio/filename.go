package csvio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfirmFunc asks the operator whether an existing file at path may be
// overwritten.
type ConfirmFunc func(path string) bool

// UniquePath appends a numeric suffix before the extension,
// incrementing until the name is free: output.csv, output_1.csv, ...
func UniquePath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	count := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}

		path = fmt.Sprintf("%s_%d%s", base, count, ext)
		count++
	}
}

// ResolveOutputPath returns the path to write to. An existing file is
// only overwritten when the operator confirms; otherwise a unique
// suffixed name is chosen. A nil confirm never overwrites.
func ResolveOutputPath(path string, confirm ConfirmFunc) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	if confirm != nil && confirm(path) {
		return path
	}

	return UniquePath(path)
}
