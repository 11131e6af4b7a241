//go:build !android

package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Base returns the directory bundled assets are resolved against.
// On desktop platforms that is the executable's install location.
func Base() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("assets: locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}
