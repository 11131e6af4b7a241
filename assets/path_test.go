//go:build !android

package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBase(t *testing.T) {
	base, err := Base()
	if err != nil {
		t.Fatalf("Base failed: %v", err)
	}
	if !filepath.IsAbs(base) {
		t.Errorf("base path %q is not absolute", base)
	}

	info, err := os.Stat(base)
	if err != nil {
		t.Fatalf("stat %q: %v", base, err)
	}
	if !info.IsDir() {
		t.Errorf("base path %q is not a directory", base)
	}
}
