// Package fs exports harvested URLs to files.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkharvest"
)

// FormatURLs renders urls one per line with a trailing newline.
func FormatURLs(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return strings.Join(urls, "\n") + "\n"
}

// WriteURLs writes urls to path, one per line. The file is written to a
// temporary sibling first and renamed into place, so readers never observe
// a partial list.
func WriteURLs(path string, urls []string) error {
	if path == "" {
		return linkharvest.Errorf(linkharvest.EINVALID, "output path required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatURLs(urls)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
