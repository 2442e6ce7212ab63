// Package scan walks directories for image files.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FileItem is an image file found by a scan.
type FileItem struct {
	Path string
	Name string
}

// FileItems is a list of FileItem in scan order.
type FileItems []FileItem

// LoggerFunc receives human readable progress and error messages.
type LoggerFunc func(msg string)

// DefaultExtensions are the image types the slider can decode.
var DefaultExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}

// FileScannerImpl walks a directory tree in lexical order.
type FileScannerImpl struct {
	// Extensions filters files by lower-case extension. Nil means
	// DefaultExtensions.
	Extensions map[string]bool
}

// Run scans dir in the background. The returned channel is closed when the
// walk finishes. Unreadable entries are reported through logger and skipped.
func (s *FileScannerImpl) Run(dir string, logger LoggerFunc) <-chan FileItem {
	exts := s.Extensions
	if exts == nil {
		exts = DefaultExtensions
	}
	out := make(chan FileItem, 64)
	go func() {
		defer close(out)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if logger != nil {
					logger("scan: " + err.Error())
				}
				if d != nil && d.IsDir() && path != dir {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != dir && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			if !exts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			out <- FileItem{Path: path, Name: d.Name()}
			return nil
		})
		if err != nil && logger != nil {
			logger("scan: " + err.Error())
		}
	}()
	return out
}

// Collect drains a scan into a slice.
func Collect(items <-chan FileItem) FileItems {
	var all FileItems
	for item := range items {
		all = append(all, item)
	}
	return all
}
