// Package scanner finds the source files to lex under a directory tree.
package scanner

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	fs         afero.Fs
	rootDir    string
	extensions []string
}

// New returns a scanner over rootDir. With no extensions every regular file
// matches.
func New(fs afero.Fs, rootDir string, extensions ...string) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Scanner{
		fs:         fs,
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan returns the matching files sorted by path.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := afero.Walk(s.fs, s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if s.isTargetFile(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
