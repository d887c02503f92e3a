package service

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ludo-technologies/treedist/domain"
)

// TreeFileReaderImpl resolves tree input files on disk.
type TreeFileReaderImpl struct{}

// NewTreeFileReader creates a file reader.
func NewTreeFileReader() *TreeFileReaderImpl {
	return &TreeFileReaderImpl{}
}

// CollectTreeFiles expands the given paths into the sorted list of
// tree files: plain files are taken as-is, directories are searched
// with the doublestar include patterns and filtered by the exclude
// patterns. The result order is deterministic.
func (r *TreeFileReaderImpl) CollectTreeFiles(paths []string, include, exclude []string, recursive bool) ([]string, error) {
	seen := map[string]bool{}
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, domain.NewFileNotFoundError(p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		patterns := include
		if len(patterns) == 0 {
			patterns = []string{"**/*.tree"}
		}
		for _, pattern := range patterns {
			if !recursive {
				pattern = filepath.Base(pattern)
			}
			matches, err := doublestar.Glob(os.DirFS(p), pattern)
			if err != nil {
				return nil, domain.NewInvalidInputError("invalid include pattern: "+pattern, err)
			}
			for _, m := range matches {
				full := filepath.Join(p, m)
				if r.excluded(m, exclude) {
					continue
				}
				if fi, err := os.Stat(full); err == nil && !fi.IsDir() {
					add(full)
				}
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func (r *TreeFileReaderImpl) excluded(rel string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// ReadTreeFile returns the file contents as a string.
func (r *TreeFileReaderImpl) ReadTreeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewFileNotFoundError(path, err)
	}
	return string(data), nil
}
