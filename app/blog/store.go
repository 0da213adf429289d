package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

var postExtensions = []string{".mdx", ".md"}

// Store reads raw post files from a flat content directory.
type Store struct {
	fsys fs.FS
}

func NewStore(contentDir string) *Store {
	return &Store{fsys: os.DirFS(contentDir)}
}

func NewStoreFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// List returns the names of all .md and .mdx files, sorted lexicographically.
// A missing content directory yields an empty list.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsPostFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Read returns the whole content of one post file.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// IsPostFile reports whether name carries a post extension.
func IsPostFile(name string) bool {
	for _, ext := range postExtensions {
		if strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return true
		}
	}
	return false
}

// Slug strips a trailing .md or .mdx from a file name.
func Slug(fileName string) string {
	for _, ext := range postExtensions {
		if strings.HasSuffix(fileName, ext) {
			return strings.TrimSuffix(fileName, ext)
		}
	}
	return fileName
}
