package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes uploads under a directory served as /uploads by the API.
type Local struct {
	root string
}

func NewLocal(root string) *Local {
	if root == "" {
		root = "./uploads"
	}
	return &Local{root: root}
}

func (l *Local) Upload(_ context.Context, r io.Reader, path string, _ string) (string, error) {
	path = strings.TrimPrefix(path, "/")
	full := filepath.Join(l.root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return "/uploads/" + path, nil
}

func (l *Local) Delete(_ context.Context, path string) error {
	path = strings.TrimPrefix(path, "/")
	return os.Remove(filepath.Join(l.root, filepath.FromSlash(path)))
}
