package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage keeps bucket objects on the local filesystem under one base
// directory, served back through a public URL prefix (router mounts the
// directory as static files).
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates the base directory when missing. baseURL is the
// public prefix every object URL starts with, e.g. "/media" or a full
// "https://..." origin.
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	dir := strings.TrimSpace(baseDir)
	if dir == "" {
		dir = "web/static/media"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	return &LocalStorage{
		baseDir: dir,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}, nil
}

// Save writes the object and returns its public URL.
func (s *LocalStorage) Save(ctx context.Context, bucket, name string, reader io.Reader, contentType string) (string, error) {
	if err := validateObjectName(name); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bucket directory: %w", err)
	}

	fullPath := filepath.Join(dir, name)
	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write object: %w", err)
	}

	return s.publicURL(bucket, name), nil
}

// Delete removes the object. A missing object is not an error so that
// best-effort cleanup stays quiet.
func (s *LocalStorage) Delete(ctx context.Context, bucket, name string) error {
	if err := validateObjectName(name); err != nil {
		return err
	}

	fullPath := filepath.Join(s.baseDir, bucket, name)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// ObjectName strips the bucket URL prefix from a public URL.
func (s *LocalStorage) ObjectName(bucket, publicURL string) (string, bool) {
	marker := "/" + bucket + "/"
	idx := strings.LastIndex(publicURL, marker)
	if idx < 0 {
		return "", false
	}

	name := publicURL[idx+len(marker):]
	if validateObjectName(name) != nil {
		return "", false
	}
	return name, true
}

func (s *LocalStorage) publicURL(bucket, name string) string {
	return s.baseURL + path.Join("/", bucket, name)
}

func validateObjectName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid object name %q", name)
	}
	return nil
}
