package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/AnthoniusHendriyanto/g8studio/internal/storage"
	"github.com/google/uuid"
)

// Per-file size ceilings.
const (
	partnerLogoMaxSize    = 2 << 20 // 2MB
	portfolioImageMaxSize = 5 << 20 // 5MB
	heroImageMaxSize      = 5 << 20 // 5MB
)

// FileUpload carries one uploaded file into a resource service without
// binding the service to multipart plumbing. Open must be callable more
// than once: validation reads the image header, the upload reads the body.
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

func validateImageUpload(file FileUpload, maxSize int64) error {
	if file.Open == nil {
		return &ValidationError{File: file.Name, Reason: "is empty"}
	}
	if file.Size > maxSize {
		return &ValidationError{
			File:   file.Name,
			Reason: fmt.Sprintf("is too large (max %dMB)", maxSize>>20),
		}
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return &ValidationError{File: file.Name, Reason: "is not an image"}
	}

	// Cheap sanity check that the payload really starts with an image
	// header (png/jpeg/gif/webp); DecodeConfig stops after the header.
	reader, err := file.Open()
	if err != nil {
		return &ValidationError{File: file.Name, Reason: "could not be read"}
	}
	defer reader.Close()
	if _, _, err := image.DecodeConfig(reader); err != nil {
		return &ValidationError{File: file.Name, Reason: "is not a valid image"}
	}

	return nil
}

// uploadImages stores files sequentially under random names and returns
// their public URLs alongside the object names. When the upload of a later
// file fails, the objects already stored in this batch are deleted before
// the error surfaces, so storage is left clean.
func uploadImages(ctx context.Context, store storage.ObjectStorage, bucket string, files []FileUpload) (urls, names []string, err error) {
	for _, file := range files {
		name := randomObjectName(file.Name)

		reader, openErr := file.Open()
		if openErr != nil {
			discardObjects(ctx, store, bucket, names)
			return nil, nil, &StorageError{Op: "open upload " + file.Name, Err: openErr}
		}

		url, saveErr := store.Save(ctx, bucket, name, reader, file.ContentType)
		reader.Close()
		if saveErr != nil {
			discardObjects(ctx, store, bucket, names)
			return nil, nil, &StorageError{Op: "upload " + file.Name, Err: saveErr}
		}

		urls = append(urls, url)
		names = append(names, name)
	}
	return urls, names, nil
}

// discardObjects removes objects best-effort; failures are logged only,
// since this runs on paths where a more important error is already being
// surfaced or the row is already gone.
func discardObjects(ctx context.Context, store storage.ObjectStorage, bucket string, names []string) {
	for _, name := range names {
		if err := store.Delete(ctx, bucket, name); err != nil {
			log.Printf("failed to clean up object %s/%s: %v", bucket, name, err)
		}
	}
}

// discardObjectURLs resolves public URLs back to object names and removes
// them best-effort.
func discardObjectURLs(ctx context.Context, store storage.ObjectStorage, bucket string, urls []string) {
	for _, url := range urls {
		name, ok := store.ObjectName(bucket, url)
		if !ok {
			log.Printf("skipping cleanup of foreign URL %s (bucket %s)", url, bucket)
			continue
		}
		if err := store.Delete(ctx, bucket, name); err != nil {
			log.Printf("failed to clean up object %s/%s: %v", bucket, name, err)
		}
	}
}

// randomObjectName keeps the original extension but replaces the name with
// a uuid; collisions are treated as negligible.
func randomObjectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}
