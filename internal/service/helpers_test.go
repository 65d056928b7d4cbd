package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Partner{}, &db.PortfolioItem{}, &db.HeroSlide{}, &db.QuickLink{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

// fakeStorage is an in-memory ObjectStorage with switchable failure modes.
type fakeStorage struct {
	mu           sync.Mutex
	objects      map[string][]byte
	saves        int
	failSaveAt   int // fail the nth Save (1-based); 0 disables
	failDeletes  bool
	deleteCalls  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, bucket, name string, reader io.Reader, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.failSaveAt > 0 && f.saves >= f.failSaveAt {
		return "", errors.New("storage write refused")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objects[bucket+"/"+name] = data
	return "https://cdn.test/" + bucket + "/" + name, nil
}

func (f *fakeStorage) Delete(ctx context.Context, bucket, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failDeletes {
		return errors.New("storage delete refused")
	}
	delete(f.objects, bucket+"/"+name)
	return nil
}

func (f *fakeStorage) ObjectName(bucket, publicURL string) (string, bool) {
	marker := "/" + bucket + "/"
	idx := strings.LastIndex(publicURL, marker)
	if idx < 0 {
		return "", false
	}
	return publicURL[idx+len(marker):], true
}

func (f *fakeStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

func (f *fakeStorage) has(bucket, name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[bucket+"/"+name]
	return ok
}

var pngBytes = func() []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		panic(fmt.Sprintf("encode test png: %v", err))
	}
	return buf.Bytes()
}()

// pngUpload fabricates an upload whose declared size may differ from the
// payload; the services validate against the declared size.
func pngUpload(name string, declaredSize int64) FileUpload {
	return FileUpload{
		Name:        name,
		Size:        declaredSize,
		ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(pngBytes)), nil
		},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func nonImageUpload(name string) FileUpload {
	return FileUpload{
		Name:        name,
		Size:        128,
		ContentType: "application/pdf",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("%PDF-1.7")), nil
		},
	}
}
