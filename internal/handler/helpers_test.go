package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubHTMLRender records the last rendered template instead of executing it.
type stubHTMLRender struct {
	mu   sync.Mutex
	name string
	data interface{}
}

type stubHTMLInstance struct {
	parent *stubHTMLRender
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	r.mu.Lock()
	r.name = name
	r.data = data
	r.mu.Unlock()
	return &stubHTMLInstance{parent: r}
}

func (r *stubHTMLRender) last() (string, gin.H) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payload, _ := r.data.(gin.H)
	return r.name, payload
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// memStorage is a map-backed ObjectStorage for handler tests.
type memStorage struct {
	mu      sync.Mutex
	objects map[string]struct{}
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string]struct{})}
}

func (m *memStorage) Save(_ context.Context, bucket, name string, reader io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[bucket+"/"+name] = struct{}{}
	m.mu.Unlock()
	return "/media/" + bucket + "/" + name, nil
}

func (m *memStorage) Delete(_ context.Context, bucket, name string) error {
	m.mu.Lock()
	delete(m.objects, bucket+"/"+name)
	m.mu.Unlock()
	return nil
}

func (m *memStorage) ObjectName(bucket, publicURL string) (string, bool) {
	marker := "/" + bucket + "/"
	idx := strings.LastIndex(publicURL, marker)
	if idx < 0 {
		return "", false
	}
	return publicURL[idx+len(marker):], true
}

func setupHandlerTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Partner{}, &db.PortfolioItem{}, &db.HeroSlide{}, &db.QuickLink{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func newTestAPI(gdb *gorm.DB, contact *service.ContactDispatcher) *API {
	store := newMemStorage()
	cacheStore := cache.NewStore()
	if contact == nil {
		contact = service.NewContactDispatcher(service.RelayConfig{})
	}
	return &API{
		db:        gdb,
		partners:  service.NewPartnerService(gdb, store, cacheStore),
		portfolio: service.NewPortfolioService(gdb, store, cacheStore),
		slides:    service.NewHeroService(gdb, store, cacheStore),
		links:     service.NewLinkService(gdb, cacheStore),
		contact:   contact,
	}
}

func seedAdminUser(t *testing.T, gdb *gorm.DB, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}
}
