package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/storage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound is returned when the addressed project does not exist.
	ErrProjectNotFound = errors.New("portfolio project not found")
)

var projectStatuses = []string{
	db.ProjectStatusCompleted,
	db.ProjectStatusInProgress,
	db.ProjectStatusConcept,
}

// PortfolioService manages studio projects and their image sets in the
// portfolio-images bucket.
type PortfolioService struct {
	db    *gorm.DB
	store storage.ObjectStorage
	cache *cache.Store
}

// NewPortfolioService constructs a PortfolioService.
func NewPortfolioService(gdb *gorm.DB, store storage.ObjectStorage, cacheStore *cache.Store) *PortfolioService {
	return &PortfolioService{db: gdb, store: store, cache: cacheStore}
}

// ProjectInput carries the fields of a new project.
type ProjectInput struct {
	Title       string
	Category    string
	Year        string
	Description string
	Location    string
	Client      string
	Status      string
}

// ProjectUpdate describes a partial update. KeepImages lists the existing
// image URLs to retain, in their new order; NewFiles are appended after
// them. Dropped images are removed from storage best-effort once the row
// update succeeded.
type ProjectUpdate struct {
	Title       *string
	Category    *string
	Year        *string
	Description *string
	Location    *string
	Client      *string
	Status      *string
	KeepImages  []string
	NewFiles    []FileUpload
}

// List returns all projects newest first, through the mutation cache.
func (s *PortfolioService) List() ([]db.PortfolioItem, error) {
	return cache.Fetch(s.cache, cache.KeyPortfolio, func() ([]db.PortfolioItem, error) {
		var items []db.PortfolioItem
		if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
			return nil, &BackendError{Op: "list portfolio projects", Err: err}
		}
		return items, nil
	})
}

// Get fetches one project by id.
func (s *PortfolioService) Get(id uint) (*db.PortfolioItem, error) {
	var item db.PortfolioItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, &BackendError{Op: "get portfolio project", Err: err}
	}
	return &item, nil
}

// Create validates every file before any upload, stores the images
// sequentially, then inserts the row. Any failure after the first upload
// removes exactly the objects stored so far before the error surfaces.
func (s *PortfolioService) Create(ctx context.Context, input ProjectInput, files []FileUpload) (*db.PortfolioItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &ValidationError{Reason: "project title is required"}
	}
	if len(files) == 0 {
		return nil, &ValidationError{Reason: "at least one project image is required"}
	}
	status, err := normalizeProjectStatus(input.Status)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if err := validateImageUpload(file, portfolioImageMaxSize); err != nil {
			return nil, err
		}
	}

	urls, objects, err := uploadImages(ctx, s.store, storage.BucketPortfolioImages, files)
	if err != nil {
		return nil, err
	}

	item := db.PortfolioItem{
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Year:        strings.TrimSpace(input.Year),
		Description: input.Description,
		Location:    strings.TrimSpace(input.Location),
		Client:      strings.TrimSpace(input.Client),
		Status:      status,
		Images:      datatypes.NewJSONSlice(urls),
	}
	if err := s.db.Create(&item).Error; err != nil {
		discardObjects(ctx, s.store, storage.BucketPortfolioImages, objects)
		return nil, &BackendError{Op: "create portfolio project", Err: err}
	}

	s.cache.Invalidate(cache.KeyPortfolio)
	return &item, nil
}

// Update applies a partial update, including image replacement: retained
// URLs keep their place, new files are uploaded and appended, and images
// dropped from the set are deleted from storage after the row was saved.
func (s *PortfolioService) Update(ctx context.Context, id uint, update ProjectUpdate) (*db.PortfolioItem, error) {
	var item db.PortfolioItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, &BackendError{Op: "find portfolio project", Err: err}
	}

	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			return nil, &ValidationError{Reason: "project title is required"}
		}
		item.Title = trimmed
	}
	if update.Category != nil {
		item.Category = strings.TrimSpace(*update.Category)
	}
	if update.Year != nil {
		item.Year = strings.TrimSpace(*update.Year)
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Location != nil {
		item.Location = strings.TrimSpace(*update.Location)
	}
	if update.Client != nil {
		item.Client = strings.TrimSpace(*update.Client)
	}
	if update.Status != nil {
		status, err := normalizeProjectStatus(*update.Status)
		if err != nil {
			return nil, err
		}
		item.Status = status
	}

	existing := item.ImageList()
	keep := existing
	touchImages := update.KeepImages != nil || len(update.NewFiles) > 0
	if update.KeepImages != nil {
		keep = update.KeepImages
		for _, url := range keep {
			if !containsString(existing, url) {
				return nil, &ValidationError{Reason: "retained image does not belong to this project"}
			}
		}
	}
	for _, file := range update.NewFiles {
		if err := validateImageUpload(file, portfolioImageMaxSize); err != nil {
			return nil, err
		}
	}
	if touchImages && len(keep)+len(update.NewFiles) == 0 {
		return nil, &ValidationError{Reason: "a project needs at least one image"}
	}

	newURLs, newObjects, err := uploadImages(ctx, s.store, storage.BucketPortfolioImages, update.NewFiles)
	if err != nil {
		return nil, err
	}
	if touchImages {
		item.Images = datatypes.NewJSONSlice(append(append([]string{}, keep...), newURLs...))
	}

	if err := s.db.Save(&item).Error; err != nil {
		discardObjects(ctx, s.store, storage.BucketPortfolioImages, newObjects)
		return nil, &BackendError{Op: "update portfolio project", Err: err}
	}
	s.cache.Invalidate(cache.KeyPortfolio)

	if touchImages {
		var dropped []string
		for _, url := range existing {
			if !containsString(keep, url) {
				dropped = append(dropped, url)
			}
		}
		discardObjectURLs(ctx, s.store, storage.BucketPortfolioImages, dropped)
	}

	return &item, nil
}

// Delete removes the row first, then all image objects best-effort.
func (s *PortfolioService) Delete(ctx context.Context, id uint) error {
	var item db.PortfolioItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return &BackendError{Op: "find portfolio project", Err: err}
	}

	if err := s.db.Unscoped().Delete(&item).Error; err != nil {
		return &BackendError{Op: "delete portfolio project", Err: err}
	}
	s.cache.Invalidate(cache.KeyPortfolio)

	discardObjectURLs(ctx, s.store, storage.BucketPortfolioImages, item.ImageList())
	return nil
}

func normalizeProjectStatus(status string) (string, error) {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return db.ProjectStatusCompleted, nil
	}
	for _, known := range projectStatuses {
		if strings.EqualFold(trimmed, known) {
			return known, nil
		}
	}
	return "", &ValidationError{Reason: "unknown project status " + trimmed}
}

func containsString(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}
