package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/storage"
	"gorm.io/gorm"
)

// ErrPartnerNotFound is returned when the addressed partner does not exist.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerService manages the partner-brand logos shown on the public site.
// Logos live in the partner-logos bucket; a row's LogoURL always points at
// a stored object while the row exists.
type PartnerService struct {
	db    *gorm.DB
	store storage.ObjectStorage
	cache *cache.Store
}

// NewPartnerService constructs a PartnerService.
func NewPartnerService(gdb *gorm.DB, store storage.ObjectStorage, cacheStore *cache.Store) *PartnerService {
	return &PartnerService{db: gdb, store: store, cache: cacheStore}
}

// PartnerUpdate describes the row-only fields of an update; nil fields are
// left untouched.
type PartnerUpdate struct {
	Name         *string
	DisplayOrder *int
}

// List returns all partners ordered by display_order, through the mutation
// cache. No rows is an empty result, not an error.
func (s *PartnerService) List() ([]db.Partner, error) {
	return cache.Fetch(s.cache, cache.KeyPartners, func() ([]db.Partner, error) {
		var items []db.Partner
		if err := s.db.Order("display_order ASC, id ASC").Find(&items).Error; err != nil {
			return nil, &BackendError{Op: "list partners", Err: err}
		}
		return items, nil
	})
}

// Create validates and uploads the logo, then inserts the row. When the
// insert fails after the upload, the stored object is deleted before the
// error surfaces.
func (s *PartnerService) Create(ctx context.Context, name string, logo FileUpload) (*db.Partner, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, &ValidationError{Reason: "partner name is required"}
	}
	if err := validateImageUpload(logo, partnerLogoMaxSize); err != nil {
		return nil, err
	}

	urls, objects, err := uploadImages(ctx, s.store, storage.BucketPartnerLogos, []FileUpload{logo})
	if err != nil {
		return nil, err
	}

	order, err := s.nextDisplayOrder()
	if err != nil {
		discardObjects(ctx, s.store, storage.BucketPartnerLogos, objects)
		return nil, err
	}

	partner := db.Partner{
		Name:         trimmed,
		LogoURL:      urls[0],
		DisplayOrder: order,
	}
	if err := s.db.Create(&partner).Error; err != nil {
		discardObjects(ctx, s.store, storage.BucketPartnerLogos, objects)
		return nil, &BackendError{Op: "create partner", Err: err}
	}

	s.cache.Invalidate(cache.KeyPartners)
	return &partner, nil
}

// Update applies a partial row-only update; storage is never touched.
func (s *PartnerService) Update(id uint, update PartnerUpdate) (*db.Partner, error) {
	var partner db.Partner
	if err := s.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, &BackendError{Op: "find partner", Err: err}
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, &ValidationError{Reason: "partner name is required"}
		}
		partner.Name = trimmed
	}
	if update.DisplayOrder != nil {
		partner.DisplayOrder = *update.DisplayOrder
	}

	if err := s.db.Save(&partner).Error; err != nil {
		return nil, &BackendError{Op: "update partner", Err: err}
	}

	s.cache.Invalidate(cache.KeyPartners)
	return &partner, nil
}

// Delete removes the row first (authoritative), then the logo object
// best-effort; a failed storage removal is logged, never surfaced.
func (s *PartnerService) Delete(ctx context.Context, id uint) error {
	var partner db.Partner
	if err := s.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartnerNotFound
		}
		return &BackendError{Op: "find partner", Err: err}
	}

	if err := s.db.Unscoped().Delete(&partner).Error; err != nil {
		return &BackendError{Op: "delete partner", Err: err}
	}
	s.cache.Invalidate(cache.KeyPartners)

	discardObjectURLs(ctx, s.store, storage.BucketPartnerLogos, []string{partner.LogoURL})
	return nil
}

func (s *PartnerService) nextDisplayOrder() (int, error) {
	var maxOrder int
	if err := s.db.Model(&db.Partner{}).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&maxOrder).Error; err != nil {
		return 0, &BackendError{Op: "resolve partner display order", Err: err}
	}
	return maxOrder + 1, nil
}
