package service

import (
	"errors"
	"net/url"
	"strings"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/view"
	"gorm.io/gorm"
)

// ErrLinkNotFound is returned when the addressed quick link does not exist.
var ErrLinkNotFound = errors.New("quick link not found")

// LinkService manages the quick links of the public links page. Icon names
// are validated against the closed icon set at creation time; unknown names
// are rejected instead of silently falling back.
type LinkService struct {
	db    *gorm.DB
	cache *cache.Store
}

// NewLinkService constructs a LinkService.
func NewLinkService(gdb *gorm.DB, cacheStore *cache.Store) *LinkService {
	return &LinkService{db: gdb, cache: cacheStore}
}

// LinkInput carries the fields of a new quick link.
type LinkInput struct {
	Title      string
	URL        string
	IconName   string
	Color      string
	OrderIndex *int
	IsActive   *bool
}

// LinkUpdate describes a partial update; nil fields are left untouched.
type LinkUpdate struct {
	Title      *string
	URL        *string
	IconName   *string
	Color      *string
	OrderIndex *int
	IsActive   *bool
}

// ListAll returns every link ordered by order_index (admin view), through
// the mutation cache.
func (s *LinkService) ListAll() ([]db.QuickLink, error) {
	return cache.Fetch(s.cache, cache.KeyQuickLinks, func() ([]db.QuickLink, error) {
		var items []db.QuickLink
		if err := s.db.Order("order_index ASC, id ASC").Find(&items).Error; err != nil {
			return nil, &BackendError{Op: "list quick links", Err: err}
		}
		return items, nil
	})
}

// ListActive returns only the links shown on the public page.
func (s *LinkService) ListActive() ([]db.QuickLink, error) {
	all, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	active := make([]db.QuickLink, 0, len(all))
	for _, link := range all {
		if link.IsActive {
			active = append(active, link)
		}
	}
	return active, nil
}

// Create validates and inserts a new link; links are active by default and
// append to the end of the ordering when no index is given.
func (s *LinkService) Create(input LinkInput) (*db.QuickLink, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, &ValidationError{Reason: "link title is required"}
	}
	target, err := normalizeLinkURL(input.URL)
	if err != nil {
		return nil, err
	}
	icon := strings.TrimSpace(input.IconName)
	if !view.IsLinkIcon(icon) {
		return nil, &ValidationError{Reason: "unsupported icon name " + icon}
	}

	orderIndex := 0
	if input.OrderIndex != nil {
		orderIndex = *input.OrderIndex
	} else {
		next, err := s.nextOrderIndex()
		if err != nil {
			return nil, err
		}
		orderIndex = next
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	link := db.QuickLink{
		Title:      title,
		URL:        target,
		IconName:   strings.ToLower(icon),
		Color:      strings.TrimSpace(input.Color),
		OrderIndex: orderIndex,
		IsActive:   active,
	}
	if err := s.db.Create(&link).Error; err != nil {
		return nil, &BackendError{Op: "create quick link", Err: err}
	}

	s.cache.Invalidate(cache.KeyQuickLinks)
	return &link, nil
}

// Update applies a partial update.
func (s *LinkService) Update(id uint, update LinkUpdate) (*db.QuickLink, error) {
	var link db.QuickLink
	if err := s.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, &BackendError{Op: "find quick link", Err: err}
	}

	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			return nil, &ValidationError{Reason: "link title is required"}
		}
		link.Title = trimmed
	}
	if update.URL != nil {
		target, err := normalizeLinkURL(*update.URL)
		if err != nil {
			return nil, err
		}
		link.URL = target
	}
	if update.IconName != nil {
		icon := strings.TrimSpace(*update.IconName)
		if !view.IsLinkIcon(icon) {
			return nil, &ValidationError{Reason: "unsupported icon name " + icon}
		}
		link.IconName = strings.ToLower(icon)
	}
	if update.Color != nil {
		link.Color = strings.TrimSpace(*update.Color)
	}
	if update.OrderIndex != nil {
		link.OrderIndex = *update.OrderIndex
	}
	if update.IsActive != nil {
		link.IsActive = *update.IsActive
	}

	if err := s.db.Save(&link).Error; err != nil {
		return nil, &BackendError{Op: "update quick link", Err: err}
	}

	s.cache.Invalidate(cache.KeyQuickLinks)
	return &link, nil
}

// ToggleActive flips the public visibility flag; calling it twice with the
// same value is a no-op the second time.
func (s *LinkService) ToggleActive(id uint, value bool) (*db.QuickLink, error) {
	return s.Update(id, LinkUpdate{IsActive: &value})
}

// Delete removes a quick link; links own no storage objects.
func (s *LinkService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.QuickLink{}, id)
	if result.Error != nil {
		return &BackendError{Op: "delete quick link", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	s.cache.Invalidate(cache.KeyQuickLinks)
	return nil
}

func (s *LinkService) nextOrderIndex() (int, error) {
	var maxIndex int
	if err := s.db.Model(&db.QuickLink{}).
		Select("COALESCE(MAX(order_index), -1)").
		Scan(&maxIndex).Error; err != nil {
		return 0, &BackendError{Op: "resolve quick link order", Err: err}
	}
	return maxIndex + 1, nil
}

func normalizeLinkURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{Reason: "link URL is required"}
	}
	parsed, err := url.ParseRequestURI(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https" && parsed.Scheme != "mailto" && parsed.Scheme != "tel") {
		return "", &ValidationError{Reason: "link URL must be absolute (http, https, mailto or tel)"}
	}
	return trimmed, nil
}
