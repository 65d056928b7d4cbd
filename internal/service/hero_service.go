package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/storage"
	"gorm.io/gorm"
)

// ErrSlideNotFound is returned when the addressed hero slide does not exist.
var ErrSlideNotFound = errors.New("hero slide not found")

// HeroService manages the home page carousel slides and their backgrounds
// in the hero-images bucket. The is_global_text flag has a single holder:
// granting it to one slide clears it on every other slide in the same
// transaction.
type HeroService struct {
	db    *gorm.DB
	store storage.ObjectStorage
	cache *cache.Store
}

// NewHeroService constructs a HeroService.
func NewHeroService(gdb *gorm.DB, store storage.ObjectStorage, cacheStore *cache.Store) *HeroService {
	return &HeroService{db: gdb, store: store, cache: cacheStore}
}

// SlideInput carries the caption fields of a new slide.
type SlideInput struct {
	Title        string
	Subtitle     string
	OrderIndex   *int
	UseRandom    bool
	IsGlobalText bool
}

// SlideUpdate describes a row-only partial update.
type SlideUpdate struct {
	Title        *string
	Subtitle     *string
	OrderIndex   *int
	UseRandom    *bool
	IsGlobalText *bool
}

// SlideView is one resolved carousel entry: the caption already accounts
// for a global-text slide overriding the others.
type SlideView struct {
	ImageURL string
	Title    string
	Subtitle string
}

// List returns all slides ordered by order_index, through the mutation cache.
func (s *HeroService) List() ([]db.HeroSlide, error) {
	return cache.Fetch(s.cache, cache.KeyHeroSlides, func() ([]db.HeroSlide, error) {
		var items []db.HeroSlide
		if err := s.db.Order("order_index ASC, id ASC").Find(&items).Error; err != nil {
			return nil, &BackendError{Op: "list hero slides", Err: err}
		}
		return items, nil
	})
}

// Create validates and uploads the background image, then inserts the row,
// deleting the uploaded object again when the insert fails.
func (s *HeroService) Create(ctx context.Context, input SlideInput, image FileUpload) (*db.HeroSlide, error) {
	if err := validateImageUpload(image, heroImageMaxSize); err != nil {
		return nil, err
	}

	urls, objects, err := uploadImages(ctx, s.store, storage.BucketHeroImages, []FileUpload{image})
	if err != nil {
		return nil, err
	}

	orderIndex := 0
	if input.OrderIndex != nil {
		orderIndex = *input.OrderIndex
	} else {
		next, err := s.nextOrderIndex()
		if err != nil {
			discardObjects(ctx, s.store, storage.BucketHeroImages, objects)
			return nil, err
		}
		orderIndex = next
	}

	slide := db.HeroSlide{
		ImageURL:     urls[0],
		Title:        strings.TrimSpace(input.Title),
		Subtitle:     strings.TrimSpace(input.Subtitle),
		OrderIndex:   orderIndex,
		UseRandom:    input.UseRandom,
		IsGlobalText: input.IsGlobalText,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if slide.IsGlobalText {
			if err := clearGlobalText(tx, 0); err != nil {
				return err
			}
		}
		return tx.Create(&slide).Error
	})
	if err != nil {
		discardObjects(ctx, s.store, storage.BucketHeroImages, objects)
		return nil, &BackendError{Op: "create hero slide", Err: err}
	}

	s.cache.Invalidate(cache.KeyHeroSlides)
	return &slide, nil
}

// Update applies a row-only partial update; the background image is never
// replaced in place.
func (s *HeroService) Update(id uint, update SlideUpdate) (*db.HeroSlide, error) {
	var slide db.HeroSlide
	if err := s.db.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlideNotFound
		}
		return nil, &BackendError{Op: "find hero slide", Err: err}
	}

	if update.Title != nil {
		slide.Title = strings.TrimSpace(*update.Title)
	}
	if update.Subtitle != nil {
		slide.Subtitle = strings.TrimSpace(*update.Subtitle)
	}
	if update.OrderIndex != nil {
		slide.OrderIndex = *update.OrderIndex
	}
	if update.UseRandom != nil {
		slide.UseRandom = *update.UseRandom
	}
	if update.IsGlobalText != nil {
		slide.IsGlobalText = *update.IsGlobalText
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if slide.IsGlobalText {
			if err := clearGlobalText(tx, slide.ID); err != nil {
				return err
			}
		}
		return tx.Save(&slide).Error
	})
	if err != nil {
		return nil, &BackendError{Op: "update hero slide", Err: err}
	}

	s.cache.Invalidate(cache.KeyHeroSlides)
	return &slide, nil
}

// SetGlobalText grants or revokes the global caption flag.
func (s *HeroService) SetGlobalText(id uint, value bool) (*db.HeroSlide, error) {
	return s.Update(id, SlideUpdate{IsGlobalText: &value})
}

// Delete removes the row first, then the background object best-effort.
func (s *HeroService) Delete(ctx context.Context, id uint) error {
	var slide db.HeroSlide
	if err := s.db.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlideNotFound
		}
		return &BackendError{Op: "find hero slide", Err: err}
	}

	if err := s.db.Unscoped().Delete(&slide).Error; err != nil {
		return &BackendError{Op: "delete hero slide", Err: err}
	}
	s.cache.Invalidate(cache.KeyHeroSlides)

	discardObjectURLs(ctx, s.store, storage.BucketHeroImages, []string{slide.ImageURL})
	return nil
}

// Carousel assembles the public carousel: slides ordered by order_index,
// shuffled when any slide opts into random order, with the global-text
// slide's caption applied to every entry when one exists.
func (s *HeroService) Carousel() ([]SlideView, error) {
	slides, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(slides) == 0 {
		return nil, nil
	}

	ordered := make([]db.HeroSlide, len(slides))
	copy(ordered, slides)

	shuffle := false
	for _, slide := range ordered {
		if slide.UseRandom {
			shuffle = true
			break
		}
	}
	if shuffle {
		rand.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	globalTitle, globalSubtitle, hasGlobal := "", "", false
	for _, slide := range slides {
		if slide.IsGlobalText {
			globalTitle, globalSubtitle, hasGlobal = slide.Title, slide.Subtitle, true
			break
		}
	}

	views := make([]SlideView, 0, len(ordered))
	for _, slide := range ordered {
		view := SlideView{ImageURL: slide.ImageURL, Title: slide.Title, Subtitle: slide.Subtitle}
		if hasGlobal {
			view.Title = globalTitle
			view.Subtitle = globalSubtitle
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *HeroService) nextOrderIndex() (int, error) {
	var maxIndex int
	if err := s.db.Model(&db.HeroSlide{}).
		Select("COALESCE(MAX(order_index), -1)").
		Scan(&maxIndex).Error; err != nil {
		return 0, &BackendError{Op: "resolve hero slide order", Err: err}
	}
	return maxIndex + 1, nil
}

// clearGlobalText revokes the flag on every slide except keepID.
func clearGlobalText(tx *gorm.DB, keepID uint) error {
	return tx.Model(&db.HeroSlide{}).
		Where("is_global_text = ? AND id <> ?", true, keepID).
		Update("is_global_text", false).Error
}
