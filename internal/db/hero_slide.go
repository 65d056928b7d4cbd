package db

import "gorm.io/gorm"

// HeroSlide is one background of the home page carousel.
// At most one slide carries IsGlobalText=true; its title and subtitle
// override the captions of every other slide (enforced by HeroService).
type HeroSlide struct {
	gorm.Model
	ImageURL     string `gorm:"size:255;not null"`
	Title        string `gorm:"size:160"`
	Subtitle     string `gorm:"size:255"`
	OrderIndex   int    `gorm:"default:0"`
	UseRandom    bool
	IsGlobalText bool
}
