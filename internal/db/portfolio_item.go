package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProjectStatusCompleted  = "Completed"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusConcept    = "Concept"
)

// PortfolioItem is a studio project shown on the portfolio page.
// Images holds the ordered public URLs of the project photos; the first
// entry is the representative thumbnail.
type PortfolioItem struct {
	gorm.Model
	Title       string `gorm:"size:160;not null"`
	Category    string `gorm:"size:80"`
	Year        string `gorm:"size:8"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:120"`
	Client      string `gorm:"size:120"`
	Status      string `gorm:"size:24;default:Completed"`
	Images      datatypes.JSONSlice[string]
}

// ImageList returns the stored image URLs as a plain slice.
func (p *PortfolioItem) ImageList() []string {
	return []string(p.Images)
}

// Thumbnail returns the representative image URL, or "" when none exist.
func (p *PortfolioItem) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
