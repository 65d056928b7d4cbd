package db

import "gorm.io/gorm"

// QuickLink is an entry of the public links page.
// Icon must be one of the keys in view.LinkIconOptions; only active links
// are rendered publicly, the admin view lists all of them.
type QuickLink struct {
	gorm.Model
	Title      string `gorm:"size:120;not null"`
	URL        string `gorm:"size:255;not null"`
	IconName   string `gorm:"size:40;not null"`
	Color      string `gorm:"size:24"`
	OrderIndex int `gorm:"default:0"`
	// No column default: a default tag would make gorm omit a false value
	// from the INSERT and the database default would override it. LinkService
	// applies the active-by-default rule instead.
	IsActive bool
}
