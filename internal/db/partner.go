package db

import "gorm.io/gorm"

// Partner is a brand whose logo is shown on the public partner strip.
// LogoURL always points at a live object in the partner-logos bucket while
// the row exists; deletion removes the row first, then the object.
type Partner struct {
	gorm.Model
	Name         string `gorm:"size:120;not null"`
	LogoURL      string `gorm:"size:255;not null"`
	DisplayOrder int    `gorm:"default:0"`
}
