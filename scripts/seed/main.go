package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"gorm.io/datatypes"
)

// Seeds demo content so a fresh checkout has something to render. Media
// URLs point at placeholder assets; replace them through the admin once
// real uploads exist.
func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "g8studio.db", "sqlite db path")
	flag.Parse()

	gdb, err := db.Init(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init db: %v\n", err)
		os.Exit(1)
	}

	var partnerCount int64
	gdb.Model(&db.Partner{}).Count(&partnerCount)
	if partnerCount > 0 {
		fmt.Println("database already has content, nothing to do")
		return
	}

	partners := []db.Partner{
		{Name: "TACO", LogoURL: "/static/img/placeholder-logo.svg", DisplayOrder: 0},
		{Name: "Dekoruma", LogoURL: "/static/img/placeholder-logo.svg", DisplayOrder: 1},
	}
	if err := gdb.Create(&partners).Error; err != nil {
		fmt.Fprintf(os.Stderr, "seed partners: %v\n", err)
		os.Exit(1)
	}

	slides := []db.HeroSlide{
		{
			ImageURL:   "/static/img/placeholder-hero.svg",
			Title:      "Designing Dreams, Building Reality",
			Subtitle:   "Interior design and build for homes and commercial spaces",
			OrderIndex: 0,
		},
	}
	if err := gdb.Create(&slides).Error; err != nil {
		fmt.Fprintf(os.Stderr, "seed hero slides: %v\n", err)
		os.Exit(1)
	}

	projects := []db.PortfolioItem{
		{
			Title:       "Sudirman Residence",
			Category:    "Residential",
			Year:        "2025",
			Description: "Full interior fit-out for a three-bedroom apartment.",
			Location:    "Jakarta",
			Status:      db.ProjectStatusCompleted,
			Images:      datatypes.NewJSONSlice([]string{"/static/img/placeholder-project.svg"}),
		},
		{
			Title:       "Kemang Cafe",
			Category:    "Commercial",
			Year:        "2026",
			Description: "Industrial-tropical concept for a neighborhood cafe.",
			Location:    "Jakarta",
			Status:      db.ProjectStatusInProgress,
			Images:      datatypes.NewJSONSlice([]string{"/static/img/placeholder-project.svg"}),
		},
	}
	if err := gdb.Create(&projects).Error; err != nil {
		fmt.Fprintf(os.Stderr, "seed projects: %v\n", err)
		os.Exit(1)
	}

	links := []db.QuickLink{
		{Title: "Instagram", URL: "https://instagram.com/g8studio", IconName: "instagram", OrderIndex: 0, IsActive: true},
		{Title: "WhatsApp", URL: "https://wa.me/6281234567890", IconName: "whatsapp", OrderIndex: 1, IsActive: true},
	}
	if err := gdb.Create(&links).Error; err != nil {
		fmt.Fprintf(os.Stderr, "seed quick links: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("done: seeded partners, hero slide, projects and quick links")
}
