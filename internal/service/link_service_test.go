package service

import (
	"errors"
	"testing"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
)

func TestLinkCreateAndList(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	created, err := svc.Create(LinkInput{Title: "Instagram", URL: "https://instagram.com/g8studio", IconName: "instagram"})
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}
	if !created.IsActive {
		t.Error("new links should default to active")
	}
	if created.OrderIndex != 0 {
		t.Errorf("first link should get order index 0, got %d", created.OrderIndex)
	}

	second, err := svc.Create(LinkInput{Title: "WhatsApp", URL: "https://wa.me/628123", IconName: "whatsapp"})
	if err != nil {
		t.Fatalf("failed to create second link: %v", err)
	}
	if second.OrderIndex != 1 {
		t.Errorf("second link should append at order index 1, got %d", second.OrderIndex)
	}

	links, err := svc.ListAll()
	if err != nil {
		t.Fatalf("failed to list links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Title != "Instagram" {
		t.Errorf("links out of order, got %s first", links[0].Title)
	}
}

func TestLinkCreateHonorsInactiveFlag(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	created, err := svc.Create(LinkInput{Title: "Draft", URL: "https://example.com", IconName: "link", IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}
	if created.IsActive {
		t.Error("link created with IsActive=false must be returned inactive")
	}

	var stored db.QuickLink
	if err := gdb.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("failed to reload link: %v", err)
	}
	if stored.IsActive {
		t.Error("link created with IsActive=false must be stored inactive")
	}
}

func TestLinkCreateRejectsUnknownIcon(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	_, err := svc.Create(LinkInput{Title: "Sparkly", URL: "https://example.com", IconName: "sparkles"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for unknown icon, got %v", err)
	}
}

func TestLinkCreateValidatesURL(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	cases := []string{"", "not a url", "javascript:alert(1)", "ftp://example.com/file"}
	for _, raw := range cases {
		if _, err := svc.Create(LinkInput{Title: "Bad", URL: raw, IconName: "link"}); !IsValidation(err) {
			t.Errorf("expected validation error for URL %q, got %v", raw, err)
		}
	}

	for _, raw := range []string{"https://example.com", "mailto:hello@g8studio.id", "tel:+628123"} {
		if _, err := svc.Create(LinkInput{Title: "Good", URL: raw, IconName: "link"}); err != nil {
			t.Errorf("URL %q should be accepted, got %v", raw, err)
		}
	}
}

func TestLinkListActiveFiltersInactive(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	visible, err := svc.Create(LinkInput{Title: "Visible", URL: "https://example.com/a", IconName: "link"})
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}
	hidden, err := svc.Create(LinkInput{Title: "Hidden", URL: "https://example.com/b", IconName: "link", IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("failed to create hidden link: %v", err)
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("failed to list active links: %v", err)
	}
	if len(active) != 1 || active[0].ID != visible.ID {
		t.Fatalf("expected only the visible link, got %d entries", len(active))
	}

	all, err := svc.ListAll()
	if err != nil {
		t.Fatalf("failed to list all links: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin list should include hidden links, got %d", len(all))
	}
	if all[1].ID != hidden.ID || all[1].IsActive {
		t.Errorf("hidden link should stay inactive in the admin list")
	}
}

func TestLinkToggleActiveIsIdempotent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	created, err := svc.Create(LinkInput{Title: "Switch", URL: "https://example.com", IconName: "link"})
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}

	for i := 0; i < 2; i++ {
		toggled, err := svc.ToggleActive(created.ID, false)
		if err != nil {
			t.Fatalf("toggle %d failed: %v", i, err)
		}
		if toggled.IsActive {
			t.Fatalf("toggle %d should leave the link inactive", i)
		}
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("failed to list active links: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("inactive link must not appear publicly, got %d entries", len(active))
	}
}

func TestLinkUpdatePartial(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	created, err := svc.Create(LinkInput{Title: "Shop", URL: "https://example.com/shop", IconName: "shopping-bag", Color: "#1a1a1a"})
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}

	updated, err := svc.Update(created.ID, LinkUpdate{Title: strPtr("Store"), OrderIndex: intPtr(7)})
	if err != nil {
		t.Fatalf("failed to update link: %v", err)
	}
	if updated.Title != "Store" || updated.OrderIndex != 7 {
		t.Errorf("update not applied: %q / %d", updated.Title, updated.OrderIndex)
	}
	if updated.URL != created.URL || updated.IconName != created.IconName {
		t.Errorf("untouched fields must survive a partial update")
	}

	if _, err := svc.Update(created.ID, LinkUpdate{IconName: strPtr("rocket")}); !IsValidation(err) {
		t.Errorf("expected validation error for unknown icon on update, got %v", err)
	}
}

func TestLinkDelete(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewLinkService(gdb, cache.NewStore())

	created, err := svc.Create(LinkInput{Title: "Temp", URL: "https://example.com", IconName: "link"})
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("failed to delete link: %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("expected ErrLinkNotFound on repeat delete, got %v", err)
	}

	links, err := svc.ListAll()
	if err != nil {
		t.Fatalf("failed to list links: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links after delete, got %d", len(links))
	}
}
