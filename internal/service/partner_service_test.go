package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/storage"
)

func TestPartnerCreateAndList(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := newFakeStorage()
	svc := NewPartnerService(gdb, store, cache.NewStore())

	created, err := svc.Create(context.Background(), "TACO", pngUpload("taco.png", 1536*1024))
	if err != nil {
		t.Fatalf("failed to create partner: %v", err)
	}
	if created.Name != "TACO" {
		t.Errorf("expected name TACO, got %s", created.Name)
	}
	if !strings.Contains(created.LogoURL, "/"+storage.BucketPartnerLogos+"/") {
		t.Errorf("logo URL should point into the partner-logos bucket, got %s", created.LogoURL)
	}
	if created.DisplayOrder != 0 {
		t.Errorf("first partner should get display order 0, got %d", created.DisplayOrder)
	}
	if store.count() != 1 {
		t.Errorf("expected 1 stored object, got %d", store.count())
	}

	second, err := svc.Create(context.Background(), "Dekoruma", pngUpload("dekoruma.png", 100*1024))
	if err != nil {
		t.Fatalf("failed to create second partner: %v", err)
	}
	if second.DisplayOrder != 1 {
		t.Errorf("second partner should append at display order 1, got %d", second.DisplayOrder)
	}

	partners, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list partners: %v", err)
	}
	if len(partners) != 2 {
		t.Fatalf("expected 2 partners, got %d", len(partners))
	}
	if partners[0].Name != "TACO" || partners[1].Name != "Dekoruma" {
		t.Errorf("partners out of display order: %s, %s", partners[0].Name, partners[1].Name)
	}
}

func TestPartnerCreateRejectsOversizedLogo(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := newFakeStorage()
	svc := NewPartnerService(gdb, store, cache.NewStore())

	_, err := svc.Create(context.Background(), "TACO", pngUpload("huge.png", 3<<20))
	if !IsValidation(err) {
		t.Fatalf("expected validation error for a 3MB logo, got %v", err)
	}
	if store.count() != 0 {
		t.Errorf("rejected upload must not reach storage, found %d objects", store.count())
	}

	var count int64
	gdb.Model(&db.Partner{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected upload must not create a row, found %d", count)
	}
}

func TestPartnerCreateRejectsNonImage(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := newFakeStorage()
	svc := NewPartnerService(gdb, store, cache.NewStore())

	_, err := svc.Create(context.Background(), "TACO", nonImageUpload("brochure.pdf"))
	if !IsValidation(err) {
		t.Fatalf("expected validation error for a PDF upload, got %v", err)
	}
	if store.count() != 0 {
		t.Errorf("rejected upload must not reach storage, found %d objects", store.count())
	}
}

func TestPartnerCreateRequiresName(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPartnerService(gdb, newFakeStorage(), cache.NewStore())

	if _, err := svc.Create(context.Background(), "   ", pngUpload("logo.png", 1024)); !IsValidation(err) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestPartnerCreateRemovesUploadWhenInsertFails(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := newFakeStorage()
	svc := NewPartnerService(gdb, store, cache.NewStore())

	// Break the insert after the upload path is already valid.
	if err := gdb.Migrator().DropTable(&db.Partner{}); err != nil {
		t.Fatalf("failed to drop partners table: %v", err)
	}

	_, err := svc.Create(context.Background(), "TACO", pngUpload("taco.png", 1024))
	if err == nil {
		t.Fatal("expected create to fail once the table is gone")
	}
	if store.count() != 0 {
		t.Errorf("failed insert must remove the uploaded logo, found %d objects", store.count())
	}
}

func TestPartnerUpdateTouchesRowOnly(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := newFakeStorage()
	svc := NewPartnerService(gdb, store, cache.NewStore())

	created, err := svc.Create(context.Background(), "TACO", pngUpload("taco.png", 1024))
	if err != nil {
		t.Fatalf("failed to create partner: %v", err)
	}
	savesBefore := store.saves

	updated, err := svc.Update(created.ID, PartnerUpdate{Name: strPtr("TACO Group"), DisplayOrder: intPtr(5)})
	if err != nil {
		t.Fatalf("failed to update partner: %v", err)
	}
	if updated.Name != "TACO Group" || updated.DisplayOrder != 5 {
		t.Errorf("update not applied: %s / %d", updated.Name, updated.DisplayOrder)
	}
	if updated.LogoURL != created.LogoURL {
		t.Errorf("row update must not touch the logo, got %s", updated.LogoURL)
	}
	if store.saves != savesBefore {
		t.Errorf("row update must not write to storage")
	}

	if _, err := svc.Update(9999, PartnerUpdate{Name: strPtr("x")}); !errors.Is(err, ErrPartnerNotFound) {
		t.Errorf("expected ErrPartnerNotFound, got %v", err)
	}
}

func TestPartnerDeleteRemovesRowAndLogo(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := newFakeStorage()
	svc := NewPartnerService(gdb, store, cache.NewStore())

	created, err := svc.Create(context.Background(), "TACO", pngUpload("taco.png", 1024))
	if err != nil {
		t.Fatalf("failed to create partner: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("failed to delete partner: %v", err)
	}
	if store.count() != 0 {
		t.Errorf("delete should remove the stored logo, found %d objects", store.count())
	}

	var count int64
	gdb.Unscoped().Model(&db.Partner{}).Count(&count)
	if count != 0 {
		t.Errorf("delete must remove the row permanently, found %d", count)
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrPartnerNotFound) {
		t.Errorf("expected ErrPartnerNotFound on repeat delete, got %v", err)
	}
}

func TestPartnerDeleteSucceedsWhenStorageFails(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := newFakeStorage()
	svc := NewPartnerService(gdb, store, cache.NewStore())

	created, err := svc.Create(context.Background(), "TACO", pngUpload("taco.png", 1024))
	if err != nil {
		t.Fatalf("failed to create partner: %v", err)
	}

	store.failDeletes = true
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete must succeed even when storage cleanup fails: %v", err)
	}

	partners, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list partners: %v", err)
	}
	if len(partners) != 0 {
		t.Errorf("expected no partners after delete, got %d", len(partners))
	}
}

func TestPartnerMutationsInvalidateCache(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPartnerService(gdb, newFakeStorage(), cache.NewStore())

	if partners, err := svc.List(); err != nil || len(partners) != 0 {
		t.Fatalf("expected empty initial list, got %d (%v)", len(partners), err)
	}

	if _, err := svc.Create(context.Background(), "TACO", pngUpload("taco.png", 1024)); err != nil {
		t.Fatalf("failed to create partner: %v", err)
	}

	partners, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list partners: %v", err)
	}
	if len(partners) != 1 {
		t.Errorf("list should observe the new partner, got %d entries", len(partners))
	}
}
