package cache

import (
	"errors"
	"testing"
)

func TestFetchCachesUntilInvalidated(t *testing.T) {
	store := NewStore()
	loads := 0
	load := func() ([]string, error) {
		loads++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		items, err := Fetch(store, KeyPartners, load)
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	}
	if loads != 1 {
		t.Fatalf("expected a single load, got %d", loads)
	}

	store.Invalidate(KeyPartners)
	if _, err := Fetch(store, KeyPartners, load); err != nil {
		t.Fatalf("fetch after invalidate failed: %v", err)
	}
	if loads != 2 {
		t.Fatalf("expected reload after invalidate, got %d loads", loads)
	}
}

func TestFetchKeysAreIndependent(t *testing.T) {
	store := NewStore()

	if _, err := Fetch(store, KeyPartners, func() (int, error) { return 1, nil }); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	store.Invalidate(KeyQuickLinks)

	loads := 0
	if _, err := Fetch(store, KeyPartners, func() (int, error) { loads++; return 2, nil }); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if loads != 0 {
		t.Fatal("invalidating one key must not evict another")
	}
}

func TestFetchErrorIsNotCached(t *testing.T) {
	store := NewStore()
	calls := 0
	boom := errors.New("db down")

	load := func() ([]int, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return []int{7}, nil
	}

	if _, err := Fetch(store, KeyHeroSlides, load); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	items, err := Fetch(store, KeyHeroSlides, load)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if len(items) != 1 || items[0] != 7 {
		t.Fatalf("unexpected items %v", items)
	}
}
