package app_test

import (
	"context"
	"testing"
	"time"

	"kathmandu_guide/internal/app"
	"kathmandu_guide/internal/domain"
)

func TestSeedHotel_EvictsDetailAndMapKeys(t *testing.T) {
	cache := &fakeCache{store: map[string][]byte{}}
	svc := app.NewSeedService(&fakeRepo{}, cache)

	h := domain.Hotel{Slug: "dwarikas-hotel", Name: "Dwarika's Hotel", Status: domain.StatusPublished}
	if err := svc.SeedHotel(context.Background(), h); err != nil {
		t.Fatalf("err: %v", err)
	}

	want := map[string]bool{"hotel:dwarikas-hotel": true, "map:pins": true}
	if len(cache.dels) != 2 {
		t.Fatalf("expected 2 evictions, got %v", cache.dels)
	}
	for _, k := range cache.dels {
		if !want[k] {
			t.Fatalf("unexpected eviction %q", k)
		}
	}
}

func TestSeedListing_EvictsMapSnapshot(t *testing.T) {
	cache := &fakeCache{}
	svc := app.NewSeedService(&fakeRepo{}, cache)

	l := domain.Listing{Slug: "boudhanath-stupa", Name: "Boudhanath Stupa", ListingType: "STUPA", Status: domain.StatusPublished}
	if err := svc.SeedListing(context.Background(), l); err != nil {
		t.Fatalf("err: %v", err)
	}

	found := false
	for _, k := range cache.dels {
		if k == "map:pins" {
			found = true
		}
	}
	if !found {
		t.Fatalf("map snapshot not evicted: %v", cache.dels)
	}
}

func TestSeedThenRead_NoStaleCache(t *testing.T) {
	repo := &fakeRepo{hv: domain.HotelView{Slug: "dwarikas-hotel", Name: "Old Name", CoverImageURL: "/img/x.jpg"}}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	s := app.NewSeedService(repo, cache)
	ctx := context.Background()

	if _, err := q.GetHotel(ctx, "dwarikas-hotel"); err != nil {
		t.Fatalf("prime: %v", err)
	}

	repo.hv.Name = "New Name"
	if err := s.SeedHotel(ctx, domain.Hotel{Slug: "dwarikas-hotel", Name: "New Name", Status: domain.StatusPublished}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	h, err := q.GetHotel(ctx, "dwarikas-hotel")
	if err != nil {
		t.Fatalf("read after seed: %v", err)
	}
	if h.Name != "New Name" {
		t.Fatalf("served stale cache entry: %+v", h)
	}
}
