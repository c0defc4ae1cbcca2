package app

import (
	"context"
	"fmt"

	"kathmandu_guide/internal/domain"
)

// SeedService drives the idempotent upsert-by-slug load. Parents upsert
// in place; owned children (rooms, policy, FAQs) are replaced wholesale
// by the repo. Every successful write evicts the affected cache keys so
// reads never serve a pre-reseed snapshot.
type SeedService struct {
	repo  domain.GuideRepository
	cache domain.Cache
}

func NewSeedService(r domain.GuideRepository, cache domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: cache}
}

// SeedReference loads areas, tags and amenities. Reference data must land
// before entities so weak area references and tag joins resolve.
func (s *SeedService) SeedReference(ctx context.Context, areas []domain.Area, tags []domain.Tag, amenities []domain.Amenity) error {
	for _, a := range areas {
		if err := s.repo.UpsertArea(ctx, a); err != nil {
			return fmt.Errorf("upsert area %s: %w", a.Slug, err)
		}
		s.invalidate(ctx, "area:"+a.Slug)
	}
	for _, t := range tags {
		if err := s.repo.UpsertTag(ctx, t); err != nil {
			return fmt.Errorf("upsert tag %s: %w", t.Slug, err)
		}
		s.invalidate(ctx, "tag:"+t.Slug)
	}
	for _, am := range amenities {
		if err := s.repo.UpsertAmenity(ctx, am); err != nil {
			return fmt.Errorf("upsert amenity %s: %w", am.Slug, err)
		}
	}
	return nil
}

func (s *SeedService) SeedHotel(ctx context.Context, h domain.Hotel) error {
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("upsert hotel %s: %w", h.Slug, err)
	}
	s.invalidate(ctx, "hotel:"+h.Slug, mapSnapshotKey)
	return nil
}

func (s *SeedService) SeedListing(ctx context.Context, l domain.Listing) error {
	if err := s.repo.UpsertListing(ctx, l); err != nil {
		return fmt.Errorf("upsert listing %s: %w", l.Slug, err)
	}
	s.invalidate(ctx, "listing:"+l.Slug, mapSnapshotKey)
	return nil
}

func (s *SeedService) SeedRestaurant(ctx context.Context, r domain.Restaurant) error {
	if err := s.repo.UpsertRestaurant(ctx, r); err != nil {
		return fmt.Errorf("upsert restaurant %s: %w", r.Slug, err)
	}
	s.invalidate(ctx, "restaurant:"+r.Slug, mapSnapshotKey)
	return nil
}

func (s *SeedService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	for _, k := range keys {
		_ = s.cache.Del(ctx, k)
	}
}
