package app

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"kathmandu_guide/internal/domain"
)

// Per-category result caps for the autocomplete payload.
const (
	maxSearchHotels      = 5
	maxSearchAttractions = 8
	maxSearchRestaurants = 5

	minQueryLen = 2
)

type SearchService struct {
	repo domain.GuideRepository
}

func NewSearchService(r domain.GuideRepository) *SearchService {
	return &SearchService{repo: r}
}

// ShortQuery reports whether raw trims below the minimum search length.
func ShortQuery(raw string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(raw)) < minQueryLen
}

// Search returns a bounded, ranked, cross-category result set for an
// autocomplete UI. Queries under two characters (after trimming) return
// the empty result without touching the store.
func (s *SearchService) Search(ctx context.Context, raw string) (domain.SearchResult, error) {
	if ShortQuery(raw) {
		return domain.EmptySearchResult(), nil
	}
	q := strings.TrimSpace(raw)

	out := domain.EmptySearchResult()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hs, err := s.repo.SearchHotels(gctx, q, maxSearchHotels)
		if err != nil {
			return err
		}
		if hs != nil {
			out.Hotels = hs
		}
		return nil
	})
	g.Go(func() error {
		ls, err := s.repo.SearchListings(gctx, q, maxSearchAttractions)
		if err != nil {
			return err
		}
		if ls != nil {
			out.Attractions = ls
		}
		return nil
	})
	g.Go(func() error {
		rs, err := s.repo.SearchRestaurants(gctx, q, maxSearchRestaurants)
		if err != nil {
			return err
		}
		if rs != nil {
			out.Restaurants = rs
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.SearchResult{}, err
	}
	return out, nil
}
