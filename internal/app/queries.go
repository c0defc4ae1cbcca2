package app

import (
	"context"
	"time"

	"kathmandu_guide/internal/domain"
)

type QueryService struct {
	repo     domain.GuideRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.GuideRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetHotel(ctx context.Context, slug string) (domain.HotelView, error) {
	key := "hotel:" + slug
	var hv domain.HotelView
	if ok, _ := s.cache.Get(ctx, key, &hv); ok {
		return hv, nil
	}
	hv, err := s.repo.GetHotel(ctx, slug)
	if err != nil {
		return domain.HotelView{}, err
	}
	if hv.CoverImageURL == "" {
		hv.CoverImageURL = PlaceholderImage(domain.PinHotel, "")
	}
	_ = s.cache.Set(ctx, key, hv, int(s.cacheTTL.Seconds()))
	return hv, nil
}

func (s *QueryService) GetAttraction(ctx context.Context, slug string) (domain.ListingView, error) {
	key := "listing:" + slug
	var lv domain.ListingView
	if ok, _ := s.cache.Get(ctx, key, &lv); ok {
		return lv, nil
	}
	lv, err := s.repo.GetListing(ctx, slug)
	if err != nil {
		return domain.ListingView{}, err
	}
	if lv.CoverImageURL == "" {
		lv.CoverImageURL = PlaceholderImage(domain.PinAttraction, lv.ListingType)
	}
	_ = s.cache.Set(ctx, key, lv, int(s.cacheTTL.Seconds()))
	return lv, nil
}

func (s *QueryService) GetRestaurant(ctx context.Context, slug string) (domain.RestaurantView, error) {
	key := "restaurant:" + slug
	var rv domain.RestaurantView
	if ok, _ := s.cache.Get(ctx, key, &rv); ok {
		return rv, nil
	}
	rv, err := s.repo.GetRestaurant(ctx, slug)
	if err != nil {
		return domain.RestaurantView{}, err
	}
	if rv.CoverImageURL == "" {
		rv.CoverImageURL = PlaceholderImage(domain.PinRestaurant, "")
	}
	_ = s.cache.Set(ctx, key, rv, int(s.cacheTTL.Seconds()))
	return rv, nil
}

func (s *QueryService) GetArea(ctx context.Context, slug string) (domain.AreaView, error) {
	key := "area:" + slug
	var av domain.AreaView
	if ok, _ := s.cache.Get(ctx, key, &av); ok {
		return av, nil
	}
	av, err := s.repo.GetArea(ctx, slug)
	if err != nil {
		return domain.AreaView{}, err
	}
	s.fillCardCovers(av.Hotels, av.Attractions, av.Restaurants)
	_ = s.cache.Set(ctx, key, av, int(s.cacheTTL.Seconds()))
	return av, nil
}

func (s *QueryService) GetTag(ctx context.Context, slug string) (domain.TagView, error) {
	key := "tag:" + slug
	var tv domain.TagView
	if ok, _ := s.cache.Get(ctx, key, &tv); ok {
		return tv, nil
	}
	tv, err := s.repo.GetTag(ctx, slug)
	if err != nil {
		return domain.TagView{}, err
	}
	s.fillCardCovers(tv.Hotels, tv.Attractions, nil)
	_ = s.cache.Set(ctx, key, tv, int(s.cacheTTL.Seconds()))
	return tv, nil
}

// List reads hit the store directly: the working set is a few hundred
// rows and list pages change with query params.

func (s *QueryService) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.HotelCard, error) {
	cards, err := s.repo.ListHotels(ctx, q)
	if err != nil {
		return nil, err
	}
	s.fillCardCovers(cards, nil, nil)
	return cards, nil
}

func (s *QueryService) ListAttractions(ctx context.Context, q domain.ListingsQuery) ([]domain.ListingCard, error) {
	cards, err := s.repo.ListListings(ctx, q)
	if err != nil {
		return nil, err
	}
	s.fillCardCovers(nil, cards, nil)
	return cards, nil
}

// Nightlife is the bar/rooftop/nightclub slice of listings.
func (s *QueryService) Nightlife(ctx context.Context, areaSlug *string) ([]domain.ListingCard, error) {
	return s.ListAttractions(ctx, domain.ListingsQuery{
		AreaSlug: areaSlug,
		Types:    []string{domain.ListingBar, domain.ListingRooftopBar, domain.ListingNightlife},
	})
}

func (s *QueryService) ListRestaurants(ctx context.Context, q domain.RestaurantsQuery) ([]domain.RestaurantCard, error) {
	cards, err := s.repo.ListRestaurants(ctx, q)
	if err != nil {
		return nil, err
	}
	s.fillCardCovers(nil, nil, cards)
	return cards, nil
}

func (s *QueryService) ListAreas(ctx context.Context) ([]domain.AreaCard, error) {
	return s.repo.ListAreas(ctx)
}

func (s *QueryService) fillCardCovers(hs []domain.HotelCard, ls []domain.ListingCard, rs []domain.RestaurantCard) {
	for i := range hs {
		if hs[i].CoverImageURL == "" {
			hs[i].CoverImageURL = PlaceholderImage(domain.PinHotel, "")
		}
	}
	for i := range ls {
		if ls[i].CoverImageURL == "" {
			ls[i].CoverImageURL = PlaceholderImage(domain.PinAttraction, ls[i].ListingType)
		}
	}
	for i := range rs {
		if rs[i].CoverImageURL == "" {
			rs[i].CoverImageURL = PlaceholderImage(domain.PinRestaurant, "")
		}
	}
}
