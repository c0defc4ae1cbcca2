package app_test

import (
	"context"
	"encoding/json"
	"errors"

	"kathmandu_guide/internal/domain"
)

// ---- fakes ----

type searchCall struct {
	q     string
	limit int
}

type fakeRepo struct {
	hv domain.HotelView
	lv domain.ListingView
	rv domain.RestaurantView

	searchHotels      []domain.SearchHotel
	searchListings    []domain.SearchListing
	searchRestaurants []domain.SearchRestaurant
	searchErr         error
	searchCalls       []searchCall

	geoHotels      []domain.GeoHotel
	geoListings    []domain.GeoListing
	geoRestaurants []domain.GeoRestaurant
	geoCalls       int

	lastListingsQuery domain.ListingsQuery
	listingCards      []domain.ListingCard
}

func (f *fakeRepo) UpsertArea(ctx context.Context, a domain.Area) error             { return nil }
func (f *fakeRepo) UpsertTag(ctx context.Context, t domain.Tag) error               { return nil }
func (f *fakeRepo) UpsertAmenity(ctx context.Context, am domain.Amenity) error      { return nil }
func (f *fakeRepo) UpsertHotel(ctx context.Context, h domain.Hotel) error           { return nil }
func (f *fakeRepo) UpsertListing(ctx context.Context, l domain.Listing) error       { return nil }
func (f *fakeRepo) UpsertRestaurant(ctx context.Context, r domain.Restaurant) error { return nil }

func (f *fakeRepo) GetHotel(ctx context.Context, slug string) (domain.HotelView, error) {
	if f.hv.Slug != slug {
		return domain.HotelView{}, domain.ErrNotFound
	}
	return f.hv, nil
}
func (f *fakeRepo) GetListing(ctx context.Context, slug string) (domain.ListingView, error) {
	if f.lv.Slug != slug {
		return domain.ListingView{}, domain.ErrNotFound
	}
	return f.lv, nil
}
func (f *fakeRepo) GetRestaurant(ctx context.Context, slug string) (domain.RestaurantView, error) {
	if f.rv.Slug != slug {
		return domain.RestaurantView{}, domain.ErrNotFound
	}
	return f.rv, nil
}
func (f *fakeRepo) GetArea(ctx context.Context, slug string) (domain.AreaView, error) {
	return domain.AreaView{}, domain.ErrNotFound
}
func (f *fakeRepo) GetTag(ctx context.Context, slug string) (domain.TagView, error) {
	return domain.TagView{}, domain.ErrNotFound
}

func (f *fakeRepo) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.HotelCard, error) {
	return nil, nil
}
func (f *fakeRepo) ListListings(ctx context.Context, q domain.ListingsQuery) ([]domain.ListingCard, error) {
	f.lastListingsQuery = q
	return f.listingCards, nil
}
func (f *fakeRepo) ListRestaurants(ctx context.Context, q domain.RestaurantsQuery) ([]domain.RestaurantCard, error) {
	return nil, nil
}
func (f *fakeRepo) ListAreas(ctx context.Context) ([]domain.AreaCard, error) { return nil, nil }

func (f *fakeRepo) SearchHotels(ctx context.Context, q string, limit int) ([]domain.SearchHotel, error) {
	f.searchCalls = append(f.searchCalls, searchCall{q, limit})
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchHotels, nil
}
func (f *fakeRepo) SearchListings(ctx context.Context, q string, limit int) ([]domain.SearchListing, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchListings, nil
}
func (f *fakeRepo) SearchRestaurants(ctx context.Context, q string, limit int) ([]domain.SearchRestaurant, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchRestaurants, nil
}

func (f *fakeRepo) GeoHotels(ctx context.Context) ([]domain.GeoHotel, error) {
	f.geoCalls++
	return f.geoHotels, nil
}
func (f *fakeRepo) GeoListings(ctx context.Context) ([]domain.GeoListing, error) {
	return f.geoListings, nil
}
func (f *fakeRepo) GeoRestaurants(ctx context.Context) ([]domain.GeoRestaurant, error) {
	return f.geoRestaurants, nil
}

var errBoom = errors.New("boom")

// fakeCache round-trips values through JSON so any view type works.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// ---- tiny helpers ----

func ptr[T any](v T) *T { return &v }
func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
