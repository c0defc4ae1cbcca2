package domain

import (
	"context"
	"errors"
)

// ErrNotFound is the single not-found sentinel; the HTTP edge maps it to 404.
var ErrNotFound = errors.New("not found")

type GuideRepository interface {
	// Seed writes (upsert-by-slug; owned children are replaced wholesale)
	UpsertArea(ctx context.Context, a Area) error
	UpsertTag(ctx context.Context, t Tag) error
	UpsertAmenity(ctx context.Context, am Amenity) error
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertListing(ctx context.Context, l Listing) error
	UpsertRestaurant(ctx context.Context, r Restaurant) error

	// Detail reads (published only)
	GetHotel(ctx context.Context, slug string) (HotelView, error)
	GetListing(ctx context.Context, slug string) (ListingView, error)
	GetRestaurant(ctx context.Context, slug string) (RestaurantView, error)
	GetArea(ctx context.Context, slug string) (AreaView, error)
	GetTag(ctx context.Context, slug string) (TagView, error)

	// List reads (published only, featured desc / score desc / id asc)
	ListHotels(ctx context.Context, q HotelsQuery) ([]HotelCard, error)
	ListListings(ctx context.Context, q ListingsQuery) ([]ListingCard, error)
	ListRestaurants(ctx context.Context, q RestaurantsQuery) ([]RestaurantCard, error)
	ListAreas(ctx context.Context) ([]AreaCard, error)

	// Search: case-insensitive substring over name OR tagline OR area name
	SearchHotels(ctx context.Context, q string, limit int) ([]SearchHotel, error)
	SearchListings(ctx context.Context, q string, limit int) ([]SearchListing, error)
	SearchRestaurants(ctx context.Context, q string, limit int) ([]SearchRestaurant, error)

	// Map sources: published entities with both coordinates present
	GeoHotels(ctx context.Context) ([]GeoHotel, error)
	GeoListings(ctx context.Context) ([]GeoListing, error)
	GeoRestaurants(ctx context.Context) ([]GeoRestaurant, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
