package domain

type PinKind string

const (
	PinHotel      PinKind = "hotel"
	PinAttraction PinKind = "attraction"
	PinRestaurant PinKind = "restaurant"
)

// MapPin is the map projection of an entity. Only entities with both
// coordinates present are ever turned into pins.
type MapPin struct {
	ID       string  `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Kind     PinKind `json:"kind"`
	Subtype  string  `json:"subtype,omitempty"`
	Tagline  *string `json:"tagline"`
	AreaName *string `json:"areaName"`
}

// Cluster is a collapsed geohash grid cell of two or more pins.
type Cluster struct {
	Cell  string  `json:"cell"`
	Count int     `json:"count"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Geo rows are the repo-level sources for pin construction: one row per
// published entity with non-null coordinates.

type GeoHotel struct {
	ID       int64
	Slug     string
	Name     string
	Lat, Lon float64
	Stars    *int
	Tagline  *string
	AreaName *string
}

type GeoListing struct {
	ID          int64
	Slug        string
	Name        string
	Lat, Lon    float64
	ListingType string
	Tagline     *string
	AreaName    *string
}

type GeoRestaurant struct {
	ID        int64
	Slug      string
	Name      string
	Lat, Lon  float64
	PriceTier *string
	Tagline   *string
	AreaName  *string
}
