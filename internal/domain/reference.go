package domain

// Status gates every read path: only PUBLISHED rows are ever served.
type Status string

const (
	StatusPublished Status = "PUBLISHED"
	StatusDraft     Status = "DRAFT"
	StatusArchived  Status = "ARCHIVED"
)

// Area is reference data: written only by the seeder, weakly referenced
// by entities (deleting an area never cascades to its entities).
type Area struct {
	Slug        string
	Name        string
	NameLocal   *string
	Description *string
	Lat, Lon    *float64
	Featured    bool
	SortOrder   int
}

// Tag categories: Experience | Vibe | Type | Traveller | Season.
type Tag struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Color     *string `json:"color"`
	SortOrder int     `json:"sortOrder"`
}

type Amenity struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	Icon      *string `json:"icon"`
	SortOrder int     `json:"sortOrder"`
}
