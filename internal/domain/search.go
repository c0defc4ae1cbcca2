package domain

// Search result items carry the minimum an autocomplete row needs:
// slug, display name, the category-specific subtype, and the area name.

type SearchHotel struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Stars    *int    `json:"stars"`
	AreaName *string `json:"areaName"`
}

type SearchListing struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	ListingType string  `json:"listingType"`
	AreaName    *string `json:"areaName"`
}

type SearchRestaurant struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	PriceTier *string `json:"priceTier"`
	AreaName  *string `json:"areaName"`
}

// SearchResult is ephemeral; arrays are always non-nil so the JSON
// contract stays `[]`, never `null`.
type SearchResult struct {
	Hotels      []SearchHotel      `json:"hotels"`
	Attractions []SearchListing    `json:"attractions"`
	Restaurants []SearchRestaurant `json:"restaurants"`
}

func EmptySearchResult() SearchResult {
	return SearchResult{
		Hotels:      []SearchHotel{},
		Attractions: []SearchListing{},
		Restaurants: []SearchRestaurant{},
	}
}
