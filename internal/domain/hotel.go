package domain

type Hotel struct {
	Slug             string
	Name             string
	AreaSlug         *string
	Stars            *int
	PriceTier        *string
	PriceFromUSD     *int
	Tagline          *string
	DescriptionShort *string
	Description      *string
	CoverImageURL    *string
	Lat, Lon         *float64
	TotalRooms       *int
	YearBuilt        *int
	OurScore         *float64
	Featured         bool
	Status           Status
	WebsiteURL       *string
	AmenitySlugs     []string
	TagSlugs         []string
	Rooms            []RoomType
	Policy           *Policy
	FAQs             []FAQ
}

// RoomType rows are owned children: replaced wholesale on reseed.
type RoomType struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	MaxOccupancy int     `json:"maxOccupancy"`
	BedType      *string `json:"bedType"`
	SizeM2       *int    `json:"sizeM2"`
	PriceFromUSD *int    `json:"priceFromUsd"`
}

type Policy struct {
	CheckinFrom        *string `json:"checkinFrom"`
	CheckoutUntil      *string `json:"checkoutUntil"`
	CancellationHours  *int    `json:"cancellationHours"`
	CancellationPolicy *string `json:"cancellationPolicy"`
	BreakfastIncluded  bool    `json:"breakfastIncluded"`
	ParkingAvailable   bool    `json:"parkingAvailable"`
	PetsAllowed        bool    `json:"petsAllowed"`
}

type FAQ struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sortOrder"`
}
