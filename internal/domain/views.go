package domain

// Read models & queries

type HotelView struct {
	Slug             string     `json:"slug"`
	Name             string     `json:"name"`
	Stars            *int       `json:"stars"`
	PriceTier        *string    `json:"priceTier"`
	PriceFromUSD     *int       `json:"priceFromUsd"`
	Tagline          *string    `json:"tagline"`
	DescriptionShort *string    `json:"descriptionShort"`
	Description      *string    `json:"description"`
	CoverImageURL    string     `json:"coverImageUrl"`
	Coords           *Coords    `json:"coords"`
	TotalRooms       *int       `json:"totalRooms"`
	YearBuilt        *int       `json:"yearBuilt"`
	OurScore         *float64   `json:"ourScore"`
	Featured         bool       `json:"featured"`
	WebsiteURL       *string    `json:"websiteUrl"`
	AreaName         *string    `json:"areaName"`
	AreaSlug         *string    `json:"areaSlug"`
	Amenities        []Amenity  `json:"amenities"`
	Tags             []Tag      `json:"tags"`
	Rooms            []RoomType `json:"rooms"`
	Policy           *Policy    `json:"policy"`
	FAQs             []FAQ      `json:"faqs"`
}

type ListingView struct {
	Slug               string   `json:"slug"`
	Name               string   `json:"name"`
	NameLocal          *string  `json:"nameLocal"`
	ListingType        string   `json:"listingType"`
	Tagline            *string  `json:"tagline"`
	DescriptionShort   *string  `json:"descriptionShort"`
	Description        *string  `json:"description"`
	CoverImageURL      string   `json:"coverImageUrl"`
	Coords             *Coords  `json:"coords"`
	IsFree             *bool    `json:"isFree"`
	AdmissionForeigner *string  `json:"admissionForeigner"`
	OurScore           *float64 `json:"ourScore"`
	Featured           bool     `json:"featured"`
	AreaName           *string  `json:"areaName"`
	AreaSlug           *string  `json:"areaSlug"`
	Tags               []Tag    `json:"tags"`
	FAQs               []FAQ    `json:"faqs"`
}

type RestaurantView struct {
	Slug              string   `json:"slug"`
	Name              string   `json:"name"`
	PriceTier         *string  `json:"priceTier"`
	Cuisines          []string `json:"cuisines"`
	PricePerPersonMin *int     `json:"pricePerPersonMin"`
	PricePerPersonMax *int     `json:"pricePerPersonMax"`
	Tagline           *string  `json:"tagline"`
	DescriptionShort  *string  `json:"descriptionShort"`
	Description       *string  `json:"description"`
	CoverImageURL     string   `json:"coverImageUrl"`
	Coords            *Coords  `json:"coords"`
	OpeningHours      []byte   `json:"-"`
	GoogleRating      *float64 `json:"googleRating"`
	OurScore          *float64 `json:"ourScore"`
	Featured          bool     `json:"featured"`
	EditorPick        bool     `json:"editorPick"`
	AreaName          *string  `json:"areaName"`
	AreaSlug          *string  `json:"areaSlug"`
	Tags              []Tag    `json:"tags"`
}

type AreaView struct {
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	NameLocal   *string          `json:"nameLocal"`
	Description *string          `json:"description"`
	Coords      *Coords          `json:"coords"`
	Hotels      []HotelCard      `json:"hotels"`
	Attractions []ListingCard    `json:"attractions"`
	Restaurants []RestaurantCard `json:"restaurants"`
}

type TagView struct {
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Hotels      []HotelCard   `json:"hotels"`
	Attractions []ListingCard `json:"attractions"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Cards are the list-page projections.

type HotelCard struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Stars         *int     `json:"stars"`
	PriceTier     *string  `json:"priceTier"`
	PriceFromUSD  *int     `json:"priceFromUsd"`
	Tagline       *string  `json:"tagline"`
	CoverImageURL string   `json:"coverImageUrl"`
	OurScore      *float64 `json:"ourScore"`
	Featured      bool     `json:"featured"`
	AreaName      *string  `json:"areaName"`
}

type ListingCard struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	ListingType   string   `json:"listingType"`
	Tagline       *string  `json:"tagline"`
	CoverImageURL string   `json:"coverImageUrl"`
	OurScore      *float64 `json:"ourScore"`
	Featured      bool     `json:"featured"`
	AreaName      *string  `json:"areaName"`
}

type RestaurantCard struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	PriceTier     *string  `json:"priceTier"`
	Cuisines      []string `json:"cuisines"`
	Tagline       *string  `json:"tagline"`
	CoverImageURL string   `json:"coverImageUrl"`
	OurScore      *float64 `json:"ourScore"`
	Featured      bool     `json:"featured"`
	EditorPick    bool     `json:"editorPick"`
	AreaName      *string  `json:"areaName"`
}

type AreaCard struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	NameLocal *string `json:"nameLocal"`
	Featured  bool    `json:"featured"`
	Coords    *Coords `json:"coords"`
}

type HotelsQuery struct {
	AreaSlug *string
	Stars    *int
	Limit    int
}

type ListingsQuery struct {
	AreaSlug *string
	Types    []string
	Limit    int
}

type RestaurantsQuery struct {
	AreaSlug *string
	Limit    int
}
