package domain

type Restaurant struct {
	Slug              string
	Name              string
	AreaSlug          *string
	PriceTier         *string
	Cuisines          []string
	PricePerPersonMin *int
	PricePerPersonMax *int
	Tagline           *string
	DescriptionShort  *string
	Description       *string
	CoverImageURL     *string
	Lat, Lon          *float64
	OpeningHoursJSON  []byte // authored schedule blob, served as-is
	GoogleRating      *float64
	OurScore          *float64
	Featured          bool
	EditorPick        bool
	Verified          bool
	Status            Status
	TagSlugs          []string
	FAQs              []FAQ
}
