package domain

// Listing types mirror the seed taxonomy. Bars and nightlife venues are
// listings too; the nightlife surface is a type filter, not its own table.
const (
	ListingTemple       = "TEMPLE"
	ListingStupa        = "STUPA"
	ListingMonastery    = "MONASTERY"
	ListingPalace       = "PALACE"
	ListingMuseum       = "MUSEUM"
	ListingPark         = "PARK"
	ListingMarket       = "MARKET"
	ListingViewpoint    = "VIEWPOINT"
	ListingHistoricSite = "HISTORIC_SITE"
	ListingNaturalSite  = "NATURAL_SITE"
	ListingCulturalSite = "CULTURAL_SITE"
	ListingBar          = "BAR"
	ListingRooftopBar   = "ROOFTOP_BAR"
	ListingNightlife    = "NIGHTLIFE"
)

type Listing struct {
	Slug               string
	Name               string
	NameLocal          *string
	ListingType        string
	AreaSlug           *string
	Tagline            *string
	DescriptionShort   *string
	Description        *string
	CoverImageURL      *string
	Lat, Lon           *float64
	IsFree             *bool
	AdmissionForeigner *string
	OurScore           *float64
	Featured           bool
	Status             Status
	TagSlugs           []string
	FAQs               []FAQ
}
