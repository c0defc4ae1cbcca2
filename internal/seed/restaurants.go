package seed

import "kathmandu_guide/internal/domain"

func Restaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			Slug: "krishnarpan", Name: "Krishnarpan",
			AreaSlug: str("lazimpat"), PriceTier: str("LUXURY"),
			Cuisines: []string{"NEPALI"}, PricePerPersonMin: num(45), PricePerPersonMax: num(120),
			Tagline:          str("Ceremonial Nepali dining, six to twenty-two courses"),
			DescriptionShort: str("Dwarika's slow-dining restaurant serving set menus from across Nepal's regions on brassware."),
			Lat:              f64(27.7086), Lon: f64(85.3398),
			OpeningHoursJSON: []byte(`{"daily":"18:30-22:00","note":"reservation required"}`),
			GoogleRating:     f64(4.8), OurScore: f64(9.6),
			Featured: true, EditorPick: true, Verified: true, Status: domain.StatusPublished,
			TagSlugs: []string{"luxury", "romantic", "food-and-drink"},
		},
		{
			Slug: "bhojan-griha", Name: "Bhojan Griha",
			AreaSlug: str("thamel"), PriceTier: str("UPSCALE"),
			Cuisines: []string{"NEPALI", "NEWARI"}, PricePerPersonMin: num(22), PricePerPersonMax: num(35),
			Tagline:          str("Dinner and cultural dance in a restored 150-year-old mansion"),
			DescriptionShort: str("Set Newari feasts with folk performances in the former residence of a royal priest."),
			Lat:              f64(27.7101), Lon: f64(85.3182),
			OpeningHoursJSON: []byte(`{"daily":"11:00-14:30,18:00-21:30"}`),
			GoogleRating:     f64(4.5), OurScore: f64(9.1),
			Featured: true, EditorPick: true, Verified: true, Status: domain.StatusPublished,
			TagSlugs: []string{"cultural", "food-and-drink", "heritage-property"},
		},
		{
			Slug: "1905-patan", Name: "1905",
			AreaSlug: str("patan"), PriceTier: str("UPSCALE"),
			Cuisines: []string{"INTERNATIONAL", "NEPALI"}, PricePerPersonMin: num(15), PricePerPersonMax: num(30),
			Tagline:          str("Farm-to-table dining in a heritage garden compound"),
			DescriptionShort: str("A kitchen built around its own organic farm, with a Saturday farmers' market."),
			Lat:              f64(27.6727), Lon: f64(85.3247),
			OpeningHoursJSON: []byte(`{"tue-sun":"09:00-21:00","mon":"closed"}`),
			GoogleRating:     f64(4.6), OurScore: f64(9.2),
			Featured: true, EditorPick: true, Verified: true, Status: domain.StatusPublished,
			TagSlugs: []string{"hidden-gem", "food-and-drink", "quiet-and-peaceful"},
		},
		{
			Slug: "garden-of-dreams-cafe", Name: "Kaiser Cafe — Garden of Dreams",
			AreaSlug: str("thamel"), PriceTier: str("MID_RANGE"),
			Cuisines: []string{"CONTINENTAL", "NEPALI"}, PricePerPersonMin: num(10), PricePerPersonMax: num(22),
			Tagline: str("Lunch among the fountains of the Garden of Dreams"),
			Lat:     f64(27.7133), Lon: f64(85.3146),
			OpeningHoursJSON: []byte(`{"daily":"09:00-21:00"}`),
			GoogleRating:     f64(4.3), OurScore: f64(8.7),
			EditorPick: true, Verified: true, Status: domain.StatusPublished,
			TagSlugs: []string{"romantic", "quiet-and-peaceful"},
		},
		{
			Slug: "or2k", Name: "OR2K",
			AreaSlug: str("thamel"), PriceTier: str("MID_RANGE"),
			Cuisines: []string{"MIDDLE_EASTERN", "VEGETARIAN"}, PricePerPersonMin: num(7), PricePerPersonMax: num(15),
			Tagline:          str("Floor cushions, mezze and blacklight murals"),
			DescriptionShort: str("Thamel's long-running vegetarian hangout; hummus plates and fresh juices until late."),
			Lat:              f64(27.7138), Lon: f64(85.3119),
			OpeningHoursJSON: []byte(`{"daily":"08:00-22:30"}`),
			GoogleRating:     f64(4.4), OurScore: f64(8.4),
			Verified: true, Status: domain.StatusPublished,
			TagSlugs: []string{"backpacker", "budget-friendly", "local-favourite"},
		},
		{
			Slug: "rosemary-kitchen", Name: "Rosemary Kitchen & Coffee Shop",
			AreaSlug: str("thamel"), PriceTier: str("MID_RANGE"),
			Cuisines: []string{"NEPALI", "CONTINENTAL", "BAKERY"}, PricePerPersonMin: num(5), PricePerPersonMax: num(14),
			Tagline: str("A garden courtyard hidden off the main drag"),
			Lat:     f64(27.7173), Lon: f64(85.3108),
			OpeningHoursJSON: []byte(`{"daily":"07:00-22:00"}`),
			GoogleRating:     f64(4.5), OurScore: f64(8.6),
			EditorPick: true, Verified: true, Status: domain.StatusPublished,
			TagSlugs: []string{"hidden-gem", "budget-friendly"},
		},
	}
}
