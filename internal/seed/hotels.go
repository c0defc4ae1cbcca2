package seed

import "kathmandu_guide/internal/domain"

func Hotels() []domain.Hotel {
	return []domain.Hotel{
		{
			Slug: "dwarikas-hotel", Name: "Dwarika's Hotel",
			AreaSlug: str("lazimpat"), Stars: num(5), PriceTier: str("LUXURY"), PriceFromUSD: num(350),
			Tagline:          str("A living museum of Newari art and architecture"),
			DescriptionShort: str("Handcrafted heritage rooms built around centuries-old carved windows, with courtyard dining and a renowned Nepali restaurant."),
			Lat:              f64(27.7183), Lon: f64(85.3221),
			TotalRooms: num(80), YearBuilt: num(1977), OurScore: f64(9.4),
			Featured: true, Status: domain.StatusPublished,
			WebsiteURL:   str("https://www.dwarikas.com"),
			AmenitySlugs: []string{"wifi-free", "24h-reception", "restaurant", "bar", "spa", "airport-transfer", "concierge", "room-service"},
			TagSlugs:     []string{"luxury", "romantic", "heritage-property", "cultural"},
			Rooms: []domain.RoomType{
				{Name: "Heritage Deluxe", Description: str("Hand-carved woodwork, terracotta floors and a garden view."), MaxOccupancy: 2, BedType: str("King"), SizeM2: num(42), PriceFromUSD: num(350)},
				{Name: "Junior Suite", Description: str("A sitting alcove beneath original carved windows."), MaxOccupancy: 3, BedType: str("King"), SizeM2: num(60), PriceFromUSD: num(480)},
				{Name: "Royal Suite", MaxOccupancy: 4, BedType: str("King + Sofa bed"), SizeM2: num(110), PriceFromUSD: num(900)},
			},
			Policy: &domain.Policy{
				CheckinFrom: str("14:00"), CheckoutUntil: str("12:00"),
				CancellationHours:  num(48),
				CancellationPolicy: str("Free cancellation until 48 hours before arrival."),
				BreakfastIncluded:  true, ParkingAvailable: true,
			},
			FAQs: []domain.FAQ{
				{Question: "Is airport pickup included?", Answer: "Complimentary airport transfer is included for suite bookings; others can arrange it at the desk.", SortOrder: 1},
				{Question: "Does the hotel have a pool?", Answer: "Yes, a carved-stone pool inspired by the valley's traditional royal baths.", SortOrder: 2},
			},
		},
		{
			Slug: "hyatt-regency-kathmandu", Name: "Hyatt Regency Kathmandu",
			AreaSlug: str("boudhanath"), Stars: num(5), PriceTier: str("LUXURY"), PriceFromUSD: num(180),
			Tagline:          str("Resort-style grounds minutes from the Boudhanath stupa"),
			DescriptionShort: str("37 landscaped acres with pools, tennis courts and views of the great stupa."),
			Lat:              f64(27.7219), Lon: f64(85.3622),
			TotalRooms: num(280), OurScore: f64(9.0),
			Featured: true, Status: domain.StatusPublished,
			AmenitySlugs: []string{"wifi-free", "24h-reception", "restaurant", "bar", "spa", "gym", "airport-transfer", "room-service"},
			TagSlugs:     []string{"luxury", "family", "resort"},
			Rooms: []domain.RoomType{
				{Name: "King Room", MaxOccupancy: 2, BedType: str("King"), SizeM2: num(36), PriceFromUSD: num(180)},
				{Name: "Regency Club", MaxOccupancy: 2, BedType: str("King"), SizeM2: num(36), PriceFromUSD: num(260)},
			},
			Policy: &domain.Policy{
				CheckinFrom: str("14:00"), CheckoutUntil: str("12:00"),
				CancellationHours: num(24), BreakfastIncluded: true, ParkingAvailable: true,
			},
		},
		{
			Slug: "hotel-yak-and-yeti", Name: "Hotel Yak & Yeti",
			AreaSlug: str("lazimpat"), Stars: num(5), PriceTier: str("LUXURY"), PriceFromUSD: num(200),
			Tagline:          str("A palace wing and gardens in the heart of the city"),
			DescriptionShort: str("Historic Lal Durbar palace wing, two pools and walking distance to Thamel."),
			Lat:              f64(27.7152), Lon: f64(85.3178),
			TotalRooms: num(270), YearBuilt: num(1977), OurScore: f64(9.1),
			Featured: true, Status: domain.StatusPublished,
			AmenitySlugs: []string{"wifi-free", "24h-reception", "restaurant", "bar", "spa", "gym", "concierge", "currency-exchange"},
			TagSlugs:     []string{"luxury", "heritage-property", "historical"},
		},
		{
			Slug: "kantipur-temple-house", Name: "Kantipur Temple House",
			AreaSlug: str("thamel"), Stars: num(4), PriceTier: str("UPSCALE"), PriceFromUSD: num(110),
			Tagline:          str("A Newari temple-style retreat at the edge of Thamel"),
			DescriptionShort: str("Brick-and-timber rooms without TVs, built and run on traditional lines; lamplit courtyards a lane away from the bustle."),
			Lat:              f64(27.7163), Lon: f64(85.3111),
			TotalRooms: num(45), OurScore: f64(8.9),
			Featured: false, Status: domain.StatusPublished,
			AmenitySlugs: []string{"wifi-free", "restaurant", "tour-desk", "trekking-info"},
			TagSlugs:     []string{"hidden-gem", "quiet-and-peaceful", "heritage-property", "cultural"},
			Policy: &domain.Policy{
				CheckinFrom: str("13:00"), CheckoutUntil: str("11:00"),
				CancellationHours: num(24), BreakfastIncluded: true,
			},
		},
		{
			Slug: "hotel-shanker", Name: "Hotel Shanker",
			AreaSlug: str("lazimpat"), Stars: num(4), PriceTier: str("UPSCALE"), PriceFromUSD: num(90),
			Tagline:          str("A converted Rana palace with manicured lawns"),
			DescriptionShort: str("White neoclassical palace turned hotel, five minutes from Thamel."),
			Lat:              f64(27.7178), Lon: f64(85.3199),
			TotalRooms: num(94), YearBuilt: num(1964), OurScore: f64(8.3),
			Featured: false, Status: domain.StatusPublished,
			AmenitySlugs: []string{"wifi-free", "24h-reception", "restaurant", "bar", "airport-transfer"},
			TagSlugs:     []string{"heritage-property", "historical", "romantic"},
		},
		{
			Slug: "gokarna-forest-resort", Name: "Gokarna Forest Resort",
			AreaSlug: str("boudhanath"), Stars: num(4), PriceTier: str("UPSCALE"), PriceFromUSD: num(130),
			Tagline:          str("A golf resort inside a protected royal forest"),
			DescriptionShort: str("Deer graze the fairways of this former royal hunting forest; spa, golf and real quiet."),
			Lat:              f64(27.7374), Lon: f64(85.3789),
			TotalRooms: num(100), OurScore: f64(8.6),
			Featured: false, Status: domain.StatusPublished,
			AmenitySlugs: []string{"wifi-free", "restaurant", "bar", "spa", "gym", "airport-transfer"},
			TagSlugs:     []string{"resort", "quiet-and-peaceful", "family"},
		},
		// Draft rows exercise the publish gate end to end.
		{
			Slug: "hotel-himalaya", Name: "Hotel Himalaya",
			AreaSlug: str("patan"), Stars: num(4), PriceTier: str("UPSCALE"), PriceFromUSD: num(95),
			Tagline: str("Mountain views over the Patan skyline"),
			Lat:     f64(27.6741), Lon: f64(85.3261),
			OurScore: f64(8.2), Status: domain.StatusDraft,
		},
	}
}
