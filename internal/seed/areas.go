package seed

import "kathmandu_guide/internal/domain"

func Areas() []domain.Area {
	return []domain.Area{
		{
			Slug: "thamel", Name: "Thamel", NameLocal: str("ठमेल"),
			Description: str("Kathmandu's backpacker heart: a dense grid of trekking shops, rooftop bars, live music and guesthouses."),
			Lat:         f64(27.7151), Lon: f64(85.3122), Featured: true, SortOrder: 1,
		},
		{
			Slug: "durbar-square", Name: "Durbar Square", NameLocal: str("वसन्तपुर दरबार क्षेत्र"),
			Description: str("The old royal plaza of Kathmandu, ringed by pagoda temples, courtyards and the Kumari's residence."),
			Lat:         f64(27.7043), Lon: f64(85.3073), SortOrder: 2,
		},
		{
			Slug: "patan", Name: "Patan (Lalitpur)", NameLocal: str("ललितपुर"),
			Description: str("The city of fine arts across the Bagmati, famous for metalwork, courtyards and its own Durbar Square."),
			Lat:         f64(27.6728), Lon: f64(85.3249), SortOrder: 3,
		},
		{
			Slug: "bhaktapur", Name: "Bhaktapur", NameLocal: str("भक्तपुर"),
			Description: str("A preserved medieval Newari town of brick lanes, pottery squares and temple-studded plazas."),
			Lat:         f64(27.6722), Lon: f64(85.4289), SortOrder: 4,
		},
		{
			Slug: "boudhanath", Name: "Boudhanath", NameLocal: str("बौद्धनाथ"),
			Description: str("The Tibetan Buddhist quarter around the great stupa, full of monasteries, prayer wheels and momo kitchens."),
			Lat:         f64(27.7215), Lon: f64(85.3620), SortOrder: 5,
		},
		{
			Slug: "pashupatinath", Name: "Pashupatinath", NameLocal: str("पशुपतिनाथ"),
			Description: str("The sacred Shiva temple complex on the Bagmati, Nepal's holiest Hindu site."),
			Lat:         f64(27.7109), Lon: f64(85.3487), SortOrder: 6,
		},
		{
			Slug: "swayambhunath", Name: "Swayambhunath (Monkey Temple)", NameLocal: str("स्वयम्भूनाथ"),
			Description: str("The hilltop stupa west of the city, watched over by painted Buddha eyes and resident monkeys."),
			Lat:         f64(27.7149), Lon: f64(85.2904), SortOrder: 7,
		},
		{
			Slug: "jhamsikhel", Name: "Jhamsikhel", NameLocal: str("झम्सिखेल"),
			Description: str("Patan's expat dining strip: craft beer, cafes and some of the valley's best kitchens."),
			Lat:         f64(27.6810), Lon: f64(85.3168), SortOrder: 8,
		},
		{
			Slug: "lazimpat", Name: "Lazimpat", NameLocal: str("लाजिम्पाट"),
			Description: str("The embassy quarter north of the palace, home to heritage hotels and quiet gardens."),
			Lat:         f64(27.7192), Lon: f64(85.3215), SortOrder: 9,
		},
		{
			Slug: "kirtipur", Name: "Kirtipur", NameLocal: str("कीर्तिपुर"),
			Description: str("A hill town of old Newari houses and temples, with sweeping views back over the valley."),
			Lat:         f64(27.6764), Lon: f64(85.2789), SortOrder: 10,
		},
	}
}
