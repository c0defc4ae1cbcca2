package seed

import "kathmandu_guide/internal/domain"

func Attractions() []domain.Listing {
	return []domain.Listing{
		{
			Slug: "pashupatinath-temple", Name: "Pashupatinath Temple", NameLocal: str("पशुपतिनाथ मन्दिर"),
			ListingType: domain.ListingTemple, AreaSlug: str("pashupatinath"),
			Tagline:          str("Nepal's holiest Hindu temple on the banks of the Bagmati"),
			DescriptionShort: str("The great Shiva temple complex, its ghats, sadhus and evening aarti ceremony."),
			Lat:              f64(27.7109), Lon: f64(85.3487),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 1000"),
			OurScore: f64(9.3), Featured: true, Status: domain.StatusPublished,
			TagSlugs: []string{"unesco-heritage", "spiritual", "pilgrim", "photography"},
			FAQs: []domain.FAQ{
				{Question: "Can non-Hindus enter the main temple?", Answer: "No, but the surrounding complex and the ghats across the river are open to all visitors.", SortOrder: 1},
				{Question: "When is the evening aarti?", Answer: "Daily at sunset on the river steps, roughly 18:00 to 19:00.", SortOrder: 2},
			},
		},
		{
			Slug: "boudhanath-stupa", Name: "Boudhanath Stupa", NameLocal: str("बौद्धनाथ"),
			ListingType: domain.ListingStupa, AreaSlug: str("boudhanath"),
			Tagline:          str("One of the largest stupas in the world"),
			DescriptionShort: str("The whitewashed dome and all-seeing eyes at the heart of Tibetan Buddhist life in Nepal; walk the kora at dusk."),
			Lat:              f64(27.7215), Lon: f64(85.3620),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 400"),
			OurScore: f64(9.5), Featured: true, Status: domain.StatusPublished,
			TagSlugs: []string{"unesco-heritage", "spiritual", "photography", "year-round"},
		},
		{
			Slug: "swayambhunath-stupa", Name: "Swayambhunath Stupa", NameLocal: str("स्वयम्भूनाथ"),
			ListingType: domain.ListingStupa, AreaSlug: str("swayambhunath"),
			Tagline:          str("The Monkey Temple watching over the valley"),
			DescriptionShort: str("365 steps up to painted Buddha eyes, prayer flags and the best sunset panorama of Kathmandu."),
			Lat:              f64(27.7149), Lon: f64(85.2904),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 200"),
			OurScore: f64(9.1), Featured: true, Status: domain.StatusPublished,
			TagSlugs: []string{"unesco-heritage", "spiritual", "views", "photography"},
		},
		{
			Slug: "kathmandu-durbar-square", Name: "Kathmandu Durbar Square", NameLocal: str("वसन्तपुर दरबार"),
			ListingType: domain.ListingHistoricSite, AreaSlug: str("durbar-square"),
			Tagline:          str("The old royal plaza of temples and palaces"),
			DescriptionShort: str("Pagoda temples, the Hanuman Dhoka palace and the living goddess's residence in one square."),
			Lat:              f64(27.7043), Lon: f64(85.3073),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 1000"),
			OurScore: f64(9.0), Featured: true, Status: domain.StatusPublished,
			TagSlugs: []string{"unesco-heritage", "historical", "cultural"},
		},
		{
			Slug: "patan-durbar-square", Name: "Patan Durbar Square", NameLocal: str("पाटन दरबार"),
			ListingType: domain.ListingHistoricSite, AreaSlug: str("patan"),
			Tagline:          str("The valley's finest ensemble of Newari architecture"),
			DescriptionShort: str("Stone temples, royal baths and bronze work, with the Patan Museum at its edge."),
			Lat:              f64(27.6728), Lon: f64(85.3249),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 1000"),
			OurScore: f64(9.3), Featured: true, Status: domain.StatusPublished,
			TagSlugs: []string{"unesco-heritage", "historical", "cultural", "photography"},
		},
		{
			Slug: "bhaktapur-durbar-square", Name: "Bhaktapur Durbar Square", NameLocal: str("भक्तपुर दरबार"),
			ListingType: domain.ListingHistoricSite, AreaSlug: str("bhaktapur"),
			Tagline:          str("A medieval royal square frozen in brick and timber"),
			DescriptionShort: str("The 55-Window Palace, Golden Gate and Nyatapola pagoda in Nepal's best-preserved old town."),
			Lat:              f64(27.6722), Lon: f64(85.4289),
			IsFree: boolp(false), AdmissionForeigner: str("USD 15 / NPR 1800"),
			OurScore: f64(9.4), Featured: true, Status: domain.StatusPublished,
			TagSlugs: []string{"unesco-heritage", "historical", "cultural"},
		},
		{
			Slug: "changu-narayan-temple", Name: "Changu Narayan Temple", NameLocal: str("चाँगुनारायण"),
			ListingType: domain.ListingTemple, AreaSlug: str("bhaktapur"),
			Tagline:          str("The oldest temple in the Kathmandu Valley"),
			DescriptionShort: str("A hilltop Vishnu temple with 5th-century stone inscriptions, reached by a quiet ridge walk from Bhaktapur."),
			Lat:              f64(27.7149), Lon: f64(85.4442),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 300"),
			OurScore: f64(8.8), Status: domain.StatusPublished,
			TagSlugs: []string{"unesco-heritage", "historical", "hidden-gem"},
		},
		{
			Slug: "kopan-monastery", Name: "Kopan Monastery", NameLocal: str("कोपन गुम्बा"),
			ListingType: domain.ListingMonastery, AreaSlug: str("boudhanath"),
			Tagline:          str("A hilltop monastery famous for meditation courses"),
			DescriptionShort: str("Month-long and weekend courses in Tibetan Buddhism, plus gardens and valley views open to day visitors."),
			Lat:              f64(27.7388), Lon: f64(85.3711),
			IsFree:   boolp(true),
			OurScore: f64(8.9), Status: domain.StatusPublished,
			TagSlugs: []string{"spiritual", "meditation-yoga", "quiet-and-peaceful"},
		},
		{
			Slug: "garden-of-dreams", Name: "Garden of Dreams", NameLocal: str("स्वप्न बगैंचा"),
			ListingType: domain.ListingPark, AreaSlug: str("thamel"),
			Tagline:          str("A restored Edwardian garden beside Thamel"),
			DescriptionShort: str("Pavilions, fountains and lawns; the calmest spot within walking distance of the tourist quarter."),
			Lat:              f64(27.7128), Lon: f64(85.3149),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 400"),
			OurScore: f64(8.6), Status: domain.StatusPublished,
			TagSlugs: []string{"quiet-and-peaceful", "romantic", "photography"},
		},
		{
			Slug: "patan-museum", Name: "Patan Museum",
			ListingType: domain.ListingMuseum, AreaSlug: str("patan"),
			Tagline:          str("South Asia's finest museum of sacred art"),
			DescriptionShort: str("Bronzes and woodcarving displayed in a restored palace wing on Patan Durbar Square."),
			Lat:              f64(27.6728), Lon: f64(85.3246),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 1000"),
			OurScore: f64(9.2), Featured: true, Status: domain.StatusPublished,
			TagSlugs: []string{"museum", "cultural", "historical"},
		},
		{
			Slug: "national-museum-nepal", Name: "National Museum of Nepal",
			ListingType: domain.ListingMuseum, AreaSlug: str("swayambhunath"),
			Tagline:          str("Art, history and arms beneath Swayambhunath hill"),
			DescriptionShort: str("Nepal's largest museum: stone sculpture, paubha painting and a quirky historical arsenal."),
			Lat:              f64(27.7139), Lon: f64(85.2967),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 150"),
			OurScore: f64(7.9), Status: domain.StatusPublished,
			TagSlugs: []string{"museum", "historical"},
		},
		{
			Slug: "asan-tole", Name: "Asan Tole", NameLocal: str("असन टोल"),
			ListingType:      domain.ListingMarket,
			Tagline:          str("The valley's oldest and busiest bazaar"),
			DescriptionShort: str("Spice sacks, brassware and a six-way crossroads that has traded since the Tibet caravan days."),
			Lat:              f64(27.7073), Lon: f64(85.3099),
			IsFree:   boolp(true),
			OurScore: f64(8.4), Status: domain.StatusPublished,
			TagSlugs: []string{"local-favourite", "photography", "cultural"},
		},
		{
			Slug: "nagarkot-viewpoint", Name: "Nagarkot Viewpoint",
			ListingType:      domain.ListingViewpoint,
			Tagline:          str("Sunrise over the Himalaya, Everest included on clear days"),
			DescriptionShort: str("The classic hill-station dawn panorama an hour's drive from Bhaktapur."),
			Lat:              f64(27.7158), Lon: f64(85.5212),
			IsFree:   boolp(true),
			OurScore: f64(9.0), Status: domain.StatusPublished,
			TagSlugs: []string{"views", "photography", "autumn"},
		},
		{
			Slug: "shivapuri-nagarjun-park", Name: "Shivapuri Nagarjun National Park",
			ListingType:      domain.ListingNaturalSite,
			Tagline:          str("Forest trails on the valley's northern rim"),
			DescriptionShort: str("Day hikes to Shivapuri peak and Nagi Gompa through oak and rhododendron forest."),
			Lat:              f64(27.8031), Lon: f64(85.3692),
			IsFree: boolp(false), AdmissionForeigner: str("NPR 1000"),
			OurScore: f64(8.7), Status: domain.StatusPublished,
			TagSlugs: []string{"views", "quiet-and-peaceful"},
		},
		{
			Slug: "kumari-ghar", Name: "Kumari Ghar", NameLocal: str("कुमारी घर"),
			ListingType: domain.ListingCulturalSite, AreaSlug: str("durbar-square"),
			Tagline:          str("Residence of Kathmandu's living goddess"),
			DescriptionShort: str("An 18th-century courtyard house where the Kumari occasionally appears at her carved window."),
			Lat:              f64(27.7040), Lon: f64(85.3072),
			IsFree:   boolp(true),
			OurScore: f64(8.7), Status: domain.StatusPublished,
			TagSlugs: []string{"cultural", "spiritual"},
		},
		// Nightlife listings feed both the nightlife surface and the bars map filter.
		{
			Slug: "purple-haze-rock-bar", Name: "Purple Haze Rock Bar",
			ListingType: domain.ListingBar, AreaSlug: str("thamel"),
			Tagline:          str("Thamel's loudest live-rock institution"),
			DescriptionShort: str("Nepali cover bands seven nights a week; gets packed after ten."),
			Lat:              f64(27.7154), Lon: f64(85.3123),
			OurScore: f64(7.8), Status: domain.StatusPublished,
			TagSlugs: []string{"nightlife", "local-favourite"},
		},
		{
			Slug: "sam-s-bar", Name: "Sam's Bar",
			ListingType: domain.ListingBar, AreaSlug: str("thamel"),
			Tagline: str("A trekkers' den of graffiti and rum since the eighties"),
			Lat:     f64(27.7160), Lon: f64(85.3130),
			OurScore: f64(7.5), Status: domain.StatusPublished,
			TagSlugs: []string{"nightlife", "backpacker", "hidden-gem"},
		},
		{
			Slug: "dwarika-s-rooftop-bar", Name: "Dwarika's Rooftop Bar",
			ListingType: domain.ListingRooftopBar, AreaSlug: str("lazimpat"),
			Tagline: str("Cocktails over carved courtyards"),
			Lat:     f64(27.7175), Lon: f64(85.3252),
			OurScore: f64(8.8), Status: domain.StatusPublished,
			TagSlugs: []string{"rooftop", "cocktails", "romantic", "luxury"},
		},
	}
}
