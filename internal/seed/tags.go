package seed

import "kathmandu_guide/internal/domain"

func Tags() []domain.Tag {
	return []domain.Tag{
		// Experience
		{Slug: "unesco-heritage", Name: "UNESCO Heritage", Category: "Experience", Color: str("#b45309"), SortOrder: 1},
		{Slug: "spiritual", Name: "Spiritual", Category: "Experience", Color: str("#7c3aed"), SortOrder: 2},
		{Slug: "cultural", Name: "Cultural", Category: "Experience", Color: str("#d97706"), SortOrder: 3},
		{Slug: "historical", Name: "Historical", Category: "Experience", Color: str("#92400e"), SortOrder: 4},
		{Slug: "photography", Name: "Photography", Category: "Experience", Color: str("#0891b2"), SortOrder: 5},
		{Slug: "food-and-drink", Name: "Food & Drink", Category: "Experience", Color: str("#e11d48"), SortOrder: 6},
		{Slug: "nightlife", Name: "Nightlife", Category: "Experience", Color: str("#6d28d9"), SortOrder: 7},
		{Slug: "rooftop", Name: "Rooftop", Category: "Experience", Color: str("#2563eb"), SortOrder: 8},
		{Slug: "views", Name: "Views", Category: "Experience", Color: str("#0d9488"), SortOrder: 9},
		{Slug: "cocktails", Name: "Cocktails", Category: "Experience", Color: str("#be185d"), SortOrder: 10},
		{Slug: "meditation-yoga", Name: "Meditation & Yoga", Category: "Experience", Color: str("#059669"), SortOrder: 11},
		// Vibe
		{Slug: "romantic", Name: "Romantic", Category: "Vibe", Color: str("#db2777"), SortOrder: 1},
		{Slug: "luxury", Name: "Luxury", Category: "Vibe", Color: str("#a16207"), SortOrder: 2},
		{Slug: "budget-friendly", Name: "Budget Friendly", Category: "Vibe", Color: str("#16a34a"), SortOrder: 3},
		{Slug: "local-favourite", Name: "Local Favourite", Category: "Vibe", Color: str("#ea580c"), SortOrder: 4},
		{Slug: "hidden-gem", Name: "Hidden Gem", Category: "Vibe", Color: str("#4f46e5"), SortOrder: 5},
		{Slug: "quiet-and-peaceful", Name: "Quiet & Peaceful", Category: "Vibe", Color: str("#0f766e"), SortOrder: 6},
		// Type
		{Slug: "museum", Name: "Museum", Category: "Type", SortOrder: 1},
		{Slug: "heritage-property", Name: "Heritage Property", Category: "Type", SortOrder: 2},
		{Slug: "resort", Name: "Resort", Category: "Type", SortOrder: 3},
		// Traveller
		{Slug: "family", Name: "Family", Category: "Traveller", SortOrder: 1},
		{Slug: "pilgrim", Name: "Pilgrim", Category: "Traveller", SortOrder: 2},
		{Slug: "backpacker", Name: "Backpacker", Category: "Traveller", SortOrder: 3},
		// Season
		{Slug: "year-round", Name: "Year Round", Category: "Season", SortOrder: 1},
		{Slug: "autumn", Name: "Autumn", Category: "Season", SortOrder: 2},
	}
}
