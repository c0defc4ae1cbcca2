package seed

import "kathmandu_guide/internal/domain"

func Amenities() []domain.Amenity {
	return []domain.Amenity{
		{Slug: "wifi-free", Name: "Free WiFi", Category: str("Connectivity"), Icon: str("wifi"), SortOrder: 1},
		{Slug: "24h-reception", Name: "24-hour Reception", Category: str("Service"), Icon: str("clock"), SortOrder: 2},
		{Slug: "restaurant", Name: "Restaurant", Category: str("Dining"), Icon: str("utensils"), SortOrder: 3},
		{Slug: "bar", Name: "Bar", Category: str("Dining"), Icon: str("glass"), SortOrder: 4},
		{Slug: "spa", Name: "Spa", Category: str("Wellness"), Icon: str("spa"), SortOrder: 5},
		{Slug: "gym", Name: "Fitness Centre", Category: str("Wellness"), Icon: str("dumbbell"), SortOrder: 6},
		{Slug: "airport-transfer", Name: "Airport Transfer", Category: str("Service"), Icon: str("car"), SortOrder: 7},
		{Slug: "tour-desk", Name: "Tour Desk", Category: str("Service"), Icon: str("map"), SortOrder: 8},
		{Slug: "trekking-info", Name: "Trekking Information", Category: str("Service"), Icon: str("mountain"), SortOrder: 9},
		{Slug: "room-service", Name: "Room Service", Category: str("Service"), Icon: str("bell"), SortOrder: 10},
		{Slug: "concierge", Name: "Concierge", Category: str("Service"), Icon: str("user"), SortOrder: 11},
		{Slug: "currency-exchange", Name: "Currency Exchange", Category: str("Service"), Icon: str("banknote"), SortOrder: 12},
	}
}
