package app

import (
	"fmt"
	"strconv"
	"strings"

	"kathmandu_guide/internal/domain"
)

// Fixed filter taxonomy for the map sidebar. Exactly one is active at a time.
var MapFilters = []string{"all", "hotels", "temples", "bars", "museums", "nature", "unesco"}

// UNESCO status is not a modeled attribute, so the filter runs off this
// slug allow-list rather than the unesco-heritage tag.
var unescoSlugs = map[string]bool{
	"pashupatinath-temple":    true,
	"boudhanath-stupa":        true,
	"swayambhunath-stupa":     true,
	"kathmandu-durbar-square": true,
	"patan-durbar-square":     true,
	"bhaktapur-durbar-square": true,
	"changu-narayan-temple":   true,
}

func ValidFilter(f string) bool {
	for _, k := range MapFilters {
		if k == f {
			return true
		}
	}
	return false
}

func MatchesFilter(p domain.MapPin, filter string) bool {
	switch filter {
	case "", "all":
		return true
	case "hotels":
		return p.Kind == domain.PinHotel
	case "temples":
		return isOneOf(p.Subtype, domain.ListingTemple, domain.ListingStupa, domain.ListingMonastery)
	case "bars":
		return isOneOf(p.Subtype, domain.ListingBar, domain.ListingRooftopBar, domain.ListingNightlife)
	case "museums":
		return p.Subtype == domain.ListingMuseum
	case "nature":
		return isOneOf(p.Subtype, domain.ListingPark, domain.ListingNaturalSite, domain.ListingViewpoint)
	case "unesco":
		return unescoSlugs[p.Slug]
	}
	return true
}

func isOneOf(s string, set ...string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// BuildPins projects geo rows into a single pin collection. It is pure:
// the repo already guarantees both coordinates are present and published.
func BuildPins(hs []domain.GeoHotel, ls []domain.GeoListing, rs []domain.GeoRestaurant) []domain.MapPin {
	pins := make([]domain.MapPin, 0, len(hs)+len(ls)+len(rs))
	for _, h := range hs {
		sub := ""
		if h.Stars != nil {
			sub = strconv.Itoa(*h.Stars)
		}
		pins = append(pins, domain.MapPin{
			ID: fmt.Sprintf("hotel-%d", h.ID), Slug: h.Slug, Name: h.Name,
			Lat: h.Lat, Lng: h.Lon, Kind: domain.PinHotel, Subtype: sub,
			Tagline: h.Tagline, AreaName: h.AreaName,
		})
	}
	for _, l := range ls {
		pins = append(pins, domain.MapPin{
			ID: fmt.Sprintf("attraction-%d", l.ID), Slug: l.Slug, Name: l.Name,
			Lat: l.Lat, Lng: l.Lon, Kind: domain.PinAttraction, Subtype: l.ListingType,
			Tagline: l.Tagline, AreaName: l.AreaName,
		})
	}
	for _, r := range rs {
		sub := ""
		if r.PriceTier != nil {
			sub = *r.PriceTier
		}
		pins = append(pins, domain.MapPin{
			ID: fmt.Sprintf("restaurant-%d", r.ID), Slug: r.Slug, Name: r.Name,
			Lat: r.Lat, Lng: r.Lon, Kind: domain.PinRestaurant, Subtype: sub,
			Tagline: r.Tagline, AreaName: r.AreaName,
		})
	}
	return pins
}

// MarkerColor picks the pin hex color for a kind/subtype bucket.
func MarkerColor(p domain.MapPin) string {
	switch p.Kind {
	case domain.PinHotel:
		return "#C87941"
	case domain.PinRestaurant:
		return "#e11d48"
	}
	switch p.Subtype {
	case domain.ListingTemple, domain.ListingStupa, domain.ListingMonastery:
		return "#3b82f6"
	case domain.ListingBar, domain.ListingRooftopBar, domain.ListingNightlife:
		return "#7c3aed"
	case domain.ListingMuseum:
		return "#dc2626"
	case domain.ListingPark, domain.ListingNaturalSite:
		return "#16a34a"
	case domain.ListingViewpoint:
		return "#0891b2"
	case domain.ListingPalace, domain.ListingHistoricSite:
		return "#d97706"
	}
	return "#6b7280"
}

// MarkerGlyph is the single-letter label rendered inside the pin.
func MarkerGlyph(p domain.MapPin) string {
	switch p.Kind {
	case domain.PinHotel:
		return "H"
	case domain.PinRestaurant:
		return "R"
	}
	switch p.Subtype {
	case domain.ListingTemple, domain.ListingStupa, domain.ListingMonastery:
		return "T"
	case domain.ListingBar, domain.ListingRooftopBar, domain.ListingNightlife:
		return "B"
	case domain.ListingMuseum:
		return "M"
	case domain.ListingPark, domain.ListingNaturalSite, domain.ListingViewpoint:
		return "N"
	}
	return "•"
}

// TypeLabel is the human category line shown in popups and list rows.
func TypeLabel(p domain.MapPin) string {
	switch p.Kind {
	case domain.PinHotel:
		return p.Subtype + "★ Hotel"
	case domain.PinRestaurant:
		return "Restaurant"
	}
	if p.Subtype == "" {
		return "Other"
	}
	return strings.ReplaceAll(p.Subtype, "_", " ")
}

// PlaceholderImage is the deterministic cover fallback for entities
// without an authored image. Keyed by kind and subtype bucket so the
// same entity always gets the same placeholder.
func PlaceholderImage(kind domain.PinKind, subtype string) string {
	switch kind {
	case domain.PinHotel:
		return "/static/placeholders/hotel.jpg"
	case domain.PinRestaurant:
		return "/static/placeholders/restaurant.jpg"
	}
	switch subtype {
	case domain.ListingTemple, domain.ListingStupa, domain.ListingMonastery:
		return "/static/placeholders/temple.jpg"
	case domain.ListingBar, domain.ListingRooftopBar, domain.ListingNightlife:
		return "/static/placeholders/bar.jpg"
	case domain.ListingMuseum:
		return "/static/placeholders/museum.jpg"
	case domain.ListingPark, domain.ListingNaturalSite, domain.ListingViewpoint:
		return "/static/placeholders/nature.jpg"
	}
	return "/static/placeholders/attraction.jpg"
}
