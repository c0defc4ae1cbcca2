package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom"

	"kathmandu_guide/internal/adapters/observability"
	"kathmandu_guide/internal/app"
	"kathmandu_guide/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	S *app.SearchService
	M *app.MapService

	// SearchLimit gates /api/search; nil disables rate limiting (tests).
	SearchLimit *IPRateLimiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	if h.SearchLimit != nil {
		s.mux.With(h.SearchLimit.Middleware).Get("/api/search", h.search)
	} else {
		s.mux.Get("/api/search", h.search)
	}

	s.mux.Get("/v1/map/pins", h.mapPins)

	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{slug}", h.getHotel)
	s.mux.Get("/v1/attractions", h.listAttractions)
	s.mux.Get("/v1/attractions/{slug}", h.getAttraction)
	s.mux.Get("/v1/restaurants", h.listRestaurants)
	s.mux.Get("/v1/restaurants/{slug}", h.getRestaurant)
	s.mux.Get("/v1/nightlife", h.nightlife)
	s.mux.Get("/v1/areas", h.listAreas)
	s.mux.Get("/v1/areas/{slug}", h.getArea)
	s.mux.Get("/v1/tags/{slug}", h.getTag)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON sends v with a weak ETag and honors If-None-Match.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// notFoundOr500 maps the repo sentinel to 404 and anything else to 500.
func notFoundOr500(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", what+" not found")
		return
	}
	log.Error().Err(err).Str("what", what).Msg("query failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}

// ---- search ----

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	res, err := h.S.Search(r.Context(), q)
	if err != nil {
		observability.ObserveSearch("error")
		log.Error().Err(err).Msg("search failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "search failed")
		return
	}
	if app.ShortQuery(q) {
		observability.ObserveSearch("short")
	} else {
		observability.ObserveSearch("ok")
	}
	writeJSON(w, r, res)
}

// ---- map ----

type mapPinPayload struct {
	domain.MapPin
	Color     string `json:"color"`
	Glyph     string `json:"glyph"`
	TypeLabel string `json:"typeLabel"`
}

type mapPinsResponse struct {
	Pins     []mapPinPayload  `json:"pins"`
	Clusters []domain.Cluster `json:"clusters"`
	Count    int              `json:"count"`
}

// parseBBox accepts "minLng,minLat,maxLng,maxLat".
func parseBBox(s string) (*geom.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bbox needs 4 comma-separated numbers")
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bbox component %d: %w", i+1, err)
		}
		v[i] = f
	}
	if v[0] > v[2] || v[1] > v[3] {
		return nil, fmt.Errorf("bbox min must not exceed max")
	}
	return geom.NewBounds(geom.XY).Set(v[0], v[1], v[2], v[3]), nil
}

func (h *Handlers) mapPins(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var bbox *geom.Bounds
	if bs := q.Get("bbox"); bs != "" {
		var err error
		if bbox, err = parseBBox(bs); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid bbox", err.Error())
			return
		}
	}

	pins, err := h.M.Pins(r.Context(), q.Get("filter"), bbox)
	if err != nil {
		if errors.Is(err, app.ErrUnknownFilter) {
			writeProblem(w, http.StatusBadRequest, "Invalid filter",
				"filter must be one of: "+strings.Join(app.MapFilters, ", "))
			return
		}
		log.Error().Err(err).Msg("map pins failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	resp := mapPinsResponse{Clusters: []domain.Cluster{}, Count: len(pins)}
	if zs := q.Get("zoom"); zs != "" {
		zoom, err := strconv.Atoi(zs)
		if err != nil || zoom < 0 || zoom > 22 {
			writeProblem(w, http.StatusBadRequest, "Invalid zoom", "zoom must be an integer between 0 and 22")
			return
		}
		singles, clusters := app.Clustered(pins, zoom)
		pins = singles
		resp.Clusters = clusters
	}
	resp.Pins = make([]mapPinPayload, 0, len(pins))
	for _, p := range pins {
		resp.Pins = append(resp.Pins, mapPinPayload{
			MapPin:    p,
			Color:     app.MarkerColor(p),
			Glyph:     app.MarkerGlyph(p),
			TypeLabel: app.TypeLabel(p),
		})
	}
	writeJSON(w, r, resp)
}

// ---- detail reads ----

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hv, err := h.Q.GetHotel(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		notFoundOr500(w, err, "hotel")
		return
	}
	writeJSON(w, r, hv)
}

func (h *Handlers) getAttraction(w http.ResponseWriter, r *http.Request) {
	lv, err := h.Q.GetAttraction(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		notFoundOr500(w, err, "attraction")
		return
	}
	writeJSON(w, r, lv)
}

func (h *Handlers) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rv, err := h.Q.GetRestaurant(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		notFoundOr500(w, err, "restaurant")
		return
	}
	writeJSON(w, r, rv)
}

func (h *Handlers) getArea(w http.ResponseWriter, r *http.Request) {
	av, err := h.Q.GetArea(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		notFoundOr500(w, err, "area")
		return
	}
	writeJSON(w, r, av)
}

func (h *Handlers) getTag(w http.ResponseWriter, r *http.Request) {
	tv, err := h.Q.GetTag(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		notFoundOr500(w, err, "tag")
		return
	}
	writeJSON(w, r, tv)
}

// ---- list reads ----

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	ls := r.URL.Query().Get("limit")
	if ls == "" {
		return 0, true
	}
	l, err := strconv.Atoi(ls)
	if err != nil || l <= 0 || l > 200 {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
		return 0, false
	}
	return l, true
}

func areaParam(r *http.Request) *string {
	if a := r.URL.Query().Get("area"); a != "" {
		return &a
	}
	return nil
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	q := domain.HotelsQuery{AreaSlug: areaParam(r), Limit: limit}
	if ss := r.URL.Query().Get("stars"); ss != "" {
		stars, err := strconv.Atoi(ss)
		if err != nil || stars < 1 || stars > 5 {
			writeProblem(w, http.StatusBadRequest, "Invalid stars", "stars must be an integer between 1 and 5")
			return
		}
		q.Stars = &stars
	}
	cards, err := h.Q.ListHotels(r.Context(), q)
	if err != nil {
		notFoundOr500(w, err, "hotels")
		return
	}
	writeJSON(w, r, cardsOrEmpty(cards))
}

func (h *Handlers) listAttractions(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	q := domain.ListingsQuery{AreaSlug: areaParam(r), Limit: limit}
	if ts := r.URL.Query().Get("type"); ts != "" {
		q.Types = strings.Split(strings.ToUpper(ts), ",")
	}
	cards, err := h.Q.ListAttractions(r.Context(), q)
	if err != nil {
		notFoundOr500(w, err, "attractions")
		return
	}
	writeJSON(w, r, cardsOrEmpty(cards))
}

func (h *Handlers) listRestaurants(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	cards, err := h.Q.ListRestaurants(r.Context(), domain.RestaurantsQuery{AreaSlug: areaParam(r), Limit: limit})
	if err != nil {
		notFoundOr500(w, err, "restaurants")
		return
	}
	writeJSON(w, r, cardsOrEmpty(cards))
}

func (h *Handlers) nightlife(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Q.Nightlife(r.Context(), areaParam(r))
	if err != nil {
		notFoundOr500(w, err, "nightlife")
		return
	}
	writeJSON(w, r, cardsOrEmpty(cards))
}

func (h *Handlers) listAreas(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Q.ListAreas(r.Context())
	if err != nil {
		notFoundOr500(w, err, "areas")
		return
	}
	writeJSON(w, r, cardsOrEmpty(cards))
}

// cardsOrEmpty keeps empty list responses as [] instead of null.
func cardsOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
