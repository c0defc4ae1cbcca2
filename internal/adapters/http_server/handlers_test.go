package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "kathmandu_guide/internal/adapters/http_server"
	"kathmandu_guide/internal/adapters/observability"
	"kathmandu_guide/internal/app"
	"kathmandu_guide/internal/domain"
)

// ---- fakes ----

type stubRepo struct {
	hv domain.HotelView

	searchHotels   []domain.SearchHotel
	searchListings []domain.SearchListing

	geoListings []domain.GeoListing
}

func (s *stubRepo) UpsertArea(ctx context.Context, a domain.Area) error             { return nil }
func (s *stubRepo) UpsertTag(ctx context.Context, t domain.Tag) error               { return nil }
func (s *stubRepo) UpsertAmenity(ctx context.Context, am domain.Amenity) error      { return nil }
func (s *stubRepo) UpsertHotel(ctx context.Context, h domain.Hotel) error           { return nil }
func (s *stubRepo) UpsertListing(ctx context.Context, l domain.Listing) error       { return nil }
func (s *stubRepo) UpsertRestaurant(ctx context.Context, r domain.Restaurant) error { return nil }

func (s *stubRepo) GetHotel(ctx context.Context, slug string) (domain.HotelView, error) {
	if s.hv.Slug != slug {
		return domain.HotelView{}, domain.ErrNotFound
	}
	return s.hv, nil
}
func (s *stubRepo) GetListing(ctx context.Context, slug string) (domain.ListingView, error) {
	return domain.ListingView{}, domain.ErrNotFound
}
func (s *stubRepo) GetRestaurant(ctx context.Context, slug string) (domain.RestaurantView, error) {
	return domain.RestaurantView{}, domain.ErrNotFound
}
func (s *stubRepo) GetArea(ctx context.Context, slug string) (domain.AreaView, error) {
	return domain.AreaView{}, domain.ErrNotFound
}
func (s *stubRepo) GetTag(ctx context.Context, slug string) (domain.TagView, error) {
	return domain.TagView{}, domain.ErrNotFound
}

func (s *stubRepo) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.HotelCard, error) {
	return nil, nil
}
func (s *stubRepo) ListListings(ctx context.Context, q domain.ListingsQuery) ([]domain.ListingCard, error) {
	return nil, nil
}
func (s *stubRepo) ListRestaurants(ctx context.Context, q domain.RestaurantsQuery) ([]domain.RestaurantCard, error) {
	return nil, nil
}
func (s *stubRepo) ListAreas(ctx context.Context) ([]domain.AreaCard, error) { return nil, nil }

func (s *stubRepo) SearchHotels(ctx context.Context, q string, limit int) ([]domain.SearchHotel, error) {
	return s.searchHotels, nil
}
func (s *stubRepo) SearchListings(ctx context.Context, q string, limit int) ([]domain.SearchListing, error) {
	return s.searchListings, nil
}
func (s *stubRepo) SearchRestaurants(ctx context.Context, q string, limit int) ([]domain.SearchRestaurant, error) {
	return nil, nil
}

func (s *stubRepo) GeoHotels(ctx context.Context) ([]domain.GeoHotel, error) { return nil, nil }
func (s *stubRepo) GeoListings(ctx context.Context) ([]domain.GeoListing, error) {
	return s.geoListings, nil
}
func (s *stubRepo) GeoRestaurants(ctx context.Context) ([]domain.GeoRestaurant, error) {
	return nil, nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (noopCache) Del(ctx context.Context, key string) error { return nil }

func newTestServer(repo *stubRepo) *httptest.Server {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q: app.NewQueryService(repo, noopCache{}, time.Minute),
		S: app.NewSearchService(repo),
		M: app.NewMapService(repo, noopCache{}, time.Minute),
	})
	return httptest.NewServer(srv.Mux())
}

// ---- tests ----

func TestSearch_ShortQueryIsOKWithEmptyArrays(t *testing.T) {
	ts := newTestServer(&stubRepo{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/search?q=b")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body struct {
		Hotels      []json.RawMessage `json:"hotels"`
		Attractions []json.RawMessage `json:"attractions"`
		Restaurants []json.RawMessage `json:"restaurants"`
	}
	raw := json.NewDecoder(res.Body)
	if err := raw.Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Hotels == nil || body.Attractions == nil || body.Restaurants == nil {
		t.Fatalf("short query must render [] not null")
	}
	if len(body.Hotels)+len(body.Attractions)+len(body.Restaurants) != 0 {
		t.Fatalf("expected empty result sets")
	}
}

func TestSearch_ReturnsMatches(t *testing.T) {
	repo := &stubRepo{
		searchListings: []domain.SearchListing{
			{Slug: "boudhanath-stupa", Name: "Boudhanath Stupa", ListingType: "STUPA"},
		},
	}
	ts := newTestServer(repo)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/search?q=boud")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body struct {
		Attractions []struct {
			Slug string `json:"slug"`
		} `json:"attractions"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Attractions) != 1 || body.Attractions[0].Slug != "boudhanath-stupa" {
		t.Fatalf("unexpected attractions: %+v", body.Attractions)
	}
}

func TestGetHotel_UnknownSlugIs404Problem(t *testing.T) {
	ts := newTestServer(&stubRepo{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/hotels/does-not-exist")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestGetHotel_ETagAnd304(t *testing.T) {
	repo := &stubRepo{hv: domain.HotelView{Slug: "dwarikas-hotel", Name: "Dwarika's Hotel", CoverImageURL: "/img/x.jpg"}}
	ts := newTestServer(repo)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/hotels/dwarikas-hotel")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	etag := res.Header.Get("ETag")
	res.Body.Close()
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	req, _ := http.NewRequest("GET", ts.URL+"/v1/hotels/dwarikas-hotel", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res2.StatusCode)
	}
}

func TestMapPins_FilterValidationAndBBox(t *testing.T) {
	repo := &stubRepo{
		geoListings: []domain.GeoListing{
			{ID: 1, Slug: "boudhanath-stupa", Name: "Boudhanath Stupa", Lat: 27.7215, Lon: 85.3620, ListingType: "STUPA"},
			{ID: 2, Slug: "nagarkot-viewpoint", Name: "Nagarkot Viewpoint", Lat: 27.7158, Lon: 85.5212, ListingType: "VIEWPOINT"},
		},
	}
	ts := newTestServer(repo)
	defer ts.Close()

	res, _ := http.Get(ts.URL + "/v1/map/pins?filter=nonsense")
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad filter: status %d", res.StatusCode)
	}

	res, _ = http.Get(ts.URL + "/v1/map/pins?bbox=1,2,3")
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad bbox: status %d", res.StatusCode)
	}

	res, err := http.Get(ts.URL + "/v1/map/pins?filter=unesco&bbox=85.28,27.66,85.40,27.75")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body struct {
		Pins []struct {
			Slug string `json:"slug"`
		} `json:"pins"`
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || len(body.Pins) != 1 || body.Pins[0].Slug != "boudhanath-stupa" {
		t.Fatalf("unexpected pins: %+v", body)
	}
}

func TestSearch_RecordsOutcomeMetrics(t *testing.T) {
	reg := observability.InitRegistry()
	ts := newTestServer(&stubRepo{})
	defer ts.Close()

	for _, q := range []string{"b", "boud"} {
		res, err := http.Get(ts.URL + "/api/search?q=" + q)
		if err != nil {
			t.Fatalf("GET q=%s: %v", q, err)
		}
		res.Body.Close()
	}

	rec := httptest.NewRecorder()
	observability.MetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	out := rec.Body.String()
	if !strings.Contains(out, `guide_search_requests_total{outcome="short"}`) {
		t.Fatalf("short-query outcome not counted:\n%s", out)
	}
	if !strings.Contains(out, `guide_search_requests_total{outcome="ok"}`) {
		t.Fatalf("ok outcome not counted:\n%s", out)
	}
}

func TestRateLimit_SearchReturns429WhenExhausted(t *testing.T) {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q:           app.NewQueryService(&stubRepo{}, noopCache{}, time.Minute),
		S:           app.NewSearchService(&stubRepo{}),
		M:           app.NewMapService(&stubRepo{}, noopCache{}, time.Minute),
		SearchLimit: httpserver.NewIPRateLimiter(1, 1),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	res, _ := http.Get(ts.URL + "/api/search?q=bo")
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("first request: status %d", res.StatusCode)
	}

	res, _ = http.Get(ts.URL + "/api/search?q=bo")
	res.Body.Close()
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", res.StatusCode)
	}
	if ra := res.Header.Get("Retry-After"); ra == "" {
		t.Fatalf("429 must carry Retry-After")
	}

	// other routes stay unthrottled
	res, _ = http.Get(ts.URL + "/healthz")
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("healthz throttled: status %d", res.StatusCode)
	}
}
