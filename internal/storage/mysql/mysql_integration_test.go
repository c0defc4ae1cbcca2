//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"kathmandu_guide/internal/domain"
	"kathmandu_guide/internal/seed"
	mysqlrepo "kathmandu_guide/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=guide",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "guide")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func seedAll(t *testing.T, repo *mysqlrepo.Repo) {
	t.Helper()
	ctx := context.Background()
	for _, a := range seed.Areas() {
		if err := repo.UpsertArea(ctx, a); err != nil {
			t.Fatalf("UpsertArea %s: %v", a.Slug, err)
		}
	}
	for _, tg := range seed.Tags() {
		if err := repo.UpsertTag(ctx, tg); err != nil {
			t.Fatalf("UpsertTag %s: %v", tg.Slug, err)
		}
	}
	for _, am := range seed.Amenities() {
		if err := repo.UpsertAmenity(ctx, am); err != nil {
			t.Fatalf("UpsertAmenity %s: %v", am.Slug, err)
		}
	}
	for _, h := range seed.Hotels() {
		if err := repo.UpsertHotel(ctx, h); err != nil {
			t.Fatalf("UpsertHotel %s: %v", h.Slug, err)
		}
	}
	for _, l := range seed.Attractions() {
		if err := repo.UpsertListing(ctx, l); err != nil {
			t.Fatalf("UpsertListing %s: %v", l.Slug, err)
		}
	}
	for _, r := range seed.Restaurants() {
		if err := repo.UpsertRestaurant(ctx, r); err != nil {
			t.Fatalf("UpsertRestaurant %s: %v", r.Slug, err)
		}
	}
}

func tableCounts(t *testing.T, db *sql.DB) map[string]int {
	t.Helper()
	out := map[string]int{}
	for _, tbl := range []string{"areas", "tags", "amenities", "hotels", "listings", "restaurants",
		"hotel_amenities", "hotel_tags", "room_types", "hotel_policies", "listing_tags", "restaurant_tags", "faqs"} {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + tbl).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", tbl, err)
		}
		out[tbl] = n
	}
	return out
}

func TestRepo_MySQL_SeedReadSearch(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	seedAll(t, repo)
	first := tableCounts(t, db)

	// Reseed: every count must stay exactly where it was.
	seedAll(t, repo)
	second := tableCounts(t, db)
	for tbl, n := range first {
		if second[tbl] != n {
			t.Fatalf("reseed changed %s: %d -> %d", tbl, n, second[tbl])
		}
	}

	// Detail read with children.
	hv, err := repo.GetHotel(ctx, "dwarikas-hotel")
	if err != nil {
		t.Fatalf("GetHotel: %v", err)
	}
	if hv.Name != "Dwarika's Hotel" || hv.AreaName == nil || *hv.AreaName != "Lazimpat" {
		t.Fatalf("unexpected hotel view: %+v", hv)
	}
	if len(hv.Rooms) != 3 || hv.Policy == nil || len(hv.FAQs) != 2 {
		t.Fatalf("children missing: rooms=%d policy=%v faqs=%d", len(hv.Rooms), hv.Policy, len(hv.FAQs))
	}
	if len(hv.Amenities) == 0 || len(hv.Tags) == 0 {
		t.Fatalf("joins missing: %+v", hv)
	}

	// Draft rows never surface.
	if _, err := repo.GetHotel(ctx, "hotel-himalaya"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("draft hotel must be ErrNotFound, got %v", err)
	}

	// Search: case-insensitive substring with stable ordering.
	ls, err := repo.SearchListings(ctx, "BOUD", 8)
	if err != nil {
		t.Fatalf("SearchListings: %v", err)
	}
	found := false
	for _, l := range ls {
		if l.Slug == "boudhanath-stupa" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected boudhanath-stupa for query BOUD, got %+v", ls)
	}

	// LIKE metacharacters match literally, not as wildcards.
	if rs, err := repo.SearchRestaurants(ctx, "%", 5); err != nil {
		t.Fatalf("SearchRestaurants: %v", err)
	} else if len(rs) != 0 {
		t.Fatalf("%% must not act as a wildcard: %+v", rs)
	}

	// Geo sources exclude drafts and rows without coordinates.
	ghs, err := repo.GeoHotels(ctx)
	if err != nil {
		t.Fatalf("GeoHotels: %v", err)
	}
	for _, g := range ghs {
		if g.Slug == "hotel-himalaya" {
			t.Fatalf("draft hotel leaked into geo rows")
		}
	}

	// List ordering: featured first, then score.
	cards, err := repo.ListHotels(ctx, domain.HotelsQuery{})
	if err != nil {
		t.Fatalf("ListHotels: %v", err)
	}
	if len(cards) == 0 || !cards[0].Featured {
		t.Fatalf("expected a featured hotel first, got %+v", cards)
	}
	if cards[0].Slug != "dwarikas-hotel" {
		t.Fatalf("expected dwarikas-hotel first by score, got %s", cards[0].Slug)
	}

	// Area page pulls all three entity kinds.
	av, err := repo.GetArea(ctx, "thamel")
	if err != nil {
		t.Fatalf("GetArea: %v", err)
	}
	if len(av.Hotels) == 0 || len(av.Attractions) == 0 || len(av.Restaurants) == 0 {
		t.Fatalf("thamel page incomplete: hotels=%d attractions=%d restaurants=%d",
			len(av.Hotels), len(av.Attractions), len(av.Restaurants))
	}

	// Tag page via join tables.
	tv, err := repo.GetTag(ctx, "unesco-heritage")
	if err != nil {
		t.Fatalf("GetTag: %v", err)
	}
	if len(tv.Attractions) == 0 {
		t.Fatalf("unesco-heritage tag has no attractions")
	}
}
