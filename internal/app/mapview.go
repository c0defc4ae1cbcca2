package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/twpayne/go-geom"
	"golang.org/x/sync/errgroup"

	"kathmandu_guide/internal/domain"
)

// ErrUnknownFilter is returned for filter names outside the fixed taxonomy.
var ErrUnknownFilter = errors.New("unknown map filter")

const mapSnapshotKey = "map:pins"

type MapService struct {
	repo     domain.GuideRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewMapService(r domain.GuideRepository, c domain.Cache, ttl time.Duration) *MapService {
	return &MapService{repo: r, cache: c, cacheTTL: ttl}
}

// Snapshot assembles every published, coordinate-bearing entity into one
// pin collection. The result is cached whole; the seeder evicts the key.
func (s *MapService) Snapshot(ctx context.Context) ([]domain.MapPin, error) {
	var pins []domain.MapPin
	if ok, _ := s.cache.Get(ctx, mapSnapshotKey, &pins); ok {
		return pins, nil
	}

	var (
		hs []domain.GeoHotel
		ls []domain.GeoListing
		rs []domain.GeoRestaurant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; hs, err = s.repo.GeoHotels(gctx); return err })
	g.Go(func() error { var err error; ls, err = s.repo.GeoListings(gctx); return err })
	g.Go(func() error { var err error; rs, err = s.repo.GeoRestaurants(gctx); return err })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pins = BuildPins(hs, ls, rs)
	_ = s.cache.Set(ctx, mapSnapshotKey, pins, int(s.cacheTTL.Seconds()))
	return pins, nil
}

// Pins returns the snapshot narrowed by a filter key and an optional
// viewport. bbox is lon/lat ordered (X=lon, Y=lat).
func (s *MapService) Pins(ctx context.Context, filter string, bbox *geom.Bounds) ([]domain.MapPin, error) {
	if filter != "" && !ValidFilter(filter) {
		return nil, ErrUnknownFilter
	}
	all, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MapPin, 0, len(all))
	for _, p := range all {
		if !MatchesFilter(p, filter) {
			continue
		}
		if bbox != nil && !bbox.OverlapsPoint(geom.XY, geom.Coord{p.Lng, p.Lat}) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// geohashPrecision maps a web-map zoom level to a geohash cell size.
// Coarser cells at low zoom merge more pins.
func geohashPrecision(zoom int) uint {
	switch {
	case zoom <= 3:
		return 2
	case zoom <= 6:
		return 3
	case zoom <= 9:
		return 4
	case zoom <= 12:
		return 5
	case zoom <= 14:
		return 6
	case zoom <= 16:
		return 7
	}
	return 8
}

// Clustered buckets pins into geohash grid cells for the given zoom.
// Cells holding a single pin stay individual pins (input order kept);
// cells with two or more collapse into a cluster at their centroid.
func Clustered(pins []domain.MapPin, zoom int) ([]domain.MapPin, []domain.Cluster) {
	prec := geohashPrecision(zoom)
	cells := make(map[string][]domain.MapPin)
	order := make([]string, 0)
	for _, p := range pins {
		cell := geohash.EncodeWithPrecision(p.Lat, p.Lng, prec)
		if _, seen := cells[cell]; !seen {
			order = append(order, cell)
		}
		cells[cell] = append(cells[cell], p)
	}

	singles := make([]domain.MapPin, 0, len(pins))
	clusters := make([]domain.Cluster, 0)
	for _, cell := range order {
		group := cells[cell]
		if len(group) == 1 {
			singles = append(singles, group[0])
			continue
		}
		var lat, lng float64
		for _, p := range group {
			lat += p.Lat
			lng += p.Lng
		}
		n := float64(len(group))
		clusters = append(clusters, domain.Cluster{
			Cell:  cell,
			Count: len(group),
			Lat:   lat / n,
			Lng:   lng / n,
		})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		return clusters[i].Cell < clusters[j].Cell
	})
	return singles, clusters
}
