package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"kathmandu_guide/internal/adapters/observability"
	redisad "kathmandu_guide/internal/adapters/redis"
	"kathmandu_guide/internal/app"
	"kathmandu_guide/internal/seed"
	"kathmandu_guide/internal/shared"
	mysqlrepo "kathmandu_guide/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, "guide-seeder")

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewSeedService(repo, cache)

	// Reference data loads sequentially and first: entity payloads refer
	// to areas, tags and amenities by slug.
	if err := svc.SeedReference(ctx, seed.Areas(), seed.Tags(), seed.Amenities()); err != nil {
		log.Fatal().Err(err).Msg("reference seed failed")
	}
	log.Info().Msg("reference data seeded")

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	run := func(entity, slug string, fn func(context.Context) error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			err := fn(ctx)
			observability.ObserveSeed(entity, err)
			if err != nil {
				log.Warn().Str("entity", entity).Str("slug", slug).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("entity", entity).Str("slug", slug).Msg("seed ok")
		}()
	}

	for _, h := range seed.Hotels() {
		h := h
		run("hotel", h.Slug, func(ctx context.Context) error { return svc.SeedHotel(ctx, h) })
	}
	for _, l := range seed.Attractions() {
		l := l
		run("listing", l.Slug, func(ctx context.Context) error { return svc.SeedListing(ctx, l) })
	}
	for _, r := range seed.Restaurants() {
		r := r
		run("restaurant", r.Slug, func(ctx context.Context) error { return svc.SeedRestaurant(ctx, r) })
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
