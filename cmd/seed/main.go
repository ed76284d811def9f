// Command seed loads the demo catalog into PostgreSQL and, when
// configured, the Typesense keyword index. RESET_DB=true truncates the
// tables first.
package main

import (
	"context"
	"os"

	"github.com/doug-martin/goqu/v9"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/nabe7855/FindMe/internal/adapters/catalog"
	"github.com/nabe7855/FindMe/internal/adapters/search"
	"github.com/nabe7855/FindMe/internal/infrastructure/clients/postgres"
	"github.com/nabe7855/FindMe/internal/infrastructure/clients/typesense"
	"github.com/nabe7855/FindMe/internal/infrastructure/observability"
	"github.com/nabe7855/FindMe/pkg/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	observability.InitLogger("findme-seed", os.Getenv("APP_ENV"))

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()
	db := goqu.New("postgres", pgClient.DB())

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE reviews, stores RESTART IDENTITY CASCADE`); err != nil {
			log.Fatal().Err(err).Msg("failed to truncate tables")
		}
	}

	stores := catalog.SeedStores()
	for order, store := range stores {
		insert, args, err := db.Insert("stores").Rows(goqu.Record{
			"id":            store.ID,
			"name":          store.Name,
			"genre":         store.Genre,
			"area":          store.Area,
			"prefecture":    store.Prefecture,
			"catch_phrase":  store.CatchPhrase,
			"description":   store.Description,
			"rating":        store.Rating,
			"image_url":     store.ImageURL,
			"address":       store.Address,
			"phone":         store.Phone,
			"opening_hours": store.OpeningHours,
			"closing_day":   store.ClosingDay,
			"price_range":   store.PriceRange,
			"review_count":  store.ReviewCount,
			"created_at":    store.CreatedAt,
			"display_order": order,
		}).OnConflict(goqu.DoNothing()).ToSQL()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build store insert")
		}
		if _, err := pgClient.DB().ExecContext(ctx, insert, args...); err != nil {
			log.Fatal().Err(err).Int("store_id", store.ID).Msg("failed to insert store")
		}

		for _, review := range store.Reviews {
			insert, args, err := db.Insert("reviews").Rows(goqu.Record{
				"id":       review.ID,
				"store_id": store.ID,
				"author":   review.Author,
				"rating":   review.Rating,
				"comment":  review.Comment,
				"date":     review.Date,
			}).OnConflict(goqu.DoNothing()).ToSQL()
			if err != nil {
				log.Fatal().Err(err).Msg("failed to build review insert")
			}
			if _, err := pgClient.DB().ExecContext(ctx, insert, args...); err != nil {
				log.Fatal().Err(err).Int("review_id", review.ID).Msg("failed to insert review")
			}
		}
	}
	log.Info().Int("stores", len(stores)).Msg("catalog seeded")

	if cfg.Typesense.URL == "" {
		return
	}
	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("skipping keyword index seed")
		return
	}
	adapter := search.NewTypesenseAdapter(tsClient)
	if err := adapter.InitSchema(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to init keyword index schema")
		return
	}
	for _, store := range stores {
		if err := adapter.Index(ctx, store); err != nil {
			log.Warn().Err(err).Int("store_id", store.ID).Msg("failed to index store")
		}
	}
	log.Info().Msg("keyword index seeded")
}
