package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
	"github.com/nabe7855/FindMe/internal/infrastructure/clients/postgres"
	apperrors "github.com/nabe7855/FindMe/pkg/errors"
)

// PostgresAdapter implements StoreRepository over the production catalog
// database. Stores are ordered by display_order, the sequence curated by
// the admin tooling.
type PostgresAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresAdapter creates a new postgres-backed catalog adapter
func NewPostgresAdapter(client *postgres.Client) repositories.StoreRepository {
	return &PostgresAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var storeColumns = []interface{}{
	"id", "name", "genre", "area", "prefecture", "catch_phrase",
	"description", "rating", "image_url", "address", "phone",
	"opening_hours", "closing_day", "price_range", "review_count",
	"created_at",
}

// GetAll retrieves the full catalog in display order
func (a *PostgresAdapter) GetAll(ctx context.Context) ([]*entities.Store, error) {
	query, args, err := a.db.Select(storeColumns...).
		From("stores").
		Order(goqu.I("display_order").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build catalog query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}
	defer rows.Close()

	var stores []*entities.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan store", err)
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}
	return stores, nil
}

// GetByID retrieves a single store with its reviews
func (a *PostgresAdapter) GetByID(ctx context.Context, id int) (*entities.Store, error) {
	query, args, err := a.db.Select(storeColumns...).
		From("stores").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build store query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	store, err := scanStore(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("store %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}

	reviews, err := a.storeReviews(ctx, id)
	if err != nil {
		return nil, err
	}
	store.Reviews = reviews
	return store, nil
}

// LatestReviews retrieves the newest reviews across all stores
func (a *PostgresAdapter) LatestReviews(ctx context.Context, count int) ([]entities.ReviewWithStore, error) {
	query, args, err := a.db.Select(
		goqu.I("r.id"), goqu.I("r.author"), goqu.I("r.rating"),
		goqu.I("r.comment"), goqu.I("r.date"),
		goqu.I("s.id").As("store_id"), goqu.I("s.name").As("store_name"),
	).
		From(goqu.T("reviews").As("r")).
		Join(goqu.T("stores").As("s"), goqu.On(goqu.Ex{"r.store_id": goqu.I("s.id")})).
		Order(goqu.I("r.date").Desc()).
		Limit(uint(count)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build reviews query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}
	defer rows.Close()

	var reviews []entities.ReviewWithStore
	for rows.Next() {
		var rv entities.ReviewWithStore
		if err := rows.Scan(&rv.ID, &rv.Author, &rv.Rating, &rv.Comment, &rv.Date, &rv.StoreID, &rv.StoreName); err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}
	return reviews, nil
}

func (a *PostgresAdapter) storeReviews(ctx context.Context, storeID int) ([]entities.Review, error) {
	query, args, err := a.db.Select("id", "author", "rating", "comment", "date").
		From("reviews").
		Where(goqu.Ex{"store_id": storeID}).
		Order(goqu.I("date").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build store reviews query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewCatalogUnavailableError(err)
	}
	defer rows.Close()

	var reviews []entities.Review
	for rows.Next() {
		var rv entities.Review
		if err := rows.Scan(&rv.ID, &rv.Author, &rv.Rating, &rv.Comment, &rv.Date); err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStore(row rowScanner) (*entities.Store, error) {
	store := &entities.Store{}
	var genre, area, prefecture, catchPhrase, description sql.NullString
	var imageURL, address, phone, openingHours, closingDay, priceRange sql.NullString
	var reviewCount sql.NullInt64
	var createdAt sql.NullTime

	err := row.Scan(
		&store.ID, &store.Name, &genre, &area, &prefecture, &catchPhrase,
		&description, &store.Rating, &imageURL, &address, &phone,
		&openingHours, &closingDay, &priceRange, &reviewCount, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	store.Genre = genre.String
	store.Area = area.String
	store.Prefecture = prefecture.String
	store.CatchPhrase = catchPhrase.String
	store.Description = description.String
	store.ImageURL = imageURL.String
	store.Address = address.String
	store.Phone = phone.String
	store.OpeningHours = openingHours.String
	store.ClosingDay = closingDay.String
	store.PriceRange = priceRange.String
	store.ReviewCount = int(reviewCount.Int64)
	if createdAt.Valid {
		store.CreatedAt = createdAt.Time
	}
	return store, nil
}
