package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"boatmatch/internal/domain"
	"boatmatch/internal/domain/entity"
	"boatmatch/pkg/errcodes"
)

const boatColumns = `id, name, type, length, price, engine_hours, engine, hull_material,
		location, image_url, features, key_features, style, updated_at`

// BoatRepository is the Postgres-backed catalog.
type BoatRepository struct {
	db *sqlx.DB
}

func NewBoatRepository(db *sqlx.DB) *BoatRepository {
	return &BoatRepository{db: db}
}

func (r *BoatRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %w", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// List returns the whole catalog ordered by name.
func (r *BoatRepository) List(ctx context.Context) ([]entity.Boat, error) {
	query := `SELECT ` + boatColumns + ` FROM boats ORDER BY name, id`

	var schemas []boatSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.CatalogUnavailable, "failed to list boats")
	}

	boats := make([]entity.Boat, 0, len(schemas))
	for _, s := range schemas {
		boats = append(boats, s.toDomain())
	}

	return boats, nil
}

func (r *BoatRepository) GetByID(ctx context.Context, id string) (entity.Boat, error) {
	query := `SELECT ` + boatColumns + ` FROM boats WHERE id = $1`

	var schema boatSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Boat{}, domain.NewError(errcodes.BoatNotFound, "boat not found")
		}

		return entity.Boat{}, domain.WrapError(err, errcodes.CatalogUnavailable, "failed to get boat")
	}

	return schema.toDomain(), nil
}

// Create inserts a boat or replaces the stored one with the same ID.
func (r *BoatRepository) Create(ctx context.Context, boat entity.Boat) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		return r.createTx(ctx, tx, boat)
	})
}

// CreateBatch stores boats atomically.
func (r *BoatRepository) CreateBatch(ctx context.Context, boats []entity.Boat) error {
	if len(boats) == 0 {
		return nil
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for i, boat := range boats {
			if err := r.createTx(ctx, tx, boat); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed at index %d", i))
			}
		}

		return nil
	})
}

func (r *BoatRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM boats`); err != nil {
		return 0, domain.WrapError(err, errcodes.CatalogUnavailable, "failed to count boats")
	}

	return count, nil
}

func (r *BoatRepository) createTx(ctx context.Context, tx *sqlx.Tx, boat entity.Boat) error {
	if boat.ID == "" {
		return domain.NewError(errcodes.InvalidBoatID, "boat id is empty")
	}

	schema, err := fromBoat(boat)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to encode boat")
	}

	query := `
		INSERT INTO boats (` + boatColumns + `)
		VALUES (:id, :name, :type, :length, :price, :engine_hours, :engine, :hull_material,
			:location, :image_url, :features, :key_features, :style, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			length = EXCLUDED.length,
			price = EXCLUDED.price,
			engine_hours = EXCLUDED.engine_hours,
			engine = EXCLUDED.engine,
			hull_material = EXCLUDED.hull_material,
			location = EXCLUDED.location,
			image_url = EXCLUDED.image_url,
			features = EXCLUDED.features,
			key_features = EXCLUDED.key_features,
			style = EXCLUDED.style,
			updated_at = EXCLUDED.updated_at`

	if _, err = tx.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save boat")
	}

	return nil
}
