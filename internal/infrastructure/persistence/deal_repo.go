package persistence

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"dealradar/internal/domain"
	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/deals"
	"dealradar/pkg/errcodes"
	"dealradar/pkg/lox"
)

// DealRepository persists the merged snapshot, one row per identity key.
type DealRepository struct {
	db *sqlx.DB
}

func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
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
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// UpsertDeals replaces the snapshot atomically. Position preserves the merge
// order so reads come back in the same order they were written.
func (r *DealRepository) UpsertDeals(ctx context.Context, list []entity.Deal) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM deals`); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to clear snapshot")
		}

		const query = `
			INSERT INTO deals (
				identity_key, title, image, list_price, current_price, platforms,
				deal_id, game_id, steam_app_id, claim_links,
				steam_rating_percent, steam_rating_count, metacritic_score, deal_rating,
				position, updated_at
			) VALUES (
				:identity_key, :title, :image, :list_price, :current_price, :platforms,
				:deal_id, :game_id, :steam_app_id, :claim_links,
				:steam_rating_percent, :steam_rating_count, :metacritic_score, :deal_rating,
				:position, :updated_at
			)
			ON CONFLICT (identity_key) DO UPDATE SET
				title = EXCLUDED.title,
				image = EXCLUDED.image,
				list_price = EXCLUDED.list_price,
				current_price = EXCLUDED.current_price,
				platforms = EXCLUDED.platforms,
				deal_id = EXCLUDED.deal_id,
				game_id = EXCLUDED.game_id,
				steam_app_id = EXCLUDED.steam_app_id,
				claim_links = EXCLUDED.claim_links,
				steam_rating_percent = EXCLUDED.steam_rating_percent,
				steam_rating_count = EXCLUDED.steam_rating_count,
				metacritic_score = EXCLUDED.metacritic_score,
				deal_rating = EXCLUDED.deal_rating,
				position = EXCLUDED.position,
				updated_at = EXCLUDED.updated_at`

		for i, d := range list {
			schema, err := fromDeal(d, i)
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to encode deal")
			}

			if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to upsert deal")
			}
		}

		return nil
	})
}

// ListDeals reads the snapshot in merge order. Price and sale filters run in
// SQL; the platform filter runs in memory because platforms is a JSON array.
func (r *DealRepository) ListDeals(ctx context.Context, f deals.ListFilter) ([]entity.Deal, error) {
	query := `SELECT * FROM deals WHERE 1=1`
	args := []any{}

	if f.MinPrice > 0 {
		args = append(args, f.MinPrice)
		query += ` AND current_price >= $` + argn(len(args))
	}
	if f.MaxPrice > 0 {
		args = append(args, f.MaxPrice)
		query += ` AND current_price <= $` + argn(len(args))
	}
	if f.OnSaleOnly {
		query += ` AND (current_price < list_price OR current_price <= 0.01)`
	}

	query += ` ORDER BY position ASC`

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deals")
	}

	result, err := lox.MapErr(schemas, func(s dealSchema) (entity.Deal, error) {
		return s.toDomain()
	})
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to decode deal")
	}

	if len(f.Stores) > 0 {
		result = deals.FilterDeals(result, deals.ListFilter{Stores: f.Stores})
	}

	return result, nil
}

func argn(n int) string {
	return strconv.Itoa(n)
}
