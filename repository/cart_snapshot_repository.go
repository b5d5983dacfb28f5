package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"snackshop/models"
)

// DBPool matches the methods from *pgxpool.Pool that we use
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// CartSnapshotRepository persists the lines of one cart session
type CartSnapshotRepository struct {
	pool      DBPool
	sessionID string
}

// Ensure CartSnapshotRepository implements CartSnapshotRepositoryInterface
var _ CartSnapshotRepositoryInterface = (*CartSnapshotRepository)(nil)

// NewCartSnapshotRepository creates a repository for the given session
func NewCartSnapshotRepository(pool DBPool, sessionID string) *CartSnapshotRepository {
	return &CartSnapshotRepository{pool: pool, sessionID: sessionID}
}

// Load returns the saved lines of the session in cart order
func (r *CartSnapshotRepository) Load(ctx context.Context) ([]models.CartItem, error) {
	query := `
		SELECT snack_id, quantity
		FROM cart_snapshot_items
		WHERE session_id = $1
		ORDER BY position ASC
	`

	rows, err := r.pool.Query(ctx, query, r.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart snapshot: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.SnackID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart snapshot item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	return items, nil
}

// Save replaces the saved lines of the session in a single transaction
func (r *CartSnapshotRepository) Save(ctx context.Context, items []models.CartItem) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM cart_snapshot_items WHERE session_id = $1`, r.sessionID); err != nil {
		return fmt.Errorf("failed to clear cart snapshot: %w", err)
	}

	insert := `
		INSERT INTO cart_snapshot_items (session_id, position, snack_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	for i, item := range items {
		if _, err = tx.Exec(ctx, insert, r.sessionID, i, item.SnackID, item.Quantity); err != nil {
			return fmt.Errorf("failed to insert cart snapshot item %s: %w", item.SnackID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cart snapshot: %w", err)
	}
	return nil
}
