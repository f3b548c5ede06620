package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Record inserts entry, filling ID and CreatedAt when unset.
func (r *Repository) Record(ctx context.Context, entry *Entry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO transactions (
			id, order_id, operation, amount, success, message,
			authorization_id, error_code, raw, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.OrderID,
		entry.Operation,
		entry.Amount,
		entry.Success,
		entry.Message,
		entry.Authorization,
		entry.ErrorCode,
		rawOrNil(entry.Raw),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}

// FindByOrderID returns the journal entries of an order, newest first.
// Entries sharing a timestamp come back in reverse insertion order.
func (r *Repository) FindByOrderID(ctx context.Context, orderID string) ([]*Entry, error) {
	query := `
		SELECT id, order_id, operation, amount, success, message,
		       authorization_id, error_code, raw, created_at
		FROM transactions
		WHERE order_id = $1
		ORDER BY created_at DESC, seq DESC
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.CollectableRow) (*Entry, error) {
	var e Entry
	err := row.Scan(
		&e.ID,
		&e.OrderID,
		&e.Operation,
		&e.Amount,
		&e.Success,
		&e.Message,
		&e.Authorization,
		&e.ErrorCode,
		&e.Raw,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// rawOrNil keeps empty payloads as SQL NULL; JSONB rejects an empty string.
func rawOrNil(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

// NopRecorder is used when the journal is disabled.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, *Entry) error {
	return nil
}

func (NopRecorder) FindByOrderID(context.Context, string) ([]*Entry, error) {
	return []*Entry{}, nil
}
