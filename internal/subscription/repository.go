package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cuotas/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrVersionConflict      = errors.New("subscription was modified concurrently")
)

const subscriptionColumns = `id, position, name, usd_price, total_debited, frequency, logo, members, version, created_at, updated_at`

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListAll(ctx context.Context) ([]Subscription, error) {
	subs := []Subscription{}
	err := r.db.SelectContext(ctx, &subs, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.GetContext(ctx, sub, r.db.Rebind(`
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription %d: %w", id, err)
	}
	return sub, nil
}

// Create stores sub at the end of the list and returns the assigned id.
func (r *Repository) Create(ctx context.Context, sub *Subscription) (int64, error) {
	now := time.Now().UTC()

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(`
		INSERT INTO subscriptions (position, name, usd_price, total_debited, frequency, logo, members, version, created_at, updated_at)
		VALUES ((SELECT COALESCE(MAX(position), -1) + 1 FROM subscriptions), ?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING id
	`), sub.Name, sub.USDPrice, sub.TotalDebited, sub.Frequency, sub.Logo, sub.Members, now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create subscription: %w", err)
	}

	sub.ID = id
	sub.Version = 1
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return id, nil
}

// Update replaces the stored record wholesale. sub.Version must match the
// stored version; on success it is advanced.
func (r *Repository) Update(ctx context.Context, sub *Subscription) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE subscriptions
		SET name = ?, usd_price = ?, total_debited = ?, frequency = ?, logo = ?, members = ?,
		    version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?
	`), sub.Name, sub.USDPrice, sub.TotalDebited, sub.Frequency, sub.Logo, sub.Members, now, sub.ID, sub.Version)
	if err != nil {
		return fmt.Errorf("update subscription %d: %w", sub.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update subscription %d: %w", sub.ID, err)
	}
	if n == 0 {
		exists, err := db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM subscriptions WHERE id = ?)`, sub.ID)
		if err != nil {
			return fmt.Errorf("update subscription %d: %w", sub.ID, err)
		}
		if !exists {
			return ErrSubscriptionNotFound
		}
		return ErrVersionConflict
	}

	sub.Version++
	sub.UpdatedAt = now
	return nil
}

// Remove deletes the record; a missing id is not an error.
func (r *Repository) Remove(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM subscriptions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("remove subscription %d: %w", id, err)
	}
	return nil
}

// ReorderAll makes subs the entire collection, in order, inside one
// transaction. Records absent from subs are deleted, records without an id
// are inserted, the rest are rewritten with their new position. Any failure
// rolls back and the previous collection stays intact.
func (r *Repository) ReorderAll(ctx context.Context, subs []Subscription) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reorder subscriptions: %w", err)
	}
	defer tx.Rollback()

	keep := make([]int64, 0, len(subs))
	for _, s := range subs {
		if s.ID != 0 {
			keep = append(keep, s.ID)
		}
	}

	if len(keep) == 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM subscriptions`)
	} else {
		var (
			query string
			args  []interface{}
		)
		query, args, err = sqlx.In(`DELETE FROM subscriptions WHERE id NOT IN (?)`, keep)
		if err == nil {
			_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)
		}
	}
	if err != nil {
		return fmt.Errorf("reorder subscriptions: %w", err)
	}

	now := time.Now().UTC()
	for i := range subs {
		s := &subs[i]
		if s.ID == 0 {
			err = tx.QueryRowxContext(ctx, tx.Rebind(`
				INSERT INTO subscriptions (position, name, usd_price, total_debited, frequency, logo, members, version, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
				RETURNING id
			`), i, s.Name, s.USDPrice, s.TotalDebited, s.Frequency, s.Logo, s.Members, now, now).Scan(&s.ID)
			if err != nil {
				return fmt.Errorf("reorder subscriptions: insert %q: %w", s.Name, err)
			}
			s.Version = 1
			s.CreatedAt = now
		} else {
			res, err := tx.ExecContext(ctx, tx.Rebind(`
				UPDATE subscriptions
				SET position = ?, name = ?, usd_price = ?, total_debited = ?, frequency = ?, logo = ?, members = ?,
				    version = version + 1, updated_at = ?
				WHERE id = ?
			`), i, s.Name, s.USDPrice, s.TotalDebited, s.Frequency, s.Logo, s.Members, now, s.ID)
			if err != nil {
				return fmt.Errorf("reorder subscriptions: update %d: %w", s.ID, err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return fmt.Errorf("reorder subscriptions: update %d: %w", s.ID, err)
			} else if n == 0 {
				return fmt.Errorf("reorder subscriptions: %d: %w", s.ID, ErrSubscriptionNotFound)
			}
			s.Version++
		}
		s.Position = i
		s.UpdatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder subscriptions: commit: %w", err)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM subscriptions`); err != nil {
		return 0, fmt.Errorf("count subscriptions: %w", err)
	}
	return n, nil
}
