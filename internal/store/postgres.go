package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gitea.jw6.us/james/pocketcal/internal/calendar"
)

// userRepo implements UserRepository.
type userRepo struct {
	pool *pgxpool.Pool
}

func (r *userRepo) Upsert(ctx context.Context, email string) (*User, error) {
	defer observeDB(ctx, "users.upsert")()

	const q = `INSERT INTO users (email) VALUES ($1)
ON CONFLICT (email) DO UPDATE SET last_seen_at = now()
RETURNING email, created_at, last_seen_at`

	var u User
	if err := r.pool.QueryRow(ctx, q, email).Scan(&u.Email, &u.CreatedAt, &u.LastSeenAt); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	defer observeDB(ctx, "users.get_by_email")()

	const q = `SELECT email, created_at, last_seen_at FROM users WHERE email = $1`

	var u User
	err := r.pool.QueryRow(ctx, q, email).Scan(&u.Email, &u.CreatedAt, &u.LastSeenAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// eventListRepo implements EventListRepository.
type eventListRepo struct {
	pool *pgxpool.Pool
}

func (r *eventListRepo) Load(ctx context.Context, owner string) ([]calendar.Event, error) {
	defer observeDB(ctx, "events.load")()

	const q = `SELECT id, title, event_date, start_time, end_time, color, gradient, pinned
FROM events WHERE owner = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, q, owner)
	if err != nil {
		return nil, fmt.Errorf("load events for %s: %w", owner, err)
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		e := calendar.Event{Owner: owner}
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.StartTime, &e.EndTime, &e.Color, &e.Gradient, &e.Pinned); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load events for %s: %w", owner, err)
	}
	return events, nil
}

// Save replaces the owner's stored list with the given one, preserving
// order via the position column. Runs in a single transaction so a failed
// write never leaves a half-replaced list.
func (r *eventListRepo) Save(ctx context.Context, owner string, events []calendar.Event) error {
	defer observeDB(ctx, "events.save")()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin save for %s: %w", owner, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM events WHERE owner = $1`, owner); err != nil {
		return fmt.Errorf("clear events for %s: %w", owner, err)
	}

	const ins = `INSERT INTO events (owner, position, id, title, event_date, start_time, end_time, color, gradient, pinned)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for i, e := range events {
		if _, err := tx.Exec(ctx, ins, owner, i, e.ID, e.Title, e.Date, e.StartTime, e.EndTime, e.Color, e.Gradient, e.Pinned); err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save for %s: %w", owner, err)
	}
	return nil
}

// prefRepo implements PreferenceRepository.
type prefRepo struct {
	pool *pgxpool.Pool
}

func (r *prefRepo) Get(ctx context.Context, key string) (string, error) {
	defer observeDB(ctx, "prefs.get")()

	const q = `SELECT value FROM preferences WHERE key = $1`

	var value string
	err := r.pool.QueryRow(ctx, q, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %s: %w", key, err)
	}
	return value, nil
}

func (r *prefRepo) Set(ctx context.Context, key, value string) error {
	defer observeDB(ctx, "prefs.set")()

	const q = `INSERT INTO preferences (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	if _, err := r.pool.Exec(ctx, q, key, value); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}
