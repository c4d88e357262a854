package store

import (
	"context"

	"gitea.jw6.us/james/pocketcal/internal/calendar"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Upsert creates the user on first sign-in and touches last_seen_at on
	// every subsequent one.
	Upsert(ctx context.Context, email string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// EventListRepository persists each owner's ordered event list as a whole.
// Every mutation writes the full list back, mirroring how the working
// collection is swapped wholesale on sign-in.
type EventListRepository interface {
	Load(ctx context.Context, owner string) ([]calendar.Event, error)
	Save(ctx context.Context, owner string, events []calendar.Event) error
}

// PreferenceRepository stores small key/value settings such as the
// last-viewed reference date.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
