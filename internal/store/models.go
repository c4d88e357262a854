package store

import "time"

// User is a signed-in identity, keyed by email address. There is no
// password or external IdP; the email format check at sign-in is the whole
// of authentication.
type User struct {
	Email      string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// LastViewedDateKey is the preferences row holding the reference date the
// calendar was last viewed at.
const LastViewedDateKey = "last_viewed_date"
