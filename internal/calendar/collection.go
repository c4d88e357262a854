package calendar

import (
	"errors"

	"github.com/google/uuid"
)

// ErrIncompleteEvent rejects an add with an empty title, start, or end time.
var ErrIncompleteEvent = errors.New("event requires a title, start time, and end time")

// ErrInvalidDate rejects an add whose date is not a valid DD-MM-YYYY date.
var ErrInvalidDate = errors.New("event date is not a valid calendar date")

// Collection is one user's ordered sequence of events. Insertion order is
// preserved; events are addressed by their stable id for pin and delete.
type Collection struct {
	owner  string
	events []Event
}

// NewCollection wraps a loaded event list for its owner. Records persisted
// before ids existed are assigned one here so they stay addressable.
func NewCollection(owner string, events []Event) *Collection {
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
	}
	return &Collection{owner: owner, events: events}
}

// Owner returns the identity the collection belongs to.
func (c *Collection) Owner() string {
	return c.owner
}

// Events returns a copy of the collection in insertion order.
func (c *Collection) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Len returns the number of events in the collection.
func (c *Collection) Len() int {
	return len(c.events)
}

// Add validates and appends a new event. The stored event gets a fresh id,
// the collection's owner, pinned=false, and the gradient paired with its
// color tag. The input is untouched on rejection.
func (c *Collection) Add(e Event) (Event, error) {
	if e.Title == "" || e.StartTime == "" || e.EndTime == "" {
		return Event{}, ErrIncompleteEvent
	}
	if _, err := ParseDate(e.Date); err != nil {
		return Event{}, ErrInvalidDate
	}

	if e.Color == "" {
		e.Color = DefaultColor().Value
	}
	e.ID = uuid.NewString()
	e.Owner = c.owner
	e.Pinned = false
	e.Gradient = GradientFor(e.Color)

	c.events = append(c.events, e)
	return e, nil
}

// TogglePin flips the pinned flag on the referenced event. Unknown ids are
// a no-op and report false.
func (c *Collection) TogglePin(id string) bool {
	for i := range c.events {
		if c.events[i].ID == id {
			c.events[i].Pinned = !c.events[i].Pinned
			return true
		}
	}
	return false
}

// Delete removes the referenced event. Unknown ids are a no-op and report
// false.
func (c *Collection) Delete(id string) bool {
	for i := range c.events {
		if c.events[i].ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return true
		}
	}
	return false
}
