package calendar

import (
	"fmt"
	"log"
	"sort"
	"time"
)

// Filter selects which slice of a user's events a list query returns.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterUpcoming  Filter = "upcoming"
	FilterCompleted Filter = "completed"
)

// ParseFilter validates a filter string, defaulting empty input to "all".
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterUpcoming, FilterCompleted:
		return Filter(s), nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// EventsOn returns the owner's events whose date equals the given calendar
// date. Events whose stored date fails to parse are logged and skipped,
// never surfaced as an error.
func (c *Collection) EventsOn(day time.Time) []Event {
	var out []Event
	for _, e := range c.events {
		if e.Owner != c.owner {
			continue
		}
		d, err := e.Day()
		if err != nil {
			log.Printf("[WARN] skipping event %s with unparseable date: %v", e.ID, err)
			continue
		}
		if SameDay(d, day) {
			out = append(out, e)
		}
	}
	return out
}

// HasOverlap reports whether two or more events share the given calendar
// date. This is a day-granularity cardinality check: two events on the same
// day are flagged even when their time ranges do not intersect. That is the
// documented conflict rule, not an oversight.
func (c *Collection) HasOverlap(day time.Time) bool {
	return len(c.EventsOn(day)) >= 2
}

// My returns the owner's events matching the filter, sorted ascending by
// date then start time, with ties kept in insertion order. An event
// happening today counts as upcoming regardless of its start time.
func (c *Collection) My(filter Filter, now time.Time) []Event {
	type keyed struct {
		event Event
		start time.Time
	}

	var items []keyed
	for _, e := range c.events {
		if e.Owner != c.owner {
			continue
		}
		start, err := e.StartsAt()
		if err != nil {
			log.Printf("[WARN] skipping event %s with unparseable date: %v", e.ID, err)
			continue
		}
		items = append(items, keyed{event: e, start: start})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].start.Before(items[j].start)
	})

	var out []Event
	for _, it := range items {
		switch filter {
		case FilterUpcoming:
			if !SameDay(it.start, now) && it.start.Before(now) {
				continue
			}
		case FilterCompleted:
			if SameDay(it.start, now) || !it.start.Before(now) {
				continue
			}
		}
		out = append(out, it.event)
	}
	return out
}

// Next returns the owner's earliest event strictly after now, by date plus
// start time. Pinned status does not matter. The second return is false
// when no such event exists.
func (c *Collection) Next(now time.Time) (Event, bool) {
	var (
		best      Event
		bestStart time.Time
		found     bool
	)
	for _, e := range c.events {
		if e.Owner != c.owner {
			continue
		}
		start, err := e.StartsAt()
		if err != nil {
			log.Printf("[WARN] skipping event %s with unparseable date: %v", e.ID, err)
			continue
		}
		if !start.After(now) {
			continue
		}
		if !found || start.Before(bestStart) {
			best, bestStart, found = e, start, true
		}
	}
	return best, found
}

// AttachEvents fills each grid cell with the owner's events landing on it.
func (c *Collection) AttachEvents(cells []Cell) {
	for i := range cells {
		cells[i].Events = c.EventsOn(cells[i].Date)
	}
}
