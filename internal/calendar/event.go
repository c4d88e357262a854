// Package calendar holds the event model and the calendar grid/query engine:
// month and year grids, per-user event collections, day lookups, overlap
// flagging, list filtering, and next-event selection. Everything here is
// plain computation; persistence and HTTP live elsewhere.
package calendar

import "time"

// Event is a single scheduled item. Date is kept as the raw stored
// DD-MM-YYYY string and parsed defensively at query time, so one corrupt
// record cannot break queries over the rest of the collection.
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Color     string `json:"color"`
	Gradient  string `json:"gradient"`
	Owner     string `json:"owner"`
	Pinned    bool   `json:"pinned"`
}

// Day returns the event's calendar date at local midnight.
func (e Event) Day() (time.Time, error) {
	return ParseDate(e.Date)
}

// StartsAt returns the event's date combined with its start time.
func (e Event) StartsAt() (time.Time, error) {
	day, err := e.Day()
	if err != nil {
		return time.Time{}, err
	}
	return combineDateTime(day, e.StartTime), nil
}

// PaletteEntry pairs a selectable color value with its display gradient.
type PaletteEntry struct {
	Value    string `json:"value"`
	Gradient string `json:"gradient"`
}

// Palette is the fixed set of color tags an event can carry. The first
// entry is the default.
var Palette = []PaletteEntry{
	{Value: "#3b82f6", Gradient: "linear-gradient(135deg, #3b82f6, #60a5fa)"},
	{Value: "#ef4444", Gradient: "linear-gradient(135deg, #ef4444, #f87171)"},
	{Value: "#10b981", Gradient: "linear-gradient(135deg, #10b981, #34d399)"},
	{Value: "#f59e0b", Gradient: "linear-gradient(135deg, #f59e0b, #fbbf24)"},
	{Value: "#8b5cf6", Gradient: "linear-gradient(135deg, #8b5cf6, #a78bfa)"},
	{Value: "#ec4899", Gradient: "linear-gradient(135deg, #ec4899, #f472b6)"},
}

// DefaultColor returns the palette entry used when no color is chosen.
func DefaultColor() PaletteEntry {
	return Palette[0]
}

// GradientFor returns the display gradient paired with a palette color,
// falling back to the default entry for unknown values.
func GradientFor(color string) string {
	for _, p := range Palette {
		if p.Value == color {
			return p.Gradient
		}
	}
	return DefaultColor().Gradient
}
