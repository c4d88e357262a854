package calendar

import "time"

// Cell is one renderable day of a month grid.
type Cell struct {
	Date            time.Time `json:"date"`
	InCurrentPeriod bool      `json:"inCurrentPeriod"`
	IsToday         bool      `json:"isToday"`
	IsSearched      bool      `json:"isSearched"`
	Events          []Event   `json:"events"`
}

// MonthGrid is one month's worth of cells within a year view.
type MonthGrid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []Cell     `json:"cells"`
}

// MonthCells returns the ordered cells a fixed 7-column month grid must
// render for the month containing ref: the first of the month backed up to
// the closest preceding Sunday through the last of the month advanced to
// the closest following Saturday. The result is always a whole number of
// weeks; padding days from adjacent months carry InCurrentPeriod=false.
// searched may be nil when no date search is active.
func MonthCells(ref, today time.Time, searched *time.Time) []Cell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var cells []Cell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:            d,
			InCurrentPeriod: d.Month() == ref.Month() && d.Year() == ref.Year(),
			IsToday:         SameDay(d, today),
			IsSearched:      searched != nil && SameDay(d, *searched),
		})
	}
	return cells
}

// YearCells returns twelve month grids for the given year, in calendar order.
func YearCells(year int, today time.Time, searched *time.Time) []MonthGrid {
	grids := make([]MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		ref := time.Date(year, m, 1, 0, 0, 0, 0, today.Location())
		grids = append(grids, MonthGrid{
			Year:  year,
			Month: m,
			Cells: MonthCells(ref, today, searched),
		})
	}
	return grids
}
