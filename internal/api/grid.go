package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gitea.jw6.us/james/pocketcal/internal/calendar"
	"gitea.jw6.us/james/pocketcal/internal/http/errors"
)

// queryDateLayout is the ISO form used by grid query parameters. Stored
// event dates keep their own DD-MM-YYYY form; only the API surface speaks
// ISO.
const queryDateLayout = "2006-01-02"

type monthGridResponse struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Cells []calendar.Cell `json:"cells"`
}

type yearGridResponse struct {
	Year  int                  `json:"year"`
	Grids []calendar.MonthGrid `json:"grids"`
}

// MonthGrid returns the cells of the month containing the requested date,
// defaulting to the current month, with the signed-in user's events attached.
// An invalid date or search parameter is rejected outright; nothing renders.
func (h *Handler) MonthGrid(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	ref := now
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation(queryDateLayout, v, time.Local)
		if err != nil {
			errors.BadRequestError(w, r, err, "invalid date parameter")
			return
		}
		ref = parsed
	}

	searched, ok := h.parseSearch(w, r)
	if !ok {
		return
	}

	coll, err := h.collectionFor(r)
	if err != nil {
		errors.InternalError(w, r, err, "failed to load events")
		return
	}

	cells := calendar.MonthCells(ref, now, searched)
	coll.AttachEvents(cells)

	h.writeJSON(w, r, http.StatusOK, monthGridResponse{
		Year:  ref.Year(),
		Month: ref.Month(),
		Cells: cells,
	})
}

// YearGrid returns twelve month grids for the requested year, defaulting to
// the current one.
func (h *Handler) YearGrid(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	year := now.Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 9999 {
			errors.BadRequestError(w, r, fmt.Errorf("year %q out of range", v), "invalid year parameter")
			return
		}
		year = parsed
	}

	searched, ok := h.parseSearch(w, r)
	if !ok {
		return
	}

	coll, err := h.collectionFor(r)
	if err != nil {
		errors.InternalError(w, r, err, "failed to load events")
		return
	}

	grids := calendar.YearCells(year, now, searched)
	for i := range grids {
		coll.AttachEvents(grids[i].Cells)
	}

	h.writeJSON(w, r, http.StatusOK, yearGridResponse{Year: year, Grids: grids})
}

func (h *Handler) parseSearch(w http.ResponseWriter, r *http.Request) (*time.Time, bool) {
	v := r.URL.Query().Get("search")
	if v == "" {
		return nil, true
	}
	parsed, err := time.ParseInLocation(queryDateLayout, v, time.Local)
	if err != nil {
		errors.BadRequestError(w, r, err, "invalid search parameter")
		return nil, false
	}
	return &parsed, true
}
