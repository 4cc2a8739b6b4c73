// Package layout turns a view mode, a reference date and the event
// collection into view-ready grid structures. Everything here is a pure
// function of its inputs; clicks produce data for the caller and do no
// I/O themselves.
package layout

import (
	"fmt"
	"time"

	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/util"
)

type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// DefaultCellHeight is the pixel height of one hour row in the
// timeline views.
const DefaultCellHeight = 80.0

// MaxEventsPerCell caps how many events a month cell shows directly;
// the rest collapse into MoreCount.
const MaxEventsPerCell = 4

type Config struct {
	// CellHeight overrides DefaultCellHeight when > 0.
	CellHeight float64
	// Now anchors the "today" markers.
	Now time.Time
}

// Model is the result of a layout pass; exactly one of Month and
// Timeline is set, according to View.
type Model struct {
	View     View
	Month    *MonthGrid
	Timeline *TimelineGrid
}

// Layout dispatches on the view mode. Week and day share one timeline
// algorithm parameterized by day count.
func Layout(view View, ref time.Time, events []storage.Event, cfg Config) (Model, error) {
	switch view {
	case ViewMonth:
		return Model{View: view, Month: MonthView(ref, events, cfg)}, nil
	case ViewWeek:
		return Model{View: view, Timeline: TimelineView(util.StartOfWeek(ref), 7, events, cfg)}, nil
	case ViewDay:
		return Model{View: view, Timeline: TimelineView(util.TruncateToDay(ref), 1, events, cfg)}, nil
	default:
		return Model{}, fmt.Errorf("unknown view mode %q", view)
	}
}

// Draft is the prefilled form payload produced by clicking an empty
// slot: the clicked date and time, with the end one hour later.
type Draft struct {
	Date      string
	StartTime string
	EndTime   string
}

// SlotClick builds the creation draft for a clicked (day, time) slot.
// The end time is the start hour plus one, formatted directly; a click
// on the last hour row yields an out-of-range "24:MM" end, matching the
// historical behavior of the form prefill.
func SlotClick(day time.Time, hhmm string) Draft {
	var hour, min int
	fmt.Sscanf(hhmm, "%d:%d", &hour, &min)
	return Draft{
		Date:      util.FormatDate(day),
		StartTime: hhmm,
		EndTime:   fmt.Sprintf("%02d:%02d", hour+1, min),
	}
}

// EventClick yields the clicked event for editing.
func EventClick(e storage.Event) storage.Event {
	return e
}

// EntityColor resolves the display color of an entity reference,
// falling back to the default for dangling references.
func EntityColor(entities []storage.Entity, id int64) string {
	for _, e := range entities {
		if e.ID == id {
			return e.Color
		}
	}
	return storage.DefaultEntityColor
}

func cellHeight(cfg Config) float64 {
	if cfg.CellHeight > 0 {
		return cfg.CellHeight
	}
	return DefaultCellHeight
}

func eventsOn(events []storage.Event, day time.Time) []storage.Event {
	date := util.FormatDate(day)
	matched := make([]storage.Event, 0)
	for _, e := range events {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}
