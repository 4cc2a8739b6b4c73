package layout

import (
	"time"

	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/util"
)

// MonthGrid is the month view: whole Monday-start weeks from the Monday
// on or before the first of the month through the Sunday on or after
// its last day. len(Cells) is always a multiple of 7.
type MonthGrid struct {
	First time.Time
	Last  time.Time
	Cells []Cell
}

// Cell is one day of the month grid. Events holds at most
// MaxEventsPerCell events in the order they appeared in the input;
// the remainder is summarized by MoreCount.
type Cell struct {
	Date      time.Time
	InMonth   bool
	Today     bool
	Events    []storage.Event
	MoreCount int
}

func MonthView(ref time.Time, events []storage.Event, cfg Config) *MonthGrid {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	first := util.StartOfWeek(monthStart)
	last := util.StartOfWeek(monthEnd).AddDate(0, 0, 6)

	grid := &MonthGrid{First: first, Last: last}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		dayEvents := eventsOn(events, day)
		cell := Cell{
			Date:    day,
			InMonth: day.Month() == monthStart.Month(),
			Today:   util.SameDay(day, cfg.Now),
			Events:  dayEvents,
		}
		if len(dayEvents) > MaxEventsPerCell {
			cell.Events = dayEvents[:MaxEventsPerCell]
			cell.MoreCount = len(dayEvents) - MaxEventsPerCell
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid
}
