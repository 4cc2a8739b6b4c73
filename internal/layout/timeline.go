package layout

import (
	"time"

	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/util"
)

// TimelineGrid is the shared week/day view: a 24-hour column per day
// with events placed absolutely by time of day. Simultaneous events are
// not de-overlapped horizontally; they stack in z-order, a known
// limitation of this layout.
type TimelineGrid struct {
	Days       []TimelineDay
	CellHeight float64
}

// TotalHeight is the pixel height of a day column: 24 hour rows.
func (g *TimelineGrid) TotalHeight() float64 {
	return 24 * g.CellHeight
}

type TimelineDay struct {
	Date   time.Time
	Today  bool
	Blocks []Block
}

// Block is an event positioned in a day column. Top is the vertical
// pixel offset for its start time, Height the pixel height for its
// duration; a negative duration yields a negative height, passed
// through as-is.
type Block struct {
	Event  storage.Event
	Top    float64
	Height float64
}

func TimelineView(start time.Time, dayCount int, events []storage.Event, cfg Config) *TimelineGrid {
	h := cellHeight(cfg)
	grid := &TimelineGrid{CellHeight: h}
	for i := 0; i < dayCount; i++ {
		day := start.AddDate(0, 0, i)
		col := TimelineDay{Date: day, Today: util.SameDay(day, cfg.Now)}
		for _, e := range eventsOn(events, day) {
			mins, err := util.MinutesOfDay(e.StartTime)
			if err != nil {
				continue
			}
			col.Blocks = append(col.Blocks, Block{
				Event:  e,
				Top:    float64(mins) / 60 * h,
				Height: float64(e.Duration) / 60 * h,
			})
		}
		grid.Days = append(grid.Days, col)
	}
	return grid
}
