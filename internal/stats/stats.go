// Package stats derives summary metrics from the event and entity
// collections: per-entity counts and hours, the online/presence split
// and a daily trend over the current calendar month.
package stats

import (
	"errors"
	"math"
	"time"

	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/util"
)

// ErrInsufficientData signals that no statistics can be produced from
// an empty event collection.
var ErrInsufficientData = errors.New("not enough data for statistics")

// EntityStat aggregates the events of one entity. For events whose
// entity was deleted, Name is empty and Color is the default; the
// events still count, so the per-entity counts always sum to the total.
type EntityStat struct {
	EntityID int64
	Name     string
	Color    string
	Count    int
	Hours    float64
}

type ModeSplit struct {
	Online   int
	Presence int
}

// TrendPoint is one day of the monthly trend. Date is the stored
// "YYYY-MM-DD" form, Label the short "dd/MM" axis label. Days without
// events appear with Count 0.
type TrendPoint struct {
	Date  string
	Label string
	Count int
}

type Summary struct {
	Total           int
	TotalHours      float64
	PerEntity       []EntityStat
	Mode            ModeSplit
	OnlinePercent   int
	PresencePercent int
	Trend           []TrendPoint
}

// Compute builds the summary. now anchors the trend month. An empty
// event collection returns ErrInsufficientData; all ratio computations
// below are therefore guarded by a non-zero total.
func Compute(events []storage.Event, entities []storage.Entity, now time.Time) (Summary, error) {
	if len(events) == 0 {
		return Summary{}, ErrInsufficientData
	}

	summary := Summary{Total: len(events)}

	counts := make(map[int64]int)
	minutes := make(map[int64]int)
	order := make([]int64, 0)
	for _, e := range events {
		if _, seen := counts[e.EntityID]; !seen {
			order = append(order, e.EntityID)
		}
		counts[e.EntityID]++
		minutes[e.EntityID] += e.Duration

		switch e.Mode {
		case storage.ModeOnline:
			summary.Mode.Online++
		case storage.ModePresence:
			summary.Mode.Presence++
		}
	}

	byID := make(map[int64]storage.Entity, len(entities))
	for _, ent := range entities {
		byID[ent.ID] = ent
	}

	// Keep the entity collection's order for known entities, then any
	// dangling references in first-seen order.
	for _, ent := range entities {
		if counts[ent.ID] == 0 {
			continue
		}
		summary.PerEntity = append(summary.PerEntity, entityStat(ent.ID, ent.Name, ent.Color, counts, minutes))
	}
	for _, id := range order {
		if _, known := byID[id]; known {
			continue
		}
		summary.PerEntity = append(summary.PerEntity, entityStat(id, "", storage.DefaultEntityColor, counts, minutes))
	}

	for _, s := range summary.PerEntity {
		summary.TotalHours += s.Hours
	}
	summary.TotalHours = roundTenth(summary.TotalHours)

	summary.OnlinePercent = int(math.Round(float64(summary.Mode.Online) / float64(summary.Total) * 100))
	summary.PresencePercent = int(math.Round(float64(summary.Mode.Presence) / float64(summary.Total) * 100))

	summary.Trend = monthTrend(events, now)
	return summary, nil
}

func entityStat(id int64, name, color string, counts, minutes map[int64]int) EntityStat {
	return EntityStat{
		EntityID: id,
		Name:     name,
		Color:    color,
		Count:    counts[id],
		Hours:    roundTenth(float64(minutes[id]) / 60),
	}
}

// monthTrend counts events per calendar day of the month containing
// now, including zero-count days.
func monthTrend(events []storage.Event, now time.Time) []TrendPoint {
	perDay := make(map[string]int)
	for _, e := range events {
		perDay[e.Date]++
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	trend := make([]TrendPoint, 0, monthEnd.Day())
	for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		date := util.FormatDate(day)
		trend = append(trend, TrendPoint{
			Date:  date,
			Label: day.Format("02/01"),
			Count: perDay[date],
		})
	}
	return trend
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
