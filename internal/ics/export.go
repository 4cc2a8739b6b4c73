// Package ics writes the event collection as an iCalendar document.
// Export only: the store stays the single source of truth and nothing
// is fetched over the network.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/util"
)

// recurrenceProp carries the stored recurrence tag verbatim. It is
// deliberately not an RRULE: recurrence tags are never expanded into
// occurrences, and exporting an RRULE would invent exactly that.
const recurrenceProp = "X-CALENDARIO-RECURRENCE"

// Export serializes one VEVENT per event. Times are rendered in the
// given location; a nil loc means time.Local. Events whose date or time
// does not parse are skipped rather than aborting the whole export.
func Export(events []storage.Event, entities []storage.Entity, loc *time.Location, w io.Writer) error {
	if loc == nil {
		loc = time.Local
	}
	names := make(map[int64]string, len(entities))
	for _, ent := range entities {
		names[ent.ID] = ent.Name
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		start, err := util.StartInstant(e.Date, e.StartTime, loc)
		if err != nil {
			continue
		}
		end, err := util.StartInstant(e.Date, e.EndTime, loc)
		if err != nil {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("event-%d@calendario", e.ID))
		ev.SetDtStampTime(time.UnixMilli(e.UpdatedAt).In(loc))
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(e.Title)
		if e.Notes != "" {
			ev.SetDescription(e.Notes)
		}
		switch e.Mode {
		case storage.ModePresence:
			if e.Location != "" {
				ev.SetLocation(e.Location)
			}
		case storage.ModeOnline:
			if e.MeetingURL != "" {
				ev.SetURL(e.MeetingURL)
			}
		}
		if name := names[e.EntityID]; name != "" {
			ev.AddProperty(ical.ComponentProperty("CATEGORIES"), name)
		}
		if e.Recurrence != "" && e.Recurrence != storage.RecurrenceNone {
			ev.AddProperty(ical.ComponentProperty(recurrenceProp), e.Recurrence)
		}
	}

	return cal.SerializeTo(w)
}
