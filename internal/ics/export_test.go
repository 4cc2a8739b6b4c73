package ics_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mfalcone/calendario/internal/ics"
	"github.com/mfalcone/calendario/internal/storage"
)

func TestExport(t *testing.T) {
	entities := []storage.Entity{{ID: 1, Name: "Lavoro", Color: "#1976D2"}}
	events := []storage.Event{
		{
			ID:         7,
			Title:      "Riunione progetto",
			Date:       "2024-03-05",
			StartTime:  "09:00",
			EndTime:    "10:30",
			Duration:   90,
			Mode:       storage.ModeOnline,
			MeetingURL: "https://meet.example.com/abc",
			EntityID:   1,
			Notes:      "portare slides",
			Recurrence: storage.RecurrenceWeekly,
			UpdatedAt:  1709625600000,
		},
		{
			ID:         8,
			Title:      "Visita",
			Date:       "2024-03-06",
			StartTime:  "14:00",
			EndTime:    "15:00",
			Duration:   60,
			Mode:       storage.ModePresence,
			Location:   "Via Roma 1 - Milano",
			EntityID:   99, // dangling
			Recurrence: storage.RecurrenceNone,
			UpdatedAt:  1709625600000,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ics.Export(events, entities, time.UTC, &buf))
	out := buf.String()

	require.Contains(t, out, "BEGIN:VCALENDAR")
	require.Contains(t, out, "METHOD:PUBLISH")
	require.Contains(t, out, "UID:event-7@calendario")
	require.Contains(t, out, "SUMMARY:Riunione progetto")
	require.Contains(t, out, "DTSTART:20240305T090000Z")
	require.Contains(t, out, "DTEND:20240305T103000Z")
	require.Contains(t, out, "URL:https://meet.example.com/abc")
	require.Contains(t, out, "CATEGORIES:Lavoro")
	require.Contains(t, out, "X-CALENDARIO-RECURRENCE:weekly")

	require.Contains(t, out, "UID:event-8@calendario")
	require.Contains(t, out, "LOCATION:Via Roma 1 - Milano")

	// The stored tag is never promoted to a real recurrence rule.
	require.NotContains(t, out, "RRULE")
	// A "none" tag is not exported at all; one weekly tag appears once.
	require.Equal(t, 1, strings.Count(out, "X-CALENDARIO-RECURRENCE"))
}

func TestExportSkipsUnparsableEvents(t *testing.T) {
	events := []storage.Event{
		{ID: 1, Title: "ok", Date: "2024-03-05", StartTime: "09:00", EndTime: "10:00", UpdatedAt: 1},
		{ID: 2, Title: "broken", Date: "not-a-date", StartTime: "09:00", EndTime: "10:00", UpdatedAt: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, ics.Export(events, nil, time.UTC, &buf))
	out := buf.String()
	require.Contains(t, out, "UID:event-1@calendario")
	require.NotContains(t, out, "UID:event-2@calendario")
}
