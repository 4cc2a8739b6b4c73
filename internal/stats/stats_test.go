package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mfalcone/calendario/internal/stats"
	"github.com/mfalcone/calendario/internal/storage"
)

var march = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestComputeEmpty(t *testing.T) {
	_, err := stats.Compute(nil, nil, march)
	require.ErrorIs(t, err, stats.ErrInsufficientData)
}

func TestComputeScenario(t *testing.T) {
	entities := []storage.Entity{{ID: 1, Name: "Work", Color: "#1976D2"}}
	events := []storage.Event{
		{ID: 1, Date: "2024-03-05", StartTime: "09:00", EndTime: "10:30", Duration: 90, EntityID: 1, Mode: storage.ModeOnline},
	}

	summary, err := stats.Compute(events, entities, march)
	require.NoError(t, err)

	require.Equal(t, 1, summary.Total)
	require.Len(t, summary.PerEntity, 1)
	require.Equal(t, "Work", summary.PerEntity[0].Name)
	require.Equal(t, 1, summary.PerEntity[0].Count)
	require.Equal(t, 1.5, summary.PerEntity[0].Hours)
	require.Equal(t, stats.ModeSplit{Online: 1, Presence: 0}, summary.Mode)
	require.Equal(t, 100, summary.OnlinePercent)
	require.Equal(t, 0, summary.PresencePercent)
}

func TestComputeConservation(t *testing.T) {
	entities := []storage.Entity{
		{ID: 1, Name: "Lavoro", Color: "#1976D2"},
		{ID: 2, Name: "Salute", Color: "#D32F2F"},
		{ID: 3, Name: "Studio", Color: "#F57C00"},
	}
	events := []storage.Event{
		{ID: 1, Date: "2024-03-01", Duration: 60, EntityID: 1, Mode: storage.ModeOnline},
		{ID: 2, Date: "2024-03-02", Duration: 30, EntityID: 1, Mode: storage.ModePresence},
		{ID: 3, Date: "2024-03-02", Duration: 45, EntityID: 2, Mode: storage.ModeOnline},
	}

	summary, err := stats.Compute(events, entities, march)
	require.NoError(t, err)

	counted := 0
	for _, s := range summary.PerEntity {
		require.NotZero(t, s.Count, "entities without events must not appear")
		counted += s.Count
	}
	require.Equal(t, summary.Total, counted)
	require.Equal(t, summary.Total, summary.Mode.Online+summary.Mode.Presence)
	require.Len(t, summary.PerEntity, 2)
}

func TestComputeDanglingEntity(t *testing.T) {
	// Entity 1 was deleted; its events still count, under the default
	// color and an empty label.
	entities := []storage.Entity{{ID: 2, Name: "Salute", Color: "#D32F2F"}}
	events := []storage.Event{
		{ID: 1, Date: "2024-03-01", Duration: 60, EntityID: 1, Mode: storage.ModeOnline},
		{ID: 2, Date: "2024-03-02", Duration: 60, EntityID: 2, Mode: storage.ModePresence},
	}

	summary, err := stats.Compute(events, entities, march)
	require.NoError(t, err)
	require.Len(t, summary.PerEntity, 2)

	require.Equal(t, "Salute", summary.PerEntity[0].Name)
	dangling := summary.PerEntity[1]
	require.Equal(t, int64(1), dangling.EntityID)
	require.Empty(t, dangling.Name)
	require.Equal(t, storage.DefaultEntityColor, dangling.Color)
	require.Equal(t, 1, dangling.Count)

	counted := 0
	for _, s := range summary.PerEntity {
		counted += s.Count
	}
	require.Equal(t, summary.Total, counted)
}

func TestMonthlyTrend(t *testing.T) {
	events := []storage.Event{
		{ID: 1, Date: "2024-03-05", Duration: 60, EntityID: 1, Mode: storage.ModeOnline},
		{ID: 2, Date: "2024-03-05", Duration: 60, EntityID: 1, Mode: storage.ModeOnline},
		{ID: 3, Date: "2024-02-28", Duration: 60, EntityID: 1, Mode: storage.ModeOnline},
	}

	summary, err := stats.Compute(events, nil, march)
	require.NoError(t, err)

	require.Len(t, summary.Trend, 31)
	require.Equal(t, "2024-03-01", summary.Trend[0].Date)
	require.Equal(t, "01/03", summary.Trend[0].Label)
	require.Equal(t, "2024-03-31", summary.Trend[30].Date)

	for _, p := range summary.Trend {
		if p.Date == "2024-03-05" {
			require.Equal(t, 2, p.Count)
		} else {
			require.Equal(t, 0, p.Count, p.Date)
		}
	}
}

func TestHoursRounding(t *testing.T) {
	entities := []storage.Entity{{ID: 1, Name: "Lavoro", Color: "#1976D2"}}
	events := []storage.Event{
		{ID: 1, Date: "2024-03-01", Duration: 50, EntityID: 1, Mode: storage.ModeOnline},
		{ID: 2, Date: "2024-03-01", Duration: 50, EntityID: 1, Mode: storage.ModeOnline},
	}

	summary, err := stats.Compute(events, entities, march)
	require.NoError(t, err)
	// 100 minutes = 1.666..h, rounded to one decimal.
	require.Equal(t, 1.7, summary.PerEntity[0].Hours)
	require.Equal(t, 1.7, summary.TotalHours)
}
