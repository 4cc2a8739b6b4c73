package appstate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mfalcone/calendario/internal/appstate"
	"github.com/mfalcone/calendario/internal/layout"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestDefaults(t *testing.T) {
	s := appstate.New(now)
	require.Equal(t, layout.ViewMonth, s.View())
	require.Equal(t, now, s.CurrentDate())
	require.Equal(t, "light", s.Theme())
	require.Equal(t, "it", s.Language())
	require.Empty(t, s.SelectedEntities())
	require.Empty(t, s.Search())
}

func TestNavigation(t *testing.T) {
	t.Run("month steps", func(t *testing.T) {
		s := appstate.New(now)
		s.Next()
		require.Equal(t, time.April, s.CurrentDate().Month())
		s.Prev()
		s.Prev()
		require.Equal(t, time.February, s.CurrentDate().Month())
	})

	t.Run("week steps", func(t *testing.T) {
		s := appstate.New(now)
		s.SetView(layout.ViewWeek)
		s.Next()
		require.Equal(t, 22, s.CurrentDate().Day())
		s.Prev()
		require.Equal(t, 15, s.CurrentDate().Day())
	})

	t.Run("day steps", func(t *testing.T) {
		s := appstate.New(now)
		s.SetView(layout.ViewDay)
		s.Prev()
		require.Equal(t, 14, s.CurrentDate().Day())
	})

	t.Run("today resets", func(t *testing.T) {
		s := appstate.New(now)
		s.Next()
		s.Today(now)
		require.Equal(t, now, s.CurrentDate())
	})
}

func TestToggleEntityFilter(t *testing.T) {
	s := appstate.New(now)
	s.ToggleEntityFilter(3)
	s.ToggleEntityFilter(5)
	require.Equal(t, []int64{3, 5}, s.SelectedEntities())

	s.ToggleEntityFilter(3)
	require.Equal(t, []int64{5}, s.SelectedEntities())

	s.SetSelectedEntities(nil)
	require.Empty(t, s.SelectedEntities())
}

func TestListeners(t *testing.T) {
	s := appstate.New(now)
	ticks := 0
	cancel := s.OnChange(func() { ticks++ })

	s.SetSearch("riunione")
	s.SetView(layout.ViewDay)
	s.Next()
	require.Equal(t, 3, ticks)

	cancel()
	s.SetSearch("")
	require.Equal(t, 3, ticks)
}
