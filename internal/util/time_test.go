package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mfalcone/calendario/internal/util"
)

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "10:30", want: 630},
		{in: "23:59", want: 1439},
		{in: "9:00", want: 540}, // the parser tolerates a missing leading zero
		{in: "24:00", wantErr: true},
		{in: "nope", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := util.MinutesOfDay(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2024-03-07 is a Thursday.
	thu := time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC)
	mon := util.StartOfWeek(thu)
	require.Equal(t, time.Monday, mon.Weekday())
	require.Equal(t, 4, mon.Day())
	require.Equal(t, 0, mon.Hour())

	// A Monday maps to itself.
	require.Equal(t, mon, util.StartOfWeek(mon))

	// A Sunday maps back to the preceding Monday.
	sun := time.Date(2024, time.March, 10, 1, 0, 0, 0, time.UTC)
	require.Equal(t, mon, util.StartOfWeek(sun))
}

func TestDateRoundTrip(t *testing.T) {
	d, err := util.ParseDate("2024-03-05")
	require.NoError(t, err)
	require.Equal(t, "2024-03-05", util.FormatDate(d))

	_, err = util.ParseDate("05/03/2024")
	require.Error(t, err)
}

func TestStartInstant(t *testing.T) {
	got, err := util.StartInstant("2024-03-05", "09:00", time.UTC)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), got)

	_, err = util.StartInstant("2024-03-05", "24:30", time.UTC)
	require.Error(t, err)
}
