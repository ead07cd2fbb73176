package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUTCTimeScanTime(t *testing.T) {
	local := time.Date(2023, 5, 4, 10, 30, 0, 0, time.FixedZone("ICT", 7*60*60))

	var got UTCTime
	require.NoError(t, got.Scan(local))
	require.Equal(t, time.UTC, got.Time().Location())
	require.True(t, got.Time().Equal(local))
}

func TestUTCTimeScanString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Time
	}{
		{
			name:  "sqlite text with offset",
			value: "2023-05-04 10:30:00.5+07:00",
			want:  time.Date(2023, 5, 4, 3, 30, 0, 500000000, time.UTC),
		},
		{
			name:  "mysql text without offset",
			value: []byte("2023-05-04 10:30:00.123456"),
			want:  time.Date(2023, 5, 4, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "rfc3339",
			value: "2023-05-04T10:30:00Z",
			want:  time.Date(2023, 5, 4, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got UTCTime
			require.NoError(t, got.Scan(tt.value))
			require.Equal(t, time.UTC, got.Time().Location())
			require.True(t, got.Time().Equal(tt.want))
		})
	}
}

func TestUTCTimeScanInvalid(t *testing.T) {
	var got UTCTime
	require.Error(t, got.Scan("yesterday"))
	require.Error(t, got.Scan(12345))
}

func TestUTCTimeValue(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)

	v, err := NewUTCTime(time.Date(2023, 5, 4, 10, 30, 0, 0, loc)).Value()
	require.NoError(t, err)

	stored, ok := v.(time.Time)
	require.True(t, ok)
	require.Equal(t, time.UTC, stored.Location())
	require.Equal(t, time.Date(2023, 5, 4, 3, 30, 0, 0, time.UTC), stored)
}
