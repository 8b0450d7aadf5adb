package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) Date {
	return NewDate(year, month, d)
}

func TestNewDateInterval_RejectsReversedRange(t *testing.T) {
	_, err := NewDateInterval(day(2024, time.March, 12), day(2024, time.March, 10))
	assert.Error(t, err)

	_, err = NewDateInterval(Date{}, day(2024, time.March, 10))
	assert.Error(t, err)
}

func TestDateInterval_Days(t *testing.T) {
	tests := []struct {
		name     string
		start    Date
		end      Date
		expected int
	}{
		{"single day", day(2024, time.March, 10), day(2024, time.March, 10), 1},
		{"three days", day(2024, time.March, 10), day(2024, time.March, 12), 3},
		{"across month end", day(2024, time.February, 28), day(2024, time.March, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := NewDateInterval(tt.start, tt.end)
			require.NoError(t, err)

			days := iv.Days()
			assert.Len(t, days, tt.expected)
			assert.Equal(t, tt.start.DaysUntil(tt.end)+1, len(days))

			// Strictly ascending, one-day steps, no gaps.
			for i := 1; i < len(days); i++ {
				assert.Equal(t, days[i-1].AddDays(1), days[i])
			}
		})
	}
}

func TestDateInterval_Nights(t *testing.T) {
	iv, err := NewDateInterval(day(2024, time.March, 20), day(2024, time.March, 25))
	require.NoError(t, err)
	assert.Equal(t, 5, iv.Nights())

	// A single-day interval yields zero nights; pricing callers must guard.
	same, err := NewDateInterval(day(2024, time.March, 20), day(2024, time.March, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, same.Nights())
}

func TestRelate(t *testing.T) {
	mk := func(s, e Date) DateInterval {
		iv, err := NewDateInterval(s, e)
		require.NoError(t, err)
		return iv
	}

	a := mk(day(2024, time.March, 1), day(2024, time.March, 5))

	tests := []struct {
		name     string
		other    DateInterval
		expected IntervalRelation
	}{
		{"disjoint after", mk(day(2024, time.March, 7), day(2024, time.March, 9)), RelationBefore},
		{"disjoint before", mk(day(2024, time.February, 1), day(2024, time.February, 20)), RelationAfter},
		{"checkout meets checkin", mk(day(2024, time.March, 5), day(2024, time.March, 9)), RelationTouches},
		{"shared interior day", mk(day(2024, time.March, 4), day(2024, time.March, 9)), RelationOverlaps},
		{"contained", mk(day(2024, time.March, 2), day(2024, time.March, 4)), RelationOverlaps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Relate(a, tt.other))
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := day(2024, time.March, 10)
	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-10"`, string(raw))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(raw))
	assert.True(t, parsed.Equal(d))

	var bad Date
	assert.Error(t, bad.UnmarshalJSON([]byte(`"10-03-2024"`)))
}
