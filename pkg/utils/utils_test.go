package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "mesmo dia", start: "2024-03-10", end: "2024-03-10", want: 0},
		{name: "mês inteiro", start: "2024-01-01", end: "2024-01-31", want: 30},
		{name: "ano bissexto", start: "2024-02-28", end: "2024-03-01", want: 2},
		{name: "invertido", start: "2024-03-05", end: "2024-03-01", want: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			require.NoError(t, err)
			end, err := ParseDate(tt.end)
			require.NoError(t, err)

			assert.Equal(t, tt.want, DaysBetween(*start, *end))
		})
	}
}

func TestDaysBetween_IgnoresClockTime(t *testing.T) {
	start := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(start, end))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-15", FormatDate(*date))

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("15/07/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, -0.67, RoundWithTwoDecimalPlace(-0.666))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}
