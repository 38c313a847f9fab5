package lunar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_SolarToLunar(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	tests := []struct {
		name      string
		solar     time.Time
		wantMonth int
		wantDay   int
	}{
		{
			name:      "lunar new year 2025",
			solar:     time.Date(2025, time.January, 29, 0, 0, 0, 0, time.UTC),
			wantMonth: 1,
			wantDay:   1,
		},
		{
			name:      "lunar new year 2024",
			solar:     time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantMonth: 1,
			wantDay:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			month, day, err := conv.SolarToLunar(tt.solar)

			require.NoError(t, err)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantDay, day)
		})
	}
}

func TestConverter_LunarToSolar(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	got, err := conv.LunarToSolar(2025, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestConverter_RoundTrip(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	solar := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	month, day, err := conv.SolarToLunar(solar)
	require.NoError(t, err)

	back, err := conv.LunarToSolar(2025, month, day)
	require.NoError(t, err)
	assert.Equal(t, solar, back)
}

func TestConverter_InvalidLunarDate(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	// There is no 13th lunar month.
	_, err := conv.LunarToSolar(2025, 13, 1)
	assert.ErrorIs(t, err, ErrConversion)
}
