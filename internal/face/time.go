package face

import (
	"fmt"
	"time"
)

// Meridiem is the AM/PM designator.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// TimeOfDay is a 12-hour snapshot of the wall clock.
// Hour is in 0..11; noon and midnight are both 0.
type TimeOfDay struct {
	Hour     int
	Minute   int
	Second   int
	Meridiem Meridiem
}

// FromTime samples t in its own location.
func FromTime(t time.Time) TimeOfDay {
	m := AM
	if t.Hour() >= 12 {
		m = PM
	}
	return TimeOfDay{
		Hour:     t.Hour() % 12,
		Minute:   t.Minute(),
		Second:   t.Second(),
		Meridiem: m,
	}
}

// clock returns the HH:MM:SS part of the digital readout.
func (t TimeOfDay) clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// FormatDigital formats t as HH:MM:SSAM or HH:MM:SSPM.
// The hour is not rewritten at the 12 o'clock boundary, so noon reads "00".
func FormatDigital(t TimeOfDay) string {
	return t.clock() + t.Meridiem.String()
}
