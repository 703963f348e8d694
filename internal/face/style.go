package face

import "image/color"

var (
	// PrimaryColor is used for every unset color except the seconds needle
	// and the inner hub.
	PrimaryColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// SecondaryColor is light gray.
	SecondaryColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// Style holds the static colors of the face and the display mode.
// A zero color means unset and is replaced by a default in Configure.
type Style struct {
	CenterInnerColor   color.NRGBA
	CenterOuterColor   color.NRGBA
	SecondsNeedleColor color.NRGBA
	HoursNeedleColor   color.NRGBA
	MinutesNeedleColor color.NRGBA
	DegreesColor       color.NRGBA
	HoursValuesColor   color.NRGBA
	NumbersColor       color.NRGBA
	ShowAnalog         bool
}

// DefaultStyle returns the analog style with every color defaulted.
func DefaultStyle() Style {
	return Style{ShowAnalog: true}.withDefaults()
}

func (s Style) withDefaults() Style {
	orDefault := func(c *color.NRGBA, def color.NRGBA) {
		if *c == (color.NRGBA{}) {
			*c = def
		}
	}
	orDefault(&s.CenterInnerColor, SecondaryColor)
	orDefault(&s.CenterOuterColor, PrimaryColor)
	orDefault(&s.SecondsNeedleColor, SecondaryColor)
	orDefault(&s.HoursNeedleColor, PrimaryColor)
	orDefault(&s.MinutesNeedleColor, PrimaryColor)
	orDefault(&s.DegreesColor, PrimaryColor)
	orDefault(&s.HoursValuesColor, PrimaryColor)
	orDefault(&s.NumbersColor, PrimaryColor)
	return s
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
