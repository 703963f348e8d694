// Package config is the configuration surface of the clock: option names,
// defaults, and loading from flags, environment and a YAML file.
package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iburimskiy/clockface/internal/face"
)

const (
	WindowWidth  = 480
	WindowHeight = 480

	EnvPrefix = "CLOCKFACE"
	AppName   = "clockface"

	// TickSoundClick selects the built-in synthesized tick.
	TickSoundClick = "click"
)

// Option names, shared by flags, YAML keys and environment variables.
const (
	KeyConfig             = "config"
	KeyWidth              = "width"
	KeyHeight             = "height"
	KeyPadding            = "padding"
	KeyBackground         = "background"
	KeyLogLevel           = "logLevel"
	KeyTickSound          = "tickSound"
	KeyShowAnalog         = "showAnalog"
	KeyCenterInnerColor   = "centerInnerColor"
	KeyCenterOuterColor   = "centerOuterColor"
	KeySecondsNeedleColor = "secondsNeedleColor"
	KeyHoursNeedleColor   = "hoursNeedleColor"
	KeyMinutesNeedleColor = "minutesNeedleColor"
	KeyDegreesColor       = "degreesColor"
	KeyHoursValuesColor   = "hoursValuesColor"
	KeyNumbersColor       = "numbersColor"
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidSize  = errors.New("invalid window size")
)

// Config is the fully resolved configuration.
type Config struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Padding    int    `mapstructure:"padding"`
	Background string `mapstructure:"background"`
	LogLevel   string `mapstructure:"logLevel"`
	TickSound  string `mapstructure:"tickSound"`
	ShowAnalog bool   `mapstructure:"showAnalog"`

	CenterInnerColor   string `mapstructure:"centerInnerColor"`
	CenterOuterColor   string `mapstructure:"centerOuterColor"`
	SecondsNeedleColor string `mapstructure:"secondsNeedleColor"`
	HoursNeedleColor   string `mapstructure:"hoursNeedleColor"`
	MinutesNeedleColor string `mapstructure:"minutesNeedleColor"`
	DegreesColor       string `mapstructure:"degreesColor"`
	HoursValuesColor   string `mapstructure:"hoursValuesColor"`
	NumbersColor       string `mapstructure:"numbersColor"`
}

// RegisterFlags adds every option to fs. Colors default to empty, which
// leaves the face defaults in place.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "path to a YAML config file")
	fs.Int(KeyWidth, WindowWidth, "window width")
	fs.Int(KeyHeight, WindowHeight, "window height")
	fs.Int(KeyPadding, 0, "padding around the face on every side")
	fs.String(KeyBackground, "#000000", "background color")
	fs.String(KeyLogLevel, "info", "log level (debug, info, warn, error)")
	fs.String(KeyTickSound, "", `tick sound: empty for none, "click", or a wav/mp3/flac file`)
	fs.Bool(KeyShowAnalog, true, "show the analog face instead of the digital readout")

	fs.String(KeyCenterInnerColor, "", "hub fill color")
	fs.String(KeyCenterOuterColor, "", "hub ring color")
	fs.String(KeySecondsNeedleColor, "", "seconds needle color")
	fs.String(KeyHoursNeedleColor, "", "hours needle color")
	fs.String(KeyMinutesNeedleColor, "", "minutes needle color")
	fs.String(KeyDegreesColor, "", "tick mark color")
	fs.String(KeyHoursValuesColor, "", "hour numeral color")
	fs.String(KeyNumbersColor, "", "digital readout color")
}

// NewViper binds fs and the environment and reads the config file, if any.
// A missing default config file is not an error; a missing explicit one is.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, "config file")
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	return v, nil
}

// Load resolves the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, errors.WithHint(
			errors.Wrapf(ErrInvalidSize, "%dx%d", cfg.Width, cfg.Height),
			"width and height must be positive")
	}
	if cfg.Padding < 0 {
		cfg.Padding = 0
	}
	return cfg, nil
}

// Watch reloads the configuration whenever the config file changes and
// passes the resulting style to onChange. Files that fail to load are reported to onError
// and otherwise ignored. Watch does nothing when no file is in use.
func Watch(v *viper.Viper, onChange func(face.Style), onError func(error)) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(fsnotify.Event) {
		style, err := reload(v)
		if err != nil {
			onError(err)
			return
		}
		onChange(style)
	})
	v.WatchConfig()
	return true
}

func reload(v *viper.Viper) (face.Style, error) {
	cfg, err := Load(v)
	if err != nil {
		return face.Style{}, err
	}
	return cfg.Style()
}

// Style converts the configured colors into a face style.
func (c Config) Style() (face.Style, error) {
	s := face.Style{ShowAnalog: c.ShowAnalog}
	fields := []struct {
		key   string
		value string
		dst   *color.NRGBA
	}{
		{KeyCenterInnerColor, c.CenterInnerColor, &s.CenterInnerColor},
		{KeyCenterOuterColor, c.CenterOuterColor, &s.CenterOuterColor},
		{KeySecondsNeedleColor, c.SecondsNeedleColor, &s.SecondsNeedleColor},
		{KeyHoursNeedleColor, c.HoursNeedleColor, &s.HoursNeedleColor},
		{KeyMinutesNeedleColor, c.MinutesNeedleColor, &s.MinutesNeedleColor},
		{KeyDegreesColor, c.DegreesColor, &s.DegreesColor},
		{KeyHoursValuesColor, c.HoursValuesColor, &s.HoursValuesColor},
		{KeyNumbersColor, c.NumbersColor, &s.NumbersColor},
	}
	for _, f := range fields {
		col, err := ParseColor(f.value)
		if err != nil {
			return face.Style{}, errors.Wrapf(err, "option %s", f.key)
		}
		*f.dst = col
	}
	return s, nil
}

// BackgroundColor parses the background option; empty means black.
func (c Config) BackgroundColor() (color.NRGBA, error) {
	col, err := ParseColor(c.Background)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "option %s", KeyBackground)
	}
	if col == (color.NRGBA{}) {
		col.A = 0xff
	}
	return col, nil
}

// FacePadding returns the same padding on every side.
func (c Config) FacePadding() face.Padding {
	return face.Padding{Left: c.Padding, Top: c.Padding, Right: c.Padding, Bottom: c.Padding}
}

// ParseColor parses "#rrggbb" or "#rgb". The empty string is the zero
// color, which the face treats as unset.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	// colorful.Hex ignores trailing input, so the length is checked here.
	c, err := colorful.Hex(s)
	if err != nil || (len(s) != 4 && len(s) != 7) {
		return color.NRGBA{}, errors.WithHint(
			errors.Wrapf(ErrInvalidColor, "%q", s),
			"colors are hex values such as #ffffff")
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
