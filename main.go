package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/clockface/internal/config"
	"github.com/iburimskiy/clockface/internal/face"
	"github.com/iburimskiy/clockface/internal/game"
	"github.com/iburimskiy/clockface/internal/ticker"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Analog or digital clock face",
		Long: `Opens a window showing the current time as an analog face or a
digital readout. Press A to switch, O to pick a tick sound, Esc or Q to quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(newPrintCmd())
	return root
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "option %s", config.KeyLogLevel)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		Prefix:          config.AppName,
		ReportTimestamp: true,
	}), nil
}

func loadTickSound(setting string) (*game.TickSound, error) {
	var (
		s   *game.TickSound
		err error
	)
	switch setting {
	case "":
		return nil, nil
	case config.TickSoundClick:
		s = game.NewClickSound()
	default:
		if s, err = game.LoadTickSound(setting); err != nil {
			return nil, err
		}
	}
	if err := game.InitSpeaker(); err != nil {
		return nil, err
	}
	return s, nil
}

func run(cmd *cobra.Command) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	renderer, err := game.NewRenderer()
	if err != nil {
		return err
	}
	sound, err := loadTickSound(cfg.TickSound)
	if err != nil {
		// The clock is still useful without sound.
		logger.Warn("tick sound disabled", "err", err)
	}

	f := face.New(style, face.WithPadding(cfg.FacePadding()), face.WithMetrics(renderer))
	g := game.New(f, renderer, time.Now(),
		game.WithBackground(background),
		game.WithTickSound(sound),
		game.WithLogger(logger),
	)

	watching := config.Watch(v,
		g.Configure,
		func(err error) { logger.Warn("ignoring config change", "err", err) },
	)
	logger.Info("starting",
		"analog", f.ShowAnalog(),
		"config", v.ConfigFileUsed(),
		"watching", watching,
		"tickSound", sound.Name(),
	)

	stop := ticker.New(ticker.DefaultInterval, ticker.WithLogger(logger)).Start(cmd.Context(), g)
	defer stop()

	w, h := f.Measure(cfg.Width, cfg.Height)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Clock - A: analog/digital, O: tick sound, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "running window")
	}
	logger.Info("stopped")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
