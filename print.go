package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/clockface/internal/config"
	"github.com/iburimskiy/clockface/internal/face"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the digital readout once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			style, err := cfg.Style()
			if err != nil {
				return err
			}
			numbers := face.New(style).Style().NumbersColor
			readout := face.FormatDigital(face.FromTime(time.Now()))
			out := cmd.OutOrStdout()
			_, err = fmt.Fprintln(out, lipgloss.NewRenderer(out).NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(hexColor(numbers))).
				Render(readout))
			return err
		},
	}
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
