// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the progressbutton command.
package cli

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/trendit/progressbutton"
	"github.com/trendit/progressbutton/internal/config"
)

// app holds what the subcommands share once the root command resolved
// logging and configuration.
type app struct {
	log *logrus.Logger
	cfg *config.Config
}

// NewRootCmd returns the root command writing command output to out and
// logs to logOut.
func NewRootCmd(out, logOut io.Writer) *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetOutput(logOut)

	root := &cobra.Command{
		Use:           "progressbutton",
		Short:         "Render and drive a stateful progress button",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(logOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (yaml, json or toml)")
	pf.String("env-file", "", "Load environment variables from this file first")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	bindStyleFlags(pf)

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newTUICmd(a))
	return root
}

// Execute runs the command line in args.
func Execute(ctx context.Context, out, logOut io.Writer, args []string) error {
	root := NewRootCmd(out, logOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func bindStyleFlags(fs *pflag.FlagSet) {
	fs.Float64("radius", progressbutton.DefaultRadius, "Corner radius in pixels; 0 for half the height")
	fs.String("fit", "fill", "Image fit: fill or unscaled")
	fs.Float64("text-size", progressbutton.DefaultTextSize, "Label size in points")
	fs.Float64("dpi", progressbutton.DefaultDPI, "Label resolution")
	fs.String("font", "", "Label font: a TrueType file, goregular or roboto")
	fs.String("text-color", "#ffffff", "Label color")
}

// bindFrameFlags adds the flags describing the state to draw.
func bindFrameFlags(fs *pflag.FlagSet) {
	fs.String("state", "init", "State: init, progress, success or fail")
	fs.Int("percent", 0, "Progress percentage for the progress state")
	fs.Int("width", 240, "Button width in pixels")
	fs.Int("height", 48, "Button height in pixels")
	fs.String("text", "", "Label text")
	fs.Bool("disabled", false, "Draw the disabled image")
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if f, _ := flags.GetString("env-file"); f != "" {
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}
	if err := a.setupLog(flags); err != nil {
		return err
	}
	file, _ := flags.GetString("config")
	v, err := config.New(file)
	if err != nil {
		return err
	}
	if err := config.BindFlags(v, flags); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.WithFields(logrus.Fields{
		"config": file,
		"radius": cfg.Style.Radius,
		"fit":    cfg.Style.Fit,
	}).Debug("configuration loaded")
	return nil
}

func (a *app) setupLog(flags *pflag.FlagSet) error {
	lvl, _ := flags.GetString("log-level")
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	switch format, _ := flags.GetString("log-format"); format {
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// button builds a button from the configuration and applies the frame
// flags of cmd to it.
func (a *app) button(cmd *cobra.Command) (*progressbutton.Button, error) {
	flags := cmd.Flags()
	name, _ := flags.GetString("state")
	kind, err := progressbutton.ParseKind(name)
	if err != nil {
		return nil, err
	}
	b, err := progressbutton.NewButton(a.cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("create button: %w", err)
	}
	switch kind {
	case progressbutton.InProgress:
		p, _ := flags.GetInt("percent")
		b.SetProgress(p)
	case progressbutton.Success:
		b.SetSuccess()
	case progressbutton.Fail:
		b.SetFail()
	}
	if d, _ := flags.GetBool("disabled"); d {
		b.SetDisabled(true)
	}
	return b, nil
}

func frameSize(cmd *cobra.Command) (image.Point, error) {
	w, _ := cmd.Flags().GetInt("width")
	h, _ := cmd.Flags().GetInt("height")
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("button size %dx%d is empty", w, h)
	}
	return image.Pt(w, h), nil
}
