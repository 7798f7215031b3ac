// Command geodist compares GPS fixes against a reference point and prints
// their east/north offsets or great-circle distances in millimeters.
//
//	geodist                                  # X/Y offsets of the built-in sample fixes
//	geodist --mode relative --input stdin    # enter points interactively
//	geodist "(120.8015, 30.3612)" "(120.8016, 30.3613)"
//	geodist --mode relative "-73.9857, 40.7484" "-73.9856, 40.7485"
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"survey-distance-service/internal/adapters/input"
	"survey-distance-service/internal/config"
	"survey-distance-service/internal/domain"
	"survey-distance-service/internal/platform/logging"
	"survey-distance-service/internal/ports"
	"survey-distance-service/internal/report"
	"survey-distance-service/internal/services"

	"github.com/spf13/pflag"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("geodist", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a config file (toml, yaml or json)")
	flags.String("mode", "", "xy: east/north offsets, relative: distance to the reference (default xy)")
	flags.String("input", "", "sample or stdin; ignored when coordinates are passed as arguments (default sample)")
	flags.String("log-level", "", "log level: debug, info, warn or error (default warn)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: geodist [flags] [\"(lon, lat)\" ...]")
		flags.PrintDefaults()
	}

	flagArgs, coords := splitCoordinateArgs(args)
	if err := flags.Parse(flagArgs); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "geodist: %v\n", err)
		flags.Usage()
		return exitUsage
	}
	coords = append(coords, flags.Args()...)

	cfg, err := config.Load(config.Options{
		Path:  *configPath,
		Flags: flags,
		FlagKeys: map[string]string{
			"mode":  "survey.mode",
			"input": "survey.input",
		},
		Defaults: map[string]any{
			"log.level":  "warn",
			"log.format": "text",
			"log.output": "stderr",
		},
	})
	if err != nil {
		fmt.Fprintf(stderr, "geodist: %v\n", err)
		return exitUsage
	}

	if cfg.Log.File != "" {
		_, closer := logging.Init(cfg.Log, "geodist")
		defer closer.Close()
	} else {
		slog.SetDefault(logging.NewWithWriter(stderr, cfg.Log, "geodist"))
	}

	src := pointSource(cfg.Survey, coords, stdin, stdout)
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}
	slog.Debug("starting survey", "mode", cfg.Survey.Mode, "input", cfg.Survey.Input, "args", len(coords))

	title := "Coordinate Distance Calculator - X/Y offsets"
	if cfg.Survey.Mode == "relative" {
		title = "Coordinate Distance Calculator - relative distances"
	}
	if err := report.Banner(stdout, title); err != nil {
		return exitFailure
	}

	s, err := services.CollectSurvey(ctx, src)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stdout, "\nexited")
		return exitInterrupted
	case errors.Is(err, services.ErrNotEnoughPoints):
		fmt.Fprintln(stdout, "\nat least 2 points are required (reference + at least 1 comparison point)")
		return exitFailure
	case errors.Is(err, domain.ErrParseFailure):
		fmt.Fprintf(stderr, "geodist: %v\n", err)
		return exitUsage
	case err != nil:
		slog.Error("survey failed", "err", err)
		return exitFailure
	}

	if cfg.Survey.Mode == "relative" {
		err = report.WriteDistances(stdout, s)
	} else {
		err = report.WriteOffsets(stdout, s)
	}
	if err != nil {
		slog.Error("write report", "err", err)
		return exitFailure
	}

	return exitOK
}

// splitCoordinateArgs pulls out arguments that already parse as coordinates,
// so "-73.9857, 40.7484" is not mistaken for a shorthand flag. Everything
// after "--" is left to the flag parser, which returns it as positional.
func splitCoordinateArgs(args []string) (flagArgs, coords []string) {
	for i, a := range args {
		if a == "--" {
			return append(flagArgs, args[i:]...), coords
		}
		if _, err := domain.ParseGeoPoint(a); err == nil {
			coords = append(coords, a)
			continue
		}
		flagArgs = append(flagArgs, a)
	}
	return flagArgs, coords
}

// Positional coordinates win over the configured input.
func pointSource(cfg config.SurveyConfig, args []string, stdin io.Reader, stdout io.Writer) ports.PointSource {
	switch {
	case len(args) > 0:
		return input.NewTextSource(args)
	case cfg.Input == "stdin":
		return input.NewConsoleSource(stdin, stdout)
	default:
		return input.NewStaticSource(input.SampleCoordinates...)
	}
}
