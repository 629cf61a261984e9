// Command peakcurate curates the periodic response columns of a recorded
// trial into per-column peak statistics.
//
// Usage:
//
//	peakcurate [flags] source.csv
//
// Each column is calibrated, paired and validated automatically, then
// handed to a line-oriented prompt for correction. Accepted columns are
// written to plot_data.csv in the output directory. With -b the background
// columns are averaged into background.csv instead.
//
// Examples:
//
//	peakcurate trial.csv
//	peakcurate -o results -s uv_50_30 trial.csv
//	peakcurate -c b_50_30,uv_50_30 trial.csv
//	peakcurate -b trial.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cwbudde/peak-curator/dataset"
	"github.com/cwbudde/peak-curator/dsp/window"
	"github.com/cwbudde/peak-curator/internal/logging"
	"github.com/cwbudde/peak-curator/peaks"
	"github.com/cwbudde/peak-curator/report"
	"github.com/cwbudde/peak-curator/session"
	timestats "github.com/cwbudde/peak-curator/stats/time"
)

type options struct {
	source     string
	output     string
	background bool
	columns    []string
	start      string
	logLevel   string
	logDev     bool
	window     window.Type
	engine     peaks.Config
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logging.New(
		logging.WithLevel(opts.logLevel),
		logging.WithDevelopment(opts.logDev),
		logging.WithOutput(stderr),
		logging.WithFields(zap.String("source", filepath.Base(opts.source))),
	)
	defer func() { _ = log.Sync() }()

	ds, err := dataset.Open(opts.source, log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	columns, err := ds.Select(opts.columns, opts.start, opts.background)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if opts.background {
		path, err := writeBackground(ds, columns, opts.output, log)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
		return 0
	}

	s := session.New(ds, session.DirSink(opts.output), columns,
		session.WithLogger(log),
		session.WithConfig(opts.engine),
		session.WithSpectralWindow(opts.window),
		session.WithObserver(newRenderer(stdout)),
	)
	if err := s.Start(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := newPrompt(s, stdin, stdout).loop(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("peakcurate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := peaks.DefaultConfig()
	var (
		opts    options
		columns string
	)
	fs.StringVar(&opts.output, "o", "", "output directory (default: source file name in the current directory)")
	fs.BoolVar(&opts.background, "b", false, "process background columns only")
	fs.StringVar(&columns, "c", "", "comma-separated columns to process instead of all available columns")
	fs.StringVar(&opts.start, "s", "", "column to start at")
	maxProm := fs.Float64("max-prominence", envFloatOr("PEAKCURATE_MAX_PROMINENCE", def.MaxProminence), "calibration start threshold")
	step := fs.Float64("prominence-step", envFloatOr("PEAKCURATE_PROMINENCE_STEP", def.ProminenceStep), "calibration threshold step")
	dist := fs.Int("close-peak-distance", envIntOr("PEAKCURATE_CLOSE_PEAK_DISTANCE", def.ClosePeakDistance), "samples within which equal-valued extrema are merged")
	fs.StringVar(&opts.logLevel, "log-level", envOr("PEAKCURATE_LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")
	fs.BoolVar(&opts.logDev, "log-dev", false, "human-readable log output")
	spectral := fs.String("spectral-window", envOr("PEAKCURATE_SPECTRAL_WINDOW", window.TypeHann.String()), "window for the spectral cycle check (rectangular, hann, hamming, blackman)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: peakcurate [flags] source.csv\n\n")
		fmt.Fprintf(stderr, "Curates periodic response columns into peak statistics.\n")
		fmt.Fprintf(stderr, "Type 'help' at the prompt for the list of commands.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  PEAKCURATE_MAX_PROMINENCE, PEAKCURATE_PROMINENCE_STEP,\n")
		fmt.Fprintf(stderr, "  PEAKCURATE_CLOSE_PEAK_DISTANCE, PEAKCURATE_LOG_LEVEL,\n")
		fmt.Fprintf(stderr, "  PEAKCURATE_SPECTRAL_WINDOW set flag defaults.\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  peakcurate trial.csv\n")
		fmt.Fprintf(stderr, "  peakcurate -s uv_50_30 trial.csv\n")
		fmt.Fprintf(stderr, "  peakcurate -b -o results trial.csv\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errors.New("expected exactly one source file")
	}

	w, err := window.ParseType(*spectral)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -spectral-window: %v\n", err)
		return options{}, err
	}
	opts.window = w

	opts.source = fs.Arg(0)
	if opts.output == "" {
		base := filepath.Base(opts.source)
		opts.output = strings.TrimSuffix(base, filepath.Ext(base))
	}
	opts.columns = splitColumns(columns)
	opts.engine = peaks.ApplyOptions(
		peaks.WithMaxProminence(*maxProm),
		peaks.WithProminenceStep(*step),
		peaks.WithClosePeakDistance(*dist),
	)

	return opts, nil
}

func splitColumns(list string) []string {
	var out []string
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func writeBackground(ds *dataset.Dataset, columns []string, dir string, log *zap.Logger) (string, error) {
	rows := make([]report.BackgroundRow, 0, len(columns))
	for _, name := range columns {
		sig, err := ds.Signal(name)
		if err != nil {
			log.Error("skipping background column", zap.String("column", name), zap.Error(err))
			continue
		}
		mean, variance := timestats.MeanVariance(sig.Values())
		rows = append(rows, report.BackgroundRow{Series: name, Average: mean, Variance: variance})
		log.Info("background", zap.String("column", name), zap.Float64("average", mean), zap.Float64("variance", variance))
	}
	return report.WriteBackground(dir, rows)
}
