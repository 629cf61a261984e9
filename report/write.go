package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Output file names.
const (
	PlotDataFile   = "plot_data.csv"
	BackgroundFile = "background.csv"
)

var plotHeader = []string{
	"Series", "Forced", "Avg. Duration", "Avg. Height", "Std Dev. Duration", "Std Dev. Height",
}

// EncodePlotData writes the plot data table of rep to w.
func EncodePlotData(w io.Writer, rep *Report) error {
	width := rep.MaxPairs()

	header := append([]string(nil), plotHeader...)
	for i := 1; i <= width; i++ {
		header = append(header, fmt.Sprintf("%d Min X,Y", i), fmt.Sprintf("%d Max X,Y", i))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rep.Rows() {
		s := row.Summary
		rec := []string{
			row.Column,
			strconv.FormatBool(row.Forced),
			s.MeanDuration.String(),
			s.MeanHeight.String(),
			s.StdDuration.String(),
			s.StdHeight.String(),
		}
		for _, p := range row.Pairs {
			rec = append(rec, p.Min.String(), p.Max.String())
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePlotData writes rep to dir/plot_data.csv, creating dir when needed,
// and returns the file path.
func WritePlotData(dir string, rep *Report) (string, error) {
	return writeFile(dir, PlotDataFile, func(w io.Writer) error {
		return EncodePlotData(w, rep)
	})
}

// BackgroundRow is the baseline of one background column.
type BackgroundRow struct {
	Series   string
	Average  float64
	Variance float64
}

// EncodeBackground writes the background table to w in the given order.
func EncodeBackground(w io.Writer, rows []BackgroundRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Series", "Average", "Variance"}); err != nil {
		return err
	}

	for _, r := range rows {
		if err := cw.Write([]string{r.Series, formatFloat(r.Average), formatFloat(r.Variance)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteBackground writes rows to dir/background.csv and returns the path.
func WriteBackground(dir string, rows []BackgroundRow) (string, error) {
	return writeFile(dir, BackgroundFile, func(w io.Writer) error {
		return EncodeBackground(w, rows)
	})
}

func writeFile(dir, name string, encode func(io.Writer) error) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create %s: %w", path, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("report: close %s: %w", path, err)
	}

	return path, nil
}
