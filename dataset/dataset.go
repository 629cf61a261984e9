// Package dataset reads recorded trials from CSV. The first header names the
// time field; every other non-empty header not starting with "time" is a
// data column.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cwbudde/peak-curator/column"
	"github.com/cwbudde/peak-curator/internal/logging"
	"github.com/cwbudde/peak-curator/signal"
)

var (
	// ErrUnknownColumn is returned for a requested column that the file
	// does not provide in the current mode.
	ErrUnknownColumn = errors.New("dataset: unknown column")
	// ErrNoHeader is returned for an empty file.
	ErrNoHeader = errors.New("dataset: missing header")
)

// Dataset is a parsed CSV file kept as raw records. Values are parsed per
// column on demand.
type Dataset struct {
	timeField string
	columns   []string
	index     map[string]int
	records   [][]string
	log       *zap.Logger
}

// Open reads the CSV file at path.
func Open(path string, log *zap.Logger) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV from r.
func Read(r io.Reader, log *zap.Logger) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read records: %w", err)
	}

	ds := &Dataset{
		timeField: header[0],
		index:     make(map[string]int, len(header)),
		records:   records,
		log:       logging.OrNop(log),
	}
	for i, name := range header {
		if _, dup := ds.index[name]; !dup {
			ds.index[name] = i
		}
		if name != "" && !strings.HasPrefix(strings.ToLower(name), "time") && !slices.Contains(ds.columns, name) {
			ds.columns = append(ds.columns, name)
		}
	}

	ds.log.Debug("dataset loaded",
		zap.String("time_field", ds.timeField),
		zap.Int("columns", len(ds.columns)),
		zap.Int("rows", len(records)))

	return ds, nil
}

// TimeField returns the name of the time column.
func (d *Dataset) TimeField() string { return d.timeField }

// Rows returns the number of data records.
func (d *Dataset) Rows() int { return len(d.records) }

// All returns every data column in file order.
func (d *Dataset) All() []string { return slices.Clone(d.columns) }

// Columns returns the background columns when background is set and the
// remaining data columns otherwise.
func (d *Dataset) Columns(background bool) []string {
	var out []string
	for _, c := range d.columns {
		if column.IsBackground(c) == background {
			out = append(out, c)
		}
	}
	return out
}

// Plottable returns the non-background columns whose identifiers parse.
// Malformed identifiers are logged and left out.
func (d *Dataset) Plottable() []string {
	var out []string
	for _, c := range d.Columns(false) {
		if _, err := column.Parse(c); err != nil {
			d.log.Warn("skipping column", zap.String("column", c), zap.Error(err))
			continue
		}
		out = append(out, c)
	}
	return out
}

// Select returns the columns to process in the given mode. A non-empty
// requested list is validated against the mode's columns and returned as
// given. Otherwise every column of the mode is returned, starting at start
// when it is set.
func (d *Dataset) Select(requested []string, start string, background bool) ([]string, error) {
	available := d.Columns(background)
	if !background {
		available = d.Plottable()
	}

	if len(requested) > 0 {
		var missing []string
		for _, c := range requested {
			if !slices.Contains(available, c) {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, strings.Join(missing, ", "))
		}
		return slices.Clone(requested), nil
	}

	if start == "" {
		return available, nil
	}

	i := slices.Index(available, start)
	if i < 0 {
		return nil, fmt.Errorf("%w: start column %s", ErrUnknownColumn, start)
	}
	return available[i:], nil
}

// Signal parses the named column against the time field.
func (d *Dataset) Signal(name string) (signal.Signal, error) {
	col, ok := d.index[name]
	if !ok || name == "" {
		return signal.Signal{}, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}

	times := make([]float64, len(d.records))
	values := make([]float64, len(d.records))
	for i, rec := range d.records {
		t, err := parseCell(rec, 0)
		if err != nil {
			return signal.Signal{}, fmt.Errorf("dataset: row %d %s: %w", i+2, d.timeField, err)
		}
		v, err := parseCell(rec, col)
		if err != nil {
			return signal.Signal{}, fmt.Errorf("dataset: row %d %s: %w", i+2, name, err)
		}
		times[i], values[i] = t, v
	}

	sig, err := signal.New(name, times, values)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("dataset: column %s: %w", name, err)
	}
	return sig, nil
}

func parseCell(rec []string, col int) (float64, error) {
	if col >= len(rec) {
		return 0, errors.New("missing cell")
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
}
