package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/peak-curator/curation"
	"github.com/cwbudde/peak-curator/internal/testutil"
	"github.com/cwbudde/peak-curator/signal"
)

func sixSamples(t *testing.T) signal.Signal {
	t.Helper()
	return testutil.SignalAt(t, "b_1_5", []float64{0, 1, 2, 3, 4, 5}, []float64{0, -1, 0, 0, 1, 0})
}

func rowFor(t *testing.T, column string, forced bool, sig signal.Signal, minima, maxima []int, expected int) Row {
	t.Helper()
	s, err := curation.FromIndices(sig.Len(), minima, maxima)
	if err != nil {
		t.Fatal(err)
	}
	return NewRow(column, forced, s.Pairing(), sig, curation.Validate(s, expected))
}

func TestNewRowValid(t *testing.T) {
	row := rowFor(t, "b_1_5", false, sixSamples(t), []int{1}, []int{4}, 1)

	if row.Forced {
		t.Fatal("unexpected forced")
	}
	if got := row.Summary.MeanHeight.String(); got != "2" {
		t.Fatalf("MeanHeight = %s", got)
	}
	if got := row.Summary.MeanDuration.String(); got != "3" {
		t.Fatalf("MeanDuration = %s", got)
	}
	if len(row.Pairs) != 1 {
		t.Fatalf("pairs = %d", len(row.Pairs))
	}
	if got := row.Pairs[0].Min.String(); got != "1, -1" {
		t.Fatalf("min cell = %q", got)
	}
	if got := row.Pairs[0].Max.String(); got != "4, 1" {
		t.Fatalf("max cell = %q", got)
	}
}

func TestNewRowForcedWrongCountKeepsStatistics(t *testing.T) {
	values := []float64{0, -1, 0, 2, 0, -1, 0, 2, 0}
	sig := testutil.Signal(t, "bw_50_15", values)

	row := rowFor(t, "bw_50_15", true, sig, []int{1, 5}, []int{3, 7}, 3)

	if !row.Forced {
		t.Fatal("expected forced")
	}
	if got := row.Summary.MeanHeight.String(); got != "3" {
		t.Fatalf("MeanHeight = %s, want 3", got)
	}
	if got := row.Summary.MeanDuration.String(); got != "2" {
		t.Fatalf("MeanDuration = %s, want 2", got)
	}
	if got := row.Summary.StdHeight.String(); got != "0" {
		t.Fatalf("StdHeight = %s, want 0", got)
	}
}

func TestNewRowForcedMalformedIsNA(t *testing.T) {
	sig := sixSamples(t)
	tests := []struct {
		name   string
		minima []int
		maxima []int
	}{
		{"zero length", []int{1}, nil},
		// second minimum after the second maximum
		{"improper order", []int{0, 4}, []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := rowFor(t, "b_1_5", true, sig, tt.minima, tt.maxima, 1)
			s := row.Summary
			if !s.MeanHeight.IsNA() || !s.MeanDuration.IsNA() || !s.StdHeight.IsNA() || !s.StdDuration.IsNA() {
				t.Fatalf("summary = %+v, want all N/A", s)
			}
			if len(row.Pairs) != max(len(tt.minima), len(tt.maxima)) {
				t.Fatalf("pairs = %d", len(row.Pairs))
			}
		})
	}
}

func TestNewRowAbsentMembers(t *testing.T) {
	sig := testutil.Signal(t, "uv_1_10", []float64{0, -1, 0, 1, 0, -2, 0, 0})
	row := rowFor(t, "uv_1_10", true, sig, []int{1, 5}, []int{3}, 2)

	if len(row.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(row.Pairs))
	}
	if got := row.Pairs[1].Max.String(); got != Absent {
		t.Fatalf("absent max = %q", got)
	}
	if got := row.Pairs[1].Min.String(); got != "5, -2" {
		t.Fatalf("second min = %q", got)
	}
}

func TestReportReplaceAndStatus(t *testing.T) {
	rep := New()
	if saved, forced := rep.Status("b_1_5"); saved || forced {
		t.Fatal("empty report reports saved")
	}

	rep.Add(Row{Column: "b_1_5", Forced: true})
	if saved, forced := rep.Status("b_1_5"); !saved || !forced {
		t.Fatalf("status = %v/%v", saved, forced)
	}

	rep.Add(Row{Column: "b_1_5"})
	if saved, forced := rep.Status("b_1_5"); !saved || forced {
		t.Fatalf("status after replace = %v/%v", saved, forced)
	}
	if rep.Len() != 1 {
		t.Fatalf("Len = %d", rep.Len())
	}
}

func TestReportRowsSorted(t *testing.T) {
	rep := New()
	for _, c := range []string{"uv_10_30", "b_50_30", "bw_5_10", "b_10_30"} {
		rep.Add(Row{Column: c})
	}

	var got []string
	for _, r := range rep.Rows() {
		got = append(got, r.Column)
	}
	want := "b_10_30 b_50_30 bw_5_10 uv_10_30"
	if strings.Join(got, " ") != want {
		t.Fatalf("order = %v, want %s", got, want)
	}
}

func TestEncodePlotData(t *testing.T) {
	sig := sixSamples(t)
	rep := New()
	rep.Add(rowFor(t, "uv_1_5", true, sig, []int{1}, nil, 1))
	rep.Add(rowFor(t, "b_1_5", false, sig, []int{1}, []int{4}, 1))

	var buf bytes.Buffer
	if err := EncodePlotData(&buf, rep); err != nil {
		t.Fatal(err)
	}

	want := `Series,Forced,Avg. Duration,Avg. Height,Std Dev. Duration,Std Dev. Height,"1 Min X,Y","1 Max X,Y"
b_1_5,false,3,2,0,0,"1, -1","4, 1"
uv_1_5,true,N/A,N/A,N/A,N/A,"1, -1",-
`
	if buf.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodePlotDataRaggedRows(t *testing.T) {
	rep := New()
	rep.Add(Row{Column: "a", Pairs: make([]Pair, 3)})
	rep.Add(Row{Column: "b", Pairs: make([]Pair, 1)})

	var buf bytes.Buffer
	if err := EncodePlotData(&buf, rep); err != nil {
		t.Fatal(err)
	}

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records[0]) != 6+2*3 {
		t.Fatalf("header width = %d", len(records[0]))
	}
	if records[0][len(records[0])-1] != "3 Max X,Y" {
		t.Fatalf("last header = %q", records[0][len(records[0])-1])
	}
	if len(records[2]) != 6+2 {
		t.Fatalf("short row width = %d", len(records[2]))
	}
}

func TestWritePlotData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	rep := New()
	rep.Add(rowFor(t, "b_1_5", false, sixSamples(t), []int{1}, []int{4}, 1))

	path, err := WritePlotData(dir, rep)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, PlotDataFile) {
		t.Fatalf("path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Series,Forced,") {
		t.Fatalf("content = %q", data)
	}
}

func TestWriteFailureIsWrapped(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := WritePlotData(filepath.Join(blocker, "sub"), New())
	if err == nil {
		t.Fatal("expected error")
	}
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("err = %v, want wrapped *os.PathError", err)
	}
}

func TestEncodeBackground(t *testing.T) {
	var buf bytes.Buffer
	rows := []BackgroundRow{
		{Series: "b_0_30B", Average: 0.25, Variance: 0.5},
		{Series: "uv_0_30B", Average: -1, Variance: 0},
	}
	if err := EncodeBackground(&buf, rows); err != nil {
		t.Fatal(err)
	}

	want := "Series,Average,Variance\nb_0_30B,0.25,0.5\nuv_0_30B,-1,0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteBackground(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteBackground(dir, []BackgroundRow{{Series: "b_0_30B", Average: 1, Variance: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != BackgroundFile {
		t.Fatalf("path = %s", path)
	}
}
