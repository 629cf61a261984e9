package peaks

import (
	"testing"

	"github.com/cwbudde/peak-curator/internal/testutil"
)

func BenchmarkFindPeaks(b *testing.B) {
	x := testutil.AddNoise(testutil.PeriodicResponse(12, 200, 1, 0), 3, 0.05)
	f := ProminenceFinder{}

	b.ReportAllocs()
	for b.Loop() {
		f.FindPeaks(x, 0.5)
	}
}

func BenchmarkCalibrate(b *testing.B) {
	values := testutil.AddNoise(testutil.PeriodicResponse(6, 200, 1, 0), 3, 0.05)
	sig := testutil.Signal(b, "bench", values)
	cal := NewCalibrator(DefaultConfig(), nil)

	b.ReportAllocs()
	for b.Loop() {
		cal.Calibrate(sig, 6, Minimum)
	}
}
