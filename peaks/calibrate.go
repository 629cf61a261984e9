package peaks

import "github.com/cwbudde/peak-curator/signal"

// zeroSnap absorbs floating-point residue when the sweep reaches zero.
const zeroSnap = 1e-9

// Calibration is the outcome of a threshold sweep.
type Calibration struct {
	Threshold float64
	Indices   []int
	// Exhausted is set when the sweep reached zero without finding the
	// expected count. Indices then hold the threshold-zero extrema.
	Exhausted bool
	// Steps is the number of thresholds evaluated.
	Steps int
}

// Calibrator tunes a prominence threshold to an expected extrema count.
type Calibrator struct {
	ex *Extractor
}

// NewCalibrator returns a calibrator built on an [Extractor] with the given
// config and finder.
func NewCalibrator(cfg Config, finder Finder) *Calibrator {
	return &Calibrator{ex: NewExtractor(cfg, finder)}
}

// Extractor returns the extractor the calibrator sweeps with.
func (c *Calibrator) Extractor() *Extractor { return c.ex }

// Calibrate lowers the threshold from MaxProminence one step at a time and
// stops at the first threshold that yields at least expected extrema of
// polarity p. Each step is decremented before it is tested. The returned
// threshold always lies in [0, MaxProminence].
func (c *Calibrator) Calibrate(sig signal.Signal, expected int, p Polarity) Calibration {
	cfg := c.ex.Config()
	step := cfg.ProminenceStep
	if step <= 0 {
		step = DefaultConfig().ProminenceStep
	}

	for k := 1; ; k++ {
		threshold := cfg.MaxProminence - float64(k)*step
		if threshold < zeroSnap {
			threshold = 0
		}

		found := c.ex.Extract(sig, threshold, p)
		if len(found) >= expected {
			return Calibration{Threshold: threshold, Indices: found, Steps: k}
		}
		if threshold == 0 {
			return Calibration{Threshold: 0, Indices: found, Exhausted: true, Steps: k}
		}
	}
}
