package peaks

// Finder is the peak-finding primitive: it returns the ascending indices of
// local maxima in x whose prominence is at least minProminence.
type Finder interface {
	FindPeaks(x []float64, minProminence float64) []int
}

// FinderFunc adapts a function to [Finder].
type FinderFunc func(x []float64, minProminence float64) []int

// FindPeaks calls f.
func (f FinderFunc) FindPeaks(x []float64, minProminence float64) []int {
	return f(x, minProminence)
}

// ProminenceFinder is the default [Finder]. Plateaus report their middle
// sample (rounded down) and edge samples are never peaks.
type ProminenceFinder struct{}

// FindPeaks implements [Finder].
func (ProminenceFinder) FindPeaks(x []float64, minProminence float64) []int {
	candidates := LocalMaxima(x)
	out := candidates[:0]
	for _, p := range candidates {
		if Prominence(x, p) >= minProminence {
			out = append(out, p)
		}
	}
	return out
}

// LocalMaxima returns the indices of all local maxima in x. A flat plateau
// bounded by lower samples on both sides counts once, at its midpoint.
func LocalMaxima(x []float64) []int {
	var peaks []int

	last := len(x) - 1
	for i := 1; i < last; i++ {
		if !(x[i-1] < x[i]) {
			continue
		}

		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}

		if x[ahead] < x[i] {
			peaks = append(peaks, (i+ahead-1)/2)
			i = ahead
		}
	}

	return peaks
}

// Prominence returns the topographic prominence of the sample at peak:
// its height above the higher of the lowest points reached on each side
// before a strictly higher sample (or the signal edge).
func Prominence(x []float64, peak int) float64 {
	ref := x[peak]

	leftMin := ref
	for i := peak; i >= 0 && x[i] <= ref; i-- {
		if x[i] < leftMin {
			leftMin = x[i]
		}
	}

	rightMin := ref
	for i := peak; i < len(x) && x[i] <= ref; i++ {
		if x[i] < rightMin {
			rightMin = x[i]
		}
	}

	return ref - max(leftMin, rightMin)
}
