package peaks

// Config holds the detection constants shared by extraction and calibration.
type Config struct {
	// MaxProminence is where the calibration sweep starts.
	MaxProminence float64
	// ProminenceStep is the sweep decrement.
	ProminenceStep float64
	// ClosePeakDistance is the sample distance within which two equal-valued
	// extrema are treated as one flat-topped detection.
	ClosePeakDistance int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the constants the curation tool ships with.
func DefaultConfig() Config {
	return Config{
		MaxProminence:     6.0,
		ProminenceStep:    0.1,
		ClosePeakDistance: 10,
	}
}

// WithMaxProminence sets the calibration starting threshold.
func WithMaxProminence(v float64) Option {
	return func(cfg *Config) {
		if v >= 0 {
			cfg.MaxProminence = v
		}
	}
}

// WithProminenceStep sets the calibration decrement.
func WithProminenceStep(v float64) Option {
	return func(cfg *Config) {
		if v > 0 {
			cfg.ProminenceStep = v
		}
	}
}

// WithClosePeakDistance sets the close-peak filtering distance in samples.
func WithClosePeakDistance(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.ClosePeakDistance = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
