// Package column parses response column identifiers of the form
// "<channel>_<intensity>_<fps>" such as "uv_50_30" or "b_10_20B".
package column

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformed is returned for identifiers that do not encode channel,
// intensity, and fps. Callers skip such columns.
var ErrMalformed = errors.New("malformed column identifier")

// Channel is the stimulus light channel.
type Channel int

const (
	ChannelUnknown Channel = iota
	ChannelBlue
	ChannelUltraViolet
	ChannelWhite
)

var channelCodes = map[string]Channel{
	"b":  ChannelBlue,
	"uv": ChannelUltraViolet,
	"bw": ChannelWhite,
}

func (c Channel) String() string {
	switch c {
	case ChannelBlue:
		return "Blue"
	case ChannelUltraViolet:
		return "Ultra Violet"
	case ChannelWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// ID is a parsed column identifier.
type ID struct {
	Raw        string
	Channel    Channel
	Intensity  int
	FPS        int
	Background bool
}

// Parse decodes a column identifier.
func Parse(raw string) (ID, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(raw)), "_")
	if len(parts) != 3 {
		return ID{}, fmt.Errorf("%q: %w: want 3 '_'-separated fields, got %d", raw, ErrMalformed, len(parts))
	}

	intensity, err := strconv.Atoi(parts[1])
	if err != nil {
		return ID{}, fmt.Errorf("%q: %w: intensity %q", raw, ErrMalformed, parts[1])
	}

	digits := strings.TrimRightFunc(parts[2], func(r rune) bool { return !unicode.IsDigit(r) })
	fps, err := strconv.Atoi(digits)
	if err != nil {
		return ID{}, fmt.Errorf("%q: %w: fps %q", raw, ErrMalformed, parts[2])
	}

	return ID{
		Raw:        raw,
		Channel:    channelCodes[parts[0]],
		Intensity:  intensity,
		FPS:        fps,
		Background: IsBackground(raw),
	}, nil
}

// IsBackground reports whether a raw header names a background-only column.
func IsBackground(raw string) bool {
	return strings.HasSuffix(strings.TrimSpace(raw), "B")
}

// ExpectedCount returns the number of minima (and maxima) a curated column
// is expected to hold: one per 5 fps of stimulus, rounded up.
func (id ID) ExpectedCount() int {
	return ExpectedCount(id.FPS)
}

// ExpectedCount returns ceil(fps / 5).
func ExpectedCount(fps int) int {
	return int(math.Ceil(float64(fps) / 5.0))
}

// Title is the human readable plot title for the column.
func (id ID) Title() string {
	return fmt.Sprintf("%s, Intensity %d @ %d fps (%s)", id.Channel, id.Intensity, id.FPS, id.Raw)
}

func (id ID) String() string { return id.Raw }
