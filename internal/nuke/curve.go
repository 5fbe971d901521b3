package nuke

import (
	"math"
	"strconv"
	"strings"

	"tracker2nuke/internal/tracking"
)

// FormatFloat renders v as the shortest decimal that round-trips through
// strconv.ParseFloat. Integral values keep a trailing ".0" and magnitudes
// outside [1e-4, 1e16) use exponent notation such as 1e-05.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// constantCurve is a single step key anchored at frame.
func constantCurve(frame int, value string) string {
	return "{curve K x" + strconv.Itoa(frame) + " " + value + "}"
}

// sampleCurve writes one control point per sampled frame, ascending.
// A lone sample is written as a step key.
func sampleCurve(track *tracking.Track, frames []int, component func(tracking.Point) float64) string {
	if len(frames) == 1 {
		return constantCurve(frames[0], FormatFloat(component(track.Samples[frames[0]])))
	}
	var b strings.Builder
	b.WriteString("{curve")
	for _, frame := range frames {
		b.WriteString(" x")
		b.WriteString(strconv.Itoa(frame))
		b.WriteByte(' ')
		b.WriteString(FormatFloat(component(track.Samples[frame])))
	}
	b.WriteByte('}')
	return b.String()
}

func pointX(p tracking.Point) float64 { return p.X }

func pointY(p tracking.Point) float64 { return p.Y }
