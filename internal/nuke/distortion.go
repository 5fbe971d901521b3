package nuke

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedInput reports text that does not carry both LensDistortion2
// coefficients.
var ErrMalformedInput = errors.New("text does not contain a LensDistortion2 node")

const (
	distortionK1Knob = "distortionDenominator0"
	distortionK2Knob = "distortionDenominator1"
)

const lensDistortionTemplate = `set cut_paste_input [stack 0]
version 14.0 v2
push $cut_paste_input
LensDistortion2 {
 ` + distortionK1Knob + ` {%s}
 ` + distortionK2Knob + ` {%s}
 output Undistort
 name %s
 selected true
}`

// knobNumber matches a signed decimal with optional fraction and exponent,
// optionally wrapped in the braces Nuke uses for expression knobs.
const knobNumber = `\s+\{?\s*([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`

var (
	k1Pattern = regexp.MustCompile(distortionK1Knob + knobNumber)
	k2Pattern = regexp.MustCompile(distortionK2Knob + knobNumber)
)

// DistortionParams are the two radial coefficients shared by the tracking
// camera and the LensDistortion2 node.
type DistortionParams struct {
	K1       float64
	K2       float64
	NodeName string
}

// FormatDistortion renders p as a pasteable LensDistortion2 script.
// Coefficients are written at full precision; no range check is applied.
func FormatDistortion(p DistortionParams) string {
	return fmt.Sprintf(lensDistortionTemplate, FormatFloat(p.K1), FormatFloat(p.K2), p.NodeName)
}

// ParseDistortion locates the two coefficients anywhere in text. It returns an
// error wrapping ErrMalformedInput when either is absent. NodeName is left
// empty.
func ParseDistortion(text string) (DistortionParams, error) {
	k1, err := findKnob(text, k1Pattern, distortionK1Knob)
	if err != nil {
		return DistortionParams{}, err
	}
	k2, err := findKnob(text, k2Pattern, distortionK2Knob)
	if err != nil {
		return DistortionParams{}, err
	}
	return DistortionParams{K1: k1, K2: k2}, nil
}

func findKnob(text string, pattern *regexp.Regexp, knob string) (float64, error) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0, fmt.Errorf("%w: %s not found", ErrMalformedInput, knob)
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", knob, match[1], err)
	}
	return value, nil
}
