// Package nuke renders tracking data and lens distortion parameters as Nuke
// script text, and reads distortion parameters back out of pasted scripts.
//
// Render turns tracking groups into Tracker4 nodes, one node per group, with
// one row per non-empty track. FormatDistortion and ParseDistortion implement
// the LensDistortion2 round trip. All functions are pure: they take values
// and return strings, so callers decide where the text goes.
//
// Numbers are written with FormatFloat, which produces the shortest decimal
// that parses back to the same float64 and always carries a decimal point or
// exponent.
package nuke
