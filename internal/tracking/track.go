package tracking

import (
	"errors"
	"sort"
)

// ErrEmptyInput reports that no track with samples qualified for export.
var ErrEmptyInput = errors.New("no tracks with markers to export")

// Point is a 2D position in absolute footage pixels.
type Point struct {
	X float64
	Y float64
}

// Track is a named, sparse frame-to-point mapping.
type Track struct {
	Name    string
	Samples map[int]Point
}

// NewTrack returns an empty track with the given name.
func NewTrack(name string) *Track {
	return &Track{Name: name, Samples: make(map[int]Point)}
}

// Set records the point observed at frame, replacing any earlier sample.
func (t *Track) Set(frame int, p Point) {
	if t.Samples == nil {
		t.Samples = make(map[int]Point)
	}
	t.Samples[frame] = p
}

// Len reports the number of samples.
func (t *Track) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Samples)
}

// Empty reports whether the track has no samples.
func (t *Track) Empty() bool {
	return t.Len() == 0
}

// Frames returns the sampled frames in ascending order.
func (t *Track) Frames() []int {
	if t == nil {
		return nil
	}
	frames := make([]int, 0, len(t.Samples))
	for frame := range t.Samples {
		frames = append(frames, frame)
	}
	sort.Ints(frames)
	return frames
}

// Group is an ordered collection of uniquely named tracks rendered as one node.
type Group struct {
	Name   string
	Tracks []*Track
}

// NewGroup returns an empty group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Add appends track, or replaces the existing track with the same name in place.
func (g *Group) Add(track *Track) {
	if track == nil {
		return
	}
	for i, existing := range g.Tracks {
		if existing.Name == track.Name {
			g.Tracks[i] = track
			return
		}
	}
	g.Tracks = append(g.Tracks, track)
}

// NonEmpty returns the tracks that carry at least one sample, in insertion order.
func (g *Group) NonEmpty() []*Track {
	if g == nil {
		return nil
	}
	out := make([]*Track, 0, len(g.Tracks))
	for _, t := range g.Tracks {
		if !t.Empty() {
			out = append(out, t)
		}
	}
	return out
}
