package scene

import (
	"errors"
	"fmt"
	"strings"

	"tracker2nuke/internal/nuke"
	"tracker2nuke/internal/tracking"
)

var (
	// ErrNoActiveObject reports a clip whose active object index is out of range.
	ErrNoActiveObject = errors.New("no active tracking object")
	// ErrSelection reports that pattern corner export needs exactly one selected track.
	ErrSelection = errors.New("select exactly one track")
	// ErrNoPlaneTrack reports a missing or unknown active plane track.
	ErrNoPlaneTrack = errors.New("no active plane track")
	// ErrDistortionModel reports a camera that does not use the Nuke distortion model.
	ErrDistortionModel = errors.New("distortion model must be 'NUKE'")
)

// ActiveObject returns the active tracking object.
func (c *Clip) ActiveObject() (*Object, error) {
	if c.ActiveIndex < 0 || c.ActiveIndex >= len(c.Objects) {
		return nil, ErrNoActiveObject
	}
	return &c.Objects[c.ActiveIndex], nil
}

// GlobalFrame converts a clip-local marker frame to scene frame numbering.
func (c *Clip) GlobalFrame(frame int) int {
	return frame + c.FrameStart - 1
}

// Pixels scales a normalized coordinate to footage pixels.
func (c *Clip) Pixels(v [2]float64) tracking.Point {
	return tracking.Point{X: v[0] * float64(c.Width), Y: v[1] * float64(c.Height)}
}

// SelectedTracks returns the selected point tracks in document order.
func (o *Object) SelectedTracks() []*Track {
	var out []*Track
	for i := range o.Tracks {
		if o.Tracks[i].Select {
			out = append(out, &o.Tracks[i])
		}
	}
	return out
}

// PlaneTrack returns the active plane track.
func (o *Object) PlaneTrack() (*PlaneTrack, error) {
	if strings.TrimSpace(o.ActivePlaneTrack) == "" {
		return nil, ErrNoPlaneTrack
	}
	for i := range o.PlaneTracks {
		if o.PlaneTracks[i].Name == o.ActivePlaneTrack {
			return &o.PlaneTracks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q not found", ErrNoPlaneTrack, o.ActivePlaneTrack)
}

// CollectTracks gathers the point tracks of the active object into one group
// named after the object. Tracks without markers are left out; when none
// remain the error wraps tracking.ErrEmptyInput.
func (c *Clip) CollectTracks(selectedOnly bool) (*tracking.Group, error) {
	obj, err := c.ActiveObject()
	if err != nil {
		return nil, err
	}
	group := tracking.NewGroup(obj.Name)
	for _, src := range obj.Tracks {
		if (selectedOnly && !src.Select) || len(src.Markers) == 0 {
			continue
		}
		track := tracking.NewTrack(src.Name)
		for _, m := range src.Markers {
			track.Set(c.GlobalFrame(m.Frame), c.Pixels(m.Co))
		}
		group.Add(track)
	}
	if len(group.NonEmpty()) == 0 {
		if selectedOnly {
			return nil, fmt.Errorf("%w: no tracks selected or selected tracks have no markers", tracking.ErrEmptyInput)
		}
		return nil, fmt.Errorf("%w: '%s' has no tracks with markers", tracking.ErrEmptyInput, obj.Name)
	}
	return group, nil
}

// CollectPatternCorners expands the pattern area of the single selected
// track into four corner tracks. The group is named <object>_<track>.
func (c *Clip) CollectPatternCorners() (*tracking.Group, string, error) {
	obj, err := c.ActiveObject()
	if err != nil {
		return nil, "", err
	}
	selected := obj.SelectedTracks()
	if len(selected) != 1 {
		return nil, "", fmt.Errorf("%w (%d selected)", ErrSelection, len(selected))
	}
	src := selected[0]
	if len(src.Markers) == 0 {
		return nil, src.Name, fmt.Errorf("%w: track '%s' has no markers", tracking.ErrEmptyInput, src.Name)
	}

	samples := make([]tracking.QuadSample, 0, len(src.Markers))
	for _, m := range src.Markers {
		center := c.Pixels(m.Co)
		corners := make([]tracking.Point, len(m.PatternCorners))
		for i, pc := range m.PatternCorners {
			corners[i] = c.Pixels(pc)
		}
		samples = append(samples, tracking.QuadSample{
			Frame:   c.GlobalFrame(m.Frame),
			Corners: corners,
			Center:  &center,
		})
	}
	groupName := obj.Name + "_" + src.Name
	return tracking.ExpandQuad(groupName, src.Name, tracking.QuadPattern, samples), src.Name, nil
}

// CollectPlaneTrack expands the active plane track into four corner tracks.
// The group is named <object>_<plane>.
func (c *Clip) CollectPlaneTrack() (*tracking.Group, string, error) {
	obj, err := c.ActiveObject()
	if err != nil {
		return nil, "", err
	}
	plane, err := obj.PlaneTrack()
	if err != nil {
		return nil, "", err
	}
	if len(plane.Markers) == 0 {
		return nil, plane.Name, fmt.Errorf("%w: plane track '%s' has no markers", tracking.ErrEmptyInput, plane.Name)
	}

	samples := make([]tracking.QuadSample, 0, len(plane.Markers))
	for _, m := range plane.Markers {
		corners := make([]tracking.Point, len(m.Corners))
		for i, corner := range m.Corners {
			corners[i] = c.Pixels(corner)
		}
		samples = append(samples, tracking.QuadSample{Frame: c.GlobalFrame(m.Frame), Corners: corners})
	}
	groupName := obj.Name + "_" + plane.Name
	return tracking.ExpandQuad(groupName, plane.Name, tracking.QuadPlane, samples), plane.Name, nil
}

// DistortionNodeName derives the LensDistortion2 node name from the clip
// name up to its first period and the rounded focal length.
func (c *Clip) DistortionNodeName() string {
	base, _, _ := strings.Cut(c.Name, ".")
	return fmt.Sprintf("%s_%.0fmm", base, c.Camera.FocalLength)
}

// DistortionParams returns the camera coefficients for export.
func (c *Clip) DistortionParams() (nuke.DistortionParams, error) {
	if c.Camera.DistortionModel != DistortionModelNuke {
		return nuke.DistortionParams{}, fmt.Errorf("%w (current %q)", ErrDistortionModel, c.Camera.DistortionModel)
	}
	return nuke.DistortionParams{
		K1:       c.Camera.NukeK1,
		K2:       c.Camera.NukeK2,
		NodeName: c.DistortionNodeName(),
	}, nil
}

// ApplyDistortion switches the camera to the Nuke model and stores p's
// coefficients.
func (c *Clip) ApplyDistortion(p nuke.DistortionParams) {
	c.Camera.DistortionModel = DistortionModelNuke
	c.Camera.NukeK1 = p.K1
	c.Camera.NukeK2 = p.K2
}
