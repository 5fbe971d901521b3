package tracking

import "fmt"

// QuadMode selects how ExpandQuad interprets the corner points of a sample.
type QuadMode int

const (
	// QuadPattern corners are offsets from the sample's Center.
	QuadPattern QuadMode = iota
	// QuadPlane corners are absolute positions.
	QuadPlane
)

// CornerCount is the number of corners in a tracked quadrilateral.
const CornerCount = 4

// QuadSample is one frame of a tracked quadrilateral.
type QuadSample struct {
	Frame   int
	Corners []Point
	// Center is required in QuadPattern mode and ignored otherwise.
	Center *Point
}

// CornerTrackName names the i-th (zero-based) corner track of baseName.
func CornerTrackName(baseName string, i int) string {
	return fmt.Sprintf("%s_corner%d", baseName, i+1)
}

// ExpandQuad splits a tracked quadrilateral into four point tracks named
// <baseName>_corner1 through <baseName>_corner4. A sample whose corner list
// is not exactly four points long is dropped for that frame only, as is a
// pattern sample without a center.
func ExpandQuad(groupName, baseName string, mode QuadMode, samples []QuadSample) *Group {
	group := NewGroup(groupName)
	corners := make([]*Track, CornerCount)
	for i := range corners {
		corners[i] = NewTrack(CornerTrackName(baseName, i))
		group.Add(corners[i])
	}

	for _, sample := range samples {
		if len(sample.Corners) != CornerCount {
			continue
		}
		var origin Point
		if mode == QuadPattern {
			if sample.Center == nil {
				continue
			}
			origin = *sample.Center
		}
		for i, c := range sample.Corners {
			corners[i].Set(sample.Frame, Point{X: origin.X + c.X, Y: origin.Y + c.Y})
		}
	}
	return group
}
