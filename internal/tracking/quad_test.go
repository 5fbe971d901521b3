package tracking

import "testing"

func square(x, y float64) []Point {
	return []Point{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1}}
}

func TestExpandQuadPlanePassesCornersThrough(t *testing.T) {
	samples := []QuadSample{
		{Frame: 6, Corners: square(10, 20)},
		{Frame: 7, Corners: square(11, 21)[:3]},
		{Frame: 8, Corners: square(12, 22)},
	}

	group := ExpandQuad("Camera_Plane", "Plane", QuadPlane, samples)
	if group.Name != "Camera_Plane" {
		t.Fatalf("group name = %q", group.Name)
	}
	if len(group.Tracks) != CornerCount {
		t.Fatalf("expected %d tracks, got %d", CornerCount, len(group.Tracks))
	}
	for i, track := range group.Tracks {
		if want := CornerTrackName("Plane", i); track.Name != want {
			t.Fatalf("track %d name = %q, want %q", i, track.Name, want)
		}
		if _, ok := track.Samples[7]; ok {
			t.Fatalf("track %s should not contain frame 7", track.Name)
		}
		if track.Len() != 2 {
			t.Fatalf("track %s has %d samples, want 2", track.Name, track.Len())
		}
	}
	if got := group.Tracks[2].Samples[8]; got != (Point{X: 13, Y: 23}) {
		t.Fatalf("corner3 at frame 8 = %+v", got)
	}
	if got := group.Tracks[0].Samples[6]; got != (Point{X: 10, Y: 20}) {
		t.Fatalf("corner1 at frame 6 = %+v", got)
	}
}

func TestExpandQuadPatternAddsCenter(t *testing.T) {
	center := Point{X: 100, Y: 50}
	offsets := []Point{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}
	samples := []QuadSample{
		{Frame: 1, Corners: offsets, Center: &center},
		{Frame: 2, Corners: offsets},
	}

	group := ExpandQuad("Camera_Track", "Track", QuadPattern, samples)
	want := []Point{{X: 95, Y: 45}, {X: 105, Y: 45}, {X: 105, Y: 55}, {X: 95, Y: 55}}
	for i, track := range group.Tracks {
		if track.Len() != 1 {
			t.Fatalf("track %s has %d samples, want 1", track.Name, track.Len())
		}
		if got := track.Samples[1]; got != want[i] {
			t.Fatalf("track %s at frame 1 = %+v, want %+v", track.Name, got, want[i])
		}
	}
}

func TestExpandQuadAllFramesInvalid(t *testing.T) {
	group := ExpandQuad("g", "b", QuadPlane, []QuadSample{{Frame: 1, Corners: nil}})
	if len(group.Tracks) != CornerCount {
		t.Fatalf("expected %d tracks, got %d", CornerCount, len(group.Tracks))
	}
	if len(group.NonEmpty()) != 0 {
		t.Fatal("expected all corner tracks empty")
	}
}
