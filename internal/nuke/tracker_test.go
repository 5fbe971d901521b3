package nuke

import (
	"strings"
	"testing"

	"tracker2nuke/internal/tracking"
)

func group(name string, tracks ...*tracking.Track) *tracking.Group {
	g := tracking.NewGroup(name)
	for _, t := range tracks {
		g.Add(t)
	}
	return g
}

func track(name string, samples map[int]tracking.Point) *tracking.Track {
	t := tracking.NewTrack(name)
	for frame, p := range samples {
		t.Set(frame, p)
	}
	return t
}

func TestRenderSingleTrackScenario(t *testing.T) {
	g := group("Camera", track("Track1", map[int]tracking.Point{
		1: {X: 10.0, Y: 20.0},
		2: {X: 11.0, Y: 21.0},
	}))

	got := Render([]*tracking.Group{g})

	want := "Tracker4 {\n" +
		" tracks { { 1 31 1 }\n" +
		tracker4Columns +
		" }\n {\n" +
		`  { {curve K x1 1} "Track1" {curve x1 10.0 x2 11.0} {curve x1 20.0 x2 21.0} {curve K x1 0} {curve K x1 0} 1 1 1 {curve x1 0} 1 0 -32 -32 32 32 -22 -22 22 22 {} {}  {}  {}  {}  {}  {}  {}  {}  {}  {}   }` + "\n" +
		"}\n}\nname trackerFromBlender_Camera\n}\n"
	if got != want {
		t.Fatalf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
	if strings.Count(got, "Tracker4 {") != 1 {
		t.Fatalf("expected one node, got %q", got)
	}
}

func TestRenderOrdersFramesAscending(t *testing.T) {
	tr := tracking.NewTrack("t")
	for _, frame := range []int{9, 1, 5} {
		tr.Set(frame, tracking.Point{X: float64(frame), Y: float64(frame * 2)})
	}

	got := Render([]*tracking.Group{group("g", tr)})

	if !strings.Contains(got, "{curve x1 1.0 x5 5.0 x9 9.0}") {
		t.Fatalf("x curve not ascending/sparse: %s", got)
	}
	if !strings.Contains(got, "{curve x1 2.0 x5 10.0 x9 18.0}") {
		t.Fatalf("y curve not ascending/sparse: %s", got)
	}
	if strings.Contains(got, "x2 ") || strings.Contains(got, "x6 ") {
		t.Fatalf("unexpected interpolated keys: %s", got)
	}
}

func TestRenderSkipsEmptyTracks(t *testing.T) {
	g := group("clip",
		tracking.NewTrack("empty"),
		track("full", map[int]tracking.Point{3: {X: 1, Y: 2}, 4: {X: 3, Y: 4}}),
	)

	got := Render([]*tracking.Group{g})

	if !strings.Contains(got, " tracks { { 1 31 1 }\n") {
		t.Fatalf("header should declare 1 track: %s", got)
	}
	if rows := strings.Count(got, "{curve K x3 1}"); rows != 1 {
		t.Fatalf("expected 1 row, got %d", rows)
	}
	if strings.Contains(got, `"empty"`) {
		t.Fatalf("empty track rendered: %s", got)
	}
}

func TestRenderEmptyInputYieldsEmptyString(t *testing.T) {
	tests := []struct {
		name   string
		groups []*tracking.Group
	}{
		{"nil", nil},
		{"no tracks", []*tracking.Group{group("a")}},
		{"only empty tracks", []*tracking.Group{group("a", tracking.NewTrack("x"), tracking.NewTrack("y"))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.groups); got != "" {
				t.Fatalf("Render() = %q, want empty", got)
			}
		})
	}
}

func TestRenderSanitizesNames(t *testing.T) {
	g := group("My Clip.001", track("Track.002 a", map[int]tracking.Point{1: {X: 1, Y: 1}}))

	got := Render([]*tracking.Group{g})

	if !strings.Contains(got, "name trackerFromBlender_My_Clip_001\n") {
		t.Fatalf("node name not sanitized: %s", got)
	}
	if !strings.Contains(got, `"Track_002_a"`) {
		t.Fatalf("track name not sanitized: %s", got)
	}
}

func TestRenderEscapesQuotesInTrackName(t *testing.T) {
	g := group("g", track(`say "hi"`, map[int]tracking.Point{1: {}}))

	got := Render([]*tracking.Group{g})

	if !strings.Contains(got, `"say_\"hi\""`) {
		t.Fatalf("quotes not escaped: %s", got)
	}
}

func TestRenderNeutralizesTclMetacharacters(t *testing.T) {
	g := group(`Cam{1} "a"`, track("feat}[x]$y", map[int]tracking.Point{1: {X: 1, Y: 2}, 2: {X: 3, Y: 4}}))

	got := Render([]*tracking.Group{g})

	if open, closed := strings.Count(got, "{"), strings.Count(got, "}"); open != closed {
		t.Fatalf("unbalanced braces (%d open, %d close): %s", open, closed, got)
	}
	if strings.ContainsAny(got, "[]$") {
		t.Fatalf("Tcl substitution characters leaked into the node: %s", got)
	}
	if !strings.Contains(got, `"feat__x__y"`) {
		t.Fatalf("track name not sanitized: %s", got)
	}
	if !strings.Contains(got, "name trackerFromBlender_Cam_1___a_\n") {
		t.Fatalf("node name not sanitized: %s", got)
	}
}

func TestRenderSingleSampleUsesStepKey(t *testing.T) {
	g := group("g", track("one", map[int]tracking.Point{42: {X: 1.5, Y: -2}}))

	got := Render([]*tracking.Group{g})

	if !strings.Contains(got, `"one" {curve K x42 1.5} {curve K x42 -2.0} {curve K x42 0} {curve K x42 0} 1 1 1 {curve x42 0} `) {
		t.Fatalf("unexpected single-sample row: %s", got)
	}
}

func TestRenderConcatenatesGroupsInOrder(t *testing.T) {
	a := group("A", track("t", map[int]tracking.Point{1: {}}))
	empty := group("Empty")
	b := group("B", track("t", map[int]tracking.Point{1: {}}))

	got := Render([]*tracking.Group{a, empty, b})

	if strings.Count(got, "Tracker4 {") != 2 {
		t.Fatalf("expected 2 nodes: %s", got)
	}
	ia := strings.Index(got, "trackerFromBlender_A")
	ib := strings.Index(got, "trackerFromBlender_B")
	if ia < 0 || ib < 0 || ia > ib {
		t.Fatalf("groups out of order: %s", got)
	}
	if !strings.HasSuffix(RenderGroup(a), "name trackerFromBlender_A\n}\n") {
		t.Fatal("RenderGroup footer mismatch")
	}
	if got != RenderGroup(a)+RenderGroup(b) {
		t.Fatal("Render should equal concatenated RenderGroup output")
	}
}

func TestTrackerSchemaColumnCount(t *testing.T) {
	if got := strings.Count(tracker4Columns, "\n"); got != tracker4ColumnCount {
		t.Fatalf("schema declares %d columns, constant says %d", got, tracker4ColumnCount)
	}
}

func TestNodeName(t *testing.T) {
	if got := NodeName("Camera_Plane Track.001"); got != "trackerFromBlender_Camera_Plane_Track_001" {
		t.Fatalf("NodeName() = %q", got)
	}
}
