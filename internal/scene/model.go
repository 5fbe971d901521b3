package scene

// DistortionModelNuke is the camera distortion model whose coefficients map
// one to one onto LensDistortion2.
const DistortionModelNuke = "NUKE"

// Clip is a movie clip together with its tracking data.
type Clip struct {
	Name        string   `json:"name" yaml:"name"`
	Width       int      `json:"width" yaml:"width"`
	Height      int      `json:"height" yaml:"height"`
	FrameStart  int      `json:"frame_start" yaml:"frame_start"`
	Camera      Camera   `json:"camera" yaml:"camera"`
	ActiveIndex int      `json:"active_object" yaml:"active_object"`
	Objects     []Object `json:"objects" yaml:"objects"`
}

// Camera holds the tracking camera intrinsics relevant to lens distortion.
type Camera struct {
	DistortionModel string  `json:"distortion_model" yaml:"distortion_model"`
	FocalLength     float64 `json:"focal_length" yaml:"focal_length"`
	NukeK1          float64 `json:"nuke_k1" yaml:"nuke_k1"`
	NukeK2          float64 `json:"nuke_k2" yaml:"nuke_k2"`
}

// Object is a tracking object (the camera itself or a tracked object).
type Object struct {
	Name             string       `json:"name" yaml:"name"`
	Tracks           []Track      `json:"tracks" yaml:"tracks"`
	PlaneTracks      []PlaneTrack `json:"plane_tracks,omitempty" yaml:"plane_tracks,omitempty"`
	ActivePlaneTrack string       `json:"active_plane_track,omitempty" yaml:"active_plane_track,omitempty"`
}

// Track is a point track.
type Track struct {
	Name    string   `json:"name" yaml:"name"`
	Select  bool     `json:"select" yaml:"select"`
	Markers []Marker `json:"markers" yaml:"markers"`
}

// Marker is one point track sample in clip-local frames and normalized
// coordinates. PatternCorners are offsets from Co.
type Marker struct {
	Frame          int          `json:"frame" yaml:"frame"`
	Co             [2]float64   `json:"co" yaml:"co,flow"`
	PatternCorners [][2]float64 `json:"pattern_corners,omitempty" yaml:"pattern_corners,omitempty,flow"`
}

// PlaneTrack is a tracked plane.
type PlaneTrack struct {
	Name    string        `json:"name" yaml:"name"`
	Markers []PlaneMarker `json:"markers" yaml:"markers"`
}

// PlaneMarker is one plane track sample with absolute normalized corners.
type PlaneMarker struct {
	Frame   int          `json:"frame" yaml:"frame"`
	Corners [][2]float64 `json:"corners" yaml:"corners,flow"`
}
