package bridge

import "errors"

// Level is the severity of a report shown to the artist.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
)

// Action names one of the host actions.
type Action string

const (
	ActionExportAll       Action = "export_all"
	ActionExportSelected  Action = "export_selected"
	ActionExportCorners   Action = "export_pattern_corners"
	ActionExportPlane     Action = "export_plane_track"
	ActionCopyDistortion  Action = "copy_distortion"
	ActionPasteDistortion Action = "paste_distortion"
)

// Report is the single user-facing outcome of an action.
type Report struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Warning reports whether the action was cancelled.
func (r Report) Warning() bool { return r.Level == LevelWarning }

// Err converts a warning report into an error. Info reports yield nil.
func (r Report) Err() error {
	if !r.Warning() {
		return nil
	}
	return errors.New(r.Message)
}

func info(msg string) Report    { return Report{Level: LevelInfo, Message: msg} }
func warning(msg string) Report { return Report{Level: LevelWarning, Message: msg} }

// Result describes what an action produced.
type Result struct {
	Action      Action   `json:"action"`
	Report      Report   `json:"report"`
	Script      string   `json:"script,omitempty"`
	Nodes       []string `json:"nodes,omitempty"`
	TrackCount  int      `json:"track_count"`
	Destination string   `json:"destination,omitempty"`
	HistoryID   string   `json:"history_id,omitempty"`
}

// Delivered reports whether a script reached the sink.
func (r Result) Delivered() bool { return r.Script != "" && r.Destination != "" }
