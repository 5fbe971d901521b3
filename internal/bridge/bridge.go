package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tracker2nuke/internal/clipboard"
	"tracker2nuke/internal/history"
	"tracker2nuke/internal/logging"
	"tracker2nuke/internal/nuke"
	"tracker2nuke/internal/scene"
	"tracker2nuke/internal/tracking"
)

// Recorder persists produced scripts. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) (history.Entry, error)
}

// Bridge runs host actions against scenes and delivers scripts to a sink.
type Bridge struct {
	sink     clipboard.Sink
	recorder Recorder
	logger   *slog.Logger
}

// Option customizes a Bridge.
type Option func(*Bridge)

// WithRecorder records every delivered script.
func WithRecorder(r Recorder) Option {
	return func(b *Bridge) { b.recorder = r }
}

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) { b.logger = logger }
}

// New constructs a Bridge writing to sink.
func New(sink clipboard.Sink, opts ...Option) *Bridge {
	b := &Bridge{sink: sink}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = logging.NewComponentLogger(b.logger, "bridge")
	return b
}

// collected is one scene's contribution to an export.
type collected struct {
	scene *scene.Scene
	group *tracking.Group
	// label is the name quoted in the success message: the tracking object,
	// the pattern track or the plane track.
	label string
}

type collectFunc func(*scene.Scene) (collected, *Report)

// ExportAll exports every track with markers of each scene's active object.
func (b *Bridge) ExportAll(ctx context.Context, scenes ...*scene.Scene) (Result, error) {
	return b.export(ctx, ActionExportAll, scenes, collectTracks(false), tracksMessage)
}

// ExportSelected exports the selected tracks with markers of each scene's
// active object.
func (b *Bridge) ExportSelected(ctx context.Context, scenes ...*scene.Scene) (Result, error) {
	return b.export(ctx, ActionExportSelected, scenes, collectTracks(true), tracksMessage)
}

// ExportPatternCorners exports the pattern corners of the single selected
// track as four tracks.
func (b *Bridge) ExportPatternCorners(ctx context.Context, scenes ...*scene.Scene) (Result, error) {
	return b.export(ctx, ActionExportCorners, scenes, collectPatternCorners, func(items []collected, _ int, _ string) string {
		return fmt.Sprintf("Exported 4 pattern corners from %s.", quotedLabels(items))
	})
}

// ExportPlaneTrack exports the four corners of the active plane track.
func (b *Bridge) ExportPlaneTrack(ctx context.Context, scenes ...*scene.Scene) (Result, error) {
	return b.export(ctx, ActionExportPlane, scenes, collectPlaneTrack, func(items []collected, _ int, _ string) string {
		return fmt.Sprintf("Exported plane track %s.", quotedLabels(items))
	})
}

func collectTracks(selectedOnly bool) collectFunc {
	return func(s *scene.Scene) (collected, *Report) {
		obj, err := s.Clip.ActiveObject()
		if err != nil {
			r := warning("No active clip or tracking object.")
			return collected{}, &r
		}
		group, err := s.Clip.CollectTracks(selectedOnly)
		if err != nil {
			r := warning(err.Error())
			if errors.Is(err, tracking.ErrEmptyInput) {
				if selectedOnly {
					r = info("No tracks selected or selected tracks have no markers.")
				} else {
					r = info(fmt.Sprintf("'%s' has no tracks with markers.", obj.Name))
				}
			}
			return collected{}, &r
		}
		return collected{scene: s, group: group, label: obj.Name}, nil
	}
}

func tracksMessage(items []collected, trackCount int, destination string) string {
	return fmt.Sprintf("Exported %d track(s) from %s to %s.", trackCount, quotedLabels(items), destination)
}

func collectPatternCorners(s *scene.Scene) (collected, *Report) {
	group, name, err := s.Clip.CollectPatternCorners()
	if err != nil {
		var r Report
		switch {
		case errors.Is(err, scene.ErrNoActiveObject):
			r = warning("Cannot find an active tracking object.")
		case errors.Is(err, scene.ErrSelection):
			r = warning("Please select exactly one track.")
		case errors.Is(err, tracking.ErrEmptyInput):
			r = info(fmt.Sprintf("Track '%s' has no markers.", name))
		default:
			r = warning(err.Error())
		}
		return collected{}, &r
	}
	return collected{scene: s, group: group, label: name}, nil
}

func collectPlaneTrack(s *scene.Scene) (collected, *Report) {
	group, name, err := s.Clip.CollectPlaneTrack()
	if err != nil {
		var r Report
		switch {
		case errors.Is(err, scene.ErrNoActiveObject):
			r = warning("Cannot find an active tracking object.")
		case errors.Is(err, scene.ErrNoPlaneTrack), errors.Is(err, tracking.ErrEmptyInput):
			r = info("No valid plane track selected or it has no markers.")
		default:
			r = warning(err.Error())
		}
		return collected{}, &r
	}
	return collected{scene: s, group: group, label: name}, nil
}

// export collects every scene, renders the groups as one script and delivers
// it. A warning from any scene cancels the action. Scenes reporting empty
// input are skipped; when every scene is empty the first report is returned.
func (b *Bridge) export(ctx context.Context, action Action, scenes []*scene.Scene, collect collectFunc, message func([]collected, int, string) string) (Result, error) {
	result := Result{Action: action}
	if len(scenes) == 0 {
		result.Report = warning("No active clip or tracking object.")
		return result, nil
	}

	var (
		items      []collected
		firstEmpty *Report
	)
	for _, s := range scenes {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		item, report := collect(s)
		if report == nil {
			items = append(items, item)
			continue
		}
		if report.Warning() {
			result.Report = *report
			b.logReport(action, s, result.Report)
			return result, nil
		}
		if firstEmpty == nil {
			firstEmpty = report
		}
		b.logReport(action, s, *report)
	}
	if len(items) == 0 {
		result.Report = *firstEmpty
		return result, nil
	}

	groups := make([]*tracking.Group, 0, len(items))
	for _, item := range items {
		groups = append(groups, item.group)
		if len(item.group.NonEmpty()) == 0 {
			continue
		}
		result.Nodes = append(result.Nodes, nuke.NodeName(item.group.Name))
		result.TrackCount += len(item.group.NonEmpty())
	}
	script := nuke.Render(groups)
	if script == "" {
		result.Report = warning("Could not generate valid track data.")
		b.logReport(action, items[0].scene, result.Report)
		return result, nil
	}

	if err := b.deliver(ctx, &result, script, items); err != nil {
		return result, err
	}
	result.Report = info(message(items, result.TrackCount, result.Destination))
	b.logger.Info("script exported",
		logging.String(logging.FieldAction, string(action)),
		logging.String(logging.FieldScene, scenePaths(items)),
		logging.Int(logging.FieldTracks, result.TrackCount),
		logging.String(logging.FieldNode, strings.Join(result.Nodes, ",")),
		logging.String(logging.FieldSink, result.Destination),
	)
	return result, nil
}

// CopyDistortion renders the camera's Nuke distortion coefficients as a
// LensDistortion2 node.
func (b *Bridge) CopyDistortion(ctx context.Context, s *scene.Scene) (Result, error) {
	result := Result{Action: ActionCopyDistortion}
	params, err := s.Clip.DistortionParams()
	if err != nil {
		result.Report = warning("Distortion model must be 'NUKE'. Change it in Camera Properties > Lens.")
		b.logReport(ActionCopyDistortion, s, result.Report)
		return result, nil
	}
	result.Nodes = []string{params.NodeName}
	if err := b.deliver(ctx, &result, nuke.FormatDistortion(params), []collected{{scene: s}}); err != nil {
		return result, err
	}
	result.Report = info(fmt.Sprintf("Copied lens distortion to %s.", result.Destination))
	b.logger.Info("lens distortion copied",
		logging.String(logging.FieldScene, s.Path),
		logging.String(logging.FieldNode, params.NodeName),
		logging.Float64("k1", params.K1),
		logging.Float64("k2", params.K2),
		logging.String(logging.FieldSink, result.Destination),
	)
	return result, nil
}

// PasteDistortion reads a LensDistortion2 node from src and writes its
// coefficients into the camera of the scene document at path. The document
// is rewritten under a file lock only when the text parses.
func (b *Bridge) PasteDistortion(ctx context.Context, path string, src clipboard.Source, opts scene.SaveOptions) (Result, error) {
	result := Result{Action: ActionPasteDistortion}
	text, err := src.Read()
	if err != nil {
		return result, fmt.Errorf("read %s: %w", src.Describe(), err)
	}
	params, err := nuke.ParseDistortion(text)
	if err != nil {
		result.Report = warning("Clipboard does not contain a valid Nuke LensDistortion node.")
		b.logger.Warn("paste rejected",
			logging.String(logging.FieldScene, path),
			logging.String("source", src.Describe()),
			logging.Error(err),
		)
		return result, nil
	}

	updated, err := scene.Update(ctx, path, opts, func(clip *scene.Clip) error {
		clip.ApplyDistortion(params)
		return nil
	})
	if err != nil {
		return result, err
	}
	result.Report = info(fmt.Sprintf("Pasted distortion K1=%.4f, K2=%.4f.", params.K1, params.K2))
	result.Destination = path
	b.record(ctx, &result, history.Entry{
		Kind:    string(ActionPasteDistortion),
		Scene:   path,
		Clip:    updated.Clip.Name,
		Sink:    src.Describe(),
		Payload: text,
	})
	b.logger.Info("lens distortion pasted",
		logging.String(logging.FieldScene, path),
		logging.Float64("k1", params.K1),
		logging.Float64("k2", params.K2),
	)
	return result, nil
}

func (b *Bridge) deliver(ctx context.Context, result *Result, script string, items []collected) error {
	if b.sink == nil {
		return errors.New("no output sink configured")
	}
	if err := b.sink.Write(script); err != nil {
		return fmt.Errorf("deliver script to %s: %w", b.sink.Describe(), err)
	}
	result.Script = script
	result.Destination = b.sink.Describe()

	clips := make([]string, 0, len(items))
	for _, item := range items {
		clips = append(clips, item.scene.Clip.Name)
	}
	b.record(ctx, result, history.Entry{
		Kind:       string(result.Action),
		Scene:      scenePaths(items),
		Clip:       strings.Join(clips, ", "),
		Nodes:      result.Nodes,
		TrackCount: result.TrackCount,
		Sink:       result.Destination,
		Payload:    script,
	})
	return nil
}

// record stores entry in history. Failures are logged and never change the
// action's outcome.
func (b *Bridge) record(ctx context.Context, result *Result, entry history.Entry) {
	if b.recorder == nil {
		return
	}
	stored, err := b.recorder.Record(ctx, entry)
	if err != nil {
		b.logger.Warn("history record failed",
			logging.String(logging.FieldAction, string(result.Action)),
			logging.Error(err),
		)
		return
	}
	result.HistoryID = stored.ID
	b.logger.Debug("history recorded", logging.String(logging.FieldEntryID, stored.ID))
}

func (b *Bridge) logReport(action Action, s *scene.Scene, r Report) {
	attrs := []logging.Attr{
		logging.String(logging.FieldAction, string(action)),
		logging.String(logging.FieldScene, s.Path),
	}
	if r.Warning() {
		b.logger.Warn(r.Message, logging.Args(attrs...)...)
		return
	}
	b.logger.Info(r.Message, logging.Args(attrs...)...)
}

func quotedLabels(items []collected) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, "'"+item.label+"'")
	}
	return strings.Join(quoted, ", ")
}

func scenePaths(items []collected) string {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		paths = append(paths, item.scene.Path)
	}
	return strings.Join(paths, ", ")
}
