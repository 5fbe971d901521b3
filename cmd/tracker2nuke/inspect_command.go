package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tracker2nuke/internal/nuke"
	"tracker2nuke/internal/scene"
	"tracker2nuke/internal/tracking"
)

type trackSummary struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	Markers  int    `json:"markers"`
	First    int    `json:"first_frame,omitempty"`
	Last     int    `json:"last_frame,omitempty"`
}

type planeSummary struct {
	Name    string `json:"name"`
	Active  bool   `json:"active"`
	Markers int    `json:"markers"`
}

type sceneSummary struct {
	Path            string         `json:"path"`
	Clip            string         `json:"clip"`
	Width           int            `json:"width"`
	Height          int            `json:"height"`
	FrameStart      int            `json:"frame_start"`
	Object          string         `json:"object"`
	Node            string         `json:"node"`
	DistortionModel string         `json:"distortion_model"`
	DistortionNode  string         `json:"distortion_node,omitempty"`
	Tracks          []trackSummary `json:"tracks"`
	PlaneTracks     []planeSummary `json:"plane_tracks,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect <scene>",
		Short: "Summarize the tracking data of a scene document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			summary, err := summarizeScene(s)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			printSceneSummary(cmd, summary)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func summarizeScene(s *scene.Scene) (sceneSummary, error) {
	clip := &s.Clip
	obj, err := clip.ActiveObject()
	if err != nil {
		return sceneSummary{}, err
	}
	summary := sceneSummary{
		Path:            s.Path,
		Clip:            clip.Name,
		Width:           clip.Width,
		Height:          clip.Height,
		FrameStart:      clip.FrameStart,
		Object:          obj.Name,
		Node:            nuke.NodeName(obj.Name),
		DistortionModel: clip.Camera.DistortionModel,
		Tracks:          make([]trackSummary, 0, len(obj.Tracks)),
	}
	if clip.Camera.DistortionModel == scene.DistortionModelNuke {
		summary.DistortionNode = clip.DistortionNodeName()
	}
	for _, t := range obj.Tracks {
		ts := trackSummary{Name: tracking.SanitizeName(t.Name), Selected: t.Select, Markers: len(t.Markers)}
		for i, m := range t.Markers {
			frame := clip.GlobalFrame(m.Frame)
			if i == 0 || frame < ts.First {
				ts.First = frame
			}
			if i == 0 || frame > ts.Last {
				ts.Last = frame
			}
		}
		summary.Tracks = append(summary.Tracks, ts)
	}
	for _, p := range obj.PlaneTracks {
		summary.PlaneTracks = append(summary.PlaneTracks, planeSummary{
			Name:    p.Name,
			Active:  p.Name == obj.ActivePlaneTrack,
			Markers: len(p.Markers),
		})
	}
	return summary, nil
}

func printSceneSummary(cmd *cobra.Command, s sceneSummary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader(s.Clip, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Scene:       %s\n", s.Path)
	fmt.Fprintf(out, "Size:        %dx%d\n", s.Width, s.Height)
	fmt.Fprintf(out, "Frame start: %d\n", s.FrameStart)
	fmt.Fprintf(out, "Object:      %s (node %s)\n", s.Object, s.Node)
	if s.DistortionNode != "" {
		fmt.Fprintf(out, "Distortion:  %s (node %s)\n", s.DistortionModel, s.DistortionNode)
	} else {
		fmt.Fprintf(out, "Distortion:  %s\n", s.DistortionModel)
	}

	if len(s.Tracks) == 0 {
		fmt.Fprintln(out, "No point tracks")
	} else {
		rows := make([][]string, 0, len(s.Tracks))
		for _, t := range s.Tracks {
			frames := "-"
			if t.Markers > 0 {
				frames = fmt.Sprintf("%d-%d", t.First, t.Last)
			}
			rows = append(rows, []string{t.Name, yesNo(t.Selected), strconv.Itoa(t.Markers), frames})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Track", "Selected", "Markers", "Frames"},
			rows,
			2, 3,
		))
	}

	if len(s.PlaneTracks) > 0 {
		rows := make([][]string, 0, len(s.PlaneTracks))
		for _, p := range s.PlaneTracks {
			rows = append(rows, []string{p.Name, yesNo(p.Active), strconv.Itoa(p.Markers)})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Plane Track", "Active", "Markers"},
			rows,
			2,
		))
	}
}
