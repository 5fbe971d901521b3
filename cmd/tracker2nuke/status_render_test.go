package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"tracker2nuke/internal/bridge"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("export_all", statusOK, "Exported 2 track(s)", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "export_all:", "[OK] Exported 2 track(s)")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("copy_distortion", statusWarn, "wrong model", true)
	if !strings.HasPrefix(got, ansiYellow) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected yellow wrapped line, got %q", got)
	}
}

func TestReportKind(t *testing.T) {
	cases := []struct {
		name string
		res  bridge.Result
		want statusKind
	}{
		{"delivered", bridge.Result{Script: "x", Destination: "stdout", Report: bridge.Report{Level: bridge.LevelInfo}}, statusOK},
		{"empty input", bridge.Result{Report: bridge.Report{Level: bridge.LevelInfo}}, statusInfo},
		{"paste", bridge.Result{Action: bridge.ActionPasteDistortion, Report: bridge.Report{Level: bridge.LevelInfo}}, statusOK},
		{"warning", bridge.Result{Report: bridge.Report{Level: bridge.LevelWarning}}, statusWarn},
	}
	for _, tc := range cases {
		if got := reportKind(tc.res); got != tc.want {
			t.Errorf("%s: reportKind = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPrintReportWarningBecomesError(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, bridge.Result{Report: bridge.Report{Level: bridge.LevelWarning, Message: "Please select exactly one track."}})
	if err == nil || err.Error() != "Please select exactly one track." {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("warnings are reported through the error only, got %q", buf.String())
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" shot010.mov ", false)
	if lines[0] != "== shot010.mov ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header: %q", lines)
	}
}
