package title

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tanekelly/overline-zebar/internal/model"
)

// recordingInferrer captures the arguments it was called with and returns
// a canned result.
type recordingInferrer struct {
	apps      []string
	processes []string
	workspace string
	result    Inference
	err       error
}

func (ri *recordingInferrer) InferWorkspaceName(apps, processes []string, workspace string) (Inference, error) {
	ri.apps = apps
	ri.processes = processes
	ri.workspace = workspace
	return ri.result, ri.err
}

func windowSnapshot(title, process string) model.FocusSnapshot {
	return model.FocusSnapshot{
		Focused: &model.Container{
			Type:        model.TypeWindow,
			Title:       title,
			ProcessName: process,
		},
		Workspace: &model.Workspace{Container: model.Container{Type: model.TypeWorkspace, Name: "1"}},
	}
}

func TestResolveTitle_LastSegment(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"single_dash", "Report - Notepad", "Notepad"},
		{"em_dash", "Report — Notepad", "Notepad"},
		{"multiple_dashes", "Foo - Bar - Baz", "Baz"},
		{"no_separator", "NoSeparatorHere", "NoSeparatorHere"},
	}
	r := NewResolver(Options{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveTitle(windowSnapshot(tt.title, "app.exe"))
			if !ok {
				t.Fatal("expected a resolved title")
			}
			if got != tt.want {
				t.Errorf("ResolveTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestResolveTitle_ExclusionBypassesSplitting(t *testing.T) {
	r := NewResolver(Options{}, nil)

	got, ok := r.ResolveTitle(windowSnapshot("Song — Artist", "Spotify.exe"))
	if !ok {
		t.Fatal("expected a resolved title")
	}
	if got != "Spotify.exe" {
		t.Errorf("expected raw process name %q, got %q", "Spotify.exe", got)
	}
}

func TestResolveTitle_ExclusionIsPrefixMatch(t *testing.T) {
	r := NewResolver(Options{ExcludedProcesses: []string{"mpv"}}, nil)

	got, ok := r.ResolveTitle(windowSnapshot("movie - mpv", "mpv-0.38"))
	if !ok || got != "mpv-0.38" {
		t.Errorf("expected prefix-matched process name, got %q (ok=%v)", got, ok)
	}

	// Equality-only would match here too; a non-prefixed process must not.
	got, ok = r.ResolveTitle(windowSnapshot("movie - mpv", "umpv"))
	if !ok || got != "mpv" {
		t.Errorf("expected split title %q, got %q (ok=%v)", "mpv", got, ok)
	}
}

func TestResolveTitle_WindowWithoutTitle(t *testing.T) {
	r := NewResolver(Options{}, nil)

	if got, ok := r.ResolveTitle(windowSnapshot("", "app.exe")); ok {
		t.Errorf("expected no title for untitled window, got %q", got)
	}
}

func TestResolveTitle_MissingFocusState(t *testing.T) {
	r := NewResolver(Options{}, nil)

	if _, ok := r.ResolveTitle(model.FocusSnapshot{}); ok {
		t.Error("expected no title for empty snapshot")
	}

	// A valid window without its owning workspace is still unresolvable.
	snap := windowSnapshot("Report - Notepad", "notepad.exe")
	snap.Workspace = nil
	if got, ok := r.ResolveTitle(snap); ok {
		t.Errorf("expected no title without a workspace, got %q", got)
	}

	snap = windowSnapshot("Report - Notepad", "notepad.exe")
	snap.Focused = nil
	if got, ok := r.ResolveTitle(snap); ok {
		t.Errorf("expected no title without a focused container, got %q", got)
	}
}

func structuralSnapshot(ws model.Workspace) model.FocusSnapshot {
	c := ws.Container
	return model.FocusSnapshot{Focused: &c, Workspace: &ws}
}

func TestResolveTitle_InferenceReceivesOrderedProcesses(t *testing.T) {
	inferrer := &recordingInferrer{}
	r := NewResolver(Options{}, inferrer)

	ws := model.Workspace{Container: model.Container{
		Type: model.TypeWorkspace,
		Name: "4",
		Children: []model.Container{
			{Type: model.TypeWindow, Title: "a", ProcessName: "chrome"},
			{Type: model.TypeWindow, Title: "b", ProcessName: "chrome"},
			{Type: model.TypeWindow, Title: "c", ProcessName: "code"},
		},
	}}

	r.ResolveTitle(structuralSnapshot(ws))

	want := []string{"chrome", "chrome", "code"}
	if !reflect.DeepEqual(inferrer.processes, want) {
		t.Errorf("inference received %v, want %v", inferrer.processes, want)
	}
	if inferrer.workspace != "4" {
		t.Errorf("inference received workspace %q, want %q", inferrer.workspace, "4")
	}
}

func TestResolveTitle_InferredNameWins(t *testing.T) {
	inferrer := &recordingInferrer{result: Inference{Name: "browsing", OK: true}}
	r := NewResolver(Options{}, inferrer)

	ws := model.Workspace{Container: model.Container{Type: model.TypeWorkspace, Name: "2", DisplayName: "Two"}}
	got, ok := r.ResolveTitle(structuralSnapshot(ws))
	if !ok || got != "browsing" {
		t.Errorf("expected inferred name, got %q (ok=%v)", got, ok)
	}
}

func TestResolveTitle_InferenceErrorFallsBack(t *testing.T) {
	inferrer := &recordingInferrer{err: errors.New("malformed tree")}
	r := NewResolver(Options{}, inferrer)

	ws := model.Workspace{Container: model.Container{Type: model.TypeWorkspace, Name: "2", DisplayName: "Two"}}
	got, ok := r.ResolveTitle(structuralSnapshot(ws))
	if !ok || got != "Two" {
		t.Errorf("expected display name fallback, got %q (ok=%v)", got, ok)
	}

	ws.DisplayName = ""
	got, ok = r.ResolveTitle(structuralSnapshot(ws))
	if !ok || got != "Workspace 2" {
		t.Errorf("expected synthesized label, got %q (ok=%v)", got, ok)
	}
}

func TestResolveTitle_NoInferrer(t *testing.T) {
	r := NewResolver(Options{}, nil)

	ws := model.Workspace{Container: model.Container{Type: model.TypeWorkspace, Name: "9"}}
	got, ok := r.ResolveTitle(structuralSnapshot(ws))
	if !ok || got != "Workspace 9" {
		t.Errorf("expected synthesized label, got %q (ok=%v)", got, ok)
	}
}

func TestResolveProcessName(t *testing.T) {
	r := NewResolver(Options{}, nil)

	snap := windowSnapshot("Report — Notepad", "notepad.exe")
	got, ok := r.ResolveProcessName(snap)
	if !ok || got != "notepad.exe" {
		t.Errorf("expected %q, got %q (ok=%v)", "notepad.exe", got, ok)
	}

	// Structural focus has no process, even with windows nested below.
	ws := model.Workspace{Container: model.Container{
		Type:     model.TypeWorkspace,
		Name:     "1",
		Children: []model.Container{{Type: model.TypeWindow, ProcessName: "nested.exe"}},
	}}
	if got, ok := r.ResolveProcessName(structuralSnapshot(ws)); ok {
		t.Errorf("expected no process for structural focus, got %q", got)
	}

	if _, ok := r.ResolveProcessName(model.FocusSnapshot{}); ok {
		t.Error("expected no process for empty snapshot")
	}
}

func TestResolve_NotepadScenario(t *testing.T) {
	r := NewResolver(Options{}, nil)
	snap := windowSnapshot("Report — Notepad", "notepad.exe")

	title, ok := r.ResolveTitle(snap)
	if !ok || title != "Notepad" {
		t.Errorf("title = %q (ok=%v), want %q", title, ok, "Notepad")
	}
	process, ok := r.ResolveProcessName(snap)
	if !ok || process != "notepad.exe" {
		t.Errorf("process = %q (ok=%v), want %q", process, ok, "notepad.exe")
	}
}
