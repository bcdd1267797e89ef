package title

import (
	"regexp"
	"strings"

	"github.com/tanekelly/overline-zebar/internal/model"
)

// DefaultSeparator matches the dash conventionally separating window title
// segments ("<content> - <appname>"), either a hyphen or an em-dash.
var DefaultSeparator = regexp.MustCompile(`[-—]`)

// DefaultExcludedProcesses lists process-name prefixes whose window titles
// are too noisy to display; the process name itself is shown instead.
var DefaultExcludedProcesses = []string{"Spotify"}

// Options configures a Resolver. Zero values fall back to the defaults
// above, so Resolver{} behaves like the stock widget.
type Options struct {
	// ExcludedProcesses are process-name prefixes exempted from title
	// splitting. Matching is a prefix test so versioned or suffixed
	// process names ("Spotify.exe") still match.
	ExcludedProcesses []string

	// Separator splits a window title into segments; the last segment is
	// the displayed title.
	Separator *regexp.Regexp
}

// Resolver derives a display label from a focus snapshot. Resolution is
// pure and never fails: every malformed input degrades to a fallback
// label or to no title at all.
type Resolver struct {
	opts     Options
	inferrer NameInferrer
}

// NewResolver returns a Resolver with the given options. The inferrer
// supplies custom workspace names and may be nil.
func NewResolver(opts Options, inferrer NameInferrer) *Resolver {
	if len(opts.ExcludedProcesses) == 0 {
		opts.ExcludedProcesses = DefaultExcludedProcesses
	}
	if opts.Separator == nil {
		opts.Separator = DefaultSeparator
	}
	return &Resolver{opts: opts, inferrer: inferrer}
}

// ResolveTitle derives the display label for the snapshot's focus target.
// The second return value is false when there is nothing renderable and
// the caller should show a generic glyph instead.
//
// Priority: window title (with process-name override for excluded
// processes) when a window is focused; otherwise inferred workspace name,
// then the workspace display name, then "Workspace <name>".
func (r *Resolver) ResolveTitle(snap model.FocusSnapshot) (string, bool) {
	if snap.Workspace == nil || snap.Focused == nil {
		return "", false
	}

	if snap.Focused.Type == model.TypeWindow {
		return r.resolveWindowTitle(snap.Focused)
	}

	// Structural focus: the workspace, a split, or the root holds focus.
	if name, ok := r.inferName(snap.Workspace); ok {
		return name, true
	}
	if snap.Workspace.DisplayName != "" {
		return snap.Workspace.DisplayName, true
	}
	return "Workspace " + snap.Workspace.Name, true
}

// ResolveProcessName returns the focused container's process name only
// when a window is focused. Structural containers have no process, even
// when windows are nested beneath them.
func (r *Resolver) ResolveProcessName(snap model.FocusSnapshot) (string, bool) {
	if snap.Focused == nil || snap.Focused.Type != model.TypeWindow {
		return "", false
	}
	if snap.Focused.ProcessName == "" {
		return "", false
	}
	return snap.Focused.ProcessName, true
}

func (r *Resolver) resolveWindowTitle(c *model.Container) (string, bool) {
	if r.isExcluded(c.ProcessName) {
		// Title splitting is bypassed entirely: the process name is the
		// more stable label for these applications.
		return c.ProcessName, true
	}

	title := r.lastSegment(c.Title)
	if title == "" {
		return "", false
	}
	return title, true
}

func (r *Resolver) isExcluded(process string) bool {
	for _, prefix := range r.opts.ExcludedProcesses {
		if prefix != "" && strings.HasPrefix(process, prefix) {
			return true
		}
	}
	return false
}

// lastSegment splits the title on the separator and returns the trailing
// segment, the convention being "<content> - <appname>". Split always
// returns at least one segment, so a title without separators survives
// whole as the single segment.
func (r *Resolver) lastSegment(title string) string {
	segments := r.opts.Separator.Split(title, -1)
	return strings.TrimSpace(segments[len(segments)-1])
}

// inferName consults the inference collaborator with the workspace's
// window contents. Errors from a malformed tree are swallowed here: a
// failed inference means no custom name, never a failed resolution.
func (r *Resolver) inferName(ws *model.Workspace) (string, bool) {
	if r.inferrer == nil {
		return "", false
	}
	apps, processes := model.WorkspaceProcesses(ws)
	inferred, err := r.inferrer.InferWorkspaceName(apps, processes, ws.Name)
	if err != nil || !inferred.OK {
		return "", false
	}
	return inferred.Name, true
}
