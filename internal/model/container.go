package model

// ContainerType identifies the kind of node in the window manager's tree.
type ContainerType string

const (
	TypeRoot      ContainerType = "root"
	TypeMonitor   ContainerType = "monitor"
	TypeWorkspace ContainerType = "workspace"
	TypeSplit     ContainerType = "split"
	TypeWindow    ContainerType = "window"
)

// WindowState describes how a window is currently displayed. It is only
// present on window containers; structural nodes never carry one.
type WindowState struct {
	Type string `yaml:"type" json:"type"` // tiling, floating, minimized, fullscreen
}

// Container is a node in the window manager's window/workspace tree.
// Title, ProcessName, and State are meaningful only when Type is window;
// Name and DisplayName are meaningful only when Type is workspace. All
// other types are purely structural.
type Container struct {
	Type        ContainerType `yaml:"type"                  json:"type"`
	Title       string        `yaml:"title,omitempty"       json:"title,omitempty"`
	ProcessName string        `yaml:"processName,omitempty" json:"processName,omitempty"`
	Name        string        `yaml:"name,omitempty"        json:"name,omitempty"`
	DisplayName string        `yaml:"displayName,omitempty" json:"displayName,omitempty"`
	HasFocus    bool          `yaml:"hasFocus,omitempty"    json:"hasFocus,omitempty"`
	State       *WindowState  `yaml:"state,omitempty"       json:"state,omitempty"`
	Children    []Container   `yaml:"children,omitempty"    json:"children,omitempty"`
}

// IsWindow reports whether the container is a window leaf.
func (c *Container) IsWindow() bool {
	return c != nil && c.Type == TypeWindow
}

// Workspace is a container of type workspace, carrying an internal name
// and an optional human display label in addition to its subtree.
type Workspace struct {
	Container `yaml:",inline"`
}

// FocusSnapshot is one self-contained view of window manager focus state.
// Either field may be nil when the window manager has not reported focus
// yet. A snapshot is immutable for the duration of one resolution pass.
type FocusSnapshot struct {
	Focused   *Container `yaml:"focusedContainer,omitempty" json:"focusedContainer,omitempty"`
	Workspace *Workspace `yaml:"focusedWorkspace,omitempty" json:"focusedWorkspace,omitempty"`
}
