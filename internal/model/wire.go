package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeSnapshot reads window manager state from r as JSON. The input may
// be a FocusSnapshot object ({focusedContainer, focusedWorkspace}) or a
// bare container tree in which the focused node is marked with hasFocus;
// trees are converted via SnapshotFromTree. Missing focus state is not an
// error: it decodes to an empty snapshot, which resolves to no title.
func DecodeSnapshot(r io.Reader) (FocusSnapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return FocusSnapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap FocusSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return FocusSnapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap.Focused != nil || snap.Workspace != nil {
		return snap, nil
	}

	// Not a snapshot object; try a bare container tree.
	var root Container
	if err := json.Unmarshal(data, &root); err != nil {
		return FocusSnapshot{}, fmt.Errorf("unmarshal container tree: %w", err)
	}
	if root.Type == "" {
		return FocusSnapshot{}, nil
	}
	return SnapshotFromTree(&root), nil
}

// SnapshotFromTree derives a FocusSnapshot from a full container tree.
// The focused container is the deepest node marked hasFocus; the focused
// workspace is that node's nearest workspace ancestor. When the root
// itself is a workspace it serves as the workspace even if nothing inside
// it has focus, so a workspace subtree on its own is still inspectable.
func SnapshotFromTree(root *Container) FocusSnapshot {
	if root == nil {
		return FocusSnapshot{}
	}

	var snap FocusSnapshot
	focused, ws := findFocused(root, nil)
	if ws == nil && root.Type == TypeWorkspace {
		ws = root
	}
	snap.Focused = focused
	if ws != nil {
		snap.Workspace = &Workspace{Container: *ws}
	}
	return snap
}

// findFocused returns the deepest container marked hasFocus along with its
// nearest workspace ancestor. Ancestors of the focused node may also carry
// the focus mark; descending first ensures the leaf wins.
func findFocused(c, ws *Container) (*Container, *Container) {
	if c.Type == TypeWorkspace {
		ws = c
	}
	for i := range c.Children {
		if found, foundWS := findFocused(&c.Children[i], ws); found != nil {
			return found, foundWS
		}
	}
	if c.HasFocus {
		return c, ws
	}
	return nil, nil
}
