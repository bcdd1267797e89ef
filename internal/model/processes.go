package model

// WorkspaceProcesses walks a workspace's descendant containers depth-first
// and collects two parallel slices: the window titles (application display
// names) and the raw process names. Only window leaves contribute entries.
// Encounter order is preserved and duplicates are kept, so callers see the
// workspace exactly as the tree lays it out. A nil workspace or missing
// child lists yield empty results rather than an error.
func WorkspaceProcesses(ws *Workspace) (apps, processes []string) {
	if ws == nil {
		return nil, nil
	}
	collectWindows(ws.Children, &apps, &processes)
	return apps, processes
}

func collectWindows(children []Container, apps, processes *[]string) {
	for i := range children {
		c := &children[i]
		if c.Type == TypeWindow {
			*apps = append(*apps, c.Title)
			*processes = append(*processes, c.ProcessName)
			continue
		}
		collectWindows(c.Children, apps, processes)
	}
}
