package model

// FlatContainer is a container with a path breadcrumb instead of children.
type FlatContainer struct {
	Type        ContainerType `yaml:"type"                  json:"type"`
	Title       string        `yaml:"title,omitempty"       json:"title,omitempty"`
	ProcessName string        `yaml:"processName,omitempty" json:"processName,omitempty"`
	Name        string        `yaml:"name,omitempty"        json:"name,omitempty"`
	Focused     bool          `yaml:"focused,omitempty"     json:"focused,omitempty"`
	Path        string        `yaml:"path,omitempty"        json:"path,omitempty"`
}

// FlattenContainers converts a container tree into a flat list. Each entry
// gets a path string showing its location in the tree using container type
// names joined with " > ".
func FlattenContainers(containers []Container) []FlatContainer {
	var result []FlatContainer
	for i := range containers {
		flattenRecursive(&containers[i], "", &result)
	}
	return result
}

func flattenRecursive(c *Container, parentPath string, result *[]FlatContainer) {
	currentPath := string(c.Type)
	if parentPath != "" {
		currentPath = parentPath + " > " + string(c.Type)
	}

	*result = append(*result, FlatContainer{
		Type:        c.Type,
		Title:       c.Title,
		ProcessName: c.ProcessName,
		Name:        c.Name,
		Focused:     c.HasFocus,
		Path:        currentPath,
	})

	for i := range c.Children {
		flattenRecursive(&c.Children[i], currentPath, result)
	}
}
