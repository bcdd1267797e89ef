package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tanekelly/overline-zebar/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ResolveResult is the top-level output of the `resolve` command. OK is
// false when there is no renderable title and the widget should fall back
// to a generic glyph.
type ResolveResult struct {
	OK      bool   `yaml:"ok"                json:"ok"`
	Title   string `yaml:"title,omitempty"   json:"title,omitempty"`
	Process string `yaml:"process,omitempty" json:"process,omitempty"`
}

// ProcessesResult is the top-level output of the `processes` command. Apps
// and Processes are parallel slices in tree encounter order.
type ProcessesResult struct {
	Workspace string   `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Apps      []string `yaml:"apps"                json:"apps"`
	Processes []string `yaml:"processes"           json:"processes"`
}

// ProcessesFlatResult is the output of `processes --flat`.
type ProcessesFlatResult struct {
	Workspace  string                `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Containers []model.FlatContainer `yaml:"containers"          json:"containers"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
