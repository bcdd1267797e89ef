package title

import "strings"

// Inference is the outcome of a workspace-name inference attempt. OK is
// false when the inferrer has no opinion; that is not an error.
type Inference struct {
	Name string
	OK   bool
}

// NameInferrer derives a custom workspace label from the windows running
// inside it. apps and processes are parallel slices in tree encounter
// order; workspace is the raw internal workspace name. Implementations
// return an error for malformed input; the resolver treats errors the
// same as no inference.
type NameInferrer interface {
	InferWorkspaceName(apps, processes []string, workspace string) (Inference, error)
}

// Rule maps a process-name prefix to a workspace label.
type Rule struct {
	Process string `yaml:"process" json:"process"`
	Label   string `yaml:"label"   json:"label"`
}

// RuleInferrer names a workspace after the first configured rule whose
// process appears among the workspace's windows. Rule order is priority
// order; process matching is a case-insensitive prefix test.
type RuleInferrer struct {
	rules []Rule
}

// NewRuleInferrer returns a RuleInferrer over the given rules.
func NewRuleInferrer(rules []Rule) *RuleInferrer {
	return &RuleInferrer{rules: rules}
}

// InferWorkspaceName implements NameInferrer. It never errors: an empty
// workspace or an unmatched process list simply yields no inference.
func (ri *RuleInferrer) InferWorkspaceName(_, processes []string, _ string) (Inference, error) {
	for _, rule := range ri.rules {
		if rule.Process == "" {
			continue
		}
		prefix := strings.ToLower(rule.Process)
		for _, p := range processes {
			if strings.HasPrefix(strings.ToLower(p), prefix) {
				return Inference{Name: rule.Label, OK: true}, nil
			}
		}
	}
	return Inference{}, nil
}
