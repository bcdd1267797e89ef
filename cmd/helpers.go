package cmd

import (
	"fmt"
	"os"

	"github.com/tanekelly/overline-zebar/internal/model"
	"github.com/tanekelly/overline-zebar/internal/title"
)

// readSnapshot loads a focus snapshot from the given file, or from stdin
// when path is empty or "-".
func readSnapshot(path string) (model.FocusSnapshot, error) {
	if path == "" || path == "-" {
		return model.DecodeSnapshot(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return model.FocusSnapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return model.DecodeSnapshot(f)
}

// newResolver builds a title resolver from the active configuration.
func newResolver() (*title.Resolver, error) {
	opts, err := cfg.ResolverOptions()
	if err != nil {
		return nil, err
	}
	return title.NewResolver(opts, title.NewRuleInferrer(cfg.WorkspaceRules)), nil
}
