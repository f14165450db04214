package source

import (
	"context"
	"strings"

	"github.com/strataconf/strata"
)

// Params carries explicit initialization arguments, the highest-ranked source.
type Params struct {
	values map[string]any
}

// NewParams copies the overrides, normalizing key names.
func NewParams(values map[string]any) *Params {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &Params{values: copied}
}

func (p *Params) Name() string { return strata.SourceParams }

func (p *Params) Load(ctx context.Context, _ strata.Schema) (strata.Snapshot, error) {
	snap := make(strata.Snapshot, len(p.values))
	for k, v := range p.values {
		snap[k] = strata.Entry{
			Key:        k,
			Value:      v,
			Source:     strata.SourceParams,
			SourcePath: "init",
			Priority:   strata.PriorityParams,
		}
	}
	return snap, nil
}

var _ strata.Source = (*Params)(nil)
