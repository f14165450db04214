package source

import (
	"context"
	"os"
	"strings"

	"github.com/strataconf/strata"
)

// Env reads process environment variables under a prefix, the second-ranked
// source. Declared keys map through strata.EnvName ("server.port" under "APP"
// reads APP_SERVER_PORT) unless the key names an explicit EnvVar.
type Env struct {
	prefix string
}

func NewEnv(prefix string) *Env {
	return &Env{prefix: strings.TrimSuffix(strings.ToUpper(prefix), "_")}
}

func (e *Env) Name() string { return strata.SourceEnv }

func (e *Env) Load(ctx context.Context, schema strata.Schema) (strata.Snapshot, error) {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		vars[parts[0]] = parts[1]
	}
	// Explicit EnvVar declarations may sit outside the prefix; mapVars reads
	// them from the same map.
	return mapVars(vars, schema, e.prefix, strata.SourceEnv, strata.PriorityEnv,
		func(name string) string { return name }), nil
}

var _ strata.Source = (*Env)(nil)
