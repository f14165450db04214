// Package source provides the ranked configuration sources consumed by a
// strata.Resolver: explicit init parameters, environment variables, dotenv
// files and structured (TOML or YAML) files. Schema defaults, the fifth rank,
// are synthesized by the resolver itself.
package source

import (
	"strings"

	"github.com/strataconf/strata"
)

// mapVars turns a flat name/value map (environment or dotenv) into a snapshot.
// Declared keys are matched through their env var names; unclaimed prefixed
// variables are kept under their lowercased suffix so the resolver can warn
// about them and schema-less discovery can see them.
func mapVars(vars map[string]string, schema strata.Schema, prefix, sourceName string, priority int, pathFor func(string) string) strata.Snapshot {
	snap := make(strata.Snapshot)
	claimed := make(map[string]bool, schema.Len())

	for _, key := range schema.Keys() {
		name := key.EnvVar
		if name == "" {
			name = strata.EnvName(prefix, key.Name)
		}
		claimed[name] = true
		if v, ok := vars[name]; ok && v != "" {
			snap[key.Name] = strata.Entry{
				Key:        key.Name,
				Value:      v,
				Source:     sourceName,
				SourcePath: pathFor(name),
				Priority:   priority,
			}
		}
	}

	if prefix == "" {
		return snap
	}
	withSep := strings.TrimSuffix(strings.ToUpper(prefix), "_") + "_"
	for name, v := range vars {
		if claimed[name] || v == "" || !strings.HasPrefix(name, withSep) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, withSep))
		snap[key] = strata.Entry{
			Key:        key,
			Value:      v,
			Source:     sourceName,
			SourcePath: pathFor(name),
			Priority:   priority,
		}
	}
	return snap
}
