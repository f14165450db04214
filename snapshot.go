package strata

import "strings"

// Source names stamped on entries.
const (
	SourceParams  = "params"
	SourceEnv     = "env"
	SourceDotenv  = "dotenv"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Ranked priorities, lower number indicates higher priority.
const (
	PriorityParams  = 1
	PriorityEnv     = 2
	PriorityDotenv  = 3
	PriorityFile    = 4
	PriorityDefault = 5
)

// Entry represents a single configuration value with provenance and priority.
type Entry struct {
	Key        string
	Value      any
	Source     string
	SourcePath string
	Priority   int
}

// Snapshot is a collection of config entries keyed by setting name.
type Snapshot map[string]Entry

// Merge merges another snapshot into this one respecting priority. On equal
// priority the existing entry wins, so the first source to define a key
// supplies its value.
func (s Snapshot) Merge(other Snapshot) {
	for k, e := range other {
		if existing, ok := s[k]; !ok || e.Priority < existing.Priority {
			s[k] = e
		}
	}
}

// EnvName derives the environment variable for a setting name under a prefix:
// "server.port" under "APP" becomes "APP_SERVER_PORT".
func EnvName(prefix, name string) string {
	v := strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
	if prefix == "" {
		return v
	}
	return strings.TrimSuffix(strings.ToUpper(prefix), "_") + "_" + v
}
