package strata

import "fmt"

// ConfigurationError is the single error kind surfaced by resolution. It covers
// a missing required value, a malformed source file, a failed type coercion and
// a violated validation rule.
type ConfigurationError struct {
	Key    string // setting name, empty for source-level failures
	Source string // source name: params, env, dotenv, file, default
	Path   string // file path or environment variable, when known
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Key != "" {
		msg = fmt.Sprintf("configuration error: key %q", e.Key)
	}
	switch {
	case e.Source != "" && e.Path != "":
		msg += fmt.Sprintf(" (%s %s)", e.Source, e.Path)
	case e.Source != "":
		msg += fmt.Sprintf(" (%s)", e.Source)
	case e.Path != "":
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
