package strata

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Source is one ranked origin of settings values. Load returns the values the
// source defines; entries for undeclared keys may be returned and are surfaced
// as warnings by the resolver.
type Source interface {
	Load(ctx context.Context, schema Schema) (Snapshot, error)
	Name() string
}

// FileBacked is implemented by sources that read files, so a watcher can
// subscribe to changes.
type FileBacked interface {
	Paths() []string
}

// Resolver merges ranked sources into immutable Settings. Construct one with
// New and pass it (or a Cached wrapping it) down explicitly; there is no
// process-global instance.
type Resolver struct {
	schema   Schema
	sources  []Source
	logger   *zap.Logger
	validate *validator.Validate
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSources sets the sources to resolve from, highest precedence first.
func WithSources(sources ...Source) Option {
	return func(r *Resolver) { r.sources = sources }
}

// WithLogger sets the logger used for debug output during resolution.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// New creates a resolver for the schema. Schema defaults always participate as
// the lowest-ranked source.
func New(schema Schema, opts ...Option) *Resolver {
	r := &Resolver{
		schema:   schema,
		logger:   zap.NewNop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve performs a single deterministic pass over the sources: load each
// one, merge by priority, then coerce and validate every declared key. Any
// source error aborts resolution; a partially merged result is never returned.
func (r *Resolver) Resolve(ctx context.Context) (*Settings, error) {
	snap := make(Snapshot)
	for _, src := range r.sources {
		loaded, err := src.Load(ctx, r.schema)
		if err != nil {
			return nil, asConfigurationError(err, src.Name())
		}
		r.logger.Debug("loaded source",
			zap.String("source", src.Name()),
			zap.Int("entries", len(loaded)))
		snap.Merge(loaded)
	}
	snap.Merge(r.defaults())

	settings := &Settings{
		values:  make(map[string]any, r.schema.Len()),
		origins: make(map[string]Origin, r.schema.Len()),
	}

	for name, e := range snap {
		if _, ok := r.schema.Lookup(name); !ok {
			settings.warnings = append(settings.warnings,
				fmt.Sprintf("unknown setting %q from %s", name, e.Source))
		}
	}
	sort.Strings(settings.warnings)

	for _, key := range r.schema.Keys() {
		e, ok := snap[key.Name]
		if !ok {
			if key.Required {
				return nil, &ConfigurationError{
					Key:    key.Name,
					Reason: "required setting missing and no default declared",
				}
			}
			continue
		}
		v, err := coerce(e.Value, key.Kind)
		if err != nil {
			return nil, &ConfigurationError{
				Key:    key.Name,
				Source: e.Source,
				Path:   e.SourcePath,
				Reason: fmt.Sprintf("want %s, got %v", key.Kind, e.Value),
				Err:    err,
			}
		}
		if key.Rule != "" {
			if err := r.validate.Var(v, key.Rule); err != nil {
				return nil, &ConfigurationError{
					Key:    key.Name,
					Source: e.Source,
					Path:   e.SourcePath,
					Reason: fmt.Sprintf("value %v violates rule %q", v, key.Rule),
					Err:    err,
				}
			}
		}
		settings.values[key.Name] = v
		settings.origins[key.Name] = Origin{
			Source:   e.Source,
			Path:     e.SourcePath,
			Priority: e.Priority,
		}
	}

	r.logger.Debug("resolved settings",
		zap.Int("keys", len(settings.values)),
		zap.Int("warnings", len(settings.warnings)))
	return settings, nil
}

// defaults synthesizes the lowest-ranked snapshot from the schema's declared
// defaults.
func (r *Resolver) defaults() Snapshot {
	snap := make(Snapshot, r.schema.Len())
	for _, key := range r.schema.Keys() {
		if key.Default == nil {
			continue
		}
		snap[key.Name] = Entry{
			Key:        key.Name,
			Value:      key.Default,
			Source:     SourceDefault,
			SourcePath: "schema",
			Priority:   PriorityDefault,
		}
	}
	return snap
}

// Discover merges the sources without a schema, keeping raw values. It serves
// inspection tooling; values are not coerced or validated beyond each source's
// own syntax checks.
func Discover(ctx context.Context, sources ...Source) (*Settings, error) {
	snap := make(Snapshot)
	for _, src := range sources {
		loaded, err := src.Load(ctx, Schema{})
		if err != nil {
			return nil, asConfigurationError(err, src.Name())
		}
		snap.Merge(loaded)
	}
	settings := &Settings{
		values:  make(map[string]any, len(snap)),
		origins: make(map[string]Origin, len(snap)),
	}
	for name, e := range snap {
		settings.values[name] = e.Value
		settings.origins[name] = Origin{
			Source:   e.Source,
			Path:     e.SourcePath,
			Priority: e.Priority,
		}
	}
	return settings, nil
}

// asConfigurationError passes a source's ConfigurationError through unchanged
// and wraps anything else.
func asConfigurationError(err error, source string) error {
	if cerr, ok := err.(*ConfigurationError); ok {
		return cerr
	}
	return &ConfigurationError{Source: source, Reason: "load source", Err: err}
}
