package strata

import (
	"fmt"
	"strings"
)

// Kind is the declared semantic type of a setting.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
	KindDuration
	KindStrings
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDuration:
		return "duration"
	case KindStrings:
		return "strings"
	default:
		return "unknown"
	}
}

// Key declares a single setting. Names are dotted lowercase paths; a dot
// separates a settings group from its members ("service.timeout").
type Key struct {
	Name     string
	Kind     Kind
	Default  any // nil means no default
	Required bool
	Rule     string // optional validation constraint, e.g. "min=1,max=65535"
	EnvVar   string // overrides the env var derived from Name
}

// Schema is the ordered set of declared settings. Lookup is case-insensitive.
type Schema struct {
	keys  map[string]Key
	order []string
}

// NewSchema builds a schema, normalizing key names and type-checking declared
// defaults against their kind.
func NewSchema(keys ...Key) (Schema, error) {
	s := Schema{keys: make(map[string]Key, len(keys))}
	for _, k := range keys {
		name := strings.ToLower(strings.TrimSpace(k.Name))
		if name == "" {
			return Schema{}, &ConfigurationError{Reason: "schema key with empty name"}
		}
		if k.Kind < KindString || k.Kind > KindStrings {
			return Schema{}, &ConfigurationError{Key: name, Reason: "unknown kind"}
		}
		if _, dup := s.keys[name]; dup {
			return Schema{}, &ConfigurationError{Key: name, Reason: "duplicate schema key"}
		}
		if k.Default != nil {
			v, err := coerce(k.Default, k.Kind)
			if err != nil {
				return Schema{}, &ConfigurationError{
					Key:    name,
					Source: SourceDefault,
					Reason: fmt.Sprintf("default is not a valid %s", k.Kind),
					Err:    err,
				}
			}
			k.Default = v
		}
		k.Name = name
		s.keys[name] = k
		s.order = append(s.order, name)
	}
	return s, nil
}

// MustSchema is NewSchema that panics on error, for statically known schemas.
func MustSchema(keys ...Key) Schema {
	s, err := NewSchema(keys...)
	if err != nil {
		panic(err)
	}
	return s
}

// Keys returns the declared keys in declaration order.
func (s Schema) Keys() []Key {
	out := make([]Key, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.keys[name])
	}
	return out
}

// Lookup finds a declared key by name, case-insensitively.
func (s Schema) Lookup(name string) (Key, bool) {
	k, ok := s.keys[strings.ToLower(name)]
	return k, ok
}

// Len reports the number of declared keys.
func (s Schema) Len() int { return len(s.order) }
