package strata

import (
	"sort"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Origin records where a resolved value came from.
type Origin struct {
	Source   string
	Path     string
	Priority int
}

// Settings is the immutable result of a resolution pass. Accessors return
// copies of any mutable values, so a Settings can be shared between goroutines
// without coordination.
type Settings struct {
	values   map[string]any
	origins  map[string]Origin
	warnings []string
}

// Has reports whether a value was resolved for the key.
func (s *Settings) Has(key string) bool {
	_, ok := s.values[strings.ToLower(key)]
	return ok
}

// Value returns the resolved value for the key.
func (s *Settings) Value(key string) (any, bool) {
	v, ok := s.values[strings.ToLower(key)]
	return v, ok
}

// Origin returns the provenance of the resolved value for the key.
func (s *Settings) Origin(key string) (Origin, bool) {
	o, ok := s.origins[strings.ToLower(key)]
	return o, ok
}

// String returns the key's value, or the zero value when absent or of another
// kind. The typed accessors follow the same convention.
func (s *Settings) String(key string) string {
	v, _ := s.values[strings.ToLower(key)].(string)
	return v
}

func (s *Settings) Int(key string) int {
	v, _ := s.values[strings.ToLower(key)].(int)
	return v
}

func (s *Settings) Float(key string) float64 {
	v, _ := s.values[strings.ToLower(key)].(float64)
	return v
}

func (s *Settings) Bool(key string) bool {
	v, _ := s.values[strings.ToLower(key)].(bool)
	return v
}

func (s *Settings) Duration(key string) time.Duration {
	v, _ := s.values[strings.ToLower(key)].(time.Duration)
	return v
}

func (s *Settings) Strings(key string) []string {
	v, _ := s.values[strings.ToLower(key)].([]string)
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// Keys returns the resolved key names, sorted.
func (s *Settings) Keys() []string {
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Warnings returns notes collected during resolution, such as settings found
// in a source but not declared in the schema.
func (s *Settings) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Map returns the resolved values as a nested map, with dotted key segments
// expanded into sub-maps.
func (s *Settings) Map() map[string]any {
	root := make(map[string]any)
	for key, value := range s.values {
		node := root
		segments := strings.Split(key, ".")
		for _, seg := range segments[:len(segments)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		if slice, ok := value.([]string); ok {
			copied := make([]string, len(slice))
			copy(copied, slice)
			value = copied
		}
		node[segments[len(segments)-1]] = value
	}
	return root
}

// Decode unmarshals the resolved values into a struct tagged with `config`.
func (s *Settings) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  out,
	})
	if err != nil {
		return &ConfigurationError{Reason: "build settings decoder", Err: err}
	}
	if err := dec.Decode(s.Map()); err != nil {
		return &ConfigurationError{Reason: "decode settings", Err: err}
	}
	return nil
}
