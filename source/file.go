package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/strataconf/strata"
)

// File reads a structured configuration file, TOML or YAML by extension, the
// fourth-ranked source. Nested tables flatten to dotted keys, so a group
// override merges key-by-key instead of replacing the whole group.
type File struct {
	path string
}

func NewFile(path string) *File { return &File{path: path} }

func (f *File) Name() string { return strata.SourceFile }

// Paths implements strata.FileBacked.
func (f *File) Paths() []string { return []string{f.path} }

func (f *File) Load(ctx context.Context, _ strata.Schema) (strata.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return strata.Snapshot{}, nil
		}
		return nil, &strata.ConfigurationError{
			Source: strata.SourceFile,
			Path:   f.path,
			Reason: "read config file",
			Err:    err,
		}
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			reason := "parse TOML"
			var perr toml.ParseError
			if errors.As(err, &perr) {
				reason = fmt.Sprintf("parse TOML at line %d", perr.Position.Line)
			}
			return nil, &strata.ConfigurationError{
				Source: strata.SourceFile,
				Path:   f.path,
				Reason: reason,
				Err:    err,
			}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &strata.ConfigurationError{
				Source: strata.SourceFile,
				Path:   f.path,
				Reason: "parse YAML",
				Err:    err,
			}
		}
	default:
		return nil, &strata.ConfigurationError{
			Source: strata.SourceFile,
			Path:   f.path,
			Reason: fmt.Sprintf("unsupported config format %q", filepath.Ext(f.path)),
		}
	}

	snap := make(strata.Snapshot)
	f.flatten("", raw, snap)
	return snap, nil
}

func (f *File) flatten(prefix string, node map[string]any, snap strata.Snapshot) {
	for k, v := range node {
		name := strings.ToLower(k)
		if prefix != "" {
			name = prefix + "." + name
		}
		if child, ok := v.(map[string]any); ok {
			f.flatten(name, child, snap)
			continue
		}
		snap[name] = strata.Entry{
			Key:        name,
			Value:      v,
			Source:     strata.SourceFile,
			SourcePath: f.path,
			Priority:   strata.PriorityFile,
		}
	}
}

var _ strata.Source = (*File)(nil)
var _ strata.FileBacked = (*File)(nil)
