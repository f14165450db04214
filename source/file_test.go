package source_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/source"
)

func TestFile_LoadFlattensTOMLTables(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `port = 8000
debug = true
tags = ["a", "b"]

[service]
param1 = "value"

[service.nested]
deep = "yes"
`)

	snap, err := source.NewFile(path).Load(context.Background(), strata.Schema{})
	require.NoError(t, err)

	port, ok := snap["port"]
	require.True(t, ok)
	assert.Equal(t, int64(8000), port.Value, "TOML integers decode as int64")
	assert.Equal(t, strata.SourceFile, port.Source)
	assert.Equal(t, path, port.SourcePath)
	assert.Equal(t, strata.PriorityFile, port.Priority)

	assert.Equal(t, true, snap["debug"].Value)
	assert.Equal(t, "value", snap["service.param1"].Value)
	assert.Equal(t, "yes", snap["service.nested.deep"].Value)
	assert.NotContains(t, snap, "service", "tables flatten into leaf entries")
}

func TestFile_LoadSupportsYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `port: 8000
service:
  param1: value
`)

	snap, err := source.NewFile(path).Load(context.Background(), strata.Schema{})
	require.NoError(t, err)

	assert.Equal(t, 8000, snap["port"].Value, "YAML integers decode as int")
	assert.Equal(t, "value", snap["service.param1"].Value)
}

func TestFile_LowercasesKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `PORT: 8000
Service:
  Param1: value
`)

	snap, err := source.NewFile(path).Load(context.Background(), strata.Schema{})
	require.NoError(t, err)

	assert.Contains(t, snap, "port")
	assert.Contains(t, snap, "service.param1")
}

func TestFile_MissingFileYieldsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	snap, err := source.NewFile(path).Load(context.Background(), strata.Schema{})
	require.NoError(t, err, "structured config files are optional")
	assert.Empty(t, snap)
}

func TestFile_MalformedTOMLNamesFileAndPosition(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "port = 8000\nbroken = [\n")

	snap, err := source.NewFile(path).Load(context.Background(), strata.Schema{})
	require.Error(t, err)
	assert.Nil(t, snap)

	var cerr *strata.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, path, cerr.Path)
	assert.Contains(t, cerr.Reason, "parse TOML at line")
}

func TestFile_MalformedYAMLNamesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "port: [\n  broken\n")

	snap, err := source.NewFile(path).Load(context.Background(), strata.Schema{})
	require.Error(t, err)
	assert.Nil(t, snap)

	var cerr *strata.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, path, cerr.Path)
}

func TestFile_RejectsUnsupportedExtensions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"port": 8000}`)

	snap, err := source.NewFile(path).Load(context.Background(), strata.Schema{})
	require.Error(t, err)
	assert.Nil(t, snap)

	var cerr *strata.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "unsupported config format")
}
