package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDotenv_LoadMapsDeclaredKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", `# local overrides
APP_PORT=8500
APP_SERVICE_PARAM1="quoted value"
`)

	snap, err := source.NewDotenv(path, "APP").Load(context.Background(), envSchema(t))
	require.NoError(t, err)

	port, ok := snap["port"]
	require.True(t, ok)
	assert.Equal(t, "8500", port.Value)
	assert.Equal(t, strata.SourceDotenv, port.Source)
	assert.Equal(t, path+":APP_PORT", port.SourcePath)
	assert.Equal(t, strata.PriorityDotenv, port.Priority)

	param1, ok := snap["service.param1"]
	require.True(t, ok)
	assert.Equal(t, "quoted value", param1.Value)
}

func TestDotenv_MissingFileYieldsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.env")

	snap, err := source.NewDotenv(path, "APP").Load(context.Background(), envSchema(t))
	require.NoError(t, err, "dotenv files are optional")
	assert.Empty(t, snap)
}

func TestDotenv_MalformedFileFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "THIS LINE HAS NO SEPARATOR\n")

	snap, err := source.NewDotenv(path, "APP").Load(context.Background(), envSchema(t))
	require.Error(t, err)
	assert.Nil(t, snap)

	var cerr *strata.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, strata.SourceDotenv, cerr.Source)
	assert.Equal(t, path, cerr.Path)
}

func TestDotenv_PathsExposesTheFile(t *testing.T) {
	d := source.NewDotenv("/etc/app/.env", "APP")
	assert.Equal(t, []string{"/etc/app/.env"}, d.Paths())
}
