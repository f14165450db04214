package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/source"
)

func envSchema(t *testing.T) strata.Schema {
	t.Helper()
	schema, err := strata.NewSchema(
		strata.Key{Name: "port", Kind: strata.KindInt},
		strata.Key{Name: "service.param1", Kind: strata.KindString},
		strata.Key{Name: "token", Kind: strata.KindString, EnvVar: "CUSTOM_TOKEN"},
	)
	require.NoError(t, err)
	return schema
}

func TestEnv_LoadMapsDeclaredKeys(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_SERVICE_PARAM1", "value")

	snap, err := source.NewEnv("APP").Load(context.Background(), envSchema(t))
	require.NoError(t, err)

	port, ok := snap["port"]
	require.True(t, ok)
	assert.Equal(t, "9000", port.Value, "env values stay raw strings until coercion")
	assert.Equal(t, strata.SourceEnv, port.Source)
	assert.Equal(t, "APP_PORT", port.SourcePath)
	assert.Equal(t, strata.PriorityEnv, port.Priority)

	param1, ok := snap["service.param1"]
	require.True(t, ok)
	assert.Equal(t, "value", param1.Value)
	assert.Equal(t, "APP_SERVICE_PARAM1", param1.SourcePath)
}

func TestEnv_ExplicitEnvVarBypassesPrefix(t *testing.T) {
	t.Setenv("CUSTOM_TOKEN", "secret")

	snap, err := source.NewEnv("APP").Load(context.Background(), envSchema(t))
	require.NoError(t, err)

	token, ok := snap["token"]
	require.True(t, ok)
	assert.Equal(t, "secret", token.Value)
	assert.Equal(t, "CUSTOM_TOKEN", token.SourcePath)
}

func TestEnv_UnclaimedPrefixedVarsAreKept(t *testing.T) {
	t.Setenv("APP_EXTRA", "surprise")

	snap, err := source.NewEnv("APP").Load(context.Background(), envSchema(t))
	require.NoError(t, err)

	extra, ok := snap["extra"]
	require.True(t, ok, "unclaimed prefixed vars feed resolver warnings and discovery")
	assert.Equal(t, "surprise", extra.Value)
}

func TestEnv_IgnoresEmptyAndUnprefixedVars(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("OTHER_PORT", "9000")

	snap, err := source.NewEnv("APP").Load(context.Background(), envSchema(t))
	require.NoError(t, err)

	assert.NotContains(t, snap, "port")
	assert.NotContains(t, snap, "other_port")
}

func TestEnv_PrefixNormalization(t *testing.T) {
	t.Setenv("APP_PORT", "9000")

	for _, prefix := range []string{"APP", "APP_", "app"} {
		snap, err := source.NewEnv(prefix).Load(context.Background(), envSchema(t))
		require.NoError(t, err)
		assert.Contains(t, snap, "port", "prefix %q should read APP_PORT", prefix)
	}
}
