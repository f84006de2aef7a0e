package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveProfile_RejectsUnknownName(t *testing.T) {
	_, err := resolveProfile("scripted-bicycle", "")
	require.Error(t, err)
}

func TestResolveProfile_DefaultCarWithNoConfig(t *testing.T) {
	prof, err := resolveProfile("default-car", "")
	require.NoError(t, err)
	require.Equal(t, "default-car", prof.Name())
}

func TestResolveProfile_AppliesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("constants:\n  ch_core_factor: 0.5\n"), 0o644))

	prof, err := resolveProfile("", path)
	require.NoError(t, err)
	require.Equal(t, 0.5, prof.Constants().CHCoreFactor)
}

func TestResolveProfile_RejectsBadConfigPath(t *testing.T) {
	_, err := resolveProfile("default-car", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOpenSource_RejectsNonGeoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.osm.pbf")
	require.NoError(t, os.WriteFile(path, []byte("not real pbf"), 0o644))

	_, err := openSource(path)
	require.Error(t, err)
}
