package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/nodegraph"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfigOptions_OverridesSpeedAndConstants(t *testing.T) {
	path := writeConfig(t, `
speed_kph:
  residential: 20
constants:
  ch_core_factor: 0.5
  map_matching_max_candidates: 20
`)

	opts, err := LoadConfigOptions(path)
	require.NoError(t, err)

	p := NewDefaultCarProfile(opts...)
	weight, _ := p.EdgeWeight(1000, nodegraph.ClassResidential, nodegraph.ModeDriving)
	baseline := NewDefaultCarProfile()
	baselineWeight, _ := baseline.EdgeWeight(1000, nodegraph.ClassResidential, nodegraph.ModeDriving)
	require.Greater(t, weight, baselineWeight)

	require.Equal(t, 0.5, p.Constants().CHCoreFactor)
	require.Equal(t, 20, p.Constants().MapMatchingMaxCandidates)
	// Fields the file didn't mention keep the §6.3 default.
	require.Equal(t, DefaultConstants().WitnessSearchHopLimit, p.Constants().WitnessSearchHopLimit)
}

func TestLoadConfigOptions_RejectsUnknownClassification(t *testing.T) {
	path := writeConfig(t, "speed_kph:\n  highway_to_the_danger_zone: 200\n")

	_, err := LoadConfigOptions(path)
	require.Error(t, err)
}

func TestLoadConfigOptions_MissingFile(t *testing.T) {
	_, err := LoadConfigOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
