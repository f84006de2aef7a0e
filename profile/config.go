package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meridian-routing/meridian/nodegraph"
)

// configFile is the on-disk shape of a profile tuning file: every field is
// optional, and only the overrides actually present are applied, so a
// partial file changes nothing it doesn't mention.
type configFile struct {
	SpeedKPH  map[string]float64 `yaml:"speed_kph"`
	Constants *configConstants   `yaml:"constants"`
}

type configConstants struct {
	CHCoreFactor                *float64 `yaml:"ch_core_factor"`
	WitnessSearchHopLimit       *int     `yaml:"witness_search_hop_limit"`
	WitnessSearchNodeLimit      *int     `yaml:"witness_search_node_limit"`
	MapMatchingSigmaMeters      *float64 `yaml:"map_matching_sigma_meters"`
	MapMatchingBetaMeters       *float64 `yaml:"map_matching_beta_meters"`
	MapMatchingMaxCandidates    *int     `yaml:"map_matching_max_candidates"`
	AlternativeMaxOverheadRatio *float64 `yaml:"alternative_max_overhead_ratio"`
	AlternativeMaxOverlapRatio  *float64 `yaml:"alternative_max_overlap_ratio"`
}

var classNames = map[string]nodegraph.Classification{
	"motorway":     nodegraph.ClassMotorway,
	"trunk":        nodegraph.ClassTrunk,
	"primary":      nodegraph.ClassPrimary,
	"secondary":    nodegraph.ClassSecondary,
	"tertiary":     nodegraph.ClassTertiary,
	"residential":  nodegraph.ClassResidential,
	"service":      nodegraph.ClassService,
	"ramp":         nodegraph.ClassRamp,
	"link":         nodegraph.ClassLink,
	"unclassified": nodegraph.ClassUnclassified,
}

// LoadConfigOptions reads a YAML tuning file and returns the Options it
// implies, for a caller to apply on top of NewDefaultCarProfile's
// baseline (e.g. NewDefaultCarProfile(opts...)). This is the profile-
// tuning surface a deployment reaches for instead of recompiling a new
// Profile implementation; a full scripted-profile environment remains
// out of scope (spec.md §1).
func LoadConfigOptions(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: reading config %s: %w", path, err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("profile: parsing config %s: %w", path, err)
	}

	var opts []Option
	for name, kph := range cfg.SpeedKPH {
		class, ok := classNames[name]
		if !ok {
			return nil, fmt.Errorf("profile: config %s: unknown highway classification %q", path, name)
		}
		opts = append(opts, WithSpeedKPH(class, kph))
	}

	if cfg.Constants != nil {
		opts = append(opts, withConstantOverrides(cfg.Constants))
	}

	return opts, nil
}

// withConstantOverrides merges cc onto whatever constants the profile
// already has rather than replacing the whole Constants value, so a
// config file naming one field doesn't reset the rest to their zero value.
func withConstantOverrides(cc *configConstants) Option {
	return func(p *DefaultCarProfile) {
		c := p.constants
		if cc.CHCoreFactor != nil {
			c.CHCoreFactor = *cc.CHCoreFactor
		}
		if cc.WitnessSearchHopLimit != nil {
			c.WitnessSearchHopLimit = *cc.WitnessSearchHopLimit
		}
		if cc.WitnessSearchNodeLimit != nil {
			c.WitnessSearchNodeLimit = *cc.WitnessSearchNodeLimit
		}
		if cc.MapMatchingSigmaMeters != nil {
			c.MapMatchingSigmaMeters = *cc.MapMatchingSigmaMeters
		}
		if cc.MapMatchingBetaMeters != nil {
			c.MapMatchingBetaMeters = *cc.MapMatchingBetaMeters
		}
		if cc.MapMatchingMaxCandidates != nil {
			c.MapMatchingMaxCandidates = *cc.MapMatchingMaxCandidates
		}
		if cc.AlternativeMaxOverheadRatio != nil {
			c.AlternativeMaxOverheadRatio = *cc.AlternativeMaxOverheadRatio
		}
		if cc.AlternativeMaxOverlapRatio != nil {
			c.AlternativeMaxOverlapRatio = *cc.AlternativeMaxOverlapRatio
		}
		p.constants = c
	}
}
