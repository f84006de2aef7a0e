// Command extract turns a raw OSM-equivalent source into the on-disk
// edge-expanded-graph artifacts the contractor and query server consume
// (§6.2). Exit codes: 0 success, 1 parse/profile error, 2 I/O error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meridian-routing/meridian/artifact"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/names"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/parser"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

var errParse = errors.New("extract: input or profile error")

func main() {
	os.Exit(run())
}

func run() int {
	var (
		profileName       string
		profileConfigPath string
		threads           int
		smallComponentMin int
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := &cobra.Command{
		Use:   "extract <input>",
		Short: "Extract an edge-expanded graph from a raw road-network source",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&profileName, "profile", "default-car", "routing profile to apply")
	cmd.Flags().StringVar(&profileConfigPath, "profile-config", "", "YAML file tuning the profile's speeds/constants (optional)")
	cmd.Flags().IntVar(&threads, "threads", 0, "parallelism cap (0 = runtime default)")
	cmd.Flags().IntVar(&smallComponentMin, "small-component-size", 0, "drop weakly-connected components smaller than this many nodes (0 disables)")

	exitCode := 0
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = extract(cmd.Context(), args[0], profileName, profileConfigPath, threads, smallComponentMin, logger)
		if exitCode != 0 {
			return fmt.Errorf("extract failed with code %d", exitCode)
		}

		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if exitCode == 0 {
			exitCode = 1
		}
		logger.Error("extract failed", "err", err)
	}

	return exitCode
}

func extract(ctx context.Context, inputPath, profileName, profileConfigPath string, threads, smallComponentMin int, logger *slog.Logger) int {
	if threads > 0 {
		runtime.GOMAXPROCS(threads)
		logger.Info("capping parallelism", "threads", threads)
	}

	prof, err := resolveProfile(profileName, profileConfigPath)
	if err != nil {
		logger.Error("unknown profile", "profile", profileName, "err", err)
		return 1
	}

	src, err := openSource(inputPath)
	if err != nil {
		logger.Error("opening input", "path", inputPath, "err", err)
		return 2
	}

	ex, err := src.Load(ctx)
	if err != nil {
		logger.Error("parsing input", "path", inputPath, "err", err)
		return 1
	}

	nameTable := names.NewTable()
	g, restrictionIdx, err := parser.BuildGraph(ex, prof, nameTable)
	if err != nil {
		logger.Error("building graph", "err", err)
		return 1
	}

	if smallComponentMin > 0 {
		removed := g.RemoveSmallComponents(smallComponentMin)
		logger.Info("removed small components", "nodes_removed", removed)
	}

	stats := g.CompressDegree2Chains(restrictionIdx)
	logger.Info("compressed degree-2 chains", "nodes_removed", stats.NodesRemoved, "edges_folded", stats.EdgesFolded)

	eegGraph, err := eeg.Build(g, restrictionIdx, prof)
	if err != nil {
		logger.Error("building edge-expanded graph", "err", err)
		return 1
	}

	basePath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	if err := writeArtifacts(basePath, g, eegGraph, restrictionIdx, nameTable, prof); err != nil {
		logger.Error("writing artifacts", "err", err)
		return 2
	}

	logger.Info("extract complete",
		"base", basePath,
		"nodes", eegGraph.NodeCount(),
		"edges", eegGraph.EdgeCount(),
	)

	return 0
}

// resolveProfile maps a --profile name to a concrete profile.Profile.
// default-car is the only profile this module ships (§1's scripting
// environment is out of scope); any other name is a profile error.
// configPath, if set, tunes the baseline profile's speeds/constants from
// a YAML file (profile.LoadConfigOptions) rather than recompiling a new
// Profile implementation for every deployment's road network.
func resolveProfile(name, configPath string) (profile.Profile, error) {
	if name != "" && name != "default-car" {
		return nil, fmt.Errorf("%w: unsupported profile %q", errParse, name)
	}

	var opts []profile.Option
	if configPath != "" {
		loaded, err := profile.LoadConfigOptions(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errParse, err)
		}
		opts = loaded
	}

	return profile.NewDefaultCarProfile(opts...), nil
}

// openSource picks a parser.OSMSource by file extension. Only GeoJSON is
// supported today: no real OSM XML/PBF reader ships in this module (§1
// Non-goals), so an .osm.pbf path reaches here only to report that
// clearly rather than fail deep inside a missing parser.
func openSource(path string) (parser.OSMSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch ext := filepath.Ext(path); ext {
	case ".geojson", ".json":
		return parser.NewGeoJSONSource(f), nil
	default:
		f.Close()
		return nil, fmt.Errorf("%w: no OSM XML/PBF reader in this build, got %q (use a .geojson fixture)", errParse, ext)
	}
}

// writeArtifacts emits every extractor-phase suffix from §6.1: .ebg,
// .ebg_nodes, .geometry, .enw, .fileIndex, .ramIndex, .restrictions,
// .names, .properties, .timestamp. Each Write call has its own
// write-rename discipline (artifact.writeAtomic); a failure partway
// through still leaves no file in a half-written state, though earlier
// files in this list may already be on disk — acceptable since a failed
// extract run is rerun from scratch, not resumed.
func writeArtifacts(basePath string, g *nodegraph.Graph, eegGraph *eeg.Graph, restrictionIdx *restriction.Index, nameTable *names.Table, prof profile.Profile) error {
	if err := artifact.WriteEBG(basePath+".ebg", eegGraph); err != nil {
		return fmt.Errorf("writing .ebg: %w", err)
	}
	if err := artifact.WriteEBGNodes(basePath+".ebg_nodes", g, eegGraph); err != nil {
		return fmt.Errorf("writing .ebg_nodes: %w", err)
	}
	if err := artifact.WriteGeometry(basePath+".geometry", g); err != nil {
		return fmt.Errorf("writing .geometry: %w", err)
	}
	if err := artifact.WriteENW(basePath+".enw", g, eegGraph); err != nil {
		return fmt.Errorf("writing .enw: %w", err)
	}
	if err := artifact.WriteFileIndex(basePath+".fileIndex", eegGraph); err != nil {
		return fmt.Errorf("writing .fileIndex: %w", err)
	}
	if err := artifact.WriteRAMIndex(basePath + ".ramIndex"); err != nil {
		return fmt.Errorf("writing .ramIndex: %w", err)
	}
	if err := artifact.WriteRestrictions(basePath+".restrictions", restrictionIdx); err != nil {
		return fmt.Errorf("writing .restrictions: %w", err)
	}
	if err := artifact.WriteNames(basePath+".names", nameTable); err != nil {
		return fmt.Errorf("writing .names: %w", err)
	}
	if err := artifact.WriteProperties(basePath+".properties", prof); err != nil {
		return fmt.Errorf("writing .properties: %w", err)
	}
	if err := artifact.WriteTimestamp(basePath+".timestamp", extractTimestamp()); err != nil {
		return fmt.Errorf("writing .timestamp: %w", err)
	}

	return nil
}

func extractTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
