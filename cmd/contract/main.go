// Command contract runs the CH preprocessor over an extracted dataset,
// emitting .hsgr (§6.2). Exit codes: 0 success, 1 data-invariant error,
// 2 I/O error.
//
// .enw is written by cmd/extract rather than here: it is the per-EEG-node
// weight lifted straight off the original node-based graph's edges
// (artifact.ENWFromGraph), and extract is the only phase that still holds
// that graph rather than a graph reconstructed from already-packed
// artifacts. See DESIGN.md's engine/cmd section for the reasoning.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/meridian-routing/meridian/artifact"
	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/profile"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		threads    int
		coreFactor float64
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := &cobra.Command{
		Use:   "contract <base>",
		Short: "Contract an extracted edge-expanded graph into a query hierarchy",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().IntVar(&threads, "threads", 0, "parallelism cap (0 = runtime default)")
	cmd.Flags().Float64Var(&coreFactor, "core-factor", 1.0, "fraction of nodes to contract; 1.0 contracts everything")

	exitCode := 0
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = contract(cmd.Context(), args[0], threads, coreFactor, logger)
		if exitCode != 0 {
			return fmt.Errorf("contract failed with code %d", exitCode)
		}

		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if exitCode == 0 {
			exitCode = 1
		}
		logger.Error("contract failed", "err", err)
	}

	return exitCode
}

func contract(_ context.Context, basePath string, threads int, coreFactor float64, logger *slog.Logger) int {
	if coreFactor <= 0 || coreFactor > 1 {
		logger.Error("invalid core-factor", "value", coreFactor)
		return 1
	}

	if threads > 0 {
		// The contractor's parallel batches spawn one goroutine per
		// independent-set member without their own pool (ch.Contract), so
		// GOMAXPROCS is the process-wide knob --threads actually controls.
		runtime.GOMAXPROCS(threads)
		logger.Info("capping parallelism", "threads", threads)
	}

	edgeRecords, err := artifact.ReadEBG(basePath + ".ebg")
	if err != nil {
		logger.Error("reading .ebg", "err", err)
		return 2
	}
	nodeRecords, err := artifact.ReadEBGNodes(basePath + ".ebg_nodes")
	if err != nil {
		logger.Error("reading .ebg_nodes", "err", err)
		return 2
	}
	leafRecords, err := artifact.ReadFileIndex(basePath + ".fileIndex")
	if err != nil {
		logger.Error("reading .fileIndex", "err", err)
		return 2
	}

	// Contraction only needs the edge-expanded graph itself (§4.5 runs
	// entirely over eeg.Graph): .geometry and .enw feed the node-based
	// synthetic edge arena engine.LoadDataset restores for phantom-node
	// splitting, which the contractor never touches.
	eegNodes := artifact.RestoreEEGNodes(nodeRecords)
	eegEdges := artifact.RestoreEEGEdges(edgeRecords)
	rects := artifact.SegmentRectsFromLeaves(leafRecords)
	eegGraph := eeg.Restore(eegNodes, eegEdges, rects)

	constants := profile.DefaultConstants()
	constants.CHCoreFactor = coreFactor

	hierarchy, err := ch.Contract(eegGraph, constants)
	if err != nil {
		logger.Error("contraction failed", "err", err)
		return 1
	}

	if err := artifact.WriteHSGR(basePath+".hsgr", hierarchy); err != nil {
		logger.Error("writing .hsgr", "err", err)
		return 2
	}

	logger.Info("contract complete",
		"base", basePath,
		"nodes", hierarchy.NodeCount,
		"core_factor", coreFactor,
	)

	return 0
}
