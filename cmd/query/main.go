// Command query loads a contracted dataset and serves routing queries
// through an in-process engine.Router (§6.2). No wire protocol ships here
// (§1 Non-goals: "no fixed wire protocol") — this binary is the process
// that owns the dataset, reloads it on SIGHUP, and keeps the Router ready
// for whatever transport a deployment links in front of it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meridian-routing/meridian/engine"
	"github.com/meridian-routing/meridian/match"
	"github.com/meridian-routing/meridian/profile"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		sharedMemory      bool
		maxMatchingSize   int
		profileConfigPath string
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := &cobra.Command{
		Use:   "query <base>",
		Short: "Load a dataset and serve routing queries",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVar(&sharedMemory, "shared-memory", false, "accepted for compatibility; the dataset is always read fully into process memory (no mmap)")
	cmd.Flags().IntVar(&maxMatchingSize, "max-matching-size", 1000, "maximum trace points accepted by a single map-matching call")
	cmd.Flags().StringVar(&profileConfigPath, "profile-config", "", "YAML file tuning the profile's speeds/constants (optional)")

	exitCode := 0
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = serve(cmd.Context(), args[0], sharedMemory, maxMatchingSize, profileConfigPath, logger)
		if exitCode != 0 {
			return fmt.Errorf("query server exited with code %d", exitCode)
		}

		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if exitCode == 0 {
			exitCode = 1
		}
		logger.Error("query server failed", "err", err)
	}

	return exitCode
}

// server holds the live dataset store and router plus the deployment's
// configured limits, ready for a transport to drive once one is linked in.
type server struct {
	store           *engine.Store
	router          *engine.Router
	prof            profile.Profile
	maxMatchingSize int
	logger          *slog.Logger
}

func serve(ctx context.Context, basePath string, sharedMemory bool, maxMatchingSize int, profileConfigPath string, logger *slog.Logger) int {
	if sharedMemory {
		// TODO: wire a shared-memory (mmap) reader into artifact's ReadX
		// functions; they currently always read the whole file into
		// process memory (artifact/io.go's readWithFingerprint).
		logger.Warn("--shared-memory requested but not yet implemented; reading normally")
	}

	var opts []profile.Option
	if profileConfigPath != "" {
		loaded, err := profile.LoadConfigOptions(profileConfigPath)
		if err != nil {
			logger.Error("loading profile config", "path", profileConfigPath, "err", err)
			return 1
		}
		opts = loaded
	}

	prof := profile.NewDefaultCarProfile(opts...)
	store := engine.NewStore(logger)
	if err := store.Reload(basePath, prof); err != nil {
		logger.Error("loading dataset", "base", basePath, "err", err)
		return 2
	}

	s := &server{
		store:           store,
		router:          engine.NewRouter(store, logger),
		prof:            prof,
		maxMatchingSize: maxMatchingSize,
		logger:          logger,
	}

	logger.Info("dataset ready", "base", basePath, "timestamp", store.Current().Timestamp, "max_matching_size", maxMatchingSize)

	return s.run(ctx, basePath)
}

// run blocks, reloading the dataset on SIGHUP and exiting cleanly on an
// interrupt or the parent context ending.
func (s *server) run(ctx context.Context, basePath string) int {
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-reload:
			s.logger.Info("reloading dataset", "base", basePath)
			if err := s.store.Reload(basePath, s.prof); err != nil {
				s.logger.Error("reload failed, keeping previous dataset", "err", err)
				continue
			}
			s.logger.Info("dataset reloaded", "base", basePath, "timestamp", s.store.Current().Timestamp)
		case <-shutdown:
			s.logger.Info("shutting down")
			return 0
		case <-ctx.Done():
			return 0
		}
	}
}

// match rejects traces longer than --max-matching-size before they ever
// reach match.Match, since HMM map matching's cost grows with trace length
// times candidate count per point.
func (s *server) match(points []match.TracePoint, opts ...match.Option) (match.Result, error) {
	if len(points) > s.maxMatchingSize {
		return match.Result{}, fmt.Errorf("trace has %d points, exceeds max-matching-size %d", len(points), s.maxMatchingSize)
	}

	return s.router.Match(points, opts...)
}
