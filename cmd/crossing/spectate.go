package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/clock"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/spectate"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var (
	flagSpectateAddr    string
	flagSpectateVariant string
	flagFrameRate       int
	flagRestartFrames   int
	flagVerbose         bool
)

var spectateCmd = &cobra.Command{
	Use:   "spectate",
	Short: "Stream an autopiloted run over WebSocket",
	Long: `Run a headless game driven by the autopilot and stream it to web
viewers. Finished runs restart automatically after a short pause.

Endpoints:
  GET /ws        - WebSocket stream of JSON snapshot frames
  GET /snapshot  - The current frame as JSON
  GET /healthz   - Liveness check

Examples:
  crossing spectate
  crossing spectate --addr :9000 --frame-rate 20
  crossing spectate --variant crossing_classic --strict`,
	Args: cobra.NoArgs,
	Run:  runSpectate,
}

func init() {
	defaults := spectate.DefaultConfig()
	spectateCmd.Flags().StringVar(&flagSpectateAddr, "addr", defaults.Addr, "HTTP listen address (host:port)")
	spectateCmd.Flags().StringVar(&flagSpectateVariant, "variant", crossing.VariantFull, "Variant to play")
	spectateCmd.Flags().IntVar(&flagFrameRate, "frame-rate", defaults.FrameRate, "Frames per second sent to viewers")
	spectateCmd.Flags().IntVar(&flagRestartFrames, "restart-frames", defaults.RestartFrames, "Frames to show a finished run before restarting")
	spectateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every run restart")
}

func runSpectate(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagSpectateVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagSpectateVariant)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spectate",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := spectate.Config{
		Addr:          flagSpectateAddr,
		Variant:       flagSpectateVariant,
		TickRate:      flagFPS,
		FrameRate:     flagFrameRate,
		RestartFrames: flagRestartFrames,
		Seed:          flagSeed,
	}

	hub, err := spectate.NewHub(cfg, clock.NewTicker(), clock.NewTicker(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating spectator hub: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := hub.ListenAndServe(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
