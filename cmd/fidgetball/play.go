package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/APeffer/fidgetball/internal/config"
	"github.com/APeffer/fidgetball/internal/core"
	"github.com/APeffer/fidgetball/internal/feedback"
	"github.com/APeffer/fidgetball/internal/host"
	"github.com/APeffer/fidgetball/internal/motion"
	"github.com/APeffer/fidgetball/internal/platform/tui"
	"github.com/APeffer/fidgetball/internal/storage"
	"github.com/APeffer/fidgetball/internal/toy"
)

var flagSource string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the fidget ball toy",
	Long: `Start the toy in this terminal.

The ball starts on the built-in demo wobble. Connect a phone to the
motion bridge (see 'fidgetball sources') and grant motion permission to
drive the ball with real tilt.

Controls:
  Arrows/hjkl - Nudge the ball
  [ / ]       - Bounciness down/up
  - / =       - Friction dial down/up
  , / .       - Blip pitch down/up
  C           - Cycle ball color
  V           - Toggle audio/haptic feedback
  R           - Recenter the ball
  P/Esc       - Pause
  Q/Ctrl+C    - Quit

Examples:
  fidgetball play
  fidgetball play --source demo
  fidgetball play --source bridge --config ./my-ball.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSource, "source", "", "Motion source: auto, demo, or bridge (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "fidgetball"})

	// Load config
	toyCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	sourceID := toyCfg.Motion.Source
	if flagSource != "" {
		sourceID = flagSource
	}
	// "auto" runs the bridge: the toy stays on the demo wobble until a phone
	// connects and grants permission.
	if sourceID == "" || sourceID == "auto" {
		sourceID = "bridge"
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the motion source, unless running demo-only
	var src motion.Source
	if sourceID != "demo" {
		if !motion.Exists(sourceID) {
			fmt.Fprintf(os.Stderr, "Error: unknown motion source %q\n", sourceID)
			fmt.Fprintln(os.Stderr, "Run 'fidgetball sources' to see available sources.")
			os.Exit(1)
		}
		src, err = motion.Create(sourceID, motion.Options{
			BridgeAddr: toyCfg.Motion.BridgeAddr,
			Logger:     logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating motion source: %v\n", err)
			os.Exit(1)
		}
		if err := src.Start(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting motion source: %v\n", err)
			os.Exit(1)
		}
		defer src.Close()
	}
	adapter := motion.NewAdapter(src)

	// The host shell: the phone companion when it can vibrate, the terminal
	// bell otherwise.
	var shell host.Host = host.NewBellHost(os.Stdout)
	if vib, ok := src.(host.Vibrator); ok {
		shell = host.NewBridgeHost(vib)
	}
	guarded := host.NewGuarded(shell, logger)

	// One-time capability negotiation before the loop starts.
	caps := guarded.QueryCapabilities(ctx)
	audio := feedback.NewAudioSink()
	emitter := feedback.NewEmitter(audio, guarded, caps.Supports(host.CapabilityHaptic))

	t := toy.New(adapter, emitter, toyCfg.ToSimConfig())
	t.SetRadius(toyCfg.Radius())

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - toy still works
		store = nil
	}

	guarded.SignalReady(ctx)

	runErr := tui.Run(t, store, audio, adapter.SourceID(), cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running toy: %v\n", runErr)
		os.Exit(1)
	}
}
