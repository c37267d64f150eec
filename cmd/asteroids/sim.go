package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/loop"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var (
	flagSimTicks uint64
	flagSimGame  string
	flagSimDump  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Runs the game loop without a terminal, on a simulated clock, with a
scripted pilot that sweeps the ship around while firing and taps the
thrusters now and then. Useful for checking a config or a seed.

Examples:
  asteroids sim --ticks 600 --seed 7
  asteroids sim --game asteroids_classic --log-level debug --dump`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 600, "Simulation ticks to run (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimGame, "game", asteroids.IDMultiHit, "Game variant to simulate")
	simCmd.Flags().BoolVar(&flagSimDump, "dump", false, "Print the final frame as text")
}

// autopilotPeriod is the number of polls between thruster taps.
const autopilotPeriod = 288

// autopilot returns the scripted pilot: always turning right and firing,
// alternating a forward and a reverse tap every period.
func autopilot() loop.InputSource {
	var polls int
	return loop.InputFunc(func() core.InputFrame {
		in := core.NewInputFrame()
		in.Hold(core.ActionRight)
		in.Hold(core.ActionFire)
		switch polls % (2 * autopilotPeriod) {
		case 0:
			in.Press(core.ActionUp)
		case autopilotPeriod:
			in.Press(core.ActionDown)
		}
		polls++
		return in
	})
}

func runSim(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagSimGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagSimGame)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, closeLog, err := openLogOutput(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger, err := newLogger(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(flagSimGame, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.DefaultConfig()
	rc.Seed = seed
	game.Reset(rc)

	// Keep only the latest frame for the summary.
	var last core.Frame
	capture := loop.RendererFunc(func(f core.Frame) error {
		last = f
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := loop.Run(ctx, game, autopilot(), capture, loop.Options{
		PollHz:   cfg.Timing.PollHz,
		SimHz:    cfg.Timing.SimHz,
		MaxTicks: flagSimTicks,
		Clock:    loop.NewManualClock(time.Unix(0, 0)),
		Logger:   logger,
	})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("game:      %s\n", game.ID())
	fmt.Printf("seed:      %d\n", seed)
	fmt.Printf("stopped:   %s\n", sum.Reason)
	fmt.Printf("ticks:     %d (%d polls)\n", sum.Ticks, sum.Polls)
	fmt.Printf("destroyed: %d\n", sum.Destroyed)
	fmt.Printf("score:     %d\n", sum.State.Score)
	fmt.Printf("wave:      %d\n", sum.State.Wave)
	fmt.Printf("asteroids: %d\n", sum.State.Asteroids)
	fmt.Printf("drawn:     %d requests in frame %d\n", len(last.Requests), last.Tick)

	if flagSimDump {
		scr := core.NewScreen(rc.ScreenW, rc.ScreenH)
		game.Render(scr)
		fmt.Println()
		fmt.Println(scr.String())
	}
}
