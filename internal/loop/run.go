package loop

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Simulation is the part of a game the loop drives.
type Simulation interface {
	Control(in core.InputFrame)
	Step() core.StepResult
	Frame() core.Frame
}

// InputSource yields the control state once per poll. A frame holding or
// pressing core.ActionQuit stops the loop.
type InputSource interface {
	Poll() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll calls f.
func (f InputFunc) Poll() core.InputFrame {
	return f()
}

// Renderer consumes one frame per simulation tick.
type Renderer interface {
	Render(f core.Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f core.Frame) error

// Render calls f.
func (f RendererFunc) Render(fr core.Frame) error {
	return f(fr)
}

// StopReason says why Run returned.
type StopReason int

const (
	StopQuit StopReason = iota
	StopPlayerDestroyed
	StopCanceled
	StopTickLimit
)

// String returns a human-readable reason.
func (r StopReason) String() string {
	switch r {
	case StopQuit:
		return "quit"
	case StopPlayerDestroyed:
		return "player destroyed"
	case StopCanceled:
		return "canceled"
	case StopTickLimit:
		return "tick limit"
	default:
		return "unknown"
	}
}

// Options configures Run.
type Options struct {
	PollHz   int         // outer pacing rate
	SimHz    int         // step and render rate
	MaxTicks uint64      // 0 runs until quit or game over
	Clock    Clock       // defaults to WallClock
	Logger   *log.Logger // defaults to a discarding logger
}

// Summary describes a finished run.
type Summary struct {
	Reason    StopReason
	Polls     uint64
	Ticks     uint64
	Destroyed int // entities reported destroyed over the run
	State     core.GameState
}

// Run drives sim until quit, game over, the tick limit or ctx cancellation.
// Every poll feeds input to sim; when the scheduler is due the simulation
// steps once and the resulting frame is rendered. A render failure is fatal.
func Run(ctx context.Context, sim Simulation, in InputSource, r Renderer, opts Options) (Summary, error) {
	clk := opts.Clock
	if clk == nil {
		clk = WallClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var (
		sum   Summary
		sched = NewScheduler(opts.SimHz)
		poll  = Interval(opts.PollHz)
	)

	logger.Info("loop started", "poll_hz", opts.PollHz, "sim_hz", opts.SimHz)
	stop := func(reason StopReason) (Summary, error) {
		sum.Reason = reason
		logger.Info("loop stopped", "reason", reason, "ticks", sum.Ticks, "score", sum.State.Score)
		return sum, nil
	}

	for {
		if ctx.Err() != nil {
			return stop(StopCanceled)
		}
		start := clk.Now()

		frame := in.Poll()
		sum.Polls++
		if frame.IsHeld(core.ActionQuit) || frame.WasPressed(core.ActionQuit) {
			return stop(StopQuit)
		}
		sim.Control(frame)

		if sched.Due(clk.Now()) {
			res := sim.Step()
			sum.Ticks++
			sum.State = res.State
			sum.Destroyed += len(res.Destroyed)
			for _, d := range res.Destroyed {
				logger.Debug("destroyed", "tick", sum.Ticks, "kind", d.Kind, "tier", d.Tier,
					"x", d.Position.X, "y", d.Position.Y)
			}

			if err := r.Render(sim.Frame()); err != nil {
				return sum, fmt.Errorf("loop: render frame %d: %w", sum.Ticks, err)
			}

			if res.State.GameOver {
				return stop(StopPlayerDestroyed)
			}
			if opts.MaxTicks > 0 && sum.Ticks >= opts.MaxTicks {
				return stop(StopTickLimit)
			}
		}

		if elapsed := clk.Now().Sub(start); elapsed < poll {
			clk.Sleep(poll - elapsed)
		}
	}
}
