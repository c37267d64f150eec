package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeSim struct {
	controls   int
	steps      int
	gameOverAt int // step number that ends the run, 0 never
}

func (s *fakeSim) Control(core.InputFrame) { s.controls++ }

func (s *fakeSim) Step() core.StepResult {
	s.steps++
	res := core.StepResult{State: core.GameState{Score: s.steps * 10}}
	res.Destroyed = []core.Destroyed{{Kind: core.KindProjectile}}
	if s.gameOverAt > 0 && s.steps >= s.gameOverAt {
		res.State.GameOver = true
	}
	return res
}

func (s *fakeSim) Frame() core.Frame {
	return core.Frame{Tick: uint64(s.steps)}
}

// quitAfter returns an input source that asks to quit on poll n (1-based).
func quitAfter(n int) InputSource {
	polls := 0
	return InputFunc(func() core.InputFrame {
		polls++
		in := core.NewInputFrame()
		if n > 0 && polls >= n {
			in.Press(core.ActionQuit)
		}
		return in
	})
}

type frameRecorder struct {
	ticks []uint64
	err   error
}

func (r *frameRecorder) Render(f core.Frame) error {
	r.ticks = append(r.ticks, f.Tick)
	return r.err
}

func manualOptions(clk *ManualClock) Options {
	return Options{PollHz: 144, SimHz: 60, Clock: clk}
}

func TestSchedulerDue(t *testing.T) {
	s := NewScheduler(60)
	if s.Interval() != time.Second/60 {
		t.Fatalf("Interval() = %v, expected %v", s.Interval(), time.Second/60)
	}

	tests := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true}, // first check always fires
		{10 * time.Millisecond, false},
		{16 * time.Millisecond, false},
		{time.Second / 60, true},
		{time.Second/60 + 5*time.Millisecond, false},
		{2 * time.Second / 60, true},
	}
	for _, tt := range tests {
		if got := s.Due(epoch.Add(tt.offset)); got != tt.want {
			t.Errorf("Due(+%v) = %v, expected %v", tt.offset, got, tt.want)
		}
	}

	s.Reset()
	if !s.Due(epoch) {
		t.Error("Due() after Reset should fire")
	}
}

func TestIntervalNonPositive(t *testing.T) {
	if Interval(0) != 0 || Interval(-5) != 0 {
		t.Error("non-positive rates should yield a zero interval")
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	c.Sleep(5 * time.Millisecond)
	c.Advance(time.Millisecond)
	c.Sleep(-time.Second)

	if got := c.Now().Sub(epoch); got != 6*time.Millisecond {
		t.Errorf("Now() advanced %v, expected 6ms", got)
	}
	if c.Slept() != 5*time.Millisecond {
		t.Errorf("Slept() = %v, expected 5ms", c.Slept())
	}
}

func TestRunQuit(t *testing.T) {
	sim := &fakeSim{}
	r := &frameRecorder{}
	clk := NewManualClock(epoch)

	sum, err := Run(context.Background(), sim, quitAfter(7), r, manualOptions(clk))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if sum.Reason != StopQuit {
		t.Errorf("Reason = %v, expected quit", sum.Reason)
	}
	if sum.Polls != 7 || sim.controls != 6 {
		t.Errorf("Polls = %d, controls = %d, expected 7 and 6", sum.Polls, sim.controls)
	}
	// 144 Hz polls against a 60 Hz gate: polls 0 and 3 step.
	if sum.Ticks != 2 || len(r.ticks) != 2 {
		t.Errorf("Ticks = %d, renders = %d, expected 2", sum.Ticks, len(r.ticks))
	}
	if sum.Destroyed != 2 {
		t.Errorf("Destroyed = %d, expected 2", sum.Destroyed)
	}
}

func TestRunStopsOnGameOver(t *testing.T) {
	sim := &fakeSim{gameOverAt: 3}
	r := &frameRecorder{}

	sum, err := Run(context.Background(), sim, quitAfter(0), r, manualOptions(NewManualClock(epoch)))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if sum.Reason != StopPlayerDestroyed {
		t.Errorf("Reason = %v, expected player destroyed", sum.Reason)
	}
	if sum.Ticks != 3 || !sum.State.GameOver || sum.State.Score != 30 {
		t.Errorf("Summary = %+v, expected 3 ticks ending in game over", sum)
	}
	if len(r.ticks) != 3 || r.ticks[2] != 3 {
		t.Errorf("rendered ticks = %v, expected the final frame rendered", r.ticks)
	}
}

func TestRunTickLimit(t *testing.T) {
	clk := NewManualClock(epoch)
	sum, err := Run(context.Background(), &fakeSim{}, quitAfter(0), &frameRecorder{}, Options{
		PollHz:   144,
		SimHz:    60,
		MaxTicks: 10,
		Clock:    clk,
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if sum.Reason != StopTickLimit || sum.Ticks != 10 {
		t.Errorf("Summary = %+v, expected 10 ticks then tick limit", sum)
	}
	if clk.Slept() == 0 {
		t.Error("outer loop should pace itself with Sleep")
	}
	if sum.Polls < 3*9 {
		t.Errorf("Polls = %d, expected the outer loop to poll faster than it steps", sum.Polls)
	}
}

func TestRunRenderErrorIsFatal(t *testing.T) {
	boom := errors.New("boom")
	r := &frameRecorder{err: boom}

	_, err := Run(context.Background(), &fakeSim{}, quitAfter(0), r, manualOptions(NewManualClock(epoch)))
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, expected to wrap %v", err, boom)
	}
	if err.Error() != "loop: render frame 1: boom" {
		t.Errorf("Run() error = %q", err.Error())
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := &fakeSim{}
	sum, err := Run(ctx, sim, quitAfter(0), &frameRecorder{}, manualOptions(NewManualClock(epoch)))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if sum.Reason != StopCanceled || sum.Polls != 0 || sim.steps != 0 {
		t.Errorf("Summary = %+v, expected an immediate cancel", sum)
	}
}

func TestStopReasonString(t *testing.T) {
	tests := []struct {
		r    StopReason
		want string
	}{
		{StopQuit, "quit"},
		{StopPlayerDestroyed, "player destroyed"},
		{StopCanceled, "canceled"},
		{StopTickLimit, "tick limit"},
		{StopReason(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("StopReason(%d).String() = %q, expected %q", tt.r, got, tt.want)
		}
	}
}
