package asteroids

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Game identifiers registered with the registry.
const (
	IDMultiHit  = "asteroids"
	IDSingleHit = "asteroids_classic"
)

// Visual characters for rendering
var kindRunes = map[core.EntityKind]rune{
	core.KindShip:       '#',
	core.KindProjectile: '+',
	core.KindAsteroid:   '*',
}

// Game owns the ship and the live asteroid set and advances them one fixed
// tick at a time.
type Game struct {
	id        string
	title     string
	cfg       config.AsteroidsConfig
	stage     Stage
	rng       *rand.Rand
	logger    *log.Logger
	resolver  *Resolver
	ship      *Ship
	asteroids []*Asteroid
	score     int
	wave      int
	tick      uint64
	gameOver  bool
}

// New creates a game with the given configuration. A nil logger discards output.
func New(id, title string, cfg config.AsteroidsConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		id:     id,
		title:  title,
		cfg:    cfg,
		stage:  Stage{W: cfg.Stage.Width, H: cfg.Stage.Height},
		logger: logger.WithPrefix(id),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new run: the ship at rest at its spawn point and the first wave.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.resolver = NewResolver(g.cfg.Asteroids, g.rng, g.logger)
	g.score = 0
	g.wave = 0
	g.tick = 0
	g.gameOver = false

	spawn := core.Pt(g.stage.W/2, g.stage.H/2)
	if !g.cfg.Ship.SpawnCenter {
		spawn = core.Pt(g.cfg.Ship.SpawnX, g.cfg.Ship.SpawnY)
	}
	g.ship = NewShip(spawn, g.cfg.Ship, g.cfg.Projectile)

	g.asteroids = nil
	g.spawnWave()
}

// spawnWave places the configured initial asteroids.
func (g *Game) spawnWave() {
	for _, s := range g.cfg.Asteroids.Initial {
		g.SpawnAsteroid(core.Pt(s.X, s.Y), core.Pt(s.VX, s.VY), s.Tier)
	}
	g.wave++
	g.logger.Debug("wave spawned", "wave", g.wave, "asteroids", len(g.asteroids))
}

// SpawnAsteroid adds an asteroid to the live set.
func (g *Game) SpawnAsteroid(pos, vel core.Point, tier int) *Asteroid {
	a := NewAsteroid(g.rng, pos, vel, tier, g.cfg.Asteroids)
	g.asteroids = append(g.asteroids, a)
	return a
}

// Control applies one input poll to the ship. Thrust reacts to presses,
// rotation and firing to held controls.
func (g *Game) Control(in core.InputFrame) {
	if g.gameOver {
		return
	}
	if in.WasPressed(core.ActionUp) {
		g.ship.Thrust(1)
	}
	if in.WasPressed(core.ActionDown) {
		g.ship.Thrust(-1)
	}
	if in.IsHeld(core.ActionLeft) {
		g.ship.Left()
	}
	if in.IsHeld(core.ActionRight) {
		g.ship.Right()
	}
	if in.IsHeld(core.ActionFire) {
		g.ship.Fire()
	}
}

// Step advances the simulation by one tick: every entity moves, then
// collisions resolve and the live set is rebuilt. A stopped game does not
// advance.
func (g *Game) Step() core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.ship.Step(g.stage)
	for _, a := range g.asteroids {
		a.Step(g.stage)
	}

	live, res := g.resolver.Resolve(g.ship, g.asteroids)
	g.asteroids = live
	g.score += res.Score

	destroyed := append(g.ship.DrainRemoved(), res.Destroyed...)

	switch {
	case res.ShipDestroyed:
		g.gameOver = true
		g.logger.Info("player destroyed", "tick", g.tick, "score", g.score, "wave", g.wave)
	case len(g.asteroids) == 0 && len(g.cfg.Asteroids.Initial) > 0:
		g.logger.Info("field cleared", "tick", g.tick, "wave", g.wave)
		g.spawnWave()
	}

	return core.StepResult{State: g.State(), Destroyed: destroyed}
}

// Ship returns the player ship.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Asteroids returns the live asteroid set.
func (g *Game) Asteroids() []*Asteroid {
	return g.asteroids
}

// Fragmentation returns how many times an asteroid may split per tick.
func (g *Game) Fragmentation() config.FragmentationMode {
	return g.cfg.Asteroids.Fragmentation
}

// Tick returns the number of simulation ticks since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Frame builds the render list: ship, then projectiles in fire order, then asteroids.
func (g *Game) Frame() core.Frame {
	reqs := make([]core.DrawRequest, 0, 1+len(g.ship.Projectiles())+len(g.asteroids))
	reqs = append(reqs, g.ship.Draw())
	for _, p := range g.ship.Projectiles() {
		reqs = append(reqs, p.Draw())
	}
	for _, a := range g.asteroids {
		reqs = append(reqs, a.Draw())
	}

	return core.Frame{
		Tick:       g.tick,
		StageW:     g.stage.W,
		StageH:     g.stage.H,
		Foreground: g.cfg.Stage.Foreground,
		Background: g.cfg.Stage.Background,
		Requests:   reqs,
		State:      g.State(),
	}
}

// Render draws the current frame and HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Frame().Rasterize(dst, kindRunes)

	hud := fmt.Sprintf(" Score: %d  Wave: %d  Asteroids: %d ", g.score, g.wave, len(g.asteroids))
	dst.DrawText(1, 0, hud)

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart, Q to quit", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Wave:      g.wave,
		Asteroids: len(g.asteroids),
		GameOver:  g.gameOver,
	}
}

// Register both fragmentation variants with the registry
func init() {
	registry.Register(IDMultiHit, "Asteroids", func(o registry.Options) registry.Game {
		return New(IDMultiHit, "Asteroids", o.Config, o.Logger)
	})
	registry.Register(IDSingleHit, "Asteroids (one split per tick)", func(o registry.Options) registry.Game {
		cfg := o.Config
		cfg.Asteroids.Fragmentation = config.FragmentSingleHit
		return New(IDSingleHit, "Asteroids (one split per tick)", cfg, o.Logger)
	})
}
