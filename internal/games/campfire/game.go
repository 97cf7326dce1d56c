package campfire

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/ember-story/internal/assets"
	"github.com/vovakirdan/ember-story/internal/config"
	"github.com/vovakirdan/ember-story/internal/core"
	"github.com/vovakirdan/ember-story/internal/sprite"
)

// Scene is the screen the game is showing.
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	SceneEndFail
	SceneEndSuccess
)

// String returns the scene name reported in core.GameState.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	case SceneEndFail:
		return "end_fail"
	case SceneEndSuccess:
		return "end_success"
	default:
		return "unknown"
	}
}

// Game is one Ember Story session. It owns all mutable state; assets are
// shared read-only. Side effects are returned as cues from Step.
type Game struct {
	cfg        config.GameConfig
	bundle     *assets.Bundle // nil in logic-only tests
	anims      *sprite.Set
	hits       HitMap
	thresholds Thresholds
	difficulty *config.DifficultyManager
	groups     map[string]int // sound group sizes
	letterbox  color.Color
	logger     *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand

	scene     Scene
	sceneTime float64 // seconds since the scene was entered
	clock     float64 // seconds since Reset, drives animations
	intensity float64
	burn      BurnState
	story     *Story
	runTime   float64
	woodAdded int
	campfire  bool // campfire loop requested
	music     bool // music loop requested
	quit      bool
	debug     bool
	lastClick core.Point

	cues   []core.Cue
	canvas *sprite.Canvas
}

// New creates a game over a loaded asset bundle.
func New(cfg config.GameConfig, b *assets.Bundle, logger *log.Logger) (*Game, error) {
	anims, err := b.Animations()
	if err != nil {
		return nil, err
	}
	g, err := newGame(cfg, anims, b.Durations(), logger)
	if err != nil {
		return nil, err
	}
	g.bundle = b
	return g, nil
}

func newGame(cfg config.GameConfig, anims *sprite.Set, durations []float64, logger *log.Logger) (*Game, error) {
	hits, err := NewHitMap(cfg.Regions)
	if err != nil {
		return nil, err
	}

	letterbox := color.Color(color.Black)
	if cfg.Render.Letterbox != "" {
		c, err := colorful.Hex(cfg.Render.Letterbox)
		if err != nil {
			return nil, fmt.Errorf("campfire: letterbox: %w", err)
		}
		letterbox = c
	}

	if logger == nil {
		logger = log.Default()
	}

	groups := make(map[string]int, len(cfg.Audio.Groups))
	for _, grp := range cfg.Audio.Groups {
		groups[grp.Name] = grp.Count
	}

	g := &Game{
		cfg:        cfg,
		anims:      anims,
		hits:       hits,
		thresholds: Thresholds{LowBelow: cfg.Fire.LowBelow, MediumBelow: cfg.Fire.MediumBelow},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		groups:     groups,
		letterbox:  letterbox,
		logger:     logger,
		story:      NewStory(durations, cfg.Story.Delay),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// Reset returns to the menu with a fresh RNG.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.scene = SceneMenu
	g.sceneTime = 0
	g.clock = 0
	g.intensity = 0
	g.story.Reset(g.cfg.Story.Delay)
	g.anims.Reset()
	g.quit = false
	g.campfire = false
	g.music = false
	g.cues = nil
}

// SceneSize returns the logical scene dimensions.
func (g *Game) SceneSize() (float64, float64) {
	return g.cfg.Scene.Width, g.cfg.Scene.Height
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Scene:   g.scene.String(),
		Running: g.scene == ScenePlaying,
		Quit:    g.quit,
	}
}

// Scene returns the current scene.
func (g *Game) Scene() Scene {
	return g.scene
}

// Intensity returns the fire's current intensity.
func (g *Game) Intensity() float64 {
	return g.intensity
}

// Burn returns the fire's burn state.
func (g *Game) Burn() BurnState {
	return g.burn
}

// Story returns the story progress.
func (g *Game) Story() *Story {
	return g.story
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil
	dt := g.runtime.TickDuration()
	g.clock += dt
	g.sceneTime += dt

	g.handleInput(in)

	if g.scene == ScenePlaying && !g.quit {
		g.update(dt)
		if g.scene == ScenePlaying {
			g.anims.Animate(g.clock)
		}
	}

	g.ambience()

	return core.StepResult{State: g.State(), Cues: g.cues}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if in.Has(core.ActionQuit) {
		g.leaveRun()
		g.quit = true
		return
	}

	if in.Has(core.ActionBack) {
		if g.scene == SceneMenu {
			g.quit = true
			return
		}
		g.leaveRun()
		g.setScene(SceneMenu)
		return
	}

	for _, p := range in.Clicks {
		g.click(p)
	}

	// Space carries both actions; only one may apply per tick.
	switch {
	case in.Has(core.ActionFeed) && g.scene == ScenePlaying:
		g.addWood()
	case in.Has(core.ActionConfirm) && g.scene != ScenePlaying:
		g.advanceScreen()
	}
}

// click handles a mouse release at scene position p.
func (g *Game) click(p core.Point) {
	g.lastClick = p

	if g.scene != ScenePlaying {
		g.advanceScreen()
		return
	}

	obj, ok := g.hits.At(p)
	if !ok {
		return
	}
	g.logger.Debug("clicked", "object", obj, "x", p.X, "y", p.Y)

	if obj == ObjectFire {
		g.addWood()
		return
	}
	g.playRandom(obj.SoundGroup())
}

// advanceScreen starts a run from the menu and leaves an end screen.
func (g *Game) advanceScreen() {
	switch g.scene {
	case SceneMenu:
		g.startRun()
	case SceneEndFail, SceneEndSuccess:
		g.setScene(SceneMenu)
	}
}

func (g *Game) startRun() {
	g.intensity = g.cfg.Fire.StartingIntensity
	g.burn = g.thresholds.Classify(g.intensity)
	g.anims.Switch(g.burn.String())
	g.anims.Reset()
	g.story.Reset(g.cfg.Story.Delay)
	g.runTime = 0
	g.woodAdded = 0

	g.logger.Info("run started", "intensity", g.intensity, "burn", g.burn)
	g.setScene(ScenePlaying)
}

func (g *Game) update(dt float64) {
	heard := g.story.Heard()
	rate := g.difficulty.DropOff(g.cfg.Fire.DropOffRate, heard, g.runTime)
	g.runTime += dt
	g.intensity -= rate * dt

	if g.intensity < 0 {
		g.logger.Debug("fire went out")
		g.stopStory()
		g.finishRun(core.OutcomeLost)
		g.setScene(SceneEndFail)
		return
	}

	if next := g.thresholds.Classify(g.intensity); next != g.burn {
		g.logger.Debug("burn state changed", "from", g.burn, "to", next)
		g.burn = next
		g.anims.Switch(next.String())
	}

	ev := g.story.Advance(dt)
	if ev.Finished >= 0 {
		g.logger.Debug("story fragment finished", "fragment", ev.Finished)
	}
	if ev.Started >= 0 {
		g.logger.Debug("story fragment started", "fragment", ev.Started)
		g.emit(core.Cue{Kind: core.CueStoryStart, Index: ev.Started})
	}
	if ev.Complete {
		g.logger.Debug("story complete")
		g.finishRun(core.OutcomeWon)
		g.setScene(SceneEndSuccess)
	}
}

func (g *Game) addWood() {
	inc := g.difficulty.WoodIncrease(g.cfg.Fire.WoodIncrease, g.story.Heard(), g.runTime)
	g.intensity = min(g.intensity+inc, g.cfg.Fire.Max)
	g.woodAdded++
	g.playRandom(ObjectFire.SoundGroup())
}

func (g *Game) playRandom(group string) {
	n := g.groups[group]
	if n <= 0 {
		g.logger.Warn("no sounds in group", "group", group)
		return
	}
	g.emit(core.Cue{Kind: core.CueSound, Name: group, Index: g.rng.Intn(n)})
}

// leaveRun abandons the run in progress, if any.
func (g *Game) leaveRun() {
	if g.scene != ScenePlaying {
		return
	}
	g.stopStory()
	g.finishRun(core.OutcomeAbandoned)
}

func (g *Game) stopStory() {
	if _, playing := g.story.Current(); playing {
		g.emit(core.Cue{Kind: core.CueStoryStop})
	}
}

func (g *Game) finishRun(outcome string) {
	run := &core.RunSummary{
		Outcome:   outcome,
		Duration:  time.Duration(g.runTime * float64(time.Second)),
		WoodAdded: g.woodAdded,
		Fragments: g.story.Heard(),
	}
	g.logger.Info("run finished",
		"outcome", run.Outcome,
		"duration", run.Duration.Round(time.Millisecond),
		"wood", run.WoodAdded,
		"fragments", run.Fragments,
	)
	g.emit(core.Cue{Kind: core.CueRunFinished, Run: run})
}

func (g *Game) setScene(s Scene) {
	if s == g.scene {
		return
	}
	g.logger.Debug("scene changed", "from", g.scene, "to", s)
	g.scene = s
	g.sceneTime = 0
}

// ambience keeps the music looping everywhere and the campfire looping
// everywhere except the fail screen.
func (g *Game) ambience() {
	if !g.music {
		g.music = true
		g.emit(core.Cue{Kind: core.CueLoopStart, Name: core.LoopMusic})
	}

	want := g.scene != SceneEndFail
	if want != g.campfire {
		g.campfire = want
		kind := core.CueLoopStop
		if want {
			kind = core.CueLoopStart
		}
		g.emit(core.Cue{Kind: kind, Name: core.LoopCampfire})
	}
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}
