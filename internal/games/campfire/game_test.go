package campfire

import (
	"image"
	"image/color"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ember-story/internal/assets"
	"github.com/vovakirdan/ember-story/internal/config"
	"github.com/vovakirdan/ember-story/internal/core"
	"github.com/vovakirdan/ember-story/internal/sprite"
)

var (
	firePoint  = core.Point{X: 600, Y: 660}
	owlPoint   = core.Point{X: 80, Y: 260}
	guitarSpot = core.Point{X: 950, Y: 600}
	skyPoint   = core.Point{X: 640, Y: 100}
)

func newTestGame(t *testing.T, cfg config.GameConfig, durations []float64) *Game {
	t.Helper()

	g, err := newGame(cfg, sprite.NewSet(""), durations, log.New(io.Discard))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	return g
}

func click(p core.Point) core.InputFrame {
	var in core.InputFrame
	in.Click(p)
	return in
}

func action(a core.Action) core.InputFrame {
	var in core.InputFrame
	in.Set(a)
	return in
}

func cuesOf(res core.StepResult, kind core.CueKind) []core.Cue {
	var out []core.Cue
	for _, c := range res.Cues {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func TestClickInMenuStartsRun(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{60})

	res := g.Step(click(skyPoint))
	if g.Scene() != ScenePlaying || !res.State.Running {
		t.Fatalf("scene = %s, expected playing", g.Scene())
	}
	if g.Burn() != BurnMedium {
		t.Errorf("Burn() = %s at start, expected burn_medium", g.Burn())
	}
}

func TestFireDecaysToLow(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})

	// 70 ticks per second for 10 seconds, the first tick starts the run.
	g.Step(click(skyPoint))
	for i := 1; i < 700; i++ {
		g.Step(core.InputFrame{})
	}

	if math.Abs(g.Intensity()-0.30) > 1e-9 {
		t.Errorf("Intensity() = %v after 10s, expected 0.30", g.Intensity())
	}
	if g.Burn() != BurnLow {
		t.Errorf("Burn() = %s, expected burn_low", g.Burn())
	}
	if g.Scene() != ScenePlaying {
		t.Errorf("scene = %s, expected playing", g.Scene())
	}
}

func TestFireGoesOut(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Fire.StartingIntensity = 0.01
	g := newTestGame(t, cfg, []float64{600})

	g.Step(click(skyPoint))

	var finished []core.Cue
	var stopped bool
	for i := 0; i < 100 && g.Scene() == ScenePlaying; i++ {
		res := g.Step(core.InputFrame{})
		finished = append(finished, cuesOf(res, core.CueRunFinished)...)
		for _, c := range cuesOf(res, core.CueLoopStop) {
			stopped = stopped || c.Name == core.LoopCampfire
		}
	}

	if g.Scene() != SceneEndFail {
		t.Fatalf("scene = %s, expected end_fail", g.Scene())
	}
	if len(finished) != 1 || finished[0].Run.Outcome != core.OutcomeLost {
		t.Errorf("run finished cues = %+v, expected one lost run", finished)
	}
	if !stopped {
		t.Error("campfire loop should stop on the fail screen")
	}

	// Any click returns to the menu, and the campfire resumes.
	res := g.Step(click(firePoint))
	if g.Scene() != SceneMenu {
		t.Errorf("scene = %s after click, expected menu", g.Scene())
	}
	if starts := cuesOf(res, core.CueLoopStart); len(starts) != 1 || starts[0].Name != core.LoopCampfire {
		t.Errorf("loop start cues = %+v, expected campfire", starts)
	}
}

func TestClickFireAddsWood(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})
	g.Step(click(skyPoint))

	before := g.Intensity()
	res := g.Step(click(firePoint))

	dt := core.DefaultConfig().TickDuration()
	want := before + 0.08 - 0.03*dt
	if math.Abs(g.Intensity()-want) > 1e-9 {
		t.Errorf("Intensity() = %v, expected %v", g.Intensity(), want)
	}

	sounds := cuesOf(res, core.CueSound)
	if len(sounds) != 1 || sounds[0].Name != "firewood" || sounds[0].Index < 0 || sounds[0].Index >= 4 {
		t.Errorf("sound cues = %+v, expected one firewood sound", sounds)
	}
}

func TestWoodIsClampedToMax(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})
	g.Step(click(skyPoint))

	for i := 0; i < 20; i++ {
		g.Step(click(firePoint))
	}
	if g.Intensity() > 1.0 {
		t.Errorf("Intensity() = %v, expected at most 1.0", g.Intensity())
	}
	if g.Burn() != BurnHigh {
		t.Errorf("Burn() = %s, expected burn_high", g.Burn())
	}
}

func TestClickCharacters(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})
	g.Step(click(skyPoint))

	tests := []struct {
		p     core.Point
		group string
	}{
		{owlPoint, "owl"},
		{guitarSpot, "guitar"},
		{core.Point{X: 400, Y: 500}, "man1"},
		{skyPoint, ""},
	}

	for _, tt := range tests {
		before := g.Intensity()
		sounds := cuesOf(g.Step(click(tt.p)), core.CueSound)

		if tt.group == "" {
			if len(sounds) != 0 {
				t.Errorf("click at %v played %+v", tt.p, sounds)
			}
			continue
		}
		if len(sounds) != 1 || sounds[0].Name != tt.group {
			t.Errorf("click at %v: sounds = %+v, expected %s", tt.p, sounds, tt.group)
		}
		if g.Intensity() >= before {
			t.Errorf("click at %v should not feed the fire", tt.p)
		}
	}
}

func TestStoryPlaysToSuccess(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{0.5, 0.25})
	g.Step(click(skyPoint))

	var started []int
	var runs []*core.RunSummary
	for i := 0; i < 70*10 && g.Scene() == ScenePlaying; i++ {
		res := g.Step(core.InputFrame{})
		for _, c := range cuesOf(res, core.CueStoryStart) {
			started = append(started, c.Index)
		}
		for _, c := range cuesOf(res, core.CueRunFinished) {
			runs = append(runs, c.Run)
		}
	}

	if g.Scene() != SceneEndSuccess {
		t.Fatalf("scene = %s, expected end_success", g.Scene())
	}
	if len(started) != 2 || started[0] != 0 || started[1] != 1 {
		t.Errorf("story starts = %v, expected [0 1]", started)
	}
	if len(runs) != 1 || runs[0].Outcome != core.OutcomeWon || runs[0].Fragments != 2 {
		t.Errorf("runs = %+v, expected one won run with 2 fragments", runs)
	}
	if runs[0].Duration.Seconds() < 3.75 {
		t.Errorf("run lasted %v, expected at least the delay plus both fragments", runs[0].Duration)
	}
}

func TestBackAbandonsRunAndQuitsFromMenu(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})
	g.Step(click(skyPoint))

	res := g.Step(action(core.ActionBack))
	if g.Scene() != SceneMenu {
		t.Fatalf("scene = %s, expected menu", g.Scene())
	}
	runs := cuesOf(res, core.CueRunFinished)
	if len(runs) != 1 || runs[0].Run.Outcome != core.OutcomeAbandoned {
		t.Errorf("run cues = %+v, expected an abandoned run", runs)
	}

	res = g.Step(action(core.ActionBack))
	if !res.State.Quit {
		t.Error("Esc in the menu should quit")
	}
}

func TestKeyboardFallbacks(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})

	g.Step(action(core.ActionConfirm))
	if g.Scene() != ScenePlaying {
		t.Fatalf("Confirm in menu: scene = %s, expected playing", g.Scene())
	}

	before := g.Intensity()
	g.Step(action(core.ActionFeed))
	if g.Intensity() <= before {
		t.Error("Feed should add wood")
	}

	// Confirm does nothing while playing.
	g.Step(action(core.ActionConfirm))
	if g.Scene() != ScenePlaying {
		t.Errorf("scene = %s, expected playing", g.Scene())
	}
}

func TestSpaceStartsWithoutFeeding(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := newTestGame(t, cfg, []float64{600})

	var space core.InputFrame
	space.Set(core.ActionConfirm)
	space.Set(core.ActionFeed)

	g.Step(space)
	if g.Scene() != ScenePlaying {
		t.Fatalf("scene = %s, expected playing", g.Scene())
	}
	if g.Intensity() >= cfg.Fire.StartingIntensity {
		t.Errorf("intensity = %v, starting press should not add wood", g.Intensity())
	}

	before := g.Intensity()
	g.Step(space)
	if g.Intensity() <= before {
		t.Error("space while playing should add wood")
	}
}

func TestAmbienceCuesOnlyOnChange(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})

	first := cuesOf(g.Step(core.InputFrame{}), core.CueLoopStart)
	if len(first) != 2 {
		t.Fatalf("first tick loop starts = %+v, expected music and campfire", first)
	}
	if again := cuesOf(g.Step(core.InputFrame{}), core.CueLoopStart); len(again) != 0 {
		t.Errorf("second tick restarted loops: %+v", again)
	}
}

func TestSoundChoiceIsSeeded(t *testing.T) {
	pick := func() []int {
		g := newTestGame(t, config.DefaultGameConfig(), []float64{600})
		rc := core.DefaultConfig()
		rc.Seed = 42
		g.Reset(rc)
		g.Step(click(skyPoint))

		var idx []int
		for i := 0; i < 8; i++ {
			for _, c := range cuesOf(g.Step(click(owlPoint)), core.CueSound) {
				idx = append(idx, c.Index)
			}
		}
		return idx
	}

	a, b := pick(), pick()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed chose %v and %v", a, b)
		}
	}
}

func TestRenderMenuAndHUD(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Render.FadeSeconds = 0
	g := newTestGame(t, cfg, []float64{600})

	menu := image.NewUniform(color.NRGBA{R: 255, A: 255})
	g.bundle = &assets.Bundle{Menu: boundedImage{menu, image.Rect(0, 0, 1280, 800)}}

	screen := core.NewScreen(160, 50)
	g.Render(screen)

	if got := screen.GetCell(80, 25); got.Rune != core.HalfBlock || got.Fg != core.RGB(255, 0, 0) {
		t.Errorf("center cell = %+v, expected red menu pixel", got)
	}

	g.Step(action(core.ActionDebug))
	g.Render(screen)
	rows := strings.Split(screen.String(), "\n")
	if !strings.HasPrefix(rows[0], "┌") {
		t.Errorf("HUD top row = %q, expected a panel border", rows[0])
	}
	if !strings.Contains(rows[1], "scene menu") {
		t.Errorf("HUD row = %q, expected scene name", rows[1])
	}
	if strings.Contains(screen.String(), "difficulty") {
		t.Error("HUD should not show a difficulty level while progression is off")
	}
	if got := screen.GetCell(1, 1); got.Bg != hudBg {
		t.Errorf("HUD backdrop cell = %+v, expected the panel background", got)
	}
}

func TestHUDShowsDifficultyWhenEnabled(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 0.25
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "story", MaxAt: 10}
	g := newTestGame(t, cfg, []float64{600})

	g.Step(action(core.ActionDebug))
	screen := core.NewScreen(160, 50)
	g.Render(screen)

	if !strings.Contains(screen.String(), "difficulty 0.25") {
		t.Errorf("HUD = %q, expected the difficulty level", strings.Split(screen.String(), "\n")[4])
	}
}

func TestRenderWithoutAssets(t *testing.T) {
	g := newTestGame(t, config.DefaultGameConfig(), []float64{600})
	g.Step(click(skyPoint))

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Render panicked: %v", r)
		}
	}()
	g.Render(core.NewScreen(40, 12))
	g.Render(core.NewScreen(0, 0))
}

func TestFadeEasesIn(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Render.FadeSeconds = 1
	g := newTestGame(t, cfg, []float64{600})

	g.Step(click(skyPoint))
	early := g.fade()
	for i := 0; i < 80; i++ {
		g.Step(core.InputFrame{})
	}

	if early >= 0.1 {
		t.Errorf("fade right after the scene change = %v, expected small", early)
	}
	if g.fade() != 1 {
		t.Errorf("fade after a second = %v, expected 1", g.fade())
	}
}

// boundedImage gives an infinite image finite bounds.
type boundedImage struct {
	image.Image
	rect image.Rectangle
}

func (b boundedImage) Bounds() image.Rectangle { return b.rect }
