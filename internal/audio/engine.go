// Package audio plays the game's music, ambience, effects and story
// narration through a single beep mixer.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ember-story/internal/assets"
	"github.com/vovakirdan/ember-story/internal/config"
	"github.com/vovakirdan/ember-story/internal/core"
)

// ErrClosed is returned by Open after Close.
var ErrClosed = errors.New("audio: engine closed")

type group struct {
	sounds []*beep.Buffer
	volume float64
}

type loop struct {
	buf    *beep.Buffer
	volume float64
	ctrl   *beep.Ctrl // nil while stopped
}

// Engine mixes every sound of a game session. Until Open succeeds it is
// silent and every operation is a no-op, so the game runs unchanged
// without an output device.
type Engine struct {
	mu     sync.Mutex
	format beep.Format
	mixer  *beep.Mixer
	logger *log.Logger

	groups      map[string]group
	loops       map[string]*loop
	story       []*beep.Buffer
	storyVolume float64
	storyCtrl   *beep.Ctrl

	active bool // sounds are queued on the mixer
	device bool // the speaker pulls the mixer
	closed bool
}

// NewEngine creates a silent engine over the bundle's sounds.
func NewEngine(b *assets.Bundle, cfg config.AudioConfig, logger *log.Logger) *Engine {
	e := &Engine{
		format:      b.Format,
		mixer:       &beep.Mixer{},
		logger:      logger,
		groups:      make(map[string]group, len(b.Groups)),
		loops:       make(map[string]*loop, 2),
		story:       make([]*beep.Buffer, len(b.Story)),
		storyVolume: cfg.StoryVolume,
	}

	volumes := make(map[string]float64, len(cfg.Groups))
	for _, g := range cfg.Groups {
		volumes[g.Name] = g.Volume
	}
	for name, sounds := range b.Groups {
		e.groups[name] = group{sounds: sounds, volume: volumes[name]}
	}

	if b.Music != nil {
		e.loops[core.LoopMusic] = &loop{buf: b.Music, volume: cfg.MusicVolume}
	}
	if b.Campfire != nil {
		e.loops[core.LoopCampfire] = &loop{buf: b.Campfire, volume: cfg.CampfireVolume}
	}
	for i, f := range b.Story {
		e.story[i] = f.Audio
	}
	return e
}

// Open initializes the speaker and starts playing the mixer.
func (e *Engine) Open() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.active {
		return nil
	}

	sr := e.format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(e.mixer)

	e.active = true
	e.device = true
	return nil
}

// openOffline activates the engine without an output device. The caller
// pulls the mix with stream.
func (e *Engine) openOffline() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.closed {
		e.active = true
	}
}

// Active reports whether sounds are being mixed.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// stream reads the mix of an offline engine into samples.
func (e *Engine) stream(samples [][2]float64) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active || e.device {
		return 0
	}
	n, _ := e.mixer.Stream(samples)
	return n
}

// voices returns the number of streamers on the mixer.
func (e *Engine) voices() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lockSpeaker()
	defer e.unlockSpeaker()
	return e.mixer.Len()
}

// Play starts sound index of group. Unknown sounds are logged and skipped.
func (e *Engine) Play(name string, index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return
	}

	g, ok := e.groups[name]
	if !ok || index < 0 || index >= len(g.sounds) {
		e.logger.Warn("unknown sound", "group", name, "index", index)
		return
	}

	buf := g.sounds[index]
	e.add(newVolume(buf.Streamer(0, buf.Len()), g.volume))
}

// StartLoop makes sure loop name is playing; a running loop is left alone.
func (e *Engine) StartLoop(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.loops[name]
	if !e.active || !ok || l.ctrl != nil {
		return
	}

	l.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, l.buf.Streamer(0, l.buf.Len()))}
	e.add(newVolume(l.ctrl, l.volume))
	e.logger.Debug("loop started", "loop", name)
}

// StopLoop stops loop name.
func (e *Engine) StopLoop(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.loops[name]
	if !ok || l.ctrl == nil {
		return
	}
	e.drain(l.ctrl)
	l.ctrl = nil
	e.logger.Debug("loop stopped", "loop", name)
}

// looping reports whether loop name is playing.
func (e *Engine) looping(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.loops[name]
	return ok && l.ctrl != nil
}

// PlayStory starts narration of fragment index, replacing any running one.
func (e *Engine) PlayStory(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return
	}
	if index < 0 || index >= len(e.story) {
		e.logger.Warn("unknown story fragment", "index", index)
		return
	}

	e.stopStory()
	buf := e.story[index]
	e.storyCtrl = &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}
	e.add(newVolume(e.storyCtrl, e.storyVolume))
}

// StopStory silences the running narration.
func (e *Engine) StopStory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopStory()
}

func (e *Engine) stopStory() {
	if e.storyCtrl != nil {
		e.drain(e.storyCtrl)
		e.storyCtrl = nil
	}
}

// Handle performs an audio cue emitted by the game.
func (e *Engine) Handle(c core.Cue) {
	switch c.Kind {
	case core.CueSound:
		e.Play(c.Name, c.Index)
	case core.CueLoopStart:
		e.StartLoop(c.Name)
	case core.CueLoopStop:
		e.StopLoop(c.Name)
	case core.CueStoryStart:
		e.PlayStory(c.Index)
	case core.CueStoryStop:
		e.StopStory()
	}
}

// Close stops every sound and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.lockSpeaker()
	e.mixer.Clear()
	e.unlockSpeaker()

	for _, l := range e.loops {
		l.ctrl = nil
	}
	e.storyCtrl = nil

	if e.device {
		speaker.Close()
	}
	e.active = false
	e.device = false
	e.closed = true
}

// add queues a streamer on the mixer. Callers hold e.mu.
func (e *Engine) add(s beep.Streamer) {
	e.lockSpeaker()
	e.mixer.Add(s)
	e.unlockSpeaker()
}

// drain ends a controlled streamer; the mixer drops it on the next read.
func (e *Engine) drain(ctrl *beep.Ctrl) {
	e.lockSpeaker()
	ctrl.Streamer = nil
	e.unlockSpeaker()
}

func (e *Engine) lockSpeaker() {
	if e.device {
		speaker.Lock()
	}
}

func (e *Engine) unlockSpeaker() {
	if e.device {
		speaker.Unlock()
	}
}

// newVolume wraps s with a linear volume in [0, 1].
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
