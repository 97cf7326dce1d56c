// Package tui runs the game in a terminal through Bubble Tea.
// It owns the fixed-timestep loop, maps keys and mouse clicks into input
// frames, performs the game's cues and draws its screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxCatchUp bounds the extra simulation steps one late tick may run.
const maxCatchUp = 5

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 70
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickClock tracks how far the fixed-step simulation trails the wall clock.
// tea.Tick fires late when rendering is slow; the lag is paid back with
// extra steps so the fire and the narration keep real time.
type tickClock struct {
	last time.Time
	lag  time.Duration
}

// steps returns how many fixed steps the tick delivered at now should run.
// Zero times carry no timing information and always run one step.
func (c *tickClock) steps(now time.Time, interval time.Duration) int {
	last := c.last
	c.last = now
	if now.IsZero() || last.IsZero() {
		return 1
	}

	c.lag += now.Sub(last) - interval
	if c.lag < 0 {
		c.lag = 0
	}
	extra := int(c.lag / interval)
	if extra > maxCatchUp {
		// Too far behind (suspended terminal, debugger): drop the rest.
		c.lag = 0
		return 1 + maxCatchUp
	}
	c.lag -= time.Duration(extra) * interval
	return 1 + extra
}
