// Package tui runs the racer in a terminal through Bubble Tea, either locally
// or for every session of a Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// DefaultHoldWindow is how many ticks a direction stays held after its key
// was last reported. Terminals repeat held keys roughly every 30-50ms, so at
// 60 ticks per second the window must cover a few ticks.
const DefaultHoldWindow = 8

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// HoldTracker turns key presses into held directions.
// Terminals report key presses only, never releases: a direction counts as
// held until no press for it has arrived within the hold window.
type HoldTracker struct {
	window    int
	tick      int
	lastPress map[core.Action]int
}

// NewHoldTracker creates a tracker. A non-positive window selects
// DefaultHoldWindow.
func NewHoldTracker(window int) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:    window,
		lastPress: make(map[core.Action]int),
	}
}

// Press records a press of a direction on the current tick. Pressing a
// direction releases its opposite.
func (h *HoldTracker) Press(a core.Action) {
	if !a.IsDirection() {
		return
	}
	delete(h.lastPress, opposite(a))
	h.lastPress[a] = h.tick
}

// Apply sets every direction held on the current tick.
func (h *HoldTracker) Apply(f *core.InputFrame) {
	for a, at := range h.lastPress {
		if h.tick-at < h.window {
			f.Set(a)
		}
	}
}

// Advance moves to the next tick and forgets expired presses.
func (h *HoldTracker) Advance() {
	h.tick++
	for a, at := range h.lastPress {
		if h.tick-at >= h.window {
			delete(h.lastPress, a)
		}
	}
}

// Release drops every held direction.
func (h *HoldTracker) Release() {
	clear(h.lastPress)
}

// Held reports whether a direction is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	at, ok := h.lastPress[a]
	return ok && h.tick-at < h.window
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	default:
		return core.ActionNone
	}
}
