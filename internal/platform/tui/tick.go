// Package tui provides the Bubble Tea integration for the chess platform.
// It runs the tick loop, maps keys and mouse presses to input frames, and
// hosts the variant menu, results browser and SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the tick
// chain it belongs to; a Model only steps on ticks of its own chain.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGens hands out tick chain generations. SSH sessions create models
// concurrently.
var tickGens atomic.Uint64

func nextTickGen() uint64 {
	return tickGens.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick of chain gen
// after the interval for the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
