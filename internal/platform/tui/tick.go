// Package tui provides the Bubble Tea host for the game: the fixed-rate
// tick loop, keyboard mapping, high-score entry, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen ties it to the
// game model that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval for the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// holdTicksFor returns how long a key press stays active at the given rate:
// a little longer than a typical terminal auto-repeat interval.
func holdTicksFor(tickRate int) int {
	const hold = 120 * time.Millisecond
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(int(hold*time.Duration(tickRate)/time.Second), 1)
}
