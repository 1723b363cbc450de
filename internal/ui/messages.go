package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

const fps = 60

// frameCmd schedules the next animation frame. The terminal has no "before
// next paint" hook, so a fixed-rate tick stands in for the host refresh
// cycle; the wall-clock timestamp rides along in the message.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
