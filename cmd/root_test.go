package cmd

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pancake/internal/processor"
)

// stoppedUI stands in for a progress program that exits immediately, as
// happens when no terminal is attached.
type stoppedUI struct{}

func (stoppedUI) Run() (tea.Model, error) { return nil, nil }

func TestWatchUIDrainsAfterUIExit(t *testing.T) {
	updates := make(chan processor.ProgressUpdate, 64)
	done := watchUI(stoppedUI{}, updates)

	// Push well past the buffer size; a stopped UI must not stall the walk.
	for i := 0; i < 500; i++ {
		select {
		case updates <- processor.ProgressUpdate{FoundDelta: 1}:
		case <-time.After(time.Second):
			t.Fatalf("send %d blocked after the UI stopped", i)
		}
	}
	close(updates)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("updates channel was never drained")
	}
}
