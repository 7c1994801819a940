// Package notifiers provides the kill-event listeners wired to the event
// bus: one printing to the console, one appending to a log file.
package notifiers

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/dungeon-sim/internal/events"
)

// ConsoleNotifier reports kills to an output stream
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a console kill notifier writing to out
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// HandleEvent prints one line per kill
func (n *ConsoleNotifier) HandleEvent(event events.Event) error {
	kill, ok := event.(*events.KillEvent)
	if !ok {
		return nil
	}

	_, err := fmt.Fprintf(n.out, "%s killed %s\n", kill.Killer.Name, kill.Victim.Name)
	return err
}

// Priority returns the console listener priority
func (n *ConsoleNotifier) Priority() int {
	return events.PriorityConsole
}

// ID returns the listener ID
func (n *ConsoleNotifier) ID() string {
	return "console-notifier"
}
