package notifiers

import (
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/dungeon-sim/internal/events"
)

// LogFileNotifier appends kill lines to a log file held open for the
// notifier's lifetime. If the file cannot be opened the notifier stays
// usable and drops every event.
type LogFileNotifier struct {
	file *os.File
}

// NewLogFileNotifier opens path in append mode. Open failure is not an
// error; the returned notifier silently discards kills.
func NewLogFileNotifier(path string) *LogFileNotifier {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("Kill log unavailable, notifications will be dropped: %v", err)
		return &LogFileNotifier{}
	}

	return &LogFileNotifier{file: file}
}

// HandleEvent appends one line per kill
func (n *LogFileNotifier) HandleEvent(event events.Event) error {
	if n.file == nil {
		return nil
	}

	kill, ok := event.(*events.KillEvent)
	if !ok {
		return nil
	}

	_, err := fmt.Fprintf(n.file, "%s killed %s\n", kill.Killer.Name, kill.Victim.Name)
	return err
}

// Priority returns the log file listener priority
func (n *LogFileNotifier) Priority() int {
	return events.PriorityLogFile
}

// ID returns the listener ID
func (n *LogFileNotifier) ID() string {
	return "logfile-notifier"
}

// Close releases the underlying file
func (n *LogFileNotifier) Close() error {
	if n.file == nil {
		return nil
	}
	return n.file.Close()
}
