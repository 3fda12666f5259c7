package obsidian

import (
	"log/slog"
	"sync"
)

// LogNotifier shows notices as log lines.
type LogNotifier struct {
	// Path is attached to every notice when set.
	Path string
}

// Notify logs msg at info level.
func (n LogNotifier) Notify(msg string) {
	if n.Path != "" {
		slog.Info("Notice", "message", msg, "path", n.Path)
		return
	}
	slog.Info("Notice", "message", msg)
}

// RecordingNotifier keeps every notice it receives.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

// Notify records msg.
func (n *RecordingNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

// Messages returns a copy of the recorded notices in arrival order.
func (n *RecordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// Last returns the most recent notice, or an empty string.
func (n *RecordingNotifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

// Reset drops all recorded notices.
func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = nil
}
