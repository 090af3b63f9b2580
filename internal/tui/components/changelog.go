package components

import (
	"fmt"
	"strings"
)

// Change is one progress notification as seen by the host.
type Change struct {
	Source   string
	Progress int
	FromUser bool
	Finished bool
}

func (c Change) String() string {
	origin := "code"
	if c.FromUser {
		origin = "user"
	}
	state := "animating"
	if c.Finished {
		state = "finished"
	}
	return fmt.Sprintf("%s → %d (%s, %s)", c.Source, c.Progress, origin, state)
}

// ChangeLog keeps the most recent notifications, newest last.
type ChangeLog struct {
	limit   int
	entries []Change
}

// NewChangeLog returns a log holding at most limit entries.
func NewChangeLog(limit int) *ChangeLog {
	if limit <= 0 {
		limit = 1
	}
	return &ChangeLog{limit: limit}
}

// Record appends c, dropping the oldest entry when full.
func (l *ChangeLog) Record(c Change) {
	l.entries = append(l.entries, c)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// Entries returns the logged changes, oldest first.
func (l *ChangeLog) Entries() []Change {
	clone := make([]Change, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// View renders one line per change, newest first.
func (l *ChangeLog) View() string {
	lines := make([]string, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		lines = append(lines, " "+l.entries[i].String())
	}
	return strings.Join(lines, "\n")
}
