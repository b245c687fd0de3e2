package taillog

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultSize is how many log entries are retained.
const DefaultSize = 200

type Entry struct {
	Time    time.Time
	Level   string
	Message string
}

// Log is a logrus hook that keeps the most recent entries in memory, so
// the debug api can serve them.
type Log struct {
	mtx     sync.Mutex
	max     int
	entries []Entry
}

func New() *Log {
	return &Log{
		max: DefaultSize,
	}
}

func (l *Log) Levels() []log.Level {
	return log.AllLevels
}

func (l *Log) Fire(entry *log.Entry) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.entries = append(l.entries, Entry{
		Time:    entry.Time,
		Level:   entry.Level.String(),
		Message: entry.Message,
	})

	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}

	return nil
}

// Entries returns the retained entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)

	return entries
}
