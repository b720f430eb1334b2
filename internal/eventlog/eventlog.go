package eventlog

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarn    Type = "warn"
	TypeError   Type = "error"
)

type Entry struct {
	Index   int       `json:"index"`
	Time    time.Time `json:"time"`
	Type    Type      `json:"type"`
	TaskID  string    `json:"taskId,omitempty"`
	Message string    `json:"message"`
}

// Log is an append only sequence of entries indexed from 0.
// Entries are never modified or removed once appended.
type Log struct {
	mutex     sync.RWMutex
	entries   []Entry
	persister Persister
	logger    Logger
	timeNow   func() time.Time
}

var ErrIndexMismatch = errors.New("entry index does not match its position")

// LostMessage is the message of entries recreated in place of entries
// which could not be persisted.
const LostMessage = "log entry lost: it could not be saved"

// New creates a log holding the given previously persisted entries,
// which must be ordered by strictly increasing index from 0.
// Missing indexes, from entries which failed to persist, are filled
// with warning entries with the LostMessage message.
// The persister can be nil for an in memory only log.
func New(entries []Entry, persister Persister, logger Logger,
	timeNow func() time.Time) (log *Log, err error) {
	filled := make([]Entry, 0, len(entries))
	for i, entry := range entries {
		if entry.Index < len(filled) {
			return nil, fmt.Errorf("%w: entry at position %d has index %d",
				ErrIndexMismatch, i, entry.Index)
		}
		for index := len(filled); index < entry.Index; index++ {
			filled = append(filled, Entry{
				Index:   index,
				Time:    entry.Time,
				Type:    TypeWarn,
				Message: LostMessage,
			})
		}
		filled = append(filled, entry)
	}

	return &Log{
		entries:   filled,
		persister: persister,
		logger:    logger,
		timeNow:   timeNow,
	}, nil
}

func (l *Log) Append(entryType Type, message string) (entry Entry) {
	return l.AppendTask("", entryType, message)
}

func (l *Log) AppendTask(taskID string, entryType Type, message string) (entry Entry) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	entry = Entry{
		Index:   len(l.entries),
		Time:    l.timeNow(),
		Type:    entryType,
		TaskID:  taskID,
		Message: message,
	}

	if l.persister != nil {
		err := l.persister.AppendLog(entry)
		if err != nil {
			l.logger.Warn(fmt.Sprintf("persisting log entry %d: %s", entry.Index, err))
		}
	}

	l.entries = append(l.entries, entry)
	return entry
}

// Since returns all entries with an index greater or equal to index,
// and the index to use for the next call.
func (l *Log) Since(index int) (entries []Entry, newIndex int) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	newIndex = len(l.entries)
	if index < 0 {
		index = 0
	}
	if index >= newIndex {
		return []Entry{}, newIndex
	}

	entries = make([]Entry, newIndex-index)
	copy(entries, l.entries[index:])
	return entries, newIndex
}

func (l *Log) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.entries)
}
