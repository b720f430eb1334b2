package scheduler

import (
	"sync"

	"github.com/robfig/cron/v3"
)

// job holds the scheduling state of a single task.
type job struct {
	// control serializes the control operations on the task.
	control sync.Mutex

	// stateMutex guards the fields below.
	stateMutex sync.Mutex
	entryID    cron.EntryID
	inFlight   bool
	done       chan struct{}
	deleted    bool
}

// begin marks a cycle as in flight and returns false if a cycle is
// already in flight or if the task is being deleted.
func (j *job) begin() (ok, deleted bool) {
	j.stateMutex.Lock()
	defer j.stateMutex.Unlock()
	switch {
	case j.deleted:
		return false, true
	case j.inFlight:
		return false, false
	}
	j.inFlight = true
	j.done = make(chan struct{})
	return true, false
}

func (j *job) end() {
	j.stateMutex.Lock()
	defer j.stateMutex.Unlock()
	j.inFlight = false
	close(j.done)
}

// wait blocks until the in flight cycle, if any, finishes.
func (j *job) wait() {
	j.stateMutex.Lock()
	inFlight, done := j.inFlight, j.done
	j.stateMutex.Unlock()
	if inFlight {
		<-done
	}
}

func (j *job) setDeleted(deleted bool) {
	j.stateMutex.Lock()
	defer j.stateMutex.Unlock()
	j.deleted = deleted
}

func (j *job) isDeleted() bool {
	j.stateMutex.Lock()
	defer j.stateMutex.Unlock()
	return j.deleted
}

func (j *job) scheduled() (entryID cron.EntryID, ok bool) {
	j.stateMutex.Lock()
	defer j.stateMutex.Unlock()
	return j.entryID, j.entryID != 0
}

func (j *job) setEntryID(entryID cron.EntryID) {
	j.stateMutex.Lock()
	defer j.stateMutex.Unlock()
	j.entryID = entryID
}
