// Package scheduler runs the resolve-compare-update cycle of each task,
// periodically for started tasks and on demand.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	// Injected fields
	store      Store
	pool       IPLookuper
	gateway    Gateway
	eventLog   EventLog
	resolver   Resolver
	notifier   Notifier
	driftCheck bool
	logger     Logger
	timeNow    func() time.Time

	// Internal fields
	cron       *cron.Cron
	jobsMutex  sync.Mutex
	jobs       map[string]*job
	runCtx     context.Context //nolint:containedctx
	runCancel  context.CancelFunc
	manualWait sync.WaitGroup
}

func New(settings Settings) (s *Scheduler, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	cronLogger := &cronLogger{logger: settings.Logger}
	runCtx, runCancel := context.WithCancel(context.Background())

	return &Scheduler{
		store:      settings.Store,
		pool:       settings.Pool,
		gateway:    settings.Gateway,
		eventLog:   settings.EventLog,
		resolver:   settings.Resolver,
		notifier:   settings.Notifier,
		driftCheck: *settings.DriftCheck,
		logger:     settings.Logger,
		timeNow:    settings.TimeNow,
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		jobs:      make(map[string]*job),
		runCtx:    runCtx,
		runCancel: runCancel,
	}, nil
}

func (s *Scheduler) String() string {
	return "scheduler"
}

// Start starts the periodic cycles of every enabled task.
// The first cycle of each task runs one interval after Start.
func (s *Scheduler) Start(_ context.Context) (runError <-chan error, startErr error) {
	s.cron.Start()

	enabled := 0
	for _, task := range s.store.List() {
		if !task.Enabled {
			continue
		}
		job := s.getJob(task.ID)
		job.control.Lock()
		s.schedule(job, task)
		job.control.Unlock()
		enabled++
	}
	s.logger.Info(strconv.Itoa(enabled) + " task(s) scheduled")

	return make(chan error), nil
}

// Stop stops all periodic cycles and waits for in flight cycles
// to finish after cancelling their context.
func (s *Scheduler) Stop() (err error) {
	s.runCancel()
	<-s.cron.Stop().Done()
	s.manualWait.Wait()
	return nil
}

func (s *Scheduler) getJob(id string) *job {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		j = &job{}
		s.jobs[id] = j
	}
	return j
}

// lockJob returns the job of the existing task with the given id,
// with its control lock held, together with the task.
// No job is created for a task which does not exist or is being deleted.
func (s *Scheduler) lockJob(id string) (j *job, task tasks.Task, err error) {
	_, err = s.store.Get(id)
	if err != nil {
		return nil, task, err
	}

	j = s.getJob(id)
	j.control.Lock()

	if j.isDeleted() {
		j.control.Unlock()
		return nil, task, fmt.Errorf("%w: task %s", ddnserrors.ErrNotFound, id)
	}

	task, err = s.store.Get(id)
	if err != nil {
		j.control.Unlock()
		s.removeJob(id)
		return nil, task, err
	}
	return j, task, nil
}

func (s *Scheduler) removeJob(id string) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	delete(s.jobs, id)
}

// schedule registers the periodic cycle of the task if it is not
// registered already. It must be called with the job control lock held.
func (s *Scheduler) schedule(j *job, task tasks.Task) {
	if _, scheduled := j.scheduled(); scheduled {
		return
	}
	id := task.ID
	entryID := s.cron.Schedule(fixedDelay(task.Period()), cron.FuncJob(func() {
		s.runTimerCycle(id)
	}))
	j.setEntryID(entryID)
	s.logger.Debug("task " + task.String() + " scheduled every " + task.Period().String())
}

// unschedule removes the periodic cycle of the task. It must be
// called with the job control lock held.
func (s *Scheduler) unschedule(j *job) {
	entryID, scheduled := j.scheduled()
	if !scheduled {
		return
	}
	s.cron.Remove(entryID)
	j.setEntryID(0)
}

// nextFire returns the time of the next periodic cycle of the task.
func (s *Scheduler) nextFire(id string) (next time.Time, ok bool) {
	entryID, scheduled := s.getJob(id).scheduled()
	if !scheduled {
		return next, false
	}
	return s.cron.Entry(entryID).Next, true
}
