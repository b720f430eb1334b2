package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

func (s *Scheduler) runTimerCycle(id string) {
	_, err := s.runCycle(s.runCtx, id, false)
	switch {
	case err == nil:
	case errors.Is(err, ddnserrors.ErrBusy):
		s.logger.Debug("skipping timer cycle: " + err.Error())
	case s.runCtx.Err() != nil:
	default:
		s.logger.Debug("timer cycle of task " + id + ": " + err.Error())
	}
}

// runCycle resolves the IP address of the task probe, compares it
// with the last published IP address and publishes it if needed.
// Manual cycles always publish.
func (s *Scheduler) runCycle(ctx context.Context, id string, manual bool) (
	task tasks.Task, err error) {
	_, err = s.store.Get(id)
	if err != nil {
		return task, err
	}

	job := s.getJob(id)
	ok, deleted := job.begin()
	switch {
	case deleted:
		return task, fmt.Errorf("%w: task %s", ddnserrors.ErrNotFound, id)
	case !ok:
		return task, fmt.Errorf("%w: task %s", ddnserrors.ErrBusy, id)
	}
	defer job.end()

	task, err = s.store.Get(id)
	if err != nil {
		s.removeJob(id)
		return task, err
	}

	ip, err := s.pool.Lookup(ctx, task.IPServiceURL)
	if err != nil {
		return s.fail(ctx, task, err)
	}

	if !manual && s.unchanged(ctx, task, ip) {
		s.eventLog.AppendTask(task.ID, eventlog.TypeSuccess,
			task.FullDomain+": IP unchanged "+ip.String()+", no update needed")
		return task, nil
	}

	err = s.gateway.CreateOrUpdateRecord(ctx, task.Credentials(),
		task.Domain, task.Subdomain, ip)
	if err != nil {
		return s.fail(ctx, task, err)
	}

	message := task.FullDomain + " updated to " + ip.String()
	s.eventLog.AppendTask(task.ID, eventlog.TypeSuccess, message)
	now := s.timeNow()
	task, err = s.store.Update(task.ID, func(task *tasks.Task) error {
		task.LastIP = ip.String()
		task.LastUpdateTime = now
		task.LastError = ""
		task.Status = task.StatusAfterSuccess()
		return nil
	})
	if err != nil {
		return task, fmt.Errorf("saving task state: %w", err)
	}
	s.logger.Info(message)
	s.notifier.Notify(message)
	return task, nil
}

// fail records the cycle error on the task and returns it.
// A cycle aborted by its context is not recorded as a failure.
func (s *Scheduler) fail(ctx context.Context, task tasks.Task, cycleErr error) (
	updated tasks.Task, err error) {
	if ctx.Err() != nil {
		return task, fmt.Errorf("cycle aborted: %w", cycleErr)
	}

	message := task.FullDomain + ": " + cycleErr.Error()
	s.eventLog.AppendTask(task.ID, eventlog.TypeError, message)

	updated, err = s.store.Update(task.ID, func(task *tasks.Task) error {
		task.Status = tasks.StatusError
		task.LastError = cycleErr.Error()
		return nil
	})
	if err != nil {
		s.logger.Error("saving failure of task " + task.ID + ": " + err.Error())
		updated = task
	}
	s.logger.Warn(message)
	s.notifier.Notify(message)
	return updated, cycleErr
}

// unchanged returns true if the IP address is the last published one
// and the record of the task still resolves to it.
func (s *Scheduler) unchanged(ctx context.Context, task tasks.Task, ip netip.Addr) bool {
	if !s.driftCheck || s.resolver == nil || task.LastIP != ip.String() {
		return false
	}

	resolved, err := s.resolver.LookupNetIP(ctx, "ip", task.FullDomain)
	if err != nil {
		s.logger.Debug("resolving " + task.FullDomain + ": " + err.Error())
		return false
	}

	for _, resolvedIP := range resolved {
		if resolvedIP.Unmap() == ip {
			return true
		}
	}
	s.logger.Info(task.FullDomain + " does not resolve to " + ip.String() +
		", updating record again")
	return false
}
