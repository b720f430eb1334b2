package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/provider"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

// CreateTask validates and stores a new stopped task.
func (s *Scheduler) CreateTask(settings tasks.Settings) (task tasks.Task, err error) {
	task, err = s.store.Create(settings, s.timeNow())
	if err != nil {
		return task, err
	}
	s.eventLog.AppendTask(task.ID, eventlog.TypeInfo, "task "+task.String()+" created")
	return task, nil
}

func (s *Scheduler) GetTask(id string) (task tasks.Task, err error) {
	return s.store.Get(id)
}

// ListTasks returns all the tasks, or only the tasks of the
// account with the given secret ID if it is not empty.
func (s *Scheduler) ListTasks(secretID string) (list []tasks.Task) {
	if secretID == "" {
		return s.store.List()
	}
	return s.store.ListByAccount(secretID)
}

// StartTask enables the task and schedules its periodic cycle,
// the first one running one interval from now.
// Starting a running task does nothing.
func (s *Scheduler) StartTask(_ context.Context, id string) (task tasks.Task, err error) {
	job, task, err := s.lockJob(id)
	if err != nil {
		return task, err
	}
	defer job.control.Unlock()

	if _, scheduled := job.scheduled(); scheduled && task.Enabled {
		return task, nil
	}

	task, err = s.store.Update(id, func(task *tasks.Task) error {
		task.Enabled = true
		if task.Status != tasks.StatusError {
			task.Status = tasks.StatusRunning
		}
		return nil
	})
	if err != nil {
		return task, err
	}

	s.schedule(job, task)
	s.eventLog.AppendTask(task.ID, eventlog.TypeInfo, "task "+task.String()+" started")
	return task, nil
}

// StopTask disables the task and cancels its future periodic cycles.
// An in flight cycle is left to finish.
func (s *Scheduler) StopTask(_ context.Context, id string) (task tasks.Task, err error) {
	job, task, err := s.lockJob(id)
	if err != nil {
		return task, err
	}
	defer job.control.Unlock()

	s.unschedule(job)

	if !task.Enabled && task.Status == tasks.StatusStopped {
		return task, nil
	}

	task, err = s.store.Update(id, func(task *tasks.Task) error {
		task.Enabled = false
		task.Status = tasks.StatusStopped
		return nil
	})
	if err != nil {
		return task, err
	}
	s.eventLog.AppendTask(task.ID, eventlog.TypeInfo, "task "+task.String()+" stopped")
	return task, nil
}

// ExecuteTask runs one cycle of the task now, whether it is enabled or not.
// It fails with a busy error if a cycle of the task is in flight.
// The task returned reflects the outcome of the cycle.
func (s *Scheduler) ExecuteTask(ctx context.Context, id string) (task tasks.Task, err error) {
	s.manualWait.Add(1)
	defer s.manualWait.Done()
	return s.runCycle(ctx, id, true)
}

// EditTask changes the interval and probe of the task. If the task is
// running, its next periodic cycle runs one new interval from now.
func (s *Scheduler) EditTask(_ context.Context, id string, interval int,
	ipServiceURL, ipServiceName string) (task tasks.Task, err error) {
	err = tasks.ValidateEdit(interval, ipServiceURL)
	if err != nil {
		return task, err
	}

	job, _, err := s.lockJob(id)
	if err != nil {
		return task, err
	}
	defer job.control.Unlock()

	task, err = s.store.Update(id, func(task *tasks.Task) error {
		task.Interval = interval
		task.IPServiceURL = ipServiceURL
		task.IPServiceName = ipServiceName
		return nil
	})
	if err != nil {
		return task, err
	}

	if _, scheduled := job.scheduled(); scheduled {
		s.unschedule(job)
		s.schedule(job, task)
	}
	s.eventLog.AppendTask(task.ID, eventlog.TypeInfo, "task "+task.String()+
		" edited: interval "+task.Period().String()+", probe "+task.IPServiceURL)
	return task, nil
}

// DeleteTask cancels the periodic cycles of the task, waits for its
// in flight cycle, deletes its DNS record and removes the task.
// Failing to delete the DNS record does not prevent the task removal.
// Other operations on the task fail with a not found error as soon
// as the deletion starts.
func (s *Scheduler) DeleteTask(ctx context.Context, id string) (err error) {
	job, task, err := s.lockJob(id)
	if err != nil {
		return err
	}
	s.unschedule(job)
	job.setDeleted(true)
	job.control.Unlock()

	job.wait()

	err = s.gateway.DeleteRecord(ctx, task.Credentials(), task.Domain, task.Subdomain)
	if err != nil {
		message := "deleting record of " + task.FullDomain + ": " + err.Error()
		s.eventLog.AppendTask(task.ID, eventlog.TypeWarn, message)
		s.logger.Warn(message)
	} else {
		s.eventLog.AppendTask(task.ID, eventlog.TypeInfo, "record of "+task.FullDomain+" deleted")
	}

	err = s.store.Delete(id)
	if err != nil {
		job.setDeleted(false)
		return fmt.Errorf("deleting task: %w", err)
	}
	s.removeJob(id)
	s.eventLog.AppendTask(task.ID, eventlog.TypeInfo, "task "+task.String()+" deleted")
	return nil
}

// UpdateRecord creates or updates a single DNS record outside of any task.
func (s *Scheduler) UpdateRecord(ctx context.Context, credentials provider.Credentials,
	domain, subdomain, ipString string) (err error) {
	err = validateRecord(credentials.Provider, domain, subdomain)
	if err != nil {
		return fmt.Errorf("%w: %w", ddnserrors.ErrValidation, err)
	}
	ip, err := netip.ParseAddr(ipString)
	if err != nil {
		return fmt.Errorf("%w: %w", ddnserrors.ErrValidation, err)
	}
	ip = ip.Unmap()

	fullDomain := tasks.BuildDomainName(subdomain, domain)
	err = s.gateway.CreateOrUpdateRecord(ctx, credentials, domain, subdomain, ip)
	switch {
	case err == nil:
		s.eventLog.AppendTask("", eventlog.TypeSuccess, fullDomain+" updated to "+ip.String())
		return nil
	case errors.Is(err, ddnserrors.ErrValidation):
		return err
	default:
		s.eventLog.AppendTask("", eventlog.TypeError, fullDomain+": "+err.Error())
		return err
	}
}

func validateRecord(providerName, domain, subdomain string) (err error) {
	err = provider.ValidateName(providerName)
	if err != nil {
		return err
	}
	err = tasks.CheckDomain(domain)
	if err != nil {
		return fmt.Errorf("domain: %w", err)
	}
	err = tasks.CheckSubdomain(subdomain)
	if err != nil {
		return fmt.Errorf("subdomain: %w", err)
	}
	return nil
}

// ListDomains lists the domains of the provider account.
func (s *Scheduler) ListDomains(ctx context.Context, credentials provider.Credentials) (
	domains []string, err error) {
	err = provider.ValidateName(credentials.Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ddnserrors.ErrValidation, err)
	}
	return s.gateway.ListDomains(ctx, credentials)
}
