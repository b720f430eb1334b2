package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/provider"
	"github.com/qdm12/ddns-scheduler/internal/scheduler/mock_scheduler"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	store    *tasks.Store
	log      *eventlog.Log
	pool     *mock_scheduler.MockIPLookuper
	gateway  *mock_scheduler.MockGateway
	resolver *mock_scheduler.MockResolver
	notifier *mock_scheduler.MockNotifier
}

func newTestScheduler(t *testing.T, ctrl *gomock.Controller) (*Scheduler, testDeps) {
	t.Helper()

	log, err := eventlog.New(nil, nil, nil, time.Now)
	require.NoError(t, err)

	deps := testDeps{
		store:    tasks.NewStore(nil),
		log:      log,
		pool:     mock_scheduler.NewMockIPLookuper(ctrl),
		gateway:  mock_scheduler.NewMockGateway(ctrl),
		resolver: mock_scheduler.NewMockResolver(ctrl),
		notifier: mock_scheduler.NewMockNotifier(ctrl),
	}
	deps.notifier.EXPECT().Notify(gomock.Any()).AnyTimes()

	scheduler, err := New(Settings{
		Store:    deps.store,
		Pool:     deps.pool,
		Gateway:  deps.gateway,
		EventLog: deps.log,
		Resolver: deps.resolver,
		Notifier: deps.notifier,
	})
	require.NoError(t, err)
	return scheduler, deps
}

func validSettings() tasks.Settings {
	return tasks.Settings{
		Provider:      "tencentcloud",
		SecretID:      "AKID",
		SecretKey:     "secret",
		Domain:        "example.com",
		Subdomain:     "www",
		IPServiceURL:  "https://ipinfo.io/ip",
		IPServiceName: "ipinfo.io",
		Interval:      60,
	}
}

func testCredentials() provider.Credentials {
	return provider.Credentials{Provider: "tencentcloud", SecretID: "AKID", SecretKey: "secret"}
}

func entriesOfType(log *eventlog.Log, entryType eventlog.Type) (entries []eventlog.Entry) {
	all, _ := log.Since(0)
	for _, entry := range all {
		if entry.Type == entryType {
			entries = append(entries, entry)
		}
	}
	return entries
}

func Test_New(t *testing.T) {
	t.Parallel()

	_, err := New(Settings{})
	assert.ErrorIs(t, err, ErrDependencyMissing)
	assert.EqualError(t, err, "validating settings: dependency is missing: store")
}

func Test_Scheduler_ExecuteTask(t *testing.T) {
	t.Parallel()

	errProbe := fmt.Errorf("%w: ipinfo.io: timeout", ddnserrors.ErrProbeUnavailable)
	errRemote := fmt.Errorf("%w: rate limited", ddnserrors.ErrProvider)
	ip := netip.MustParseAddr("1.2.3.4")

	testCases := map[string]struct {
		start        bool
		lookupIP     netip.Addr
		lookupErr    error
		callProvider bool
		providerErr  error
		errWrapped   error
		status       tasks.Status
		lastIP       string
		lastError    string
		successLogs  []string
		errorLogs    []string
	}{
		"success_running": {
			start:        true,
			lookupIP:     ip,
			callProvider: true,
			status:       tasks.StatusRunning,
			lastIP:       "1.2.3.4",
			successLogs:  []string{"www.example.com updated to 1.2.3.4"},
		},
		"success_stopped": {
			lookupIP:     ip,
			callProvider: true,
			status:       tasks.StatusStopped,
			lastIP:       "1.2.3.4",
			successLogs:  []string{"www.example.com updated to 1.2.3.4"},
		},
		"probe_unavailable": {
			start:      true,
			lookupErr:  errProbe,
			errWrapped: ddnserrors.ErrProbeUnavailable,
			status:     tasks.StatusError,
			lastError:  "IP probe unavailable: ipinfo.io: timeout",
			errorLogs:  []string{"www.example.com: IP probe unavailable: ipinfo.io: timeout"},
		},
		"provider_error": {
			start:        true,
			lookupIP:     ip,
			callProvider: true,
			providerErr:  errRemote,
			errWrapped:   ddnserrors.ErrProvider,
			status:       tasks.StatusError,
			lastError:    "DNS provider error: rate limited",
			errorLogs:    []string{"www.example.com: DNS provider error: rate limited"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			scheduler, deps := newTestScheduler(t, ctrl)
			ctx := context.Background()

			task, err := scheduler.CreateTask(validSettings())
			require.NoError(t, err)
			if testCase.start {
				_, err = scheduler.StartTask(ctx, task.ID)
				require.NoError(t, err)
			}

			deps.pool.EXPECT().Lookup(ctx, "https://ipinfo.io/ip").
				Return(testCase.lookupIP, testCase.lookupErr)
			if testCase.callProvider {
				deps.gateway.EXPECT().CreateOrUpdateRecord(ctx, testCredentials(),
					"example.com", "www", testCase.lookupIP).Return(testCase.providerErr)
			}

			task, err = scheduler.ExecuteTask(ctx, task.ID)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.status, task.Status)
			assert.Equal(t, testCase.lastIP, task.LastIP)
			assert.Equal(t, testCase.lastError, task.LastError)
			assert.Equal(t, testCase.start, task.Enabled)
			if testCase.lastIP == "" {
				assert.True(t, task.LastUpdateTime.IsZero())
			} else {
				assert.False(t, task.LastUpdateTime.IsZero())
			}

			stored, err := deps.store.Get(task.ID)
			require.NoError(t, err)
			assert.Equal(t, task, stored)

			var successMessages, errorMessages []string
			for _, entry := range entriesOfType(deps.log, eventlog.TypeSuccess) {
				assert.Equal(t, task.ID, entry.TaskID)
				successMessages = append(successMessages, entry.Message)
			}
			for _, entry := range entriesOfType(deps.log, eventlog.TypeError) {
				errorMessages = append(errorMessages, entry.Message)
			}
			assert.Equal(t, testCase.successLogs, successMessages)
			assert.Equal(t, testCase.errorLogs, errorMessages)
		})
	}
}

func Test_Scheduler_ExecuteTask_notFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, _ := newTestScheduler(t, ctrl)

	_, err := scheduler.ExecuteTask(context.Background(), "missing")

	assert.ErrorIs(t, err, ddnserrors.ErrNotFound)
	assert.EqualError(t, err, "not found: task missing")
}

func Test_Scheduler_ExecuteTask_busy(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)
	ctx := context.Background()

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)

	ip := netip.MustParseAddr("1.2.3.4")
	deps.pool.EXPECT().Lookup(ctx, task.IPServiceURL).Return(ip, nil)
	providerCalled := make(chan struct{})
	release := make(chan struct{})
	deps.gateway.EXPECT().CreateOrUpdateRecord(ctx, testCredentials(), "example.com", "www", ip).
		DoAndReturn(func(context.Context, provider.Credentials, string, string, netip.Addr) error {
			close(providerCalled)
			<-release
			return nil
		}).Times(1)

	firstDone := make(chan error)
	go func() {
		_, err := scheduler.ExecuteTask(ctx, task.ID)
		firstDone <- err
	}()
	<-providerCalled

	_, err = scheduler.ExecuteTask(ctx, task.ID)
	assert.ErrorIs(t, err, ddnserrors.ErrBusy)
	assert.EqualError(t, err, "task cycle already in progress: task "+task.ID)

	close(release)
	require.NoError(t, <-firstDone)
}

func Test_Scheduler_timerCycle_unchanged(t *testing.T) {
	t.Parallel()

	ip := netip.MustParseAddr("1.2.3.4")

	testCases := map[string]struct {
		resolved     []netip.Addr
		resolveErr   error
		callProvider bool
	}{
		"record_resolves_to_ip": {
			resolved: []netip.Addr{netip.MustParseAddr("::ffff:1.2.3.4")},
		},
		"record_drifted": {
			resolved:     []netip.Addr{netip.MustParseAddr("5.6.7.8")},
			callProvider: true,
		},
		"resolution_failed": {
			resolveErr:   errors.New("no such host"),
			callProvider: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			scheduler, deps := newTestScheduler(t, ctrl)
			ctx := context.Background()

			task, err := scheduler.CreateTask(validSettings())
			require.NoError(t, err)
			task, err = deps.store.Update(task.ID, func(task *tasks.Task) error {
				task.LastIP = "1.2.3.4"
				return nil
			})
			require.NoError(t, err)

			deps.pool.EXPECT().Lookup(ctx, task.IPServiceURL).Return(ip, nil)
			deps.resolver.EXPECT().LookupNetIP(ctx, "ip", "www.example.com").
				Return(testCase.resolved, testCase.resolveErr)
			if testCase.callProvider {
				deps.gateway.EXPECT().CreateOrUpdateRecord(ctx, testCredentials(),
					"example.com", "www", ip).Return(nil)
			}

			updated, err := scheduler.runCycle(ctx, task.ID, false)
			require.NoError(t, err)

			if testCase.callProvider {
				assert.False(t, updated.LastUpdateTime.IsZero())
				assert.Len(t, entriesOfType(deps.log, eventlog.TypeSuccess), 1)
				return
			}
			assert.Equal(t, task, updated)
			successes := entriesOfType(deps.log, eventlog.TypeSuccess)
			require.Len(t, successes, 1)
			assert.Equal(t, "www.example.com: IP unchanged 1.2.3.4, no update needed",
				successes[0].Message)
		})
	}
}

func Test_Scheduler_manualCycle_neverSkips(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)
	ctx := context.Background()

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)
	_, err = deps.store.Update(task.ID, func(task *tasks.Task) error {
		task.LastIP = "1.2.3.4"
		return nil
	})
	require.NoError(t, err)

	ip := netip.MustParseAddr("1.2.3.4")
	deps.pool.EXPECT().Lookup(ctx, task.IPServiceURL).Return(ip, nil)
	deps.gateway.EXPECT().CreateOrUpdateRecord(ctx, testCredentials(), "example.com", "www", ip).Return(nil)

	_, err = scheduler.ExecuteTask(ctx, task.ID)
	require.NoError(t, err)
}

func Test_Scheduler_StartStop(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)
	ctx := context.Background()

	_, err := scheduler.Start(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = scheduler.Stop()
	})

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)
	assert.Equal(t, tasks.StatusStopped, task.Status)
	_, scheduled := scheduler.nextFire(task.ID)
	assert.False(t, scheduled)

	beforeStart := time.Now()
	task, err = scheduler.StartTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, task.Enabled)
	assert.Equal(t, tasks.StatusRunning, task.Status)
	next, scheduled := scheduler.nextFire(task.ID)
	require.True(t, scheduled)
	assert.False(t, next.Before(beforeStart.Add(time.Minute)))

	// Starting again does not reschedule.
	_, err = scheduler.StartTask(ctx, task.ID)
	require.NoError(t, err)
	nextAgain, _ := scheduler.nextFire(task.ID)
	assert.Equal(t, next, nextAgain)

	task, err = scheduler.StopTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, task.Enabled)
	assert.Equal(t, tasks.StatusStopped, task.Status)
	_, scheduled = scheduler.nextFire(task.ID)
	assert.False(t, scheduled)

	_, err = scheduler.StopTask(ctx, task.ID)
	require.NoError(t, err)

	beforeRestart := time.Now()
	_, err = scheduler.StartTask(ctx, task.ID)
	require.NoError(t, err)
	next, scheduled = scheduler.nextFire(task.ID)
	require.True(t, scheduled)
	assert.False(t, next.Before(beforeRestart.Add(time.Minute)))

	stored, err := deps.store.Get(task.ID)
	require.NoError(t, err)
	assert.True(t, stored.Enabled)
}

func Test_Scheduler_StartTask_keepsErrorStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)
	_, err = deps.store.Update(task.ID, func(task *tasks.Task) error {
		task.Status = tasks.StatusError
		return nil
	})
	require.NoError(t, err)

	task, err = scheduler.StartTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.True(t, task.Enabled)
	assert.Equal(t, tasks.StatusError, task.Status)
}

func Test_Scheduler_Start_schedulesEnabledTasks(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)

	enabled, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)
	_, err = deps.store.Update(enabled.ID, func(task *tasks.Task) error {
		task.Enabled = true
		task.Status = tasks.StatusRunning
		return nil
	})
	require.NoError(t, err)
	disabled, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)

	_, err = scheduler.Start(context.Background())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, scheduler.Stop())
	}()

	_, scheduled := scheduler.nextFire(enabled.ID)
	assert.True(t, scheduled)
	_, scheduled = scheduler.nextFire(disabled.ID)
	assert.False(t, scheduled)
}

func Test_Scheduler_EditTask(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, _ := newTestScheduler(t, ctrl)
	ctx := context.Background()

	_, err := scheduler.Start(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = scheduler.Stop()
	})

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)

	_, err = scheduler.EditTask(ctx, task.ID, 0, "https://ipinfo.io/ip", "ipinfo.io")
	assert.ErrorIs(t, err, ddnserrors.ErrValidation)

	_, err = scheduler.EditTask(ctx, "missing", 30, "https://ipinfo.io/ip", "ipinfo.io")
	assert.ErrorIs(t, err, ddnserrors.ErrNotFound)

	_, err = scheduler.StartTask(ctx, task.ID)
	require.NoError(t, err)

	beforeEdit := time.Now()
	task, err = scheduler.EditTask(ctx, task.ID, 3600, "http://checkip.amazonaws.com", "Amazon")
	require.NoError(t, err)
	assert.Equal(t, 3600, task.Interval)
	assert.Equal(t, "http://checkip.amazonaws.com", task.IPServiceURL)
	assert.Equal(t, "Amazon", task.IPServiceName)

	next, scheduled := scheduler.nextFire(task.ID)
	require.True(t, scheduled)
	assert.False(t, next.Before(beforeEdit.Add(time.Hour)))
}

func Test_Scheduler_DeleteTask(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		deleteErr   error
		warnLogs    int
		recordLines []string
	}{
		"remote_delete_success": {
			recordLines: []string{"record of www.example.com deleted"},
		},
		"remote_delete_failure": {
			deleteErr: fmt.Errorf("%w: unauthorized", ddnserrors.ErrProvider),
			warnLogs:  1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			scheduler, deps := newTestScheduler(t, ctrl)
			ctx := context.Background()

			task, err := scheduler.CreateTask(validSettings())
			require.NoError(t, err)
			_, err = scheduler.StartTask(ctx, task.ID)
			require.NoError(t, err)

			deps.gateway.EXPECT().DeleteRecord(ctx, testCredentials(), "example.com", "www").
				Return(testCase.deleteErr)

			err = scheduler.DeleteTask(ctx, task.ID)
			require.NoError(t, err)

			_, err = deps.store.Get(task.ID)
			assert.ErrorIs(t, err, ddnserrors.ErrNotFound)
			assert.Len(t, entriesOfType(deps.log, eventlog.TypeWarn), testCase.warnLogs)
			assert.Empty(t, entriesOfType(deps.log, eventlog.TypeError))

			err = scheduler.DeleteTask(ctx, task.ID)
			assert.ErrorIs(t, err, ddnserrors.ErrNotFound)
		})
	}
}

func Test_Scheduler_DeleteTask_waitsForCycle(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)
	ctx := context.Background()

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)

	ip := netip.MustParseAddr("1.2.3.4")
	deps.pool.EXPECT().Lookup(ctx, task.IPServiceURL).Return(ip, nil)
	providerCalled := make(chan struct{})
	release := make(chan struct{})
	cycleFinished := make(chan struct{})
	updateCall := deps.gateway.EXPECT().
		CreateOrUpdateRecord(ctx, testCredentials(), "example.com", "www", ip).
		DoAndReturn(func(context.Context, provider.Credentials, string, string, netip.Addr) error {
			close(providerCalled)
			<-release
			return nil
		})
	deps.gateway.EXPECT().DeleteRecord(ctx, testCredentials(), "example.com", "www").
		After(updateCall).Return(nil)

	go func() {
		_, err := scheduler.ExecuteTask(ctx, task.ID)
		assert.NoError(t, err)
		close(cycleFinished)
	}()
	<-providerCalled

	deleted := make(chan error)
	go func() {
		deleted <- scheduler.DeleteTask(ctx, task.ID)
	}()

	select {
	case <-deleted:
		t.Fatal("task deleted while its cycle is in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-cycleFinished
	require.NoError(t, <-deleted)

	_, err = deps.store.Get(task.ID)
	assert.ErrorIs(t, err, ddnserrors.ErrNotFound)
}

func Test_Scheduler_unknownTask_noJobKept(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, _ := newTestScheduler(t, ctrl)
	ctx := context.Background()

	operations := map[string]func(id string) error{
		"start": func(id string) error {
			_, err := scheduler.StartTask(ctx, id)
			return err
		},
		"stop": func(id string) error {
			_, err := scheduler.StopTask(ctx, id)
			return err
		},
		"execute": func(id string) error {
			_, err := scheduler.ExecuteTask(ctx, id)
			return err
		},
		"edit": func(id string) error {
			_, err := scheduler.EditTask(ctx, id, 60, "https://ipinfo.io/ip", "ipinfo.io")
			return err
		},
		"delete": func(id string) error {
			return scheduler.DeleteTask(ctx, id)
		},
	}

	for name, operation := range operations {
		for i := 0; i < 100; i++ {
			err := operation(fmt.Sprintf("missing%d", i))
			require.ErrorIs(t, err, ddnserrors.ErrNotFound, name)
		}
	}

	scheduler.jobsMutex.Lock()
	defer scheduler.jobsMutex.Unlock()
	assert.Empty(t, scheduler.jobs)
}

func Test_Scheduler_DeleteTask_remoteDeleteWithoutLock(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)
	ctx := context.Background()

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)

	remoteCalled := make(chan struct{})
	release := make(chan struct{})
	deps.gateway.EXPECT().DeleteRecord(ctx, testCredentials(), "example.com", "www").
		DoAndReturn(func(context.Context, provider.Credentials, string, string) error {
			close(remoteCalled)
			<-release
			return nil
		})

	deleted := make(chan error)
	go func() {
		deleted <- scheduler.DeleteTask(ctx, task.ID)
	}()
	<-remoteCalled

	// Control operations do not wait for the remote deletion.
	_, err = scheduler.StartTask(ctx, task.ID)
	assert.ErrorIs(t, err, ddnserrors.ErrNotFound)
	_, err = scheduler.ExecuteTask(ctx, task.ID)
	assert.ErrorIs(t, err, ddnserrors.ErrNotFound)
	err = scheduler.DeleteTask(ctx, task.ID)
	assert.ErrorIs(t, err, ddnserrors.ErrNotFound)

	close(release)
	require.NoError(t, <-deleted)
	_, err = deps.store.Get(task.ID)
	assert.ErrorIs(t, err, ddnserrors.ErrNotFound)
}

func Test_Scheduler_UpdateRecord(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		domain       string
		subdomain    string
		ip           string
		callProvider bool
		providerErr  error
		errWrapped   error
		successLogs  int
		errorLogs    int
	}{
		"invalid_ip": {
			domain:     "example.com",
			subdomain:  "@",
			ip:         "1.2.3",
			errWrapped: ddnserrors.ErrValidation,
		},
		"invalid_domain": {
			domain:     "example",
			subdomain:  "@",
			ip:         "1.2.3.4",
			errWrapped: ddnserrors.ErrValidation,
		},
		"provider_failure": {
			domain:       "example.com",
			subdomain:    "@",
			ip:           "1.2.3.4",
			callProvider: true,
			providerErr:  fmt.Errorf("%w: zone not found", ddnserrors.ErrProvider),
			errWrapped:   ddnserrors.ErrProvider,
			errorLogs:    1,
		},
		"success": {
			domain:       "example.com",
			subdomain:    "@",
			ip:           "1.2.3.4",
			callProvider: true,
			successLogs:  1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			scheduler, deps := newTestScheduler(t, ctrl)
			ctx := context.Background()

			if testCase.callProvider {
				deps.gateway.EXPECT().CreateOrUpdateRecord(ctx, testCredentials(),
					testCase.domain, testCase.subdomain, netip.MustParseAddr(testCase.ip)).
					Return(testCase.providerErr)
			}

			err := scheduler.UpdateRecord(ctx, testCredentials(),
				testCase.domain, testCase.subdomain, testCase.ip)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Len(t, entriesOfType(deps.log, eventlog.TypeSuccess), testCase.successLogs)
			assert.Len(t, entriesOfType(deps.log, eventlog.TypeError), testCase.errorLogs)
			if testCase.successLogs > 0 {
				entry := entriesOfType(deps.log, eventlog.TypeSuccess)[0]
				assert.Equal(t, "example.com updated to 1.2.3.4", entry.Message)
			}
		})
	}
}

func Test_Scheduler_Stop_abortedCycleNotRecorded(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	scheduler, deps := newTestScheduler(t, ctrl)

	task, err := scheduler.CreateTask(validSettings())
	require.NoError(t, err)

	deps.pool.EXPECT().Lookup(gomock.Any(), task.IPServiceURL).
		DoAndReturn(func(ctx context.Context, _ string) (netip.Addr, error) {
			<-ctx.Done()
			return netip.Addr{}, ctx.Err()
		})

	cycleDone := make(chan struct{})
	go func() {
		scheduler.runTimerCycle(task.ID)
		close(cycleDone)
	}()

	require.NoError(t, scheduler.Stop())
	<-cycleDone

	stored, err := deps.store.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, tasks.StatusStopped, stored.Status)
	assert.Empty(t, stored.LastError)
}
