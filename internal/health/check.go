package health

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

func MakeIsHealthy(lister TaskLister, resolver LookupNetIPer,
	logger Logger) func() error {
	return func() (err error) {
		const timeout = 5 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err = isHealthy(ctx, lister, resolver)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

var (
	ErrTaskFailed     = errors.New("task failed")
	ErrRecordMismatch = errors.New("record does not resolve to the last published IP address")
)

// isHealthy returns an error if an enabled task is in error, or if the
// domain of an enabled task does not resolve to its last published IP address.
// Disabled tasks are ignored.
func isHealthy(ctx context.Context, lister TaskLister, resolver LookupNetIPer) (err error) {
	for _, task := range lister.ListTasks("") {
		if !task.Enabled {
			continue
		}

		if task.Status == tasks.StatusError {
			return fmt.Errorf("%w: %s: %s", ErrTaskFailed, task, task.LastError)
		}

		if resolver == nil || task.LastIP == "" {
			continue
		}

		lastIP, err := netip.ParseAddr(task.LastIP)
		if err != nil {
			return fmt.Errorf("parsing last IP address of task %s: %w", task.ID, err)
		}

		lookedUpIPs, err := resolver.LookupNetIP(ctx, "ip", task.FullDomain)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", task.FullDomain, err)
		}

		found := false
		lookedUpIPStrings := make([]string, len(lookedUpIPs))
		for i, lookedUpIP := range lookedUpIPs {
			lookedUpIPStrings[i] = lookedUpIP.Unmap().String()
			if lookedUpIP.Unmap() == lastIP {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("%w: %s resolves to %s instead of %s", ErrRecordMismatch,
				task.FullDomain, strings.Join(lookedUpIPStrings, ","), lastIP)
		}
	}
	return nil
}
