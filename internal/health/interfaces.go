package health

import (
	"context"
	"net/netip"

	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

type TaskLister interface {
	ListTasks(secretID string) (list []tasks.Task)
}

type LookupNetIPer interface {
	LookupNetIP(ctx context.Context, network, host string) (ips []netip.Addr, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
