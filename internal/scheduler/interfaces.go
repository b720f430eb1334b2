package scheduler

import (
	"context"
	"net/netip"
	"time"

	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/provider"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . IPLookuper,Gateway,Resolver,Notifier

type Store interface {
	Create(settings tasks.Settings, now time.Time) (task tasks.Task, err error)
	Get(id string) (task tasks.Task, err error)
	List() (tasks []tasks.Task)
	ListByAccount(secretID string) (tasks []tasks.Task)
	Update(id string, modify func(task *tasks.Task) error) (task tasks.Task, err error)
	Delete(id string) (err error)
}

type IPLookuper interface {
	Lookup(ctx context.Context, url string) (ip netip.Addr, err error)
}

type Gateway interface {
	CreateOrUpdateRecord(ctx context.Context, credentials provider.Credentials,
		domain, subdomain string, ip netip.Addr) (err error)
	DeleteRecord(ctx context.Context, credentials provider.Credentials,
		domain, subdomain string) (err error)
	ListDomains(ctx context.Context, credentials provider.Credentials) (domains []string, err error)
}

// Resolver is implemented by *net.Resolver.
type Resolver interface {
	LookupNetIP(ctx context.Context, network, host string) (ips []netip.Addr, err error)
}

type Notifier interface {
	Notify(message string)
}

type EventLog interface {
	AppendTask(taskID string, entryType eventlog.Type, message string) (entry eventlog.Entry)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
