package server

import (
	"context"

	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/probe"
	"github.com/qdm12/ddns-scheduler/internal/provider"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Scheduler,Pool,EventLog

type Scheduler interface {
	CreateTask(settings tasks.Settings) (task tasks.Task, err error)
	GetTask(id string) (task tasks.Task, err error)
	ListTasks(secretID string) (list []tasks.Task)
	StartTask(ctx context.Context, id string) (task tasks.Task, err error)
	StopTask(ctx context.Context, id string) (task tasks.Task, err error)
	ExecuteTask(ctx context.Context, id string) (task tasks.Task, err error)
	EditTask(ctx context.Context, id string, interval int,
		ipServiceURL, ipServiceName string) (task tasks.Task, err error)
	DeleteTask(ctx context.Context, id string) (err error)
	UpdateRecord(ctx context.Context, credentials provider.Credentials,
		domain, subdomain, ip string) (err error)
	ListDomains(ctx context.Context, credentials provider.Credentials) (
		domains []string, err error)
}

type Pool interface {
	Snapshot() (results []probe.Result)
	RefreshAll(ctx context.Context) (results []probe.Result)
	AddCustom(rawURL string) (probe probe.Probe, err error)
	AddLocal(interfaceName string, ipType probe.IPType) (probe probe.Probe, err error)
	Interfaces() (interfaces []probe.Interface, err error)
	RemoveCustom(rawURL string) (err error)
}

type EventLog interface {
	Since(index int) (entries []eventlog.Entry, newIndex int)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
