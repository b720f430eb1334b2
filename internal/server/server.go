package server

import (
	"github.com/qdm12/ddns-scheduler/internal/models"
	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address   string
	RootURL   string
	Scheduler Scheduler
	Pool      Pool
	EventLog  EventLog
	BuildInfo models.BuildInformation
	Logger    Logger
}

func New(settings Settings) (server *httpserver.Server, err error) {
	name := "server"
	handler := newHandler(settings.RootURL, settings.Scheduler, settings.Pool,
		settings.EventLog, settings.BuildInfo, settings.Logger)
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
