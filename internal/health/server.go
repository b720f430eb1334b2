package health

import (
	"github.com/qdm12/goservices/httpserver"
)

// NewServer creates the health server queried by Client.Query from
// the healthcheck subcommand, usually run by the Docker HEALTHCHECK.
func NewServer(address string, logger Logger, healthcheck func() error) (
	server *httpserver.Server, err error) {
	const name = "health"
	settings := httpserver.Settings{
		Handler: newHandler(healthcheck),
		Name:    ptrTo(name),
		Address: ptrTo(address),
		Logger:  logger,
	}
	return httpserver.New(settings)
}

func ptrTo[T any](value T) *T { return &value }
