package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// newHandler answers GET / with 200 when healthcheck succeeds, and
// with 503 and the healthcheck error as plain text body otherwise.
func newHandler(healthcheck func() error) http.Handler {
	router := chi.NewRouter()
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		err := healthcheck()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return router
}
