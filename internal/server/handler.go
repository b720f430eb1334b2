package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/qdm12/ddns-scheduler/internal/models"
)

type handlers struct {
	// Objects
	scheduler Scheduler
	pool      Pool
	eventLog  EventLog
	buildInfo models.BuildInformation
	logger    Logger
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(rootURL string, scheduler Scheduler, pool Pool,
	eventLog EventLog, buildInfo models.BuildInformation, logger Logger) http.Handler {
	handlers := &handlers{
		scheduler: scheduler,
		pool:      pool,
		eventLog:  eventLog,
		buildInfo: buildInfo,
		logger:    logger,
		timeNow:   time.Now,
	}

	api := chi.NewRouter()
	api.Post("/domains", handlers.listDomains)
	api.Post("/records", handlers.updateRecord)

	api.Route("/probes", func(r chi.Router) {
		r.Get("/", handlers.getProbes)
		r.Post("/", handlers.addProbe)
		r.Post("/local", handlers.addLocalProbe)
		r.Delete("/", handlers.removeProbe)
		r.Post("/refresh", handlers.refreshProbes)
	})

	api.Route("/tasks", func(r chi.Router) {
		r.Get("/", handlers.listTasks)
		r.Post("/", handlers.createTask)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.getTask)
			r.Put("/", handlers.editTask)
			r.Delete("/", handlers.deleteTask)
			r.Post("/start", handlers.startTask)
			r.Post("/stop", handlers.stopTask)
			r.Post("/execute", handlers.executeTask)
		})
	})

	api.Get("/interfaces", handlers.listInterfaces)
	api.Get("/logs", handlers.getLogs)
	api.Get("/version", handlers.getVersion)

	router := chi.NewRouter()
	router.Use(middleware.CleanPath, middleware.StripSlashes,
		middleware.Recoverer, handlers.logRequests)
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpError(w, http.StatusNotFound, "")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpError(w, http.StatusMethodNotAllowed, "")
	})
	router.Mount(strings.TrimSuffix(rootURL, "/")+"/api/v1", api)

	return router
}

func (h *handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := h.timeNow()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(wrapped, r)
		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.logger.Debug(r.Method + " " + r.URL.Path + " " + strconv.Itoa(status) +
			" in " + h.timeNow().Sub(start).String())
	})
}
