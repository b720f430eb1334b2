package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

type createTaskRequest struct {
	Provider      string `json:"provider"`
	SecretID      string `json:"secretId"`
	SecretKey     string `json:"secretKey"`
	Domain        string `json:"domain"`
	Subdomain     string `json:"subdomain"`
	IPServiceURL  string `json:"ipServiceUrl"`
	IPServiceName string `json:"ipServiceName"`
	Interval      int    `json:"interval"`
}

func (h *handlers) createTask(w http.ResponseWriter, r *http.Request) {
	var request createTaskRequest
	err := decodeJSON(w, r, &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.scheduler.CreateTask(tasks.Settings{
		Provider:      request.Provider,
		SecretID:      request.SecretID,
		SecretKey:     request.SecretKey,
		Domain:        request.Domain,
		Subdomain:     request.Subdomain,
		IPServiceURL:  request.IPServiceURL,
		IPServiceName: request.IPServiceName,
		Interval:      request.Interval,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, newTaskView(task))
}

func (h *handlers) listTasks(w http.ResponseWriter, r *http.Request) {
	list := h.scheduler.ListTasks(r.URL.Query().Get("secretId"))
	h.respondJSON(w, http.StatusOK, newTaskViews(list))
}

func (h *handlers) getTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.scheduler.GetTask(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newTaskView(task))
}

type editTaskRequest struct {
	Interval      int    `json:"interval"`
	IPServiceURL  string `json:"ipServiceUrl"`
	IPServiceName string `json:"ipServiceName"`
}

func (h *handlers) editTask(w http.ResponseWriter, r *http.Request) {
	var request editTaskRequest
	err := decodeJSON(w, r, &request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.scheduler.EditTask(r.Context(), chi.URLParam(r, "id"),
		request.Interval, request.IPServiceURL, request.IPServiceName)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newTaskView(task))
}

func (h *handlers) deleteTask(w http.ResponseWriter, r *http.Request) {
	err := h.scheduler.DeleteTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) startTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.scheduler.StartTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newTaskView(task))
}

func (h *handlers) stopTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.scheduler.StopTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newTaskView(task))
}

type executeTaskResponse struct {
	Task  *taskView `json:"task,omitempty"`
	Error string    `json:"error,omitempty"`
}

// executeTask responds with the task state after the cycle, together
// with the cycle error if the cycle failed.
func (h *handlers) executeTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.scheduler.ExecuteTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil && task.ID == "" {
		h.handleError(w, err)
		return
	}

	view := newTaskView(task)
	response := executeTaskResponse{Task: &view}
	status := http.StatusOK
	if err != nil {
		status = errorToStatus(err)
		response.Error = err.Error()
	}
	h.respondJSON(w, status, response)
}
