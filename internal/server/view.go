package server

import (
	"time"

	"github.com/qdm12/ddns-scheduler/internal/tasks"
)

// taskView is the JSON representation of a task, without its secret key.
type taskView struct {
	ID             string       `json:"id"`
	Provider       string       `json:"provider"`
	SecretID       string       `json:"secretId"`
	Domain         string       `json:"domain"`
	Subdomain      string       `json:"subdomain"`
	FullDomain     string       `json:"fullDomain"`
	IPServiceURL   string       `json:"ipServiceUrl"`
	IPServiceName  string       `json:"ipServiceName"`
	Interval       int          `json:"interval"`
	Enabled        bool         `json:"enabled"`
	Status         tasks.Status `json:"status"`
	LastIP         string       `json:"lastIp"`
	LastUpdateTime *time.Time   `json:"lastUpdateTime"`
	LastError      string       `json:"lastError"`
	CreatedAt      time.Time    `json:"createdAt"`
}

func newTaskView(task tasks.Task) (view taskView) {
	view = taskView{
		ID:            task.ID,
		Provider:      task.Provider,
		SecretID:      task.SecretID,
		Domain:        task.Domain,
		Subdomain:     task.Subdomain,
		FullDomain:    task.FullDomain,
		IPServiceURL:  task.IPServiceURL,
		IPServiceName: task.IPServiceName,
		Interval:      task.Interval,
		Enabled:       task.Enabled,
		Status:        task.Status,
		LastIP:        task.LastIP,
		LastError:     task.LastError,
		CreatedAt:     task.CreatedAt,
	}
	if !task.LastUpdateTime.IsZero() {
		lastUpdateTime := task.LastUpdateTime
		view.LastUpdateTime = &lastUpdateTime
	}
	return view
}

func newTaskViews(list []tasks.Task) (views []taskView) {
	views = make([]taskView, len(list))
	for i, task := range list {
		views[i] = newTaskView(task)
	}
	return views
}
