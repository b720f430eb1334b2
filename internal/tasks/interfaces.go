package tasks

type Persister interface {
	LoadTasks() (tasks []Task, err error)
	PutTask(task Task) (err error)
	DeleteTask(id string) (err error)
}
