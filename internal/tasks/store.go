package tasks

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
)

// Store is the authoritative set of tasks keyed by ID.
// Tasks are returned by value so readers always hold a consistent
// snapshot of a task as of a single point in time.
type Store struct {
	mutex     sync.RWMutex
	tasks     map[string]Task
	persister Persister
	newID     func() string
}

// NewStore creates a task store. The persister can be nil
// for an in memory only store.
func NewStore(persister Persister) *Store {
	return &Store{
		tasks:     make(map[string]Task),
		persister: persister,
		newID:     newID,
	}
}

func newID() string {
	const idLength = 8
	return uuid.NewString()[:idLength]
}

var ErrCorrupted = errors.New("task storage is corrupted")

// Load reads all the persisted tasks into memory.
// An invalid persisted task is reported as a corruption error.
func (s *Store) Load() (err error) {
	if s.persister == nil {
		return nil
	}

	tasks, err := s.persister.LoadTasks()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, task := range tasks {
		err = task.validate()
		if err != nil {
			return fmt.Errorf("%w: task %s: %w", ErrCorrupted, task.ID, err)
		}
		if _, exists := s.tasks[task.ID]; exists {
			return fmt.Errorf("%w: duplicate task ID %s", ErrCorrupted, task.ID)
		}
		s.tasks[task.ID] = task
	}
	return nil
}

// Create validates the settings and stores a new stopped task.
func (s *Store) Create(settings Settings, now time.Time) (task Task, err error) {
	err = settings.Validate()
	if err != nil {
		return task, err
	}

	task = Task{
		Provider:      settings.Provider,
		SecretID:      settings.SecretID,
		SecretKey:     settings.SecretKey,
		Domain:        settings.Domain,
		Subdomain:     settings.Subdomain,
		FullDomain:    BuildDomainName(settings.Subdomain, settings.Domain),
		IPServiceURL:  settings.IPServiceURL,
		IPServiceName: settings.IPServiceName,
		Interval:      settings.Interval,
		Status:        StatusStopped,
		CreatedAt:     now,
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for {
		task.ID = s.newID()
		if _, exists := s.tasks[task.ID]; !exists {
			break
		}
	}

	err = s.persist(task)
	if err != nil {
		return Task{}, err
	}
	s.tasks[task.ID] = task
	return task, nil
}

func (s *Store) Get(id string) (task Task, err error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return task, fmt.Errorf("%w: task %s", ddnserrors.ErrNotFound, id)
	}
	return task, nil
}

// List returns all tasks ordered by creation time.
func (s *Store) List() (tasks []Task) {
	return s.list(func(Task) bool { return true })
}

// ListByAccount returns the tasks using the given account secret ID,
// ordered by creation time.
func (s *Store) ListByAccount(secretID string) (tasks []Task) {
	return s.list(func(task Task) bool { return task.SecretID == secretID })
}

func (s *Store) list(keep func(task Task) bool) (tasks []Task) {
	s.mutex.RLock()
	tasks = make([]Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if keep(task) {
			tasks = append(tasks, task)
		}
	}
	s.mutex.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks
}

var ErrIdentityChanged = errors.New("task identity cannot be changed")

// Update atomically applies modify to a copy of the task, persists
// the result and makes it visible to readers. The identity fields
// of a task cannot be changed.
func (s *Store) Update(id string, modify func(task *Task) error) (task Task, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, ok := s.tasks[id]
	if !ok {
		return task, fmt.Errorf("%w: task %s", ddnserrors.ErrNotFound, id)
	}

	task = existing
	err = modify(&task)
	if err != nil {
		return existing, err
	}

	if task.ID != existing.ID ||
		task.Provider != existing.Provider ||
		task.SecretID != existing.SecretID ||
		task.SecretKey != existing.SecretKey ||
		task.Domain != existing.Domain ||
		task.Subdomain != existing.Subdomain ||
		task.FullDomain != existing.FullDomain {
		return existing, fmt.Errorf("%w: task %s", ErrIdentityChanged, id)
	}

	err = s.persist(task)
	if err != nil {
		return existing, err
	}
	s.tasks[id] = task
	return task, nil
}

func (s *Store) Delete(id string) (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("%w: task %s", ddnserrors.ErrNotFound, id)
	}

	if s.persister != nil {
		err = s.persister.DeleteTask(id)
		if err != nil {
			return fmt.Errorf("deleting persisted task: %w", err)
		}
	}

	delete(s.tasks, id)
	return nil
}

func (s *Store) persist(task Task) (err error) {
	if s.persister == nil {
		return nil
	}
	err = s.persister.PutTask(task)
	if err != nil {
		return fmt.Errorf("persisting task: %w", err)
	}
	return nil
}
