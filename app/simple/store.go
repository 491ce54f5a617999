package simple

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task is the demo domain entity.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskStore is an in-memory task repository shared through the service scope.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]Task
}

// NewTaskStore creates an empty store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[uuid.UUID]Task)}
}

// Insert creates a new task with a generated ID.
func (s *TaskStore) Insert(title string) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := Task{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	s.tasks[task.ID] = task
	return task
}

// Get returns the task with the given ID.
func (s *TaskStore) Get(id uuid.UUID) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	return task, ok
}

// List returns tasks ordered by creation time. A non-positive limit means no
// limit.
func (s *TaskStore) List(limit, offset int) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		all = append(all, task)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	if offset > 0 {
		if offset >= len(all) {
			return []Task{}
		}
		all = all[offset:]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

// SetDone updates the completion flag and returns the updated task.
func (s *TaskStore) SetDone(id uuid.UUID, done bool) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	task.Done = done
	s.tasks[id] = task
	return task, true
}

// Delete removes the task and reports whether it existed.
func (s *TaskStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Count returns total and completed task counts.
func (s *TaskStore) Count() (total, done int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, task := range s.tasks {
		total++
		if task.Done {
			done++
		}
	}
	return total, done
}
