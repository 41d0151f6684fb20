// Package host drives stepping tasks once per frame.
package host

import (
	"log/slog"

	"github.com/google/uuid"
)

// Task is advanced once per host step by dt seconds.
// Returning true detaches it.
type Task interface {
	Step(dt float64) (done bool)
}

// TaskID identifies an attached task. The zero value is never attached.
type TaskID uuid.UUID

// NoTask is the zero TaskID.
var NoTask TaskID

func (id TaskID) String() string {
	return uuid.UUID(id).String()
}

// Scheduler is a per-host task registry. It is not safe for concurrent use;
// the host calls it from its frame loop.
type Scheduler struct {
	logger *slog.Logger
	tasks  map[TaskID]Task
	order  []TaskID
	steps  uint64
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		logger: logger,
		tasks:  make(map[TaskID]Task),
	}
}

// Attach registers task to run from the next Step.
func (s *Scheduler) Attach(task Task) TaskID {
	id := TaskID(uuid.New())
	s.tasks[id] = task
	s.order = append(s.order, id)
	s.logger.Debug("task attached", slog.String("task", id.String()))
	return id
}

// Detach removes a task. Unknown ids are ignored.
func (s *Scheduler) Detach(id TaskID) {
	if _, ok := s.tasks[id]; !ok {
		return
	}
	delete(s.tasks, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.logger.Debug("task detached", slog.String("task", id.String()))
}

func (s *Scheduler) Attached(id TaskID) bool {
	_, ok := s.tasks[id]
	return ok
}

func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Steps returns how many times Step has run.
func (s *Scheduler) Steps() uint64 {
	return s.steps
}

// Step advances every attached task once, in attach order.
// Tasks attached during the step first run on the next one.
func (s *Scheduler) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	pending := make([]TaskID, len(s.order))
	copy(pending, s.order)

	for _, id := range pending {
		task, ok := s.tasks[id]
		if !ok {
			continue
		}
		if task.Step(dt) {
			s.Detach(id)
		}
	}
	s.steps++
}
