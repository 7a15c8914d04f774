package planner

import (
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

// accumulator is the only mutable state of a generation pass. Each call to
// Generate uses a fresh instance and discards it once the result is built.
type accumulator struct {
	tasks  []domain.TaskAssignment
	guards []domain.GuardAssignment
}

func newAccumulator() *accumulator {
	return &accumulator{
		tasks:  []domain.TaskAssignment{},
		guards: []domain.GuardAssignment{},
	}
}

func (a *accumulator) appendTask(t domain.TaskAssignment) {
	a.tasks = append(a.tasks, t)
}

func (a *accumulator) appendGuard(g domain.GuardAssignment) {
	a.guards = append(a.guards, g)
}

func (a *accumulator) taskCount() int {
	return len(a.tasks)
}

func (a *accumulator) guardCount() int {
	return len(a.guards)
}

// guardsOn returns the guard kinds held by a person on a date.
func (a *accumulator) guardsOn(date time.Time, personID int64) []domain.GuardKind {
	date = normalizeDate(date)

	kinds := []domain.GuardKind{}
	for _, g := range a.guards {
		if g.PersonID == personID && g.Date.Equal(date) {
			kinds = append(kinds, g.Guard)
		}
	}

	return kinds
}

func (a *accumulator) heldEveningGuard(date time.Time, personID int64) bool {
	for _, kind := range a.guardsOn(date, personID) {
		if kind.IsEvening() {
			return true
		}
	}
	return false
}

func (a *accumulator) summary() domain.ScheduleSummary {
	return domain.ScheduleSummary{
		AssignmentCount: len(a.tasks),
		GuardCount:      len(a.guards),
	}
}

func (a *accumulator) result() *domain.GeneratedSchedule {
	return &domain.GeneratedSchedule{
		Tasks:   a.tasks,
		Guards:  a.guards,
		Summary: a.summary(),
	}
}
