package planner

import (
	"errors"
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

var (
	// ErrInvalidRange is returned when the range start falls after its end.
	ErrInvalidRange = errors.New("le début de la période est postérieur à sa fin")
	// ErrEmptyRoster is returned when no eligible person exists for the
	// requested range. Generation is all-or-nothing, so this is fatal.
	ErrEmptyRoster = errors.New("aucune personne éligible pour la période demandée")
)

// Planner computes the rotation schedule for a date range. It performs no
// I/O and holds no shared state: the caller loads the eligible roster,
// Generate returns plain tuples, and persisting them is the caller's
// separate step.
type Planner struct {
	roster     []*domain.Person // ordered by id ascending, pre-filtered for eligibility
	taskKinds  []domain.TaskKind
	guardKinds []domain.GuardKind
}

func New(roster []*domain.Person) *Planner {
	return &Planner{
		roster:     roster,
		taskKinds:  domain.TaskKinds(),
		guardKinds: domain.GuardKinds(),
	}
}

// Generate runs a single pass over the working days of rng. One person is
// scheduled per working day; the rotation index advances once per day.
// Calling Generate twice with identical inputs yields identical output.
func (p *Planner) Generate(rng domain.ScheduleRange) (*domain.GeneratedSchedule, error) {
	days, err := workingDays(rng)
	if err != nil {
		return nil, err
	}

	if len(p.roster) == 0 {
		return nil, ErrEmptyRoster
	}

	acc := newAccumulator()
	index := 0

	for _, day := range days {
		person := p.roster[index%len(p.roster)]

		acc.appendTask(domain.TaskAssignment{
			Date:     day,
			PersonID: person.ID,
			Task:     p.taskFor(acc, index),
		})

		acc.appendGuard(domain.GuardAssignment{
			Date:     day,
			Guard:    p.guardFor(acc, day, person.ID, index),
			PersonID: person.ID,
		})

		index++
	}

	return acc.result(), nil
}

// taskFor couples task drift to both the number of assignments already
// produced and the roster position, so consecutive days usually receive
// different task kinds even when the same person rotates back in.
func (p *Planner) taskFor(acc *accumulator, index int) domain.TaskKind {
	return p.taskKinds[(acc.taskCount()+index)%len(p.taskKinds)]
}

// guardFor selects the guard kind for a (day, person) pair. A person who
// closed the previous guard day (the weekend is stepped over, so a Friday
// evening is held against the following Monday) must not open the next
// morning: their guard is forced to the plain evening slot and the rotation
// counters are not consulted.
func (p *Planner) guardFor(acc *accumulator, day time.Time, personID int64, index int) domain.GuardKind {
	if acc.heldEveningGuard(previousGuardDay(day), personID) {
		return domain.GuardSoir
	}

	return p.guardKinds[(acc.guardCount()+index)%len(p.guardKinds)]
}
