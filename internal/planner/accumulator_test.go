package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

func TestAccumulator_GuardsOn(t *testing.T) {
	acc := newAccumulator()

	monday := date(2025, time.January, 6)
	tuesday := date(2025, time.January, 7)

	acc.appendGuard(domain.GuardAssignment{Date: monday, Guard: domain.GuardMatin, PersonID: 1})
	acc.appendGuard(domain.GuardAssignment{Date: monday, Guard: domain.GuardSoir, PersonID: 1})
	acc.appendGuard(domain.GuardAssignment{Date: monday, Guard: domain.GuardIRMSoir, PersonID: 2})

	assert.Equal(t, []domain.GuardKind{domain.GuardMatin, domain.GuardSoir}, acc.guardsOn(monday, 1))
	assert.Equal(t, []domain.GuardKind{domain.GuardIRMSoir}, acc.guardsOn(monday, 2))
	assert.Empty(t, acc.guardsOn(tuesday, 1))
	assert.Empty(t, acc.guardsOn(monday, 3))
}

func TestAccumulator_HeldEveningGuard(t *testing.T) {
	acc := newAccumulator()

	monday := date(2025, time.January, 6)

	acc.appendGuard(domain.GuardAssignment{Date: monday, Guard: domain.GuardMatin, PersonID: 1})
	acc.appendGuard(domain.GuardAssignment{Date: monday, Guard: domain.GuardIRMSoir, PersonID: 2})

	assert.False(t, acc.heldEveningGuard(monday, 1), "a morning guard is not an evening guard")
	assert.True(t, acc.heldEveningGuard(monday, 2))
	assert.False(t, acc.heldEveningGuard(monday, 3))
}

func TestAccumulator_CountsAndSummary(t *testing.T) {
	acc := newAccumulator()

	assert.Equal(t, 0, acc.taskCount())
	assert.Equal(t, 0, acc.guardCount())

	monday := date(2025, time.January, 6)
	acc.appendTask(domain.TaskAssignment{Date: monday, PersonID: 1, Task: domain.TaskCurietherapie})
	acc.appendGuard(domain.GuardAssignment{Date: monday, Guard: domain.GuardMatin, PersonID: 1})
	acc.appendGuard(domain.GuardAssignment{Date: monday, Guard: domain.GuardSoir, PersonID: 2})

	assert.Equal(t, 1, acc.taskCount())
	assert.Equal(t, 2, acc.guardCount())
	assert.Equal(t, domain.ScheduleSummary{AssignmentCount: 1, GuardCount: 2}, acc.summary())

	result := acc.result()
	assert.Len(t, result.Tasks, 1)
	assert.Len(t, result.Guards, 2)
	assert.Equal(t, acc.summary(), result.Summary)
}
