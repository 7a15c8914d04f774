package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoster(n int) []*domain.Person {
	start := date(2024, time.January, 1)
	names := []string{"Anne", "Bertrand", "Chloe", "David", "Emma", "Fabien", "Gaelle", "Hugo"}

	roster := make([]*domain.Person, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, &domain.Person{
			ID:           int64(i + 1),
			FullName:     names[i%len(names)],
			ServiceStart: start,
		})
	}
	return roster
}

func TestGenerate_SingleMonday(t *testing.T) {
	p := New(testRoster(3))

	schedule, err := p.Generate(domain.ScheduleRange{
		Start: date(2025, time.January, 6),
		End:   date(2025, time.January, 6),
	})
	require.NoError(t, err)

	require.Len(t, schedule.Tasks, 1)
	require.Len(t, schedule.Guards, 1)

	assert.Equal(t, date(2025, time.January, 6), schedule.Tasks[0].Date)
	assert.Equal(t, int64(1), schedule.Tasks[0].PersonID)
	assert.Equal(t, domain.TaskVerificationDossiers1, schedule.Tasks[0].Task)

	assert.Equal(t, date(2025, time.January, 6), schedule.Guards[0].Date)
	assert.Equal(t, int64(1), schedule.Guards[0].PersonID)
	assert.Equal(t, domain.GuardMatin, schedule.Guards[0].Guard)

	assert.Equal(t, domain.ScheduleSummary{AssignmentCount: 1, GuardCount: 1}, schedule.Summary)
}

func TestGenerate_FullWorkingWeek(t *testing.T) {
	p := New(testRoster(3))

	schedule, err := p.Generate(domain.ScheduleRange{
		Start: date(2025, time.January, 6),
		End:   date(2025, time.January, 10),
	})
	require.NoError(t, err)

	require.Len(t, schedule.Tasks, 5)
	require.Len(t, schedule.Guards, 5)

	// persons cycle 1,2,3,1,2 as the rotation index advances 0 through 4
	wantPersons := []int64{1, 2, 3, 1, 2}
	for i, task := range schedule.Tasks {
		assert.Equal(t, date(2025, time.January, 6+i), task.Date)
		assert.Equal(t, wantPersons[i], task.PersonID)
	}
	for i, guard := range schedule.Guards {
		assert.Equal(t, date(2025, time.January, 6+i), guard.Date)
		assert.Equal(t, wantPersons[i], guard.PersonID)
	}

	// task drift adds the running count to the rotation index
	wantTasks := []domain.TaskKind{
		domain.TaskVerificationDossiers1,
		domain.TaskVerificationDossiers2,
		domain.TaskGardeAppareil,
		domain.TaskGestionCQAppareil,
		domain.TaskVerificationDossiers1,
	}
	for i, task := range schedule.Tasks {
		assert.Equal(t, wantTasks[i], task.Task)
	}
}

func TestGenerate_WeekendOnlyRangeIsEmpty(t *testing.T) {
	p := New(testRoster(3))

	schedule, err := p.Generate(domain.ScheduleRange{
		Start: date(2025, time.January, 11), // Saturday
		End:   date(2025, time.January, 12), // Sunday
	})
	require.NoError(t, err)

	assert.Empty(t, schedule.Tasks)
	assert.Empty(t, schedule.Guards)
	assert.Equal(t, domain.ScheduleSummary{}, schedule.Summary)
}

func TestGenerate_InvalidRange(t *testing.T) {
	p := New(testRoster(3))

	schedule, err := p.Generate(domain.ScheduleRange{
		Start: date(2025, time.March, 1),
		End:   date(2025, time.February, 1),
	})
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Nil(t, schedule)
}

func TestGenerate_EmptyRoster(t *testing.T) {
	p := New(nil)

	schedule, err := p.Generate(domain.ScheduleRange{
		Start: date(2025, time.January, 6),
		End:   date(2025, time.January, 10),
	})
	require.ErrorIs(t, err, ErrEmptyRoster)
	assert.Nil(t, schedule)
}

func TestGenerate_Deterministic(t *testing.T) {
	rng := domain.ScheduleRange{
		Start: date(2025, time.January, 1),
		End:   date(2025, time.December, 31),
	}

	first, err := New(testRoster(8)).Generate(rng)
	require.NoError(t, err)

	second, err := New(testRoster(8)).Generate(rng)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_WeekdayOnlyAndWithinRange(t *testing.T) {
	rng := domain.ScheduleRange{
		Start: date(2025, time.January, 1),
		End:   date(2025, time.December, 31),
	}

	schedule, err := New(testRoster(8)).Generate(rng)
	require.NoError(t, err)

	// 2025 has 261 weekdays
	assert.Len(t, schedule.Tasks, 261)
	assert.Len(t, schedule.Guards, 261)

	for _, task := range schedule.Tasks {
		assert.True(t, isWorkingDay(task.Date), "task on %s", task.Date)
		assert.False(t, task.Date.Before(rng.Start))
		assert.False(t, task.Date.After(rng.End))
	}
	for _, guard := range schedule.Guards {
		assert.True(t, isWorkingDay(guard.Date), "guard on %s", guard.Date)
		assert.False(t, guard.Date.Before(rng.Start))
		assert.False(t, guard.Date.After(rng.End))
	}
}

func TestGenerate_UniquenessInvariants(t *testing.T) {
	schedule, err := New(testRoster(5)).Generate(domain.ScheduleRange{
		Start: date(2025, time.January, 1),
		End:   date(2025, time.June, 30),
	})
	require.NoError(t, err)

	type taskKey struct {
		date     time.Time
		personID int64
	}
	seenTasks := map[taskKey]bool{}
	for _, task := range schedule.Tasks {
		key := taskKey{task.Date, task.PersonID}
		assert.False(t, seenTasks[key], "duplicate task for %v", key)
		seenTasks[key] = true
	}

	type guardKey struct {
		date  time.Time
		guard domain.GuardKind
	}
	seenGuards := map[guardKey]bool{}
	for _, guard := range schedule.Guards {
		key := guardKey{guard.Date, guard.Guard}
		assert.False(t, seenGuards[key], "duplicate guard for %v", key)
		seenGuards[key] = true
	}
}

func TestGenerate_AdjacencySafetyOverFullYear(t *testing.T) {
	for _, rosterSize := range []int{1, 3, 8} {
		schedule, err := New(testRoster(rosterSize)).Generate(domain.ScheduleRange{
			Start: date(2025, time.January, 1),
			End:   date(2025, time.December, 31),
		})
		require.NoError(t, err)

		evenings := map[time.Time]map[int64]bool{}
		for _, guard := range schedule.Guards {
			if guard.Guard.IsEvening() {
				if evenings[guard.Date] == nil {
					evenings[guard.Date] = map[int64]bool{}
				}
				evenings[guard.Date][guard.PersonID] = true
			}
		}

		for _, guard := range schedule.Guards {
			if guard.Guard.IsMorning() {
				yesterday := guard.Date.AddDate(0, 0, -1)
				assert.False(t, evenings[yesterday][guard.PersonID],
					"roster %d: person %d opens on %s after closing the day before",
					rosterSize, guard.PersonID, guard.Date.Format(time.DateOnly))
			}
		}
	}
}

// The rotation arithmetic itself never lands on an evening kind while the
// guard count tracks the index, so the forced-evening transition is pinned
// down at the selection level: an evening held on the previous guard day
// forces plain GARDE_SOIR, a free day keeps the normal rotation.
func TestGuardFor_ForcedEveningAfterClosing(t *testing.T) {
	p := New(testRoster(3))

	friday := date(2025, time.January, 10)
	monday := date(2025, time.January, 13)

	tests := []struct {
		name         string
		previousKind domain.GuardKind
		want         domain.GuardKind
	}{
		{
			name:         "plain evening on Friday forces evening on Monday",
			previousKind: domain.GuardSoir,
			want:         domain.GuardSoir,
		},
		{
			name:         "imaging evening on Friday forces plain evening on Monday",
			previousKind: domain.GuardIRMSoir,
			want:         domain.GuardSoir,
		},
		{
			name:         "morning on Friday keeps normal rotation",
			previousKind: domain.GuardMatin,
			want:         domain.GuardIRMMatin, // (guardCount 1 + index 1) mod 4
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := newAccumulator()
			acc.appendGuard(domain.GuardAssignment{
				Date:     friday,
				Guard:    tt.previousKind,
				PersonID: 1,
			})

			// Saturday and Sunday carry no guards, the lookback reaches
			// Friday when Monday is evaluated
			assert.Equal(t, tt.want, p.guardFor(acc, monday, 1, 1))

			// another person keeps the normal rotation regardless
			assert.Equal(t, domain.GuardIRMMatin, p.guardFor(acc, monday, 2, 1))
		})
	}
}

func TestGuardFor_SameDayAdjacency(t *testing.T) {
	p := New(testRoster(3))

	monday := date(2025, time.January, 6)
	tuesday := date(2025, time.January, 7)

	acc := newAccumulator()
	acc.appendGuard(domain.GuardAssignment{
		Date:     monday,
		Guard:    domain.GuardIRMSoir,
		PersonID: 2,
	})

	// the person who closed Monday is forced to the plain evening slot
	assert.Equal(t, domain.GuardSoir, p.guardFor(acc, tuesday, 2, 1))

	// everyone else rotates normally
	assert.Equal(t, domain.GuardIRMMatin, p.guardFor(acc, tuesday, 3, 1))
}

func TestGenerate_EligibilityIsCallersConcern(t *testing.T) {
	// the engine trusts the caller's pre-filtered roster: a person with an
	// ended service who is still handed in will be scheduled
	left := date(2024, time.June, 30)
	roster := []*domain.Person{
		{ID: 7, FullName: "Parti", ServiceStart: date(2020, time.January, 1), ServiceEnd: &left},
	}

	schedule, err := New(roster).Generate(domain.ScheduleRange{
		Start: date(2025, time.January, 6),
		End:   date(2025, time.January, 6),
	})
	require.NoError(t, err)
	require.Len(t, schedule.Tasks, 1)
	assert.Equal(t, int64(7), schedule.Tasks[0].PersonID)
}
