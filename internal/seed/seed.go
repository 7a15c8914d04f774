package seed

import (
	"log/slog"
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
	"github.com/chu-physmed/rotation-planner/backend/internal/repository"
)

// the department roster as of January 2025
var departmentRoster = []struct {
	FullName string
	Email    string
}{
	{"Roxane", "roxane.lahady@curie.fr"},
	{"Rezart", "rezart.belchi@curie.fr"},
	{"Claire", "claire.dupont@curie.fr"},
	{"Julien", "julien.martin@curie.fr"},
	{"Sophie", "sophie.morel@curie.fr"},
	{"Antoine", "antoine.lefevre@curie.fr"},
	{"Isabelle", "isabelle.leroy@curie.fr"},
	{"Thomas", "thomas.benoit@curie.fr"},
}

// SeedDepartmentRoster inserts the real roster, all in service since the
// start of 2025.
func SeedDepartmentRoster(r *repository.Repository) {
	serviceStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	cnt := 0
	for _, member := range departmentRoster {
		person := &domain.Person{
			FullName:     member.FullName,
			Email:        member.Email,
			ServiceStart: serviceStart,
		}

		if err := r.CreatePerson(person); err != nil {
			slog.Error("impossible d'insérer la personne", slog.String("email", member.Email), slog.String("error", err.Error()))
			continue
		}

		cnt++
	}

	slog.Info("roster inséré", slog.Int("count", cnt))
}
