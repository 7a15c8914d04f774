package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

var commonFirstNames = []string{
	"Roxane", "Rezart", "Claire", "Julien", "Sophie", "Antoine", "Isabelle", "Thomas",
	"Camille", "Nicolas", "Margaux", "Olivier", "Helene", "Romain", "Elise", "Vincent",
	"Laure", "Mathieu", "Aurelie", "Damien",
}

var commonLastNames = []string{
	"Lahady", "Belchi", "Dupont", "Martin", "Morel", "Lefevre", "Leroy", "Benoit",
	"Garnier", "Chevalier", "Fontaine", "Roussel", "Blanchard", "Gauthier", "Perrin",
	"Marchand", "Dumont", "Collet", "Bourgeois", "Renard",
}

func GenerateRandomFrenchName() (string, string) {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]
	return firstName, lastName
}

// GenerateRandomPerson builds a plausible department member: in service for
// a few years, with roughly one in four already having an end-of-service date.
func GenerateRandomPerson(emailDomain string) *domain.Person {
	firstName, lastName := GenerateRandomFrenchName()

	// a couple of digits keep generated emails collision-free enough
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(firstName),
		strings.ToLower(lastName),
		rand.Intn(100),
		emailDomain,
	)

	serviceStart := time.Date(2015+rand.Intn(10), time.Month(rand.Intn(12)+1), rand.Intn(28)+1, 0, 0, 0, 0, time.UTC)

	person := &domain.Person{
		FullName:     firstName + " " + lastName,
		Email:        email,
		ServiceStart: serviceStart,
	}

	if rand.Intn(4) == 0 {
		serviceEnd := serviceStart.AddDate(rand.Intn(8)+1, 0, 0)
		person.ServiceEnd = &serviceEnd
	}

	return person
}
