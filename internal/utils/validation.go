package utils

import (
	"errors"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

// ValidatePersonServiceDates checks that an end-of-service date, when set,
// does not precede the start of service.
func ValidatePersonServiceDates(person *domain.Person) error {
	if person.ServiceEnd != nil && person.ServiceEnd.Before(person.ServiceStart) {
		return errors.New("la fin de service ne peut pas précéder le début de service")
	}

	return nil
}
