package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomPerson(t *testing.T) {
	for i := 0; i < 50; i++ {
		person := GenerateRandomPerson("curie.fr")

		require.NotEmpty(t, person.FullName)
		assert.True(t, strings.HasSuffix(person.Email, "@curie.fr"), "email %s", person.Email)
		assert.Equal(t, strings.ToLower(person.Email), person.Email)
		assert.False(t, person.ServiceStart.IsZero())

		if person.ServiceEnd != nil {
			assert.NoError(t, ValidatePersonServiceDates(person))
		}
	}
}
