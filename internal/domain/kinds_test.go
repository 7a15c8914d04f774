package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskKinds_RotationOrder(t *testing.T) {
	kinds := TaskKinds()

	assert.Equal(t, []TaskKind{
		TaskVerificationDossiers1,
		TaskValidationsCQ1,
		TaskVerificationDossiers2,
		TaskValidationsCQ2,
		TaskGardeAppareil,
		TaskCurietherapie,
		TaskGestionCQAppareil,
		TaskSupportDosimetrie,
	}, kinds)

	// callers must not be able to reorder the rotation
	kinds[0] = TaskSupportDosimetrie
	assert.Equal(t, TaskVerificationDossiers1, TaskKinds()[0])
}

func TestTaskKind_Valid(t *testing.T) {
	for _, kind := range TaskKinds() {
		assert.True(t, kind.Valid(), "kind %s", kind)
		assert.NotEmpty(t, kind.Label(), "kind %s", kind)
	}

	assert.False(t, TaskKind("REUNION_DU_LUNDI").Valid())
}

func TestGuardKinds_RotationOrder(t *testing.T) {
	assert.Equal(t, []GuardKind{
		GuardMatin,
		GuardSoir,
		GuardIRMMatin,
		GuardIRMSoir,
	}, GuardKinds())
}

func TestGuardKind_Classification(t *testing.T) {
	assert.True(t, GuardSoir.IsEvening())
	assert.True(t, GuardIRMSoir.IsEvening())
	assert.False(t, GuardMatin.IsEvening())
	assert.False(t, GuardIRMMatin.IsEvening())

	assert.True(t, GuardMatin.IsMorning())
	assert.True(t, GuardIRMMatin.IsMorning())
	assert.False(t, GuardSoir.IsMorning())
	assert.False(t, GuardIRMSoir.IsMorning())

	for _, kind := range GuardKinds() {
		assert.True(t, kind.Valid(), "kind %s", kind)
		assert.NotEmpty(t, kind.Label(), "kind %s", kind)
	}
	assert.False(t, GuardKind("GARDE_NUIT").Valid())
}
