package domain

type TaskKind string

const (
	TaskVerificationDossiers1 TaskKind = "VERIFICATION_DE_DOSSIERS_1"
	TaskValidationsCQ1        TaskKind = "VALIDATIONS_DE_DOSSIERS_ET_PREPARATION_CQ_1"
	TaskVerificationDossiers2 TaskKind = "VERIFICATION_DE_DOSSIERS_2"
	TaskValidationsCQ2        TaskKind = "VALIDATIONS_DE_DOSSIERS_ET_PREPARATION_CQ_2"
	TaskGardeAppareil         TaskKind = "GARDE_APPAREIL"
	TaskCurietherapie         TaskKind = "CURIETHERAPIE"
	TaskGestionCQAppareil     TaskKind = "GESTION_CQ_APPAREIL"
	TaskSupportDosimetrie     TaskKind = "SUPPORT_DOSIMETRIE"
)

// taskKinds is the rotation order. Array position is the only ordering
// significance a task kind carries.
var taskKinds = []TaskKind{
	TaskVerificationDossiers1,
	TaskValidationsCQ1,
	TaskVerificationDossiers2,
	TaskValidationsCQ2,
	TaskGardeAppareil,
	TaskCurietherapie,
	TaskGestionCQAppareil,
	TaskSupportDosimetrie,
}

// TaskKinds returns the closed set of task kinds in rotation order.
func TaskKinds() []TaskKind {
	kinds := make([]TaskKind, len(taskKinds))
	copy(kinds, taskKinds)
	return kinds
}

func (t TaskKind) Valid() bool {
	for _, kind := range taskKinds {
		if t == kind {
			return true
		}
	}
	return false
}

var taskLabels = map[TaskKind]string{
	TaskVerificationDossiers1: "Vérification de dossiers 1",
	TaskValidationsCQ1:        "Validations de dossiers et préparation CQ 1",
	TaskVerificationDossiers2: "Vérification de dossiers 2",
	TaskValidationsCQ2:        "Validations de dossiers et préparation CQ 2",
	TaskGardeAppareil:         "Garde appareil",
	TaskCurietherapie:         "Curiethérapie",
	TaskGestionCQAppareil:     "Gestion CQ appareil",
	TaskSupportDosimetrie:     "Support dosimétrie",
}

func (t TaskKind) Label() string {
	return taskLabels[t]
}
