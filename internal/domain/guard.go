package domain

type GuardKind string

const (
	GuardMatin    GuardKind = "GARDE_MATIN"
	GuardSoir     GuardKind = "GARDE_SOIR"
	GuardIRMMatin GuardKind = "GARDE_IRM_MATIN"
	GuardIRMSoir  GuardKind = "GARDE_IRM_SOIR"
)

// guardKinds is the rotation order: morning, evening, morning-imaging,
// evening-imaging.
var guardKinds = []GuardKind{
	GuardMatin,
	GuardSoir,
	GuardIRMMatin,
	GuardIRMSoir,
}

// GuardKinds returns the closed set of guard kinds in rotation order.
func GuardKinds() []GuardKind {
	kinds := make([]GuardKind, len(guardKinds))
	copy(kinds, guardKinds)
	return kinds
}

func (g GuardKind) Valid() bool {
	for _, kind := range guardKinds {
		if g == kind {
			return true
		}
	}
	return false
}

// IsEvening reports whether the guard is a closing shift.
func (g GuardKind) IsEvening() bool {
	return g == GuardSoir || g == GuardIRMSoir
}

// IsMorning reports whether the guard is an opening shift.
func (g GuardKind) IsMorning() bool {
	return g == GuardMatin || g == GuardIRMMatin
}

var guardLabels = map[GuardKind]string{
	GuardMatin:    "Matin",
	GuardSoir:     "Soir",
	GuardIRMMatin: "Matin IRM",
	GuardIRMSoir:  "Soir IRM",
}

func (g GuardKind) Label() string {
	return guardLabels[g]
}
