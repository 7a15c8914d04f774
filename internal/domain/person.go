package domain

import (
	"time"
)

type Person struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	ServiceStart time.Time  `json:"serviceStart"`
	ServiceEnd   *time.Time `json:"serviceEnd"` // nil while the person is still in service
	CreatedAt    time.Time  `json:"createdAt"`
	Version      int32      `json:"-"`
}

// EligibleFor reports whether the person may be scheduled for a range
// starting at rangeStart.
func (p *Person) EligibleFor(rangeStart time.Time) bool {
	return p.ServiceEnd == nil || !p.ServiceEnd.Before(rangeStart)
}
