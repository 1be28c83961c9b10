package nonconformity

import "fmt"

type Severity string

const (
	SeverityLow      Severity = "baja"
	SeverityMedium   Severity = "media"
	SeverityHigh     Severity = "alta"
	SeverityCritical Severity = "critica"
)

var validSeverities = map[Severity]bool{
	SeverityLow:      true,
	SeverityMedium:   true,
	SeverityHigh:     true,
	SeverityCritical: true,
}

func (s Severity) String() string { return string(s) }
func (s Severity) IsValid() bool  { return validSeverities[s] }

func NewSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return sev, nil
}

// Status follows abierta -> en_revision -> resuelta -> cerrada, although the
// status setter does not enforce that order.
type Status string

const (
	StatusOpen     Status = "abierta"
	StatusInReview Status = "en_revision"
	StatusResolved Status = "resuelta"
	StatusClosed   Status = "cerrada"
)

var validStatuses = map[Status]bool{
	StatusOpen:     true,
	StatusInReview: true,
	StatusResolved: true,
	StatusClosed:   true,
}

func (s Status) String() string { return string(s) }
func (s Status) IsValid() bool  { return validStatuses[s] }

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid non-conformity status: %s", s)
	}
	return st, nil
}
