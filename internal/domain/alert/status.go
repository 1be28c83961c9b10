package alert

import "fmt"

type Status string

const (
	StatusActive    Status = "activa"
	StatusResolved  Status = "resuelta"
	StatusDismissed Status = "descartada"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusResolved:  true,
	StatusDismissed: true,
}

// Both exits from activa are terminal.
var statusTransitions = map[Status][]Status{
	StatusActive: {StatusResolved, StatusDismissed},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid alert status: %s", s)
	}
	return st, nil
}
