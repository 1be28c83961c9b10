package production

import "fmt"

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

var validShifts = map[Shift]bool{
	ShiftMorning:   true,
	ShiftAfternoon: true,
	ShiftNight:     true,
}

func (s Shift) String() string {
	return string(s)
}

func (s Shift) IsValid() bool {
	return validShifts[s]
}

func NewShift(s string) (Shift, error) {
	shift := Shift(s)
	if !shift.IsValid() {
		return "", fmt.Errorf("invalid shift: %s", s)
	}
	return shift, nil
}
