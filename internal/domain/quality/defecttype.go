package quality

import "fmt"

// DefectType is the closed set of defect categories recorded at inspection.
type DefectType string

const (
	DefectStain       DefectType = "mancha"
	DefectFlash       DefectType = "rebaba"
	DefectIncomplete  DefectType = "incompleto"
	DefectDeformation DefectType = "deformacion"
	DefectScratch     DefectType = "rayadura"
	DefectOther       DefectType = "otro"
)

var defectTypeLabels = map[DefectType]string{
	DefectStain:       "Mancha",
	DefectFlash:       "Rebaba",
	DefectIncomplete:  "Incompleto",
	DefectDeformation: "Deformación",
	DefectScratch:     "Rayadura",
	DefectOther:       "Otro",
}

func (d DefectType) String() string {
	return string(d)
}

func (d DefectType) IsValid() bool {
	_, ok := defectTypeLabels[d]
	return ok
}

// Label is the printable name used on certificates.
func (d DefectType) Label() string {
	if l, ok := defectTypeLabels[d]; ok {
		return l
	}
	return string(d)
}

func NewDefectType(s string) (DefectType, error) {
	d := DefectType(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid defect type: %s", s)
	}
	return d, nil
}
