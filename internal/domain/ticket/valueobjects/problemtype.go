package valueobjects

import "fmt"

type ProblemType string

const (
	ProblemHardware ProblemType = "hardware"
	ProblemSoftware ProblemType = "software"
)

var validProblemTypes = map[ProblemType]bool{
	ProblemHardware: true,
	ProblemSoftware: true,
}

func (pt ProblemType) String() string {
	return string(pt)
}

func (pt ProblemType) IsValid() bool {
	return validProblemTypes[pt]
}

func NewProblemType(s string) (ProblemType, error) {
	pt := ProblemType(s)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid problem type: %s", s)
	}
	return pt, nil
}
