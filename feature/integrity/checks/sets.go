package checks

import (
	"basemedia/core/baseset"
	"basemedia/feature/basesets"
)

// Set report states.
const (
	StatusOK       = "ok"
	StatusCorrupt  = "corrupt"
	StatusUnusable = "unusable"
	StatusNone     = "none"
)

// SetReport describes the active set of one kind.
type SetReport struct {
	Kind     string                `json:"kind"`
	Active   string                `json:"active,omitempty"`
	Version  int                   `json:"version,omitempty"`
	Status   string                `json:"status"`
	Problems []baseset.FileProblem `json:"problems"`
}

// ProblemSource returns the active set of a kind with its file problems.
type ProblemSource interface {
	Problems(kind string) (*basesets.SetView, []baseset.FileProblem, error)
}

// CheckSets reports the missing and corrupt files of the active set of each kind.
func CheckSets(src ProblemSource, kinds []baseset.Kind) ([]SetReport, error) {
	reports := make([]SetReport, 0, len(kinds))
	for _, kind := range kinds {
		active, problems, err := src.Problems(kind.Name)
		if err != nil {
			return nil, err
		}

		report := SetReport{Kind: kind.Name, Status: StatusNone, Problems: []baseset.FileProblem{}}
		if active != nil {
			report.Active = active.Name
			report.Version = active.Version
			report.Problems = append(report.Problems, problems...)
			switch {
			case active.Missing > 0:
				report.Status = StatusUnusable
			case active.Corrupt > 0:
				report.Status = StatusCorrupt
			default:
				report.Status = StatusOK
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}
