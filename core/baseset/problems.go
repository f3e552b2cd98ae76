package baseset

// FileProblem describes a required file that is missing or corrupt.
type FileProblem struct {
	Slot    string `json:"slot"`
	Path    string `json:"path"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Problems lists the files of set that did not match their checksum.
func Problems(set *Set) []FileProblem {
	var out []FileProblem
	for _, f := range set.Files {
		if f.Status == Matched {
			continue
		}
		out = append(out, FileProblem{
			Slot:    f.Slot,
			Path:    f.Path,
			Status:  f.Status,
			Message: f.MissingMessage,
		})
	}
	return out
}
