package baseset

import (
	"fmt"
	"io"
	"strings"
)

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// WriteList writes the human-readable listing of the visible sets to w.
func (r *Registry) WriteList(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "List of %s sets:\n", r.kind.Name); err != nil {
		return err
	}
	for _, s := range r.Visible() {
		line := fmt.Sprintf("%18s: %s", s.Name, s.Description(r.language))
		if invalid := s.NumInvalid(); invalid != 0 {
			if missing := s.NumMissing(); missing == 0 {
				line += fmt.Sprintf(" (%d corrupt file%s)", invalid, plural(invalid))
			} else {
				line += fmt.Sprintf(" (unusable: %d missing file%s)", missing, plural(missing))
			}
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// List returns the listing written by WriteList.
func (r *Registry) List() string {
	var b strings.Builder
	_ = r.WriteList(&b)
	return b.String()
}
