package baseset

import (
	"context"

	"basemedia/core/checksum"
)

// Status is the outcome of checking one required file.
type Status int

const (
	// Missing means the file could not be found.
	Missing Status = iota
	// Mismatched means the file exists but its checksum differs.
	Mismatched
	// Matched means the file exists and its checksum is correct.
	Matched
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	default:
		return "missing"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Checker verifies the presence and integrity of a file within its search scope.
type Checker interface {
	Check(ctx context.Context, path string, want checksum.Digest) Status
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, path string, want checksum.Digest) Status

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context, path string, want checksum.Digest) Status {
	return f(ctx, path, want)
}
