package baseset

// Kind describes one family of base sets.
type Kind struct {
	// Name is the label used in diagnostics and listings (e.g. "graphics").
	Name string
	// Extension is the manifest file extension, including the dot.
	Extension string
	// Files lists the required file slots in declaration order.
	Files []string
	// AllowEmpty permits a slot to be declared without a file.
	AllowEmpty bool
}

// NumFiles returns the number of file slots of the kind.
func (k Kind) NumFiles() int {
	return len(k.Files)
}
