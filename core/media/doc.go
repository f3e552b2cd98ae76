// Package media holds the configuration of base set discovery: the source the
// sets are read from, the search root, the preferred description language and
// the set names an operator wants active for each kind.
package media
