// Package store persists base set scan results with GORM.
//
// Each rescan replaces the inventory rows of a kind ('base_sets') so operators
// can query what was found without hitting the service. The selected set of
// each kind is kept in 'base_set_selections' and restored on the next start
// when neither a previous selection nor a configured name applies.
package store
