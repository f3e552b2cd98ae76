// Package integrity provides health checks for the base media service.
//
// Unlike the 'basesets' package which manages the sets themselves, this package
// reports on what an operator has to fix.
//
// # Checks Provided
//
//   - Sets: The missing and corrupt files of the active set of every kind,
//     with the hint from the manifest telling where to get them.
//   - Structure: The storage bucket exists (storage source only) and each kind
//     has at least one manifest.
//   - Schema: The inventory tables match the store models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/sets : Runs the active set check.
//   - GET /integrity/structure : Runs the structure check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
