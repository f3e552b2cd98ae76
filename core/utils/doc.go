// Package utils provides small type conversion helpers shared by the manifest
// reader and the HTTP handlers.
package utils
