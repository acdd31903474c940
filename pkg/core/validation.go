// pkg/core/validation.go
package core

// ValidationResult reports hard-limit checks against a FlightLoad.
// Issues are ordered by check (weight, pallet count, CoB) so downstream
// consumers and tests see deterministic output.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}
