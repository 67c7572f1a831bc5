package orbit

import (
	"errors"
	"strconv"
)

// Sentinel errors for dataset loading and validation.
var (
	// ErrSchemaVersion indicates a dataset version outside the supported range.
	ErrSchemaVersion = errors.New("unsupported dataset version")
	// ErrMissingField indicates a required field (key, text) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrAngleRange indicates a base angle outside [0,360).
	ErrAngleRange = errors.New("angle out of range")
	// ErrDuplicateMap indicates two maps share a key.
	ErrDuplicateMap = errors.New("duplicate map key")
	// ErrDuplicateRing indicates two rings share an id.
	ErrDuplicateRing = errors.New("duplicate ring id")
	// ErrNoMap indicates a lookup for a map key that does not exist.
	ErrNoMap = errors.New("map not found")
	// ErrEmptyMap indicates an attempt to select a map with no items.
	ErrEmptyMap = errors.New("map has no items")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	ValCatVersion      ValidationCategory = "version"
	ValCatMissingField ValidationCategory = "missing_field"
	ValCatUnknownRing  ValidationCategory = "unknown_ring"
	ValCatAngle        ValidationCategory = "angle"
	ValCatDuplicate    ValidationCategory = "duplicate"
	ValCatBounds       ValidationCategory = "bounds"
)

// ValidationError records one problem found in a dataset.
type ValidationError struct {
	Category ValidationCategory
	MapKey   string
	Index    int // item index within the map, -1 when not item-specific
	Field    string
	Err      error
}

// Error returns a human-readable string with map and item context.
func (e *ValidationError) Error() string {
	switch {
	case e.MapKey != "" && e.Index >= 0:
		return "map " + e.MapKey + ": item " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
	case e.MapKey != "":
		return "map " + e.MapKey + ": " + e.Err.Error()
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
