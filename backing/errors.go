package backing

import "errors"

var (
	// ErrSectionNotFound signals an absent section key used as an anchor or
	// query argument.
	ErrSectionNotFound = errors.New("backing: section not found")
	// ErrItemNotFound signals an absent item identifier used as an anchor.
	ErrItemNotFound = errors.New("backing: item not found")
	// ErrNoSections signals an item append into a structure without sections.
	ErrNoSections = errors.New("backing: structure has no sections")
	// ErrDuplicateItem signals an insert that would duplicate an item
	// identifier somewhere in the structure.
	ErrDuplicateItem = errors.New("backing: duplicate item identifier")
	// ErrDuplicateSection signals an insert that would duplicate a section key.
	ErrDuplicateSection = errors.New("backing: duplicate section key")
	// ErrIllegalArguments signals invalid mutation parameters, e.g. moving an
	// element relative to itself.
	ErrIllegalArguments = errors.New("backing: illegal arguments")
	// ErrInvariantViolation is reported by Check for corrupted structures.
	ErrInvariantViolation = errors.New("backing: invariant violation")
)
