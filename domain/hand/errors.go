package hand

import "errors"

// Every failure the package produces wraps one of these sentinel values, so
// callers can match with errors.Is regardless of the detail attached at the
// call site. All of them are recoverable by the caller; none is fatal.
var (
	// ErrInvalidRange means a structural bound is invalid: max < 1,
	// max < min, min < 0, or a pair requirement below 1.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInsufficientElements means the input is smaller than the pattern
	// or bound requires, or a removal would drop a group below its minimum.
	ErrInsufficientElements = errors.New("insufficient cards")

	// ErrExcessiveElements means the input is larger than the declared
	// maximum.
	ErrExcessiveElements = errors.New("too many cards")

	// ErrFull means an add was attempted on a saturated group.
	ErrFull = errors.New("group is full")

	// ErrEmpty means a removal was attempted on an empty group.
	ErrEmpty = errors.New("group is empty")

	// ErrNotFound means the removal target is not in the group.
	ErrNotFound = errors.New("card not found")

	// ErrInvalidDuplicateCount means the duplicate-pair structure of the
	// cards does not match the declared pattern requirement.
	ErrInvalidDuplicateCount = errors.New("duplicate count does not match")

	// ErrFeatureNotAllowed means a card variant (a wildcard) appeared where
	// the game rule forbids it.
	ErrFeatureNotAllowed = errors.New("card variant not allowed")
)
