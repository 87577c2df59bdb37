package spatial

import "github.com/pkg/errors"

// Errors returned by operations in this package. Returned errors wrap one of
// these sentinels with additional context; use [errors.Is] to test for them.
var (
	// ErrInvalidArgument is returned when an argument is out of range or a
	// point sequence has the wrong number of points for the operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an operation's precondition on the
	// receiver doesn't hold, such as needing at least two points to reason
	// about segments.
	ErrInvalidState = errors.New("invalid state")

	// ErrUnsupported is returned by operations that are declared but not
	// implemented.
	ErrUnsupported = errors.New("unsupported operation")
)

func needSegments(n int) error {
	if n < 2 {
		return errors.Wrapf(ErrInvalidState, "need at least 2 points, have %d", n)
	}
	return nil
}
