package async

import "errors"

var (
	// ErrTimeout is returned when AwaitWithTimeout exceeds its duration
	// before the computation completes.
	ErrTimeout = errors.New("await timed out")

	// ErrNoFutures is returned when a coordination function is called with
	// no futures to wait on.
	ErrNoFutures = errors.New("no futures provided")
)
