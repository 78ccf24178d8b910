package physics

import "errors"

var (
	// ErrPlacementFailed is returned by AddBody when every placement attempt overlapped an existing body.
	ErrPlacementFailed = errors.New("physics: no free spot found for a new body")
	// ErrNoBodies is returned by RemoveBody when there is nothing to remove.
	ErrNoBodies = errors.New("physics: no body to remove")
	// ErrUnknownStrategy is returned by ParseStrategy for names other than "uniform" and "kd".
	ErrUnknownStrategy = errors.New("physics: unknown index strategy")
	// ErrInvalidBody is returned by Spawn for bodies with a non-positive radius or mass.
	ErrInvalidBody = errors.New("physics: body radius and mass must be positive")
)
