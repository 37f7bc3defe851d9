package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates a particle whose kinematics hold NaN or Inf.
	ErrInvalidState = errors.New("scene: invalid particle state (NaN or Inf detected)")

	// ErrNoFrames indicates a run configured with no frames.
	ErrNoFrames = errors.New("scene: frames must be positive")

	// ErrEmpty indicates a scene with no particles.
	ErrEmpty = errors.New("scene: no particles")
)

// FrameError wraps an error with the frame and particle it occurred on.
type FrameError struct {
	Frame    int
	Particle int
	Wrapped  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d particle %d: %s", e.Frame, e.Particle, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
