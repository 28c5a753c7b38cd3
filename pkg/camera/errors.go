package camera

import "errors"

var (
	ErrDegenerateView     = errors.New("camera: position and view target are too close together")
	ErrInvalidFocalLength = errors.New("camera: focal length must be positive")
	ErrInvalidResolution  = errors.New("camera: image resolution must be at least 1x1")
)
