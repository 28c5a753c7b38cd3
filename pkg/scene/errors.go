package scene

import "errors"

var (
	ErrNoEmitters      = errors.New("scene: no emitters")
	ErrUnknownScene    = errors.New("scene: unknown scene")
	ErrUnknownMaterial = errors.New("scene: unknown material")
)
