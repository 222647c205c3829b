package braingif

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned for numeric or geometric options that
	// cannot produce a valid animation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMesh is returned when a mesh file is missing, corrupt, or
	// contains no usable triangles.
	ErrInvalidMesh = errors.New("invalid mesh")

	// ErrSceneOccupied is returned when a mesh node is added to a scene
	// which already holds one.
	ErrSceneOccupied = errors.New("scene already holds a mesh node")

	ErrNoFrames        = errors.New("no frames to encode")
	ErrScratchNotEmpty = errors.New("scratch directory is not empty")
	ErrEncoderNotFound = errors.New("external encoder not found")
	ErrEncodeFailed    = errors.New("external encoder failed")
)
