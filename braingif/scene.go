package braingif

import (
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
)

// backdropDistance is the ray scale at which the backdrop is hit. It must be
// finite so that lighting terms stay well defined.
const backdropDistance = 1e6

// A Scene composes a static mesh with a background colour and at most one
// posed copy of the mesh (the mesh node).
//
// A Scene implements render3d.Object. Rays which miss the mesh node hit an
// emissive backdrop of the background colour, which plays the role of the
// renderer's clear colour.
type Scene struct {
	mesh     *model3d.Mesh
	node     render3d.Object
	backdrop render3d.Material
}

// NewScene creates an empty scene for the mesh.
//
// The background is given as RGB components in [0, 1].
func NewScene(mesh *model3d.Mesh, background render3d.Color) *Scene {
	return &Scene{
		mesh:     mesh,
		backdrop: &render3d.LambertMaterial{EmissionColor: background},
	}
}

// WithMesh adds the mesh to the scene at the given pose, calls f, and removes
// the mesh node again before returning, even if f fails.
//
// The scene may only ever hold a single mesh node, so nested calls fail with
// ErrSceneOccupied.
func (s *Scene) WithMesh(pose model3d.Transform, f func() error) error {
	if s.hasMesh() {
		return ErrSceneOccupied
	}
	s.node = render3d.Objectify(s.mesh.Transform(pose), nil)
	defer func() {
		s.node = nil
	}()
	return f()
}

// hasMesh reports whether a mesh node is currently in the scene.
func (s *Scene) hasMesh() bool {
	return s.node != nil
}

func (s *Scene) Min() model3d.Coord3D {
	if !s.hasMesh() {
		return s.mesh.Min()
	}
	return s.node.Min()
}

func (s *Scene) Max() model3d.Coord3D {
	if !s.hasMesh() {
		return s.mesh.Max()
	}
	return s.node.Max()
}

func (s *Scene) Cast(r *model3d.Ray) (model3d.RayCollision, render3d.Material, bool) {
	if s.hasMesh() {
		if rc, mat, ok := s.node.Cast(r); ok {
			return rc, mat, true
		}
	}
	return model3d.RayCollision{
		Scale:  backdropDistance,
		Normal: r.Direction.Scale(-1),
	}, s.backdrop, true
}
