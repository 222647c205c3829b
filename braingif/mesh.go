package braingif

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

// LoadMesh reads an STL file into a mesh.
//
// Degenerate (zero-area) triangles are dropped, since they have no surface to
// shade. An error wrapping ErrInvalidMesh is returned if the file cannot be
// read or no triangles remain.
func LoadMesh(path string, logger *zap.Logger) (*model3d.Mesh, error) {
	logger = orNop(logger)

	tris, err := Load(path, model3d.ReadSTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMesh, err)
	}
	mesh := model3d.NewMeshTriangles(tris)
	removed := 0
	mesh.Iterate(func(t *model3d.Triangle) {
		if t.Area() == 0 {
			removed++
			mesh.Remove(t)
		}
	})
	if removed > 0 {
		logger.Info("removed invalid triangles", zap.Int("count", removed))
	}
	if mesh.NumTriangles() == 0 {
		return nil, errors.Wrapf(ErrInvalidMesh, "%s contains no triangles", path)
	}
	return mesh, nil
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// FitRadius returns the smallest camera distance at which a camera with the
// given vertical field of view (in degrees), looking at the origin, sees the
// whole mesh in every rotation about the Z axis.
//
// For portrait images the horizontal field of view is the narrower one and
// limits the distance instead.
func FitRadius(mesh *model3d.Mesh, fov float64, width, height int) (float64, error) {
	if !(fov > 0 && fov < 180) {
		return 0, errors.Wrapf(ErrInvalidConfig, "field of view must be in (0, 180), got %f", fov)
	}
	if width <= 0 || height <= 0 {
		return 0, errors.Wrapf(ErrInvalidConfig, "invalid image size %dx%d", width, height)
	}
	var extent float64
	mesh.IterateVertices(func(c model3d.Coord3D) {
		extent = math.Max(extent, c.Norm())
	})
	aspect := math.Min(1, float64(width)/float64(height))
	halfAngle := math.Atan(math.Tan(fov*math.Pi/360) * aspect)
	return extent / math.Sin(halfAngle), nil
}
