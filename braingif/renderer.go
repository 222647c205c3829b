package braingif

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// PhaseOffset is added (in degrees) to every rotation angle so that the first
// frame shows the mesh from its canonical facing direction.
const PhaseOffset = 180.0

// lightScale converts the user-facing light intensity into the emitted
// power of the point light, which falls off with the square of distance.
const lightScale = 10000.0

// RenderOptions configures the camera, lighting and raster size used to
// render the frames of an animation.
type RenderOptions struct {
	// Frames is the number of evenly spaced rotation steps covering a full
	// turn.
	Frames int

	Width  int
	Height int

	// Radius is the distance of the camera from the origin.
	Radius float64

	// FOV is the camera field of view in degrees.
	FOV float64

	// Light scales the intensity of the point light.
	Light float64

	// LightAngle offsets the light from the camera along the X and Z axes.
	LightAngle [2]float64

	// Background is the RGB clear colour, with components in [0, 255].
	Background [3]int

	// Supersample renders each frame at this multiple of the output size and
	// downscales the result. A value of 1 disables supersampling.
	Supersample int
}

// DefaultRenderOptions returns the options used for brain renders.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Frames:      180,
		Width:       640,
		Height:      480,
		Radius:      190,
		FOV:         60,
		Light:       8,
		LightAngle:  [2]float64{80, 80},
		Background:  [3]int{0, 0, 0},
		Supersample: 1,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if the options cannot
// produce a valid animation.
func (r *RenderOptions) Validate() error {
	switch {
	case r.Frames <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame count must be positive, got %d", r.Frames)
	case r.Width <= 0 || r.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "image size must be positive, got %dx%d",
			r.Width, r.Height)
	case r.Radius <= 0 || math.IsNaN(r.Radius) || math.IsInf(r.Radius, 0):
		return errors.Wrapf(ErrInvalidConfig, "camera radius must be positive, got %f", r.Radius)
	case !(r.FOV > 0 && r.FOV < 180):
		return errors.Wrapf(ErrInvalidConfig, "field of view must be in (0, 180), got %f", r.FOV)
	case !(r.Light >= 0) || math.IsInf(r.Light, 0):
		return errors.Wrapf(ErrInvalidConfig, "light intensity must be non-negative, got %f",
			r.Light)
	case r.Supersample < 1:
		return errors.Wrapf(ErrInvalidConfig, "supersample factor must be at least 1, got %d",
			r.Supersample)
	}
	for _, c := range r.Background {
		if c < 0 || c > 255 {
			return errors.Wrapf(ErrInvalidConfig, "background component out of range: %v",
				r.Background)
		}
	}
	return nil
}

func (r *RenderOptions) backgroundColor() render3d.Color {
	return render3d.NewColorRGB(
		float64(r.Background[0])/255,
		float64(r.Background[1])/255,
		float64(r.Background[2])/255,
	)
}

// Angles returns n rotation angles in degrees, evenly spaced over a full turn
// and strictly increasing from zero.
//
// Unlike an integer step of 360/n, this always yields exactly n angles, even
// when n does not divide 360.
func Angles(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i) * 360 / float64(n)
	}
	return res
}

// A FrameRenderer renders a mesh rotating about the Z axis as seen by a fixed
// perspective camera lit by a single point light.
//
// The scene, camera, light and ray caster are created once and reused for
// every frame.
type FrameRenderer struct {
	opts   RenderOptions
	scene  *Scene
	caster *render3d.RayCaster
	logger *zap.Logger
}

// NewFrameRenderer validates opts and sets up a scene for the mesh.
func NewFrameRenderer(mesh *model3d.Mesh, opts RenderOptions,
	logger *zap.Logger) (*FrameRenderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if mesh == nil {
		return nil, errors.Wrap(ErrInvalidMesh, "nil mesh")
	}
	camera := render3d.NewCameraAt(
		model3d.Y(-opts.Radius),
		model3d.Origin,
		cameraFOV(opts.FOV, opts.Width, opts.Height),
	)
	// Mirror the image horizontally so that world +X appears on the left.
	// Negating the field of view keeps the camera facing the origin.
	camera.ScreenX = camera.ScreenX.Scale(-1)
	camera.FieldOfView = -camera.FieldOfView
	light := &render3d.PointLight{
		Origin:      model3d.XYZ(opts.LightAngle[0], -opts.Radius, opts.LightAngle[1]),
		Color:       render3d.NewColor(opts.Light * lightScale),
		QuadDropoff: true,
	}
	return &FrameRenderer{
		opts:  opts,
		scene: NewScene(mesh, opts.backgroundColor()),
		caster: &render3d.RayCaster{
			Camera: camera,
			Lights: []*render3d.PointLight{light},
		},
		logger: orNop(logger),
	}, nil
}

// cameraFOV converts a vertical field of view in degrees into the angle (in
// radians) render3d expects, which spans the larger side of the image.
func cameraFOV(fovY float64, width, height int) float64 {
	rad := fovY * math.Pi / 180
	if width > height {
		return 2 * math.Atan(math.Tan(rad/2)*float64(width)/float64(height))
	}
	return rad
}

// RenderFrame renders the mesh rotated by angle degrees (plus PhaseOffset)
// about the Z axis.
func (f *FrameRenderer) RenderFrame(angle float64) (*image.RGBA, error) {
	k := f.opts.Supersample
	pose := model3d.Rotation(model3d.Z(1), (angle+PhaseOffset)*math.Pi/180)

	var frame *image.RGBA
	err := f.scene.WithMesh(pose, func() error {
		img := render3d.NewImage(f.opts.Width*k, f.opts.Height*k)
		f.caster.Render(img, f.scene)
		frame = img.RGBA()
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "render frame at %f degrees", angle)
	}
	if k > 1 {
		small := image.NewRGBA(image.Rect(0, 0, f.opts.Width, f.opts.Height))
		draw.CatmullRom.Scale(small, small.Bounds(), frame, frame.Bounds(), draw.Src, nil)
		frame = small
	}
	return frame, nil
}

// Render produces one frame per angle in Angles(Frames), in
// increasing angle order.
func (f *FrameRenderer) Render() ([]image.Image, error) {
	angles := Angles(f.opts.Frames)
	frames := make([]image.Image, 0, len(angles))
	logEvery := len(angles) / 10
	if logEvery == 0 {
		logEvery = 1
	}
	for i, angle := range angles {
		frame, err := f.RenderFrame(angle)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
		if (i+1)%logEvery == 0 || i+1 == len(angles) {
			f.logger.Info("rendered frames", zap.Int("done", i+1), zap.Int("total", len(angles)))
		} else {
			f.logger.Debug("rendered frame", zap.Int("index", i), zap.Float64("angle", angle))
		}
	}
	return frames, nil
}
