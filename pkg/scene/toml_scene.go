package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/loaders"
	"github.com/df07/go-mirror-raytracer/pkg/material"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/texture"
)

// Scene validation errors, one per failure class of a scene file
var (
	ErrNoCamera      = errors.New("no camera defined")
	ErrNoLight       = errors.New("no light defined")
	ErrNoSurfaces    = errors.New("no surfaces defined")
	ErrCameraParam   = errors.New("invalid camera parameter")
	ErrLightParam    = errors.New("invalid light parameter")
	ErrPlaneParam    = errors.New("invalid plane parameter")
	ErrSphereParam   = errors.New("invalid sphere parameter")
	ErrCylinderParam = errors.New("invalid cylinder parameter")
	ErrTexture       = errors.New("invalid texture")
	ErrRenderParam   = errors.New("invalid render parameter")
)

// NewSceneFromFile loads a TOML scene. Texture paths are resolved relative
// to the scene file and loaded through registry, which deduplicates them;
// a nil registry gets a fresh one backed by loaders.LoadTexture.
func NewSceneFromFile(path string, registry *texture.Registry) (*Scene, error) {
	file, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := BuildScene(name, file, filepath.Dir(path), registry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// NewSceneFromTOML parses a TOML scene from r. Texture paths are resolved
// against baseDir.
func NewSceneFromTOML(name string, r io.Reader, baseDir string, registry *texture.Registry) (*Scene, error) {
	file, err := loaders.ParseScene(r)
	if err != nil {
		return nil, err
	}
	return BuildScene(name, file, baseDir, registry)
}

// BuildScene validates a decoded scene file and builds the scene
func BuildScene(name string, file *loaders.SceneFile, baseDir string, registry *texture.Registry) (*Scene, error) {
	if registry == nil {
		registry = texture.NewRegistry(loaders.LoadTexture)
	}
	b := &sceneBuilder{baseDir: baseDir, registry: registry}

	s := NewScene(name, registry)

	camera, err := b.camera(file.Camera)
	if err != nil {
		return nil, err
	}
	s.Camera = camera

	light, err := b.light(file.Light)
	if err != nil {
		return nil, err
	}
	s.Light = light

	for i, p := range file.Planes {
		plane, err := b.plane(p)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		s.Add(plane)
	}
	for i, sp := range file.Spheres {
		sphere, err := b.sphere(sp)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Add(sphere)
	}
	for i, c := range file.Cylinders {
		cylinder, err := b.cylinder(c)
		if err != nil {
			return nil, fmt.Errorf("cylinder %d: %w", i, err)
		}
		s.Add(cylinder)
	}
	if len(s.Surfaces) == 0 {
		return nil, ErrNoSurfaces
	}

	if file.Render != nil {
		config, err := renderOverrides(file.Render)
		if err != nil {
			return nil, err
		}
		s.Config = config
	}

	return s, nil
}

type sceneBuilder struct {
	baseDir  string
	registry *texture.Registry
}

func (b *sceneBuilder) camera(c *loaders.CameraSection) (*geometry.Camera, error) {
	if c == nil {
		return nil, ErrNoCamera
	}
	eye, err := vec3(c.Center, "center", ErrCameraParam)
	if err != nil {
		return nil, err
	}
	target, err := vec3(c.Target, "target", ErrCameraParam)
	if err != nil {
		return nil, err
	}
	if target.Subtract(eye).Length() == 0 {
		return nil, fmt.Errorf("%w: target equals center", ErrCameraParam)
	}
	// Looking straight along the z axis leaves no right vector
	if forward := target.Subtract(eye).Normalize(); forward.Cross(core.NewVec3(0, 0, 1)).Length() == 0 {
		return nil, fmt.Errorf("%w: view direction is parallel to the z axis", ErrCameraParam)
	}
	if !finite(c.Roll) {
		return nil, fmt.Errorf("%w: roll", ErrCameraParam)
	}
	return geometry.NewCamera(eye, target, c.Roll), nil
}

func (b *sceneBuilder) light(l *loaders.LightSection) (*lights.PointLight, error) {
	if l == nil {
		return nil, ErrNoLight
	}
	center, err := vec3(l.Center, "center", ErrLightParam)
	if err != nil {
		return nil, err
	}
	return lights.NewPointLight(center), nil
}

func (b *sceneBuilder) plane(p loaders.PlaneSection) (*geometry.Plane, error) {
	center, err := vec3(p.Center, "center", ErrPlaneParam)
	if err != nil {
		return nil, err
	}
	normal, err := direction(p.Normal, "normal", ErrPlaneParam)
	if err != nil {
		return nil, err
	}
	if err := reflectivity(p.Reflect, ErrPlaneParam); err != nil {
		return nil, err
	}
	if !finite(*p.Scale) {
		return nil, fmt.Errorf("%w: scale", ErrPlaneParam)
	}
	pigment, err := b.pigment(p.PigmentSection, ErrPlaneParam)
	if err != nil {
		return nil, err
	}
	return geometry.NewPlane(center, normal, *p.Scale, p.Reflect, pigment), nil
}

func (b *sceneBuilder) sphere(s loaders.SphereSection) (*geometry.Sphere, error) {
	center, err := vec3(s.Center, "center", ErrSphereParam)
	if err != nil {
		return nil, err
	}
	axis, err := direction(s.Axis, "axis", ErrSphereParam)
	if err != nil {
		return nil, err
	}
	if !finite(*s.Radius) || *s.Radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", ErrSphereParam)
	}
	if err := reflectivity(s.Reflect, ErrSphereParam); err != nil {
		return nil, err
	}
	pigment, err := b.pigment(s.PigmentSection, ErrSphereParam)
	if err != nil {
		return nil, err
	}
	return geometry.NewSphere(center, *s.Radius, axis, s.Reflect, pigment), nil
}

func (b *sceneBuilder) cylinder(c loaders.CylinderSection) (*geometry.Cylinder, error) {
	center, err := vec3(c.Center, "center", ErrCylinderParam)
	if err != nil {
		return nil, err
	}
	axis, err := direction(c.Direction, "direction", ErrCylinderParam)
	if err != nil {
		return nil, err
	}
	if !finite(*c.Radius) || *c.Radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", ErrCylinderParam)
	}
	if !finite(*c.Span) {
		return nil, fmt.Errorf("%w: span", ErrCylinderParam)
	}
	if err := reflectivity(c.Reflect, ErrCylinderParam); err != nil {
		return nil, err
	}
	pigment, err := b.pigment(c.PigmentSection, ErrCylinderParam)
	if err != nil {
		return nil, err
	}
	return geometry.NewCylinder(center, axis, *c.Radius, *c.Span, c.Reflect, pigment), nil
}

// pigment resolves the color source of a surface: a texture, a flat color
// or a checkerboard. A surface without any renders black.
func (b *sceneBuilder) pigment(p loaders.PigmentSection, paramErr error) (material.Pigment, error) {
	set := 0
	for _, present := range []bool{p.Texture != "", p.Color != nil, p.Checker != nil} {
		if present {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("%w: texture, color and checker are exclusive", paramErr)
	}

	switch {
	case p.Texture != "":
		path := p.Texture
		if !filepath.IsAbs(path) && b.baseDir != "" {
			path = filepath.Join(b.baseDir, path)
		}
		h, err := b.registry.Add(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTexture, err)
		}
		return material.NewImageTexture(h), nil

	case p.Color != nil:
		c, err := color(p.Color, "color", paramErr)
		if err != nil {
			return nil, err
		}
		return material.NewSolidColor(c), nil

	case p.Checker != nil:
		even, err := color(p.Checker.Even, "checker.even", paramErr)
		if err != nil {
			return nil, err
		}
		odd, err := color(p.Checker.Odd, "checker.odd", paramErr)
		if err != nil {
			return nil, err
		}
		if !finite(p.Checker.Size) || p.Checker.Size <= 0 {
			return nil, fmt.Errorf("%w: checker.size must be positive", paramErr)
		}
		return material.NewChecker(even, odd, p.Checker.Size), nil
	}

	return material.NewSolidColor(core.Black), nil
}

// renderOverrides converts a [render] table to a config whose zero fields
// are unset. An explicit depth or threads of 0 becomes -1, which
// renderer.MergeConfig reads as zero.
func renderOverrides(r *loaders.RenderSection) (renderer.Config, error) {
	var config renderer.Config

	if r.Width != nil {
		if *r.Width < renderer.MinWidth || *r.Width > renderer.MaxWidth {
			return config, fmt.Errorf("%w: width must be in [%d, %d]", ErrRenderParam, renderer.MinWidth, renderer.MaxWidth)
		}
		config.Width = *r.Width
	}
	if r.Height != nil {
		if *r.Height < renderer.MinHeight || *r.Height > renderer.MaxHeight {
			return config, fmt.Errorf("%w: height must be in [%d, %d]", ErrRenderParam, renderer.MinHeight, renderer.MaxHeight)
		}
		config.Height = *r.Height
	}
	if r.FOV != nil {
		if !(*r.FOV >= renderer.MinFOV && *r.FOV <= renderer.MaxFOV) {
			return config, fmt.Errorf("%w: fov must be in [%g, %g]", ErrRenderParam, renderer.MinFOV, renderer.MaxFOV)
		}
		config.FOV = *r.FOV
	}
	if r.Distance != nil {
		if *r.Distance <= 0 {
			return config, fmt.Errorf("%w: distance must be positive", ErrRenderParam)
		}
		config.MaxDistance = *r.Distance
	}
	if r.Shadow != nil {
		if *r.Shadow <= 0 || *r.Shadow > 1 {
			return config, fmt.Errorf("%w: shadow must be in (0, 1]", ErrRenderParam)
		}
		config.ShadowFactor = *r.Shadow
	}
	if r.Bias != nil {
		if *r.Bias <= 0 {
			return config, fmt.Errorf("%w: bias must be positive", ErrRenderParam)
		}
		config.Bias = *r.Bias
	}
	if r.Attenuation != nil {
		model, err := lights.ParseAttenuation(*r.Attenuation)
		if err != nil {
			return config, fmt.Errorf("%w: %w", ErrRenderParam, err)
		}
		config.Attenuation = model
	}
	if r.Depth != nil {
		if *r.Depth < renderer.MinDepth || *r.Depth > renderer.MaxDepth {
			return config, fmt.Errorf("%w: depth must be in [%d, %d]", ErrRenderParam, renderer.MinDepth, renderer.MaxDepth)
		}
		config.MaxDepth = explicitZero(*r.Depth)
	}
	if r.Threads != nil {
		if *r.Threads < renderer.MinWorkers || *r.Threads > renderer.MaxWorkers {
			return config, fmt.Errorf("%w: threads must be in [%d, %d]", ErrRenderParam, renderer.MinWorkers, renderer.MaxWorkers)
		}
		config.NumWorkers = explicitZero(*r.Threads)
	}

	return config, nil
}

func explicitZero(v int) int {
	if v == 0 {
		return -1
	}
	return v
}

func vec3(values []float64, key string, paramErr error) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", paramErr, key, len(values))
	}
	for _, v := range values {
		if !finite(v) {
			return core.Vec3{}, fmt.Errorf("%w: %s is not finite", paramErr, key)
		}
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func direction(values []float64, key string, paramErr error) (core.Vec3, error) {
	v, err := vec3(values, key, paramErr)
	if err != nil {
		return v, err
	}
	if v.Length() == 0 {
		return v, fmt.Errorf("%w: %s has zero length", paramErr, key)
	}
	return v, nil
}

func color(values []float64, key string, paramErr error) (core.Color, error) {
	v, err := vec3(values, key, paramErr)
	if err != nil {
		return core.Black, err
	}
	return core.NewColor(v.X, v.Y, v.Z), nil
}

func reflectivity(r float64, paramErr error) error {
	if !finite(r) || r < 0 || r > 1 {
		return fmt.Errorf("%w: reflect must be in [0, 1], got %v", paramErr, r)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
