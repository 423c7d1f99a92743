package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

var (
	ErrNoCamera  = errors.New("scene has no camera")
	ErrNoLight   = errors.New("scene has no light")
	ErrImageSize = errors.New("invalid image size")
)

// Config contains rendering configuration
type Config struct {
	Width        int
	Height       int
	FOV          float64 // Horizontal field of view in degrees
	MaxDistance  float64 // Light reach and maximum ray length
	ShadowFactor float64 // Multiplier applied to shadowed contributions, in (0,1]
	Bias         float64 // Offset along the normal for secondary rays
	Attenuation  lights.Attenuation
	MaxDepth     int // Maximum reflection recursion depth
	NumWorkers   int // Number of row blocks rendered in parallel (0 = use CPU count)

	// ReflectShadowed lets shadowed surfaces still trace reflections
	ReflectShadowed bool
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          480,
		FOV:             93,
		MaxDistance:     60,
		ShadowFactor:    0.25,
		Bias:            0.001,
		Attenuation:     lights.AttenuationQuadratic,
		MaxDepth:        3,
		NumWorkers:      1,
		ReflectShadowed: true,
	}
}

// MergeConfig overlays the non-zero fields of override onto base. A
// negative MaxDepth or NumWorkers in override stands for an explicit zero.
// ReflectShadowed always comes from base.
func MergeConfig(base, override Config) Config {
	result := base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.MaxDistance != 0 {
		result.MaxDistance = override.MaxDistance
	}
	if override.ShadowFactor != 0 {
		result.ShadowFactor = override.ShadowFactor
	}
	if override.Bias != 0 {
		result.Bias = override.Bias
	}
	if override.Attenuation != 0 {
		result.Attenuation = override.Attenuation
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	} else if override.MaxDepth < 0 {
		result.MaxDepth = 0
	}
	if override.NumWorkers > 0 {
		result.NumWorkers = override.NumWorkers
	} else if override.NumWorkers < 0 {
		result.NumWorkers = 0
	}

	return result
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetLight() *lights.PointLight
	GetSurfaces() []geometry.Surface
	GetTextures() material.TextureLookup
}

// Raytracer traces primary and reflected rays against a read-only scene
type Raytracer struct {
	scene    Scene
	config   Config
	logger   core.Logger
	light    *lights.PointLight
	surfaces []geometry.Surface
	textures material.TextureLookup
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Raytracer{
		scene:    scene,
		config:   config,
		logger:   logger,
		light:    scene.GetLight(),
		surfaces: scene.GetSurfaces(),
		textures: scene.GetTextures(),
	}
}

// Config returns the configuration the raytracer renders with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// hitWorld returns the closest surface hit with t in (0, MaxDistance].
// On equal distances the earlier surface wins.
func (rt *Raytracer) hitWorld(ray core.Ray) (geometry.Surface, float64, bool) {
	var closest geometry.Surface
	closestSoFar := rt.config.MaxDistance
	hitAnything := false

	for _, surface := range rt.surfaces {
		t, isHit := surface.Hit(ray, 0, closestSoFar)
		if !isHit || t <= 0 {
			continue
		}
		if !hitAnything || t < closestSoFar {
			hitAnything = true
			closestSoFar = t
			closest = surface
		}
	}

	return closest, closestSoFar, hitAnything
}

// inShadow reports whether any shadow caster lies within (0, maxDist] along ray
func (rt *Raytracer) inShadow(ray core.Ray, maxDist float64) bool {
	for _, surface := range rt.surfaces {
		if !surface.CastsShadow() {
			continue
		}
		if t, isHit := surface.Hit(ray, 0, maxDist); isHit && t > 0 {
			return true
		}
	}
	return false
}

// Trace returns the color seen along ray. depth counts the reflections
// already followed; at MaxDepth no further reflection is traced.
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Color {
	surface, t, isHit := rt.hitWorld(ray)
	if !isHit {
		return core.Black
	}

	point := ray.At(t)
	normal := surface.NormalAt(point)
	bias := rt.config.Bias

	color := core.Black
	shadowed := false

	if rt.light != nil {
		toLight, lightDist := rt.light.RayTo(point)
		intensity := toLight.Dot(normal)

		// Facing away from the light: no direct term, reflections still apply
		if intensity > 0 {
			shadow := 1.0
			shadowRay := core.NewRay(point.Add(normal.Multiply(bias)), toLight)
			if rt.inShadow(shadowRay, lightDist) {
				shadow = rt.config.ShadowFactor
				shadowed = true
			}

			attenuation := rt.config.Attenuation.Factor(lightDist, rt.config.MaxDistance)
			weight := intensity * shadow * attenuation
			color = color.Lerp(surface.ColorAt(point, normal, rt.textures), weight)
		}
	}

	reflect := surface.Reflectivity()
	if depth >= rt.config.MaxDepth || reflect <= 0 {
		return color
	}
	if shadowed && !rt.config.ReflectShadowed {
		return color
	}

	// Offset toward the side the incoming ray arrived from
	offset := normal
	if ray.Direction.Dot(normal) > 0 {
		offset = normal.Negate()
	}
	reflectedRay := core.NewRay(point.Add(offset.Multiply(bias)), ray.Direction.Reflect(normal))
	reflected := rt.Trace(reflectedRay, depth+1)

	return color.Lerp(reflected, reflect)
}

// Render traces one primary ray per pixel and returns the finished image.
// Rows are split into static blocks rendered in parallel; the result does
// not depend on the number of workers.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	cfg := rt.config
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: %dx%d", ErrImageSize, cfg.Width, cfg.Height)
	}
	if rt.scene.GetCamera() == nil {
		return nil, RenderStats{}, ErrNoCamera
	}
	if rt.light == nil {
		return nil, RenderStats{}, ErrNoLight
	}

	fb, err := NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	// Window the camera on a private copy so shared scenes can render
	// concurrently at different sizes
	camera := *rt.scene.GetCamera()
	camera.CalculateWindow(cfg.Width, cfg.Height, geometry.PerspectiveDistance(cfg.Width, cfg.Height, cfg.FOV))

	numWorkers := EffectiveWorkers(cfg.NumWorkers, cfg.Height)
	blocks, remainder := PartitionRows(cfg.Width, cfg.Height, numWorkers)

	rt.logger.Printf("Rendering %dx%d with %d workers (%d blocks, %d remainder rows)\n",
		cfg.Width, cfg.Height, numWorkers, len(blocks), remainder.Rows())

	start := time.Now()
	blockRenderer := NewBlockRenderer(rt, &camera, fb)

	var results []BlockResult
	if numWorkers == 1 {
		results = append(results, blockRenderer.RenderBlock(blocks[0]))
	} else {
		pool := NewWorkerPool(blockRenderer, blocks)
		results = pool.Run()
	}
	if !remainder.Empty() {
		results = append(results, blockRenderer.RenderBlock(remainder))
	}

	stats := NewRenderStats(cfg.Width, cfg.Height, numWorkers, results, time.Since(start))
	rt.logger.Printf("Render complete: %s\n", stats)

	return fb, stats, nil
}
