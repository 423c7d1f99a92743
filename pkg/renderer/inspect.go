package renderer

import (
	"fmt"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// HitInfo describes what the primary ray through one pixel sees
type HitInfo struct {
	Hit      bool
	Ray      core.Ray
	Surface  geometry.Surface // nil on a miss
	Distance float64
	Point    core.Vec3
	Normal   core.Vec3
	Pigment  core.Color // Unlit surface color at Point
	Color    core.Color // Final traced color of the pixel
}

// Inspect traces the primary ray through pixel (x, y) of the configured
// image and reports the first surface hit along with the pixel color
func (rt *Raytracer) Inspect(x, y int) (HitInfo, error) {
	cfg := rt.config
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return HitInfo{}, fmt.Errorf("%w: %dx%d", ErrImageSize, cfg.Width, cfg.Height)
	}
	if x < 0 || x >= cfg.Width || y < 0 || y >= cfg.Height {
		return HitInfo{}, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, cfg.Width, cfg.Height)
	}
	if rt.scene.GetCamera() == nil {
		return HitInfo{}, ErrNoCamera
	}

	camera := *rt.scene.GetCamera()
	camera.CalculateWindow(cfg.Width, cfg.Height, geometry.PerspectiveDistance(cfg.Width, cfg.Height, cfg.FOV))
	ray := camera.RayForPixel(x, y)

	info := HitInfo{Ray: ray, Color: rt.Trace(ray, 0)}
	surface, t, isHit := rt.hitWorld(ray)
	if !isHit {
		return info, nil
	}

	info.Hit = true
	info.Surface = surface
	info.Distance = t
	info.Point = ray.At(t)
	info.Normal = surface.NormalAt(info.Point)
	info.Pigment = surface.ColorAt(info.Point, info.Normal, rt.textures)
	return info, nil
}
