package loaders

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// Defaults for optional surface keys
const (
	DefaultRadius = 1.0
	DefaultSpan   = -1.0
)

// SceneFile is the decoded form of a TOML scene description:
//
//	[camera]      center, target, roll
//	[light]       center
//	[[planes]]    center, normal, scale, reflect, texture | color | checker
//	[[spheres]]   center, radius, axis, reflect, texture | color | checker
//	[[cylinders]] center, direction, radius, span, reflect, texture | color | checker
//	[render]      optional renderer settings
//
// Vectors are arrays of three numbers. Optional keys are filled with their
// defaults by ParseScene; nothing is validated beyond TOML types.
type SceneFile struct {
	Camera    *CameraSection    `toml:"camera"`
	Light     *LightSection     `toml:"light"`
	Planes    []PlaneSection    `toml:"planes"`
	Spheres   []SphereSection   `toml:"spheres"`
	Cylinders []CylinderSection `toml:"cylinders"`
	Render    *RenderSection    `toml:"render"`
}

type CameraSection struct {
	Center []float64 `toml:"center"`
	Target []float64 `toml:"target"`
	Roll   float64   `toml:"roll"` // degrees
}

type LightSection struct {
	Center []float64 `toml:"center"`
}

// PigmentSection selects a surface color source. At most one of the three
// may be set; a texture path is relative to the scene file.
type PigmentSection struct {
	Texture string          `toml:"texture"`
	Color   []float64       `toml:"color"`
	Checker *CheckerSection `toml:"checker"`
}

type CheckerSection struct {
	Even []float64 `toml:"even"`
	Odd  []float64 `toml:"odd"`
	Size float64   `toml:"size"`
}

type PlaneSection struct {
	Center  []float64 `toml:"center"`
	Normal  []float64 `toml:"normal"`
	Scale   *float64  `toml:"scale"`
	Reflect float64   `toml:"reflect"`
	PigmentSection
}

type SphereSection struct {
	Center  []float64 `toml:"center"`
	Radius  *float64  `toml:"radius"`
	Axis    []float64 `toml:"axis"`
	Reflect float64   `toml:"reflect"`
	PigmentSection
}

type CylinderSection struct {
	Center    []float64 `toml:"center"`
	Direction []float64 `toml:"direction"`
	Radius    *float64  `toml:"radius"`
	Span      *float64  `toml:"span"`
	Reflect   float64   `toml:"reflect"`
	PigmentSection
}

// RenderSection overrides renderer defaults. Absent keys stay nil.
type RenderSection struct {
	Width       *int     `toml:"width"`
	Height      *int     `toml:"height"`
	FOV         *float64 `toml:"fov"`
	Distance    *float64 `toml:"distance"`
	Shadow      *float64 `toml:"shadow"`
	Bias        *float64 `toml:"bias"`
	Attenuation *string  `toml:"attenuation"`
	Depth       *int     `toml:"depth"`
	Threads     *int     `toml:"threads"`
}

// ParseScene decodes a TOML scene and fills in defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func ParseScene(r io.Reader) (*SceneFile, error) {
	var scene SceneFile
	md, err := toml.NewDecoder(r).Decode(&scene)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("failed to parse scene: unknown keys %s", strings.Join(keys, ", "))
	}

	scene.applyDefaults()
	return &scene, nil
}

// LoadSceneFile reads and decodes a TOML scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

func (s *SceneFile) applyDefaults() {
	for i := range s.Planes {
		if s.Planes[i].Scale == nil {
			s.Planes[i].Scale = float64Ptr(geometry.DefaultPlaneScale)
		}
	}
	for i := range s.Spheres {
		if s.Spheres[i].Radius == nil {
			s.Spheres[i].Radius = float64Ptr(DefaultRadius)
		}
		if s.Spheres[i].Axis == nil {
			s.Spheres[i].Axis = []float64{0, 0, 1}
		}
	}
	for i := range s.Cylinders {
		if s.Cylinders[i].Radius == nil {
			s.Cylinders[i].Radius = float64Ptr(DefaultRadius)
		}
		if s.Cylinders[i].Span == nil {
			s.Cylinders[i].Span = float64Ptr(DefaultSpan)
		}
	}
}

// SurfaceCount returns the number of planes, spheres and cylinders
func (s *SceneFile) SurfaceCount() int {
	return len(s.Planes) + len(s.Spheres) + len(s.Cylinders)
}

// TexturePaths returns every texture path referenced, in file order
func (s *SceneFile) TexturePaths() []string {
	var paths []string
	add := func(p PigmentSection) {
		if p.Texture != "" {
			paths = append(paths, p.Texture)
		}
	}
	for _, p := range s.Planes {
		add(p.PigmentSection)
	}
	for _, sp := range s.Spheres {
		add(sp.PigmentSection)
	}
	for _, c := range s.Cylinders {
		add(c.PigmentSection)
	}
	return paths
}

func float64Ptr(v float64) *float64 {
	return &v
}
