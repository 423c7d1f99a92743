package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/material"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	PigmentType  string                 `json:"pigmentType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Reflect      float64                `json:"reflect"`
	CastsShadow  bool                   `json:"castsShadow"`
	Color        string                 `json:"color"` // Final pixel color
	Properties   map[string]interface{} `json:"properties"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	rgba := c.ToRGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// extractPigmentInfo describes the color source of a surface
func extractPigmentInfo(pigment material.Pigment) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch p := pigment.(type) {
	case *material.SolidColor:
		properties["color"] = hexColor(p.Color)
		return "color", properties

	case *material.Checker:
		properties["even"] = hexColor(p.Even)
		properties["odd"] = hexColor(p.Odd)
		properties["size"] = p.Size
		return "checker", properties

	case *material.ImageTexture:
		properties["handle"] = int(p.Handle)
		return "texture", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(surface geometry.Surface) map[string]interface{} {
	properties := make(map[string]interface{})

	switch geom := surface.(type) {
	case *geometry.Plane:
		properties["center"] = vecArray(geom.Center)
		properties["normal"] = vecArray(geom.Normal)
		properties["scale"] = geom.Scale

	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["axis"] = vecArray(geom.Axis)

	case *geometry.Cylinder:
		properties["center"] = vecArray(geom.Center)
		properties["axis"] = vecArray(geom.Axis)
		properties["radius"] = geom.Radius
		properties["finite"] = geom.Finite()
		if geom.Finite() {
			properties["span"] = geom.Span
		}
	}

	return properties
}

// handleInspect traces the primary ray through one pixel and describes the
// surface it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneObj, status, err := s.loadScene(query)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	config, err := parseRenderConfig(query, sceneObj.RenderConfig(renderer.DefaultConfig()))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= config.Width || pixelY < 0 || pixelY >= config.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	info, err := renderer.NewRaytracer(sceneObj, config, nil).Inspect(pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !info.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: hexColor(info.Color)})
		return
	}

	pigmentType, pigmentProps := "unknown", map[string]interface{}{}
	if p, ok := info.Surface.(interface{ Pigment() material.Pigment }); ok {
		pigmentType, pigmentProps = extractPigmentInfo(p.Pigment())
	}
	pigmentProps["sampled"] = hexColor(info.Pigment)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		PigmentType:  pigmentType,
		GeometryType: info.Surface.Kind().String(),
		Point:        vecArray(info.Point),
		Normal:       vecArray(info.Normal),
		Distance:     info.Distance,
		Reflect:      info.Surface.Reflectivity(),
		CastsShadow:  info.Surface.CastsShadow(),
		Color:        hexColor(info.Color),
		Properties: map[string]interface{}{
			"pigment":  pigmentProps,
			"geometry": extractGeometryInfo(info.Surface),
		},
	})
}
