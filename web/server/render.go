package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/loaders"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Request limits
const (
	minSize, maxSize = 100, 2000
	maxBodyBytes     = 1 << 20
)

var contentTypes = map[renderer.Format]string{
	renderer.FormatPNG:  "image/png",
	renderer.FormatJPEG: "image/jpeg",
	renderer.FormatBMP:  "image/bmp",
	renderer.FormatTIFF: "image/tiff",
}

// handleRender renders a built-in or listed scene file and returns the image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneObj, status, err := s.loadScene(r.URL.Query())
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	s.render(w, r, sceneObj)
}

// handleRenderTOML renders a scene file posted as the request body.
// Textures resolve against the server's scene directory and may not
// leave it.
func (s *Server) handleRenderTOML(w http.ResponseWriter, r *http.Request) {
	file, err := loaders.ParseScene(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, path := range file.TexturePaths() {
		if !filepath.IsLocal(path) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("texture path %q must be relative to the scene directory", path))
			return
		}
	}

	sceneObj, err := scene.BuildScene("request", file, s.scenesDir, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.render(w, r, sceneObj)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, sceneObj *scene.Scene) {
	config, err := parseRenderConfig(r.URL.Query(), sceneObj.RenderConfig(renderer.DefaultConfig()))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	format := renderer.FormatPNG
	if name := r.URL.Query().Get("format"); name != "" {
		format, err = renderer.FormatFromPath("image." + name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	fb, stats, err := renderer.NewRaytracer(sceneObj, config, s.logger).Render()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := renderer.EncodeImage(&buf, fb.ToImage(), format); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.WallTime.Milliseconds(), 10))
	w.Header().Set("X-Render-Workers", strconv.Itoa(stats.Workers))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderConfig overrides base with the render parameters present in
// values
func parseRenderConfig(values url.Values, base renderer.Config) (renderer.Config, error) {
	config := base
	var err error
	if config.Width, err = parseIntParam(values, "width", config.Width, minSize, maxSize); err != nil {
		return base, err
	}
	if config.Height, err = parseIntParam(values, "height", config.Height, minSize, maxSize); err != nil {
		return base, err
	}
	if config.FOV, err = parseFloatParam(values, "fov", config.FOV, 50, 170); err != nil {
		return base, err
	}
	if config.MaxDistance, err = parseFloatParam(values, "distance", config.MaxDistance, 0.1, 10000); err != nil {
		return base, err
	}
	if config.ShadowFactor, err = parseFloatParam(values, "shadow", config.ShadowFactor, 0.01, 1); err != nil {
		return base, err
	}
	if config.MaxDepth, err = parseIntParam(values, "depth", config.MaxDepth, renderer.MinDepth, renderer.MaxDepth); err != nil {
		return base, err
	}
	if config.NumWorkers, err = parseIntParam(values, "threads", config.NumWorkers, renderer.MinWorkers, renderer.MaxWorkers); err != nil {
		return base, err
	}
	if name := values.Get("attenuation"); name != "" {
		if config.Attenuation, err = lights.ParseAttenuation(name); err != nil {
			return base, err
		}
	}
	if value := values.Get("reflectShadowed"); value != "" {
		if config.ReflectShadowed, err = strconv.ParseBool(strings.TrimSpace(value)); err != nil {
			return base, fmt.Errorf("invalid reflectShadowed: %s", value)
		}
	}

	// Scene files may carry settings the query cannot
	switch {
	case config.Width < minSize || config.Width > maxSize:
		return base, fmt.Errorf("width %d must be between %d and %d", config.Width, minSize, maxSize)
	case config.Height < minSize || config.Height > maxSize:
		return base, fmt.Errorf("height %d must be between %d and %d", config.Height, minSize, maxSize)
	case config.MaxDepth < renderer.MinDepth || config.MaxDepth > renderer.MaxDepth:
		return base, fmt.Errorf("depth %d must be between %d and %d", config.MaxDepth, renderer.MinDepth, renderer.MaxDepth)
	case config.NumWorkers < renderer.MinWorkers || config.NumWorkers > renderer.MaxWorkers:
		return base, fmt.Errorf("threads %d must be between %d and %d", config.NumWorkers, renderer.MinWorkers, renderer.MaxWorkers)
	}
	return config, nil
}
