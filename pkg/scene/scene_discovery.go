package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-mirror-raytracer/pkg/texture"
)

// ErrUnknownScene is returned for scene IDs that match nothing
var ErrUnknownScene = errors.New("unknown scene")

const (
	builtinGroup = "Built-in Scenes"
	tomlPrefix   = "toml:"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "toml"
	FilePath    string `json:"filePath"`    // Path to TOML file (toml type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Textured room corner with a pillar and three balls",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "mirrors",
			Name:        "Mirrors",
			Description: "Two facing mirrors with balls between them",
		},
		build: NewMirrorScene,
	},
	{
		info: SceneInfo{
			ID:          "plane",
			Name:        "Checkered Plane",
			Description: "Two-color plane with a reflective ball",
		},
		build: NewPlaneScene,
	},
}

// BuiltinSceneInfos returns the metadata of every built-in scene
func BuiltinSceneInfos() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = "builtin"
		infos[i] = info
	}
	return infos
}

// NewBuiltinScene creates the built-in scene with the given ID
func NewBuiltinScene(id string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// LoadScene resolves a scene ID as listed by ListAllScenes: a built-in ID,
// or "toml:<name>" for <name>.toml inside scenesDir
func LoadScene(id, scenesDir string, registry *texture.Registry) (*Scene, error) {
	name, isFile := strings.CutPrefix(id, tomlPrefix)
	if !isFile {
		return NewBuiltinScene(id)
	}

	// Names are plain file names, never paths
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	path := filepath.Join(scenesDir, name+".toml")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return NewSceneFromFile(path, registry)
}

// ListTOMLScenes scans dir and returns discovered TOML scenes. A missing
// directory yields an empty list.
func ListTOMLScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseTOMLMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseTOMLMetadata extracts metadata from the header comments of a scene file:
//
//	# Scene: Two Mirrors
//	# Variant: Deep
//	# Description: ...
//	# Group: ...
func ParseTOMLMetadata(filePath string) (SceneInfo, error) {
	// Extract filename without extension for fallback values
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          tomlPrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files",
		Type:        "toml",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// If we can't read the file, return with fallback values
		return sceneInfo, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if key, value, ok := strings.Cut(content, ":"); ok {
			value = strings.TrimSpace(value)
			switch strings.TrimSpace(key) {
			case "Scene":
				sceneInfo.Name = value
			case "Variant":
				sceneInfo.Variant = value
			case "Description":
				sceneInfo.Description = value
			case "Group":
				sceneInfo.Group = value
			}
		}
	}

	// Update display name based on parsed metadata
	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns both built-in and TOML scenes, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	tomlScenes, err := ListTOMLScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list TOML scenes: %w", err)
	}

	allScenes := append(BuiltinSceneInfos(), tomlScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Create ordered groups (Built-in first, then alphabetical)
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   builtinGroup,
			Scenes: builtInGroup,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "two-mirrors" -> "Two Mirrors"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
