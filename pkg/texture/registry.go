package texture

import (
	"fmt"
	"sync"
)

// Handle identifies a texture inside a Registry. Handles stay valid for
// the registry's lifetime, no matter how many textures are added later.
type Handle int

// NoTexture is the zero-value-safe invalid handle
const NoTexture Handle = -1

// DecodeFunc loads and decodes the image at path
type DecodeFunc func(path string) (*Texture, error)

// Registry owns the textures of one scene and deduplicates them by path.
// Build it with the scene and drop it with the scene.
type Registry struct {
	mu       sync.RWMutex
	decode   DecodeFunc
	textures []*Texture
	byPath   map[string]Handle
}

// NewRegistry creates an empty registry. decode may be nil when only
// in-memory textures are registered.
func NewRegistry(decode DecodeFunc) *Registry {
	return &Registry{
		decode: decode,
		byPath: make(map[string]Handle),
	}
}

// Add returns the handle of the texture at path, decoding it on first use
func (r *Registry) Add(path string) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.byPath[path]; ok {
		return h, nil
	}
	if r.decode == nil {
		return NoTexture, fmt.Errorf("no decoder configured for texture %q", path)
	}

	tex, err := r.decode(path)
	if err != nil {
		return NoTexture, fmt.Errorf("failed to load texture %q: %w", path, err)
	}
	tex.Path = path
	return r.insert(path, tex), nil
}

// Register adds an already decoded texture under path. If path is taken
// the existing handle is returned and tex is discarded.
func (r *Registry) Register(path string, tex *Texture) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.byPath[path]; ok {
		return h
	}
	tex.Path = path
	return r.insert(path, tex)
}

func (r *Registry) insert(path string, tex *Texture) Handle {
	h := Handle(len(r.textures))
	r.textures = append(r.textures, tex)
	r.byPath[path] = h
	return h
}

// Texture returns the texture for h, or nil for an unknown handle
func (r *Registry) Texture(h Handle) *Texture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h < 0 || int(h) >= len(r.textures) {
		return nil
	}
	return r.textures[h]
}

// Lookup returns the handle registered for path
func (r *Registry) Lookup(path string) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byPath[path]
	return h, ok
}

// Len returns the number of distinct textures
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.textures)
}

// Paths returns texture paths in handle order
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, len(r.textures))
	for i, tex := range r.textures {
		paths[i] = tex.Path
	}
	return paths
}

// Textures is a frozen, lock-free view of a registry's textures, indexed
// by handle
type Textures []*Texture

// Texture returns the texture for h, or nil for an unknown handle
func (t Textures) Texture(h Handle) *Texture {
	if h < 0 || int(h) >= len(t) {
		return nil
	}
	return t[h]
}

// Snapshot freezes the current textures for rendering. Textures added
// later are not visible through the snapshot.
func (r *Registry) Snapshot() Textures {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Textures(r.textures[:len(r.textures):len(r.textures)])
}
