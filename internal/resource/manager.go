// Package resource keeps textures and shaders addressable by name.
// A Manager is populated once before play and is read-only afterwards;
// hosts may share one across SSH sessions, so access is guarded.
package resource

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureSpec describes how to build a texture.
type TextureSpec struct {
	Path  string // Image file for the desktop renderer; empty means a plain white quad
	Glyph rune   // Rune drawn by the terminal renderer when Fill is false
	Fill  bool   // Terminal renderer paints the cell background instead of a glyph
	Round bool   // Desktop renderer masks the fallback quad to a circle
	Alpha bool   // Image carries an alpha channel
}

// Texture is an immutable handle returned by the Manager.
type Texture struct {
	ID   int
	Name string
	TextureSpec
}

// Shader carries the uniforms sprite renderers need.
type Shader struct {
	ID         int
	Name       string
	Projection mgl32.Mat4
}

// Manager maps names to textures and shaders.
type Manager struct {
	mu       sync.RWMutex
	textures map[string]Texture
	shaders  map[string]Shader
	nextID   int
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]Texture),
		shaders:  make(map[string]Shader),
	}
}

// LoadTexture registers a texture under name, replacing any previous one.
func (m *Manager) LoadTexture(name string, spec TextureSpec) Texture {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	t := Texture{ID: m.nextID, Name: name, TextureSpec: spec}
	m.textures[name] = t
	return t
}

// LoadShader registers a shader with the given projection matrix.
func (m *Manager) LoadShader(name string, projection mgl32.Mat4) Shader {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	s := Shader{ID: m.nextID, Name: name, Projection: projection}
	m.shaders[name] = s
	return s
}

// Texture returns the named texture.
// Panics if it was never loaded: every lookup happens after setup.
func (m *Manager) Texture(name string) Texture {
	t, ok := m.LookupTexture(name)
	if !ok {
		panic(fmt.Sprintf("resource: texture %q not loaded", name))
	}
	return t
}

// LookupTexture returns the named texture and whether it exists.
func (m *Manager) LookupTexture(name string) (Texture, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.textures[name]
	return t, ok
}

// Shader returns the named shader. Panics if it was never loaded.
func (m *Manager) Shader(name string) Shader {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.shaders[name]
	if !ok {
		panic(fmt.Sprintf("resource: shader %q not loaded", name))
	}
	return s
}

// Textures returns all textures sorted by name.
func (m *Manager) Textures() []Texture {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Texture, 0, len(m.textures))
	for _, t := range m.textures {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Projection returns the orthographic projection for a play area of the
// given size with the origin at the top-left and y growing downward.
func Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}
