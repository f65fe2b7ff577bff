package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Keys the viewer reacts to
var trackedKeys = []glfw.Key{
	glfw.KeyEscape,
	glfw.KeySpace,
	glfw.KeyF12,
}

// InputHandler tracks keyboard state with per-frame edge detection
type InputHandler struct {
	window       *glfw.Window
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool
}

// NewInputHandler creates a new input handler for the window
func NewInputHandler(window *glfw.Window) *InputHandler {
	return &InputHandler{
		window:       window,
		currentKeys:  make(map[glfw.Key]bool),
		previousKeys: make(map[glfw.Key]bool),
	}
}

// Update refreshes the key state; call once per frame before querying
func (ih *InputHandler) Update() {
	ih.previousKeys = ih.currentKeys
	ih.currentKeys = make(map[glfw.Key]bool, len(trackedKeys))

	for _, key := range trackedKeys {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown reports whether the key is currently held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}
