// Package window opens the platform window the Vulkan instance is created
// for. Two windowing libraries are supported: SDL2 and GLFW.
package window

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Backend names a windowing library.
type Backend string

const (
	SDL  Backend = "sdl"
	GLFW Backend = "glfw"
)

var ErrUnknownBackend = errors.New("unknown window backend")

type Config struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

func DefaultConfig() Config {
	return Config{
		Title:  "VulkanTutorial",
		Width:  800,
		Height: 600,
	}
}

// Window is an open window plus the windowing library that owns it.
type Window interface {
	// RequiredInstanceExtensions lists the instance extensions the library
	// needs to present to this window.
	RequiredInstanceExtensions() []string
	// ProcAddr is the loader's vkGetInstanceProcAddr as found by the library.
	ProcAddr() unsafe.Pointer
	PollEvents()
	ShouldClose() bool
	// Destroy closes the window and shuts the library down.
	Destroy()
}

// Open initializes the backend's library and creates a window with no client
// graphics API attached.
func Open(backend Backend, cfg Config) (Window, error) {
	switch backend {
	case SDL, "":
		return openSDL(cfg)
	case GLFW:
		return openGLFW(cfg)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", string(backend))
}
