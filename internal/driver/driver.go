// Package driver wraps the Go Vulkan bindings the tutorial can run on. Only
// the global commands needed before an instance exists are exposed, plus
// instance creation and destruction.
package driver

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Backend names a Vulkan binding.
type Backend string

const (
	Vkng     Backend = "vkng"
	VulkanGo Backend = "vulkan-go"
)

var ErrUnknownBackend = errors.New("unknown driver backend")

type Version struct {
	Major, Minor, Patch int
}

// Encode packs v the way VK_MAKE_VERSION does.
func (v Version) Encode() uint32 {
	return uint32(v.Major)<<22 | uint32(v.Minor)<<12 | uint32(v.Patch)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// DebugMessage is a message reported by a validation layer.
type DebugMessage struct {
	Severity Severity
	Type     string
	Text     string
}

type DebugCallback func(msg DebugMessage)

type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	Extensions []string
	Layers     []string

	// Debug receives validation messages when set. The driver's
	// DebugExtension must be among Extensions.
	Debug DebugCallback
}

type Driver interface {
	AvailableExtensions() ([]string, error)
	AvailableLayers() ([]string, error)
	// DebugExtension is the instance extension that carries validation
	// messages back to the application, or "" if the binding cannot.
	DebugExtension() string
	CreateInstance(info InstanceInfo) (Instance, error)
}

// sortedNames sorts names in place so listings do not depend on the binding
// or on map order.
func sortedNames(names []string) []string {
	sort.Strings(names)
	return names
}

type Instance interface {
	Destroy()
}

// Open loads a binding through the vkGetInstanceProcAddr found by the
// windowing library.
func Open(backend Backend, procAddr unsafe.Pointer) (Driver, error) {
	if procAddr == nil {
		return nil, errors.New("driver: no vkGetInstanceProcAddr, is a vulkan loader installed?")
	}

	switch backend {
	case Vkng, "":
		return openVkng(procAddr)
	case VulkanGo:
		return openVulkanGo(procAddr)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", string(backend))
}
