package driver

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

type vulkanGoDriver struct{}

func openVulkanGo(procAddr unsafe.Pointer) (Driver, error) {
	vk.SetGetInstanceProcAddr(procAddr)
	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "driver: load vulkan-go")
	}
	return vulkanGoDriver{}, nil
}

func (vulkanGoDriver) AvailableExtensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.Wrap(err, "driver: enumerate extensions")
	}
	list := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, list)); err != nil {
		return nil, errors.Wrap(err, "driver: enumerate extensions")
	}

	names := make([]string, 0, count)
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return sortedNames(names), nil
}

func (vulkanGoDriver) AvailableLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.Wrap(err, "driver: enumerate layers")
	}
	list := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, list)); err != nil {
		return nil, errors.Wrap(err, "driver: enumerate layers")
	}

	names := make([]string, 0, count)
	for _, layer := range list[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return sortedNames(names), nil
}

// DebugExtension is empty: validation layers fall back to their own stdout
// reporting.
func (vulkanGoDriver) DebugExtension() string {
	return ""
}

func (vulkanGoDriver) CreateInstance(info InstanceInfo) (Instance, error) {
	var instance vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   safeString(info.ApplicationName),
			ApplicationVersion: vkVersion(info.ApplicationVersion),
			PEngineName:        safeString(info.EngineName),
			EngineVersion:      vkVersion(info.EngineVersion),
			ApiVersion:         vkVersion(info.APIVersion),
		},
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}, nil, &instance)
	if err := vk.Error(ret); err != nil {
		return nil, errors.Wrap(err, "createinstance: failed to create instance")
	}

	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.Wrap(err, "createinstance: load instance commands")
	}

	return &vulkanGoInstance{instance: instance}, nil
}

type vulkanGoInstance struct {
	instance  vk.Instance
	destroyed bool
}

func (i *vulkanGoInstance) Destroy() {
	if i.destroyed {
		return
	}
	vk.DestroyInstance(i.instance, nil)
	i.destroyed = true
}

func vkVersion(v Version) uint32 {
	return vk.MakeVersion(v.Major, v.Minor, v.Patch)
}

// safeString null-terminates s for the C side.
func safeString(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}

func safeStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i := range list {
		out[i] = safeString(list[i])
	}
	return out
}
