package driver

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"

	"github.com/piccicla/vulkantutorial/internal/support"
)

type vkngDriver struct {
	globalDriver core1_0.GlobalDriver

	// extensions caches the last enumeration for CreateInstance.
	extensions []string
}

func openVkng(procAddr unsafe.Pointer) (Driver, error) {
	globalDriver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "driver: load vkng")
	}
	return &vkngDriver{globalDriver: globalDriver}, nil
}

func (d *vkngDriver) AvailableExtensions() ([]string, error) {
	extensions, _, err := d.globalDriver.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "driver: enumerate extensions")
	}

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	d.extensions = sortedNames(names)
	return d.extensions, nil
}

func (d *vkngDriver) AvailableLayers() ([]string, error) {
	layers, _, err := d.globalDriver.AvailableLayers()
	if err != nil {
		return nil, errors.Wrap(err, "driver: enumerate layers")
	}

	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	return sortedNames(names), nil
}

func (d *vkngDriver) DebugExtension() string {
	return ext_debug_utils.ExtensionName
}

func vkngVersion(v Version) common.Version {
	return common.Version(v.Encode())
}

func (d *vkngDriver) CreateInstance(info InstanceInfo) (Instance, error) {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    vkngVersion(info.ApplicationVersion),
		EngineName:            info.EngineName,
		EngineVersion:         vkngVersion(info.EngineVersion),
		APIVersion:            common.APIVersion(vkngVersion(info.APIVersion)),
		EnabledLayerNames:     info.Layers,
	}

	available := d.extensions
	if available == nil {
		var err error
		available, err = d.AvailableExtensions()
		if err != nil {
			return nil, errors.Wrap(err, "createinstance")
		}
	}
	instanceOptions.EnabledExtensionNames, instanceOptions.Flags = withPortability(info.Extensions, available)

	instance := &vkngInstance{}
	var messengerOptions ext_debug_utils.DebugUtilsMessengerCreateInfo
	if info.Debug != nil {
		messengerOptions = debugMessengerOptions(info.Debug)
		// Chained so that instance creation and destruction are validated too
		instanceOptions.Next = messengerOptions
	}

	var err error
	instance.instanceDriver, _, err = d.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return nil, errors.Wrap(err, "createinstance")
	}

	if info.Debug != nil {
		instance.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(instance.instanceDriver)
		instance.debugMessenger, _, err = instance.debugDriver.CreateDebugUtilsMessenger(nil, messengerOptions)
		if err != nil {
			instance.Destroy()
			return nil, errors.Wrap(err, "createinstance: debug messenger")
		}
	}

	return instance, nil
}

// withPortability enables portability enumeration when the loader offers
// it, which is needed to see MoltenVK on macOS. names is not modified.
func withPortability(names []string, available []string) ([]string, core1_0.InstanceCreateFlags) {
	enabled := append([]string(nil), names...)
	portability := []string{khr_portability_enumeration.ExtensionName}
	if !support.Supported(portability, available) {
		return enabled, 0
	}

	if !support.Supported(portability, enabled) {
		enabled = append(enabled, khr_portability_enumeration.ExtensionName)
	}
	return enabled, khr_portability_enumeration.InstanceCreateEnumeratePortability
}

func debugMessengerOptions(callback DebugCallback) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			msg := DebugMessage{
				Severity: SeverityWarning,
				Type:     msgType.String(),
				Text:     data.Message,
			}
			if severity&ext_debug_utils.SeverityError != 0 {
				msg.Severity = SeverityError
			}
			callback(msg)
			return false
		},
	}
}

type vkngInstance struct {
	instanceDriver core1_0.CoreInstanceDriver

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger
}

func (i *vkngInstance) Destroy() {
	if i.debugMessenger.Initialized() {
		i.debugDriver.DestroyDebugUtilsMessenger(i.debugMessenger, nil)
		i.debugMessenger = ext_debug_utils.DebugUtilsMessenger{}
	}

	if i.instanceDriver != nil {
		i.instanceDriver.DestroyInstance(nil)
		i.instanceDriver = nil
	}
}
