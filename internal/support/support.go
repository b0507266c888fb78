// Package support checks requested Vulkan instance extensions and layers
// against what the loader reports as available.
package support

import "github.com/cockroachdb/errors"

var (
	ErrMissingExtension = errors.New("missing vulkan extension")
	ErrMissingLayer     = errors.New("missing vulkan layer")
)

// FirstMissing returns the first name in required that has no exact match in
// available. Matching is case- and whitespace-sensitive.
func FirstMissing(required, available []string) (string, bool) {
	for _, name := range required {
		found := false
		for _, candidate := range available {
			if candidate == name {
				found = true
				break
			}
		}
		if !found {
			return name, true
		}
	}

	return "", false
}

// Supported reports whether every required name is available. An empty
// required list is always supported.
func Supported(required, available []string) bool {
	_, missing := FirstMissing(required, available)
	return !missing
}

func RequireExtensions(required, available []string) error {
	if name, missing := FirstMissing(required, available); missing {
		return errors.Wrapf(ErrMissingExtension, "extension %s", name)
	}
	return nil
}

func RequireLayers(required, available []string) error {
	if name, missing := FirstMissing(required, available); missing {
		return errors.Wrapf(ErrMissingLayer, "layer %s not available- install LunarG Vulkan SDK", name)
	}
	return nil
}
