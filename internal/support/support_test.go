package support

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

var available = []string{
	"VK_KHR_surface",
	"VK_KHR_xcb_surface",
	"VK_EXT_debug_utils",
}

func TestSupported(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		want     bool
	}{
		{"empty", nil, true},
		{"single", []string{"VK_KHR_surface"}, true},
		{"all", []string{"VK_EXT_debug_utils", "VK_KHR_xcb_surface", "VK_KHR_surface"}, true},
		{"duplicates", []string{"VK_KHR_surface", "VK_KHR_surface"}, true},
		{"missing", []string{"VK_KHR_surface", "VK_KHR_win32_surface"}, false},
		{"case", []string{"vk_khr_surface"}, false},
		{"trailing space", []string{"VK_KHR_surface "}, false},
		{"prefix", []string{"VK_KHR"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supported(tt.required, available); got != tt.want {
				t.Errorf("Supported(%q) = %v, want %v", tt.required, got, tt.want)
			}
		})
	}
}

func TestSupported_OrderIndependent(t *testing.T) {
	required := []string{"VK_KHR_surface", "VK_EXT_debug_utils"}
	reversed := []string{available[2], available[1], available[0]}

	if !Supported(required, available) || !Supported(required, reversed) {
		t.Error("Supported should not depend on the order of available names")
	}
}

func TestSupported_NothingAvailable(t *testing.T) {
	if Supported([]string{"VK_KHR_surface"}, nil) {
		t.Error("Supported with no available names = true, want false")
	}
	if !Supported(nil, nil) {
		t.Error("Supported(nil, nil) = false, want true")
	}
}

func TestFirstMissing(t *testing.T) {
	name, missing := FirstMissing([]string{"VK_KHR_surface", "A", "B"}, available)
	if !missing || name != "A" {
		t.Errorf("FirstMissing = (%q, %v), want (\"A\", true)", name, missing)
	}

	name, missing = FirstMissing([]string{"VK_KHR_surface"}, available)
	if missing || name != "" {
		t.Errorf("FirstMissing = (%q, %v), want (\"\", false)", name, missing)
	}
}

func TestRequireExtensions(t *testing.T) {
	if err := RequireExtensions([]string{"VK_KHR_surface"}, available); err != nil {
		t.Fatalf("RequireExtensions: unexpected error %v", err)
	}

	err := RequireExtensions([]string{"VK_KHR_wayland_surface"}, available)
	if !errors.Is(err, ErrMissingExtension) {
		t.Fatalf("RequireExtensions error = %v, want ErrMissingExtension", err)
	}
	if !strings.Contains(err.Error(), "VK_KHR_wayland_surface") {
		t.Errorf("error %q does not name the missing extension", err)
	}
	if errors.Is(err, ErrMissingLayer) {
		t.Error("extension error should not match ErrMissingLayer")
	}
}

func TestRequireLayers(t *testing.T) {
	layers := []string{"VK_LAYER_KHRONOS_validation"}

	if err := RequireLayers(layers, layers); err != nil {
		t.Fatalf("RequireLayers: unexpected error %v", err)
	}
	if err := RequireLayers(nil, nil); err != nil {
		t.Fatalf("RequireLayers with no layers: unexpected error %v", err)
	}

	err := RequireLayers(layers, []string{"VK_LAYER_LUNARG_api_dump"})
	if !errors.Is(err, ErrMissingLayer) {
		t.Fatalf("RequireLayers error = %v, want ErrMissingLayer", err)
	}
	if !strings.Contains(err.Error(), "VK_LAYER_KHRONOS_validation") {
		t.Errorf("error %q does not name the missing layer", err)
	}
}
