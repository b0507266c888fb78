package driver

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
)

func TestOpen_NilProcAddr(t *testing.T) {
	if _, err := Open(Vkng, nil); err == nil {
		t.Fatal("Open with nil proc addr succeeded")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	var dummy byte
	_, err := Open("opengl", unsafe.Pointer(&dummy))
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Open error = %v, want ErrUnknownBackend", err)
	}
}

func TestVersionString(t *testing.T) {
	if got := (Version{1, 2, 3}).String(); got != "1.2.3" {
		t.Errorf("Version.String() = %q, want 1.2.3", got)
	}
}

func TestVersionEncode(t *testing.T) {
	tests := []struct {
		v    Version
		want uint32
	}{
		{Version{1, 0, 0}, 1 << 22},
		{Version{1, 2, 0}, 1<<22 | 2<<12},
		{Version{0, 0, 1}, 1},
	}
	for _, tt := range tests {
		if got := tt.v.Encode(); got != tt.want {
			t.Errorf("%s.Encode() = %#x, want %#x", tt.v, got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" {
		t.Errorf("unexpected severity names %s, %s", SeverityError, SeverityWarning)
	}
}

func TestSortedNames(t *testing.T) {
	got := sortedNames([]string{"VK_KHR_xcb_surface", "VK_EXT_debug_utils", "VK_KHR_surface"})
	want := []string{"VK_EXT_debug_utils", "VK_KHR_surface", "VK_KHR_xcb_surface"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sortedNames = %q, want %q", got, want)
		}
	}
	if len(sortedNames(nil)) != 0 {
		t.Error("sortedNames(nil) is not empty")
	}
}

func TestSafeStrings(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"VK_KHR_surface"}, []string{"VK_KHR_surface\x00"}},
		{[]string{"already\x00", ""}, []string{"already\x00", "\x00"}},
	}

	for _, tt := range tests {
		got := safeStrings(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("safeStrings(%q) = %q, want %q", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("safeStrings(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSafeStrings_DoesNotAlias(t *testing.T) {
	in := []string{"VK_KHR_surface"}
	safeStrings(in)
	if in[0] != "VK_KHR_surface" {
		t.Errorf("safeStrings modified its input: %q", in[0])
	}
}
