//go:build !release

package app

// EnableValidationLayers is the default for binaries that support the
// validation layers. Build with -tags release to turn it off.
const EnableValidationLayers = true
