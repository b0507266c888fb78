//go:build release

package app

const EnableValidationLayers = false
