// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuapp

import "errors"

// Package errors for the gogpu driver.
var (
	// ErrNoProvider is returned when the GPU context provider is not
	// available yet; the canvas can only be created inside a frame.
	ErrNoProvider = errors.New("gpuapp: no GPU context provider")

	// ErrNoFrame is returned when a draw command is issued outside a
	// frame callback.
	ErrNoFrame = errors.New("gpuapp: no active frame")

	// ErrNilSurface is returned when uploading a nil surface.
	ErrNilSurface = errors.New("gpuapp: nil surface")

	// ErrForeignTexture is returned when a texture was not created by
	// this canvas.
	ErrForeignTexture = errors.New("gpuapp: texture from another canvas")

	// ErrAppFailure is returned when the controller reports a failed
	// run.
	ErrAppFailure = errors.New("gpuapp: application reported failure")
)
