// Package app implements the application lifecycle of the tiger sample:
// a callback-driven controller with four entry points (Init, HandleEvent,
// Iterate, Close/Quit) driven once per display refresh by an external
// run loop.
//
// The controller owns every resource it acquires (window, canvas, two
// textures) and releases each exactly once. It draws through the small
// Platform/Canvas/Texture interfaces so the real gogpu-backed driver and
// test fakes plug into the same contract.
package app
