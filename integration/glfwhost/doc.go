// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfwhost adapts a glfw window to the glcompose collaborator
// interfaces.
//
// A glfw window owns both a GL context and a default framebuffer, so a
// single adapter serves as the compositor's ContextManager and View:
//
//	window, err := glfwhost.New(win)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	comp, err := glcompose.New(window,
//	    glcompose.WithView(window),
//	    glcompose.WithLoader(glfwhost.Loader()),
//	)
//
// # Drawable sizing
//
// The window system, not the compositor, controls the drawable size.
// FramebufferID always returns the default framebuffer and warns
// through the glcompose logger when the requested frame size does not
// match the current drawable; presenting then still works but the
// window shows a scaled or clipped frame.
//
// # Threading
//
// glfw binds contexts per thread. Run the compositor on one goroutine
// pinned with runtime.LockOSThread, the same discipline glfw itself
// requires for event handling.
package glfwhost
