// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwhost

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glcompose"
	"github.com/gogpu/glcompose/backend/opengl"
	"github.com/gogpu/glcompose/gles"
)

// ErrNilWindow is returned when a nil glfw window is passed to New.
var ErrNilWindow = errors.New("glfwhost: nil window")

// Window adapts a glfw window to glcompose.ContextManager and
// glcompose.View. The adapter does not own the window; creating,
// polling and destroying it stay with the caller.
//
// Window is not safe for concurrent use. Like the context it wraps, it
// belongs to the one thread the compositor runs on.
type Window struct {
	win *glfw.Window
}

// New wraps an existing glfw window.
func New(win *glfw.Window) (*Window, error) {
	if win == nil {
		return nil, ErrNilWindow
	}
	return &Window{win: win}, nil
}

// MakeCurrent binds the window's GL context to the calling thread.
// glfw reports binding failures through its error callback, so a call
// that returns has succeeded.
func (w *Window) MakeCurrent() error {
	w.win.MakeContextCurrent()
	return nil
}

// SwapBuffers presents the window's drawable.
func (w *Window) SwapBuffers() error {
	w.win.SwapBuffers()
	return nil
}

// FramebufferID returns 0, the window's default framebuffer. The
// drawable cannot be resized on demand; a size mismatch is logged and
// the frame is presented into the drawable as it is.
func (w *Window) FramebufferID(width, height int) uint32 {
	fbw, fbh := w.win.GetFramebufferSize()
	if fbw != width || fbh != height {
		glcompose.Logger().Warn("glfwhost: drawable size mismatch",
			"width", width, "height", height,
			"drawable_width", fbw, "drawable_height", fbh)
	}
	return 0
}

// Loader returns a table loader that resolves GL symbols through
// glfw's cross-platform lookup. Use it when the compositor should not
// depend on the platform's default symbol resolution:
//
//	comp, err := glcompose.New(window, glcompose.WithLoader(glfwhost.Loader()))
//
// A glfw context must be current when the loader runs, which Initialize
// guarantees by making the context current first.
func Loader() glcompose.TableLoader {
	return func() (gles.API, error) {
		return opengl.Load(glfw.GetProcAddress)
	}
}
