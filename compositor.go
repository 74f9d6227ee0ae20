// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcompose

import (
	"fmt"

	"github.com/gogpu/glcompose/gles"
	"github.com/gogpu/gputypes"
)

// ContextManager makes the GL context current on the calling thread.
// Implementations must tolerate repeated calls; making an already
// current context current again is a no-op.
type ContextManager interface {
	MakeCurrent() error
}

// View owns a window's visible drawable. The compositor asks it for a
// correctly sized destination each frame and for the final swap.
type View interface {
	// FramebufferID returns the framebuffer object to composite into
	// for a frame of the given size, in physical pixels. The view may
	// create or resize its drawable to match as a side effect. 0 names
	// the default framebuffer.
	FramebufferID(width, height int) uint32

	// SwapBuffers presents the drawable's contents to the screen.
	SwapBuffers() error
}

// Compositor manages GL-backed render targets for a host rendering
// pipeline and composites one of them onto the attached view each
// frame.
//
// A Compositor is strictly single-threaded: every method must run on
// the one thread that owns (or can acquire) the GL context, normally a
// render loop goroutine pinned with runtime.LockOSThread. There is no
// internal locking and no queueing; each call completes synchronously.
//
// The zero state is uninitialized. The first CreateBackingStore, or an
// explicit Initialize, acquires the context, resolves the function
// table and negotiates the presentation format. A failed initialization
// changes nothing and may be retried; a successful one is permanent.
type Compositor struct {
	ctx    ContextManager
	view   View
	loader TableLoader

	api         gles.API
	format      gputypes.TextureFormat
	initialized bool

	stores storeRegistry
}

// New creates a compositor driven by the given context manager.
//
// Without WithLoader, Initialize resolves the function table through
// the loader registry, so a backend such as backend/opengl must be
// linked in (blank import) or registered by hand. Without WithView,
// Present fails until SetView attaches one.
func New(ctx ContextManager, opts ...Option) (*Compositor, error) {
	if ctx == nil {
		return nil, ErrNilContextManager
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Compositor{
		ctx:    ctx,
		view:   o.view,
		loader: o.loader,
		format: gputypes.TextureFormatUndefined,
	}, nil
}

// Initialize acquires the GL context, resolves the function table and
// negotiates the presentation format. Called lazily by the first
// CreateBackingStore; hosts may also call it eagerly.
//
// Initialize is idempotent: once initialized it returns nil without
// touching the context or the loader again. On failure every field is
// left untouched, so a later call retries from scratch.
func (c *Compositor) Initialize() error {
	if c.initialized {
		return nil
	}

	if err := c.ctx.MakeCurrent(); err != nil {
		return fmt.Errorf("glcompose: make current: %w", err)
	}

	load := c.loader
	if load == nil {
		load = LoadTable
	}
	api, err := load()
	if err != nil {
		return fmt.Errorf("glcompose: load function table: %w", err)
	}

	desc, err := gles.Describe(api)
	if err != nil {
		// The table resolved but cannot answer capability queries;
		// treat it as invalid and keep the compositor retryable.
		return fmt.Errorf("glcompose: invalid function table: %w", err)
	}

	c.api = api
	c.format = SupportedTextureFormat(desc)
	c.initialized = true
	Logger().Debug("glcompose: initialized",
		"version", desc.Version().String(), "renderer", desc.Renderer(), "format", c.format)
	return nil
}

// Initialized reports whether initialization has succeeded.
func (c *Compositor) Initialized() bool {
	return c.initialized
}

// Format returns the negotiated presentation format,
// gputypes.TextureFormatUndefined before initialization succeeds.
func (c *Compositor) Format() gputypes.TextureFormat {
	return c.format
}

// SetView attaches the view Present composites into. Passing nil
// detaches the current view, after which Present fails with ErrNoView.
func (c *Compositor) SetView(v View) {
	c.view = v
}
