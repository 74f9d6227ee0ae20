// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcompose

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glcompose/gles"
)

// Present composites the submitted layers onto the attached view and
// swaps its buffers.
//
// Exactly one layer is supported, and it must carry a backing store
// produced by CreateBackingStore; anything else is a host protocol
// violation and panics. Multi-layer and platform-view composition are
// unimplemented extension points: a future version replacing the single
// blit with an ordered blend sequence would lift this check.
//
// Environmental failures return errors the host may retry next frame:
// no attached view, context acquisition failure, swap failure. The
// destination drawable is resized to the layer's size as a side effect
// even when a later step fails.
func (c *Compositor) Present(layers []Layer) error {
	if !c.initialized {
		panic("glcompose: present before initialization")
	}
	if len(layers) != 1 {
		panic("glcompose: present expects exactly one layer, got " + strconv.Itoa(len(layers)))
	}

	layer := layers[0]
	if layer.Kind != LayerKindBackingStore {
		panic("glcompose: present of " + layer.Kind.String() + " layer")
	}
	store := layer.Store
	if store == nil {
		panic("glcompose: present of layer with no backing store")
	}
	if store.Kind != StoreKindOpenGL {
		panic("glcompose: present of " + store.Kind.String() + " backing store")
	}
	if store.TargetMode != TargetModeFramebuffer {
		panic("glcompose: present of " + store.TargetMode.String() + " target")
	}

	if c.view == nil {
		return ErrNoView
	}

	width, height := layer.Width, layer.Height

	// The view resizes its drawable to the frame size before handing
	// out the destination.
	destination := c.view.FramebufferID(width, height)

	if err := c.ctx.MakeCurrent(); err != nil {
		return fmt.Errorf("glcompose: make current: %w", err)
	}

	c.api.BindFramebuffer(gles.READ_FRAMEBUFFER, store.ID)
	c.api.BindFramebuffer(gles.DRAW_FRAMEBUFFER, destination)

	// Same-size color copy; nearest keeps it pixel-exact.
	c.api.BlitFramebuffer(
		0, 0, width, height,
		0, 0, width, height,
		gles.COLOR_BUFFER_BIT, gles.NEAREST)

	if err := c.view.SwapBuffers(); err != nil {
		return fmt.Errorf("glcompose: swap buffers: %w", err)
	}
	Logger().Debug("glcompose: presented",
		"source", store.ID, "destination", destination, "width", width, "height", height)
	return nil
}
