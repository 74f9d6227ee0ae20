// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcompose

import (
	"fmt"

	"github.com/gogpu/glcompose/gles"
	"github.com/gogpu/gputypes"
)

// StoreKind identifies the rendering API a backing store belongs to.
type StoreKind uint32

const (
	// StoreKindUndefined is the zero value; descriptors carrying it
	// never pass contract checks.
	StoreKindUndefined StoreKind = iota

	// StoreKindOpenGL marks a store backed by GL objects. The only
	// kind this compositor produces.
	StoreKindOpenGL
)

// String returns the kind name.
func (k StoreKind) String() string {
	switch k {
	case StoreKindOpenGL:
		return "opengl"
	default:
		return "undefined"
	}
}

// TargetMode identifies how a GL backing store exposes its render target.
type TargetMode uint32

const (
	// TargetModeUndefined is the zero value and never valid.
	TargetModeUndefined TargetMode = iota

	// TargetModeFramebuffer exposes the store as a framebuffer object.
	// The only mode this compositor produces or accepts.
	TargetModeFramebuffer

	// TargetModeTexture exposes the store as a bare texture. Recognized
	// so mismatches can be named, never produced here.
	TargetModeTexture
)

// String returns the mode name.
func (m TargetMode) String() string {
	switch m {
	case TargetModeFramebuffer:
		return "framebuffer"
	case TargetModeTexture:
		return "texture"
	default:
		return "undefined"
	}
}

// StoreHandle is the opaque key a descriptor carries in place of the GPU
// resource record. Zero is never a live handle.
type StoreHandle uint64

// BackingStore describes one render target handed to the host pipeline.
// The host draws into it, submits it back inside a Layer for Present,
// and finally returns it to CollectBackingStore. The GPU resources
// behind the descriptor stay owned by the compositor throughout.
type BackingStore struct {
	// Kind is always StoreKindOpenGL for stores produced here.
	Kind StoreKind

	// TargetMode is always TargetModeFramebuffer for stores produced
	// here.
	TargetMode TargetMode

	// ID is the GL framebuffer object name to bind for drawing into
	// this store.
	ID uint32

	// Format is the negotiated presentation format declared to the
	// host. It describes how the destination surface is presented, not
	// the attachment's internal storage, which is always RGBA8.
	Format gputypes.TextureFormat

	// Handle keys the compositor's resource record for this store.
	// Opaque to the host.
	Handle StoreHandle

	// DestructionHook exists for hosts that drive releases through
	// descriptor callbacks. It is intentionally inert: resources are
	// released only by the explicit CollectBackingStore path, so the
	// hook's timing never matters.
	DestructionHook func()
}

// framebufferStore is the resource record behind one backing store: the
// color attachment and the framebuffer container it is attached to.
type framebufferStore struct {
	texture     uint32
	framebuffer uint32
}

// storeRegistry maps opaque handles to resource records. Handles grow
// monotonically from 1 so a zero-valued descriptor can never collect.
// Not synchronized; the compositor is single-threaded by contract.
type storeRegistry struct {
	entries map[StoreHandle]framebufferStore
	next    StoreHandle
}

func (r *storeRegistry) insert(s framebufferStore) StoreHandle {
	if r.entries == nil {
		r.entries = make(map[StoreHandle]framebufferStore)
	}
	r.next++
	r.entries[r.next] = s
	return r.next
}

// take removes and returns the record for h.
func (r *storeRegistry) take(h StoreHandle) (framebufferStore, bool) {
	s, ok := r.entries[h]
	if ok {
		delete(r.entries, h)
	}
	return s, ok
}

func (r *storeRegistry) count() int {
	return len(r.entries)
}

// CreateBackingStore allocates a new render target of the requested size
// and returns its host-facing descriptor.
//
// The first call initializes the compositor if nothing has yet; when
// that fails the create fails and nothing is allocated. The returned
// store's attachment is a non-mipmapped RGBA8 texture with nearest
// filtering and edge clamping, bound as the sole color attachment of a
// fresh framebuffer.
//
// Each successful create must be paired with exactly one
// CollectBackingStore.
func (c *Compositor) CreateBackingStore(width, height int) (*BackingStore, error) {
	if !c.initialized {
		if err := c.Initialize(); err != nil {
			return nil, err
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	texture := c.api.CreateTexture()
	framebuffer := c.api.CreateFramebuffer()

	c.api.BindFramebuffer(gles.FRAMEBUFFER, framebuffer)

	c.api.BindTexture(gles.TEXTURE_2D, texture)
	c.api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MIN_FILTER, gles.NEAREST)
	c.api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MAG_FILTER, gles.NEAREST)
	c.api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_S, gles.CLAMP_TO_EDGE)
	c.api.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_T, gles.CLAMP_TO_EDGE)
	c.api.TexImage2D(gles.TEXTURE_2D, 0, gles.RGBA8, width, height, gles.RGBA, gles.UNSIGNED_BYTE)
	c.api.BindTexture(gles.TEXTURE_2D, 0)

	c.api.FramebufferTexture2D(gles.FRAMEBUFFER, gles.COLOR_ATTACHMENT0, gles.TEXTURE_2D, texture, 0)

	if err := c.checkStoreComplete(); err != nil {
		c.api.DeleteFramebuffer(framebuffer)
		c.api.DeleteTexture(texture)
		return nil, fmt.Errorf("glcompose: create backing store %dx%d: %w", width, height, err)
	}

	handle := c.stores.insert(framebufferStore{texture: texture, framebuffer: framebuffer})
	Logger().Debug("glcompose: backing store created",
		"handle", uint64(handle), "framebuffer", framebuffer, "texture", texture,
		"width", width, "height", height)

	return &BackingStore{
		Kind:            StoreKindOpenGL,
		TargetMode:      TargetModeFramebuffer,
		ID:              framebuffer,
		Format:          c.format,
		Handle:          handle,
		DestructionHook: func() {},
	}, nil
}

// checkStoreComplete verifies the bound framebuffer reached completeness
// and that the allocation sequence left no error flag behind. Either
// failure makes the caller tear the half-built store down, so a failed
// create never leaks live objects.
func (c *Compositor) checkStoreComplete() error {
	if status := c.api.CheckFramebufferStatus(gles.FRAMEBUFFER); status != gles.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%w: status 0x%04x", ErrIncompleteFramebuffer, uint32(status))
	}
	return glError(c.api)
}

// CollectBackingStore releases the GPU resources behind a descriptor
// previously returned by CreateBackingStore.
//
// Collection is the sole release path and must happen exactly once per
// store. Collecting a descriptor this compositor did not produce, or
// collecting one twice, is a host protocol violation and panics.
func (c *Compositor) CollectBackingStore(store *BackingStore) error {
	if !c.initialized {
		panic("glcompose: collect before initialization")
	}
	if store == nil {
		panic("glcompose: collect of nil backing store")
	}
	if store.Kind != StoreKindOpenGL {
		panic("glcompose: collect of " + store.Kind.String() + " backing store")
	}
	if store.TargetMode != TargetModeFramebuffer {
		panic("glcompose: collect of " + store.TargetMode.String() + " target")
	}

	rec, ok := c.stores.take(store.Handle)
	if !ok {
		panic("glcompose: collect of unknown or already collected backing store")
	}

	c.api.DeleteFramebuffer(rec.framebuffer)
	c.api.DeleteTexture(rec.texture)
	Logger().Debug("glcompose: backing store collected",
		"handle", uint64(store.Handle), "framebuffer", rec.framebuffer, "texture", rec.texture)
	return nil
}

// LiveBackingStores returns the number of stores created and not yet
// collected. Useful for leak checks at shutdown.
func (c *Compositor) LiveBackingStores() int {
	return c.stores.count()
}
