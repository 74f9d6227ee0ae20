// Package glcompose composites GL-backed render targets onto a window.
//
// # Overview
//
// glcompose is the presentation end of a host rendering pipeline: the
// host asks it for offscreen render targets ("backing stores"), draws
// frames into them, and submits one of them per frame
// to be copied onto the window's visible surface. The package owns the
// GPU object lifecycle, negotiates the presentation pixel format
// against driver capability, and performs the final framebuffer blit
// and buffer swap.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glcompose"
//	    _ "github.com/gogpu/glcompose/backend/opengl"
//	)
//
//	comp, err := glcompose.New(ctx, glcompose.WithView(view))
//	if err != nil { ... }
//
//	store, err := comp.CreateBackingStore(800, 600)
//	if err != nil { ... }
//
//	// ... render into store.ID ...
//
//	err = comp.Present([]glcompose.Layer{{
//	    Kind: glcompose.LayerKindBackingStore, Store: store,
//	    Width: 800, Height: 600,
//	}})
//
//	err = comp.CollectBackingStore(store)
//
// # Collaborators
//
// The compositor consumes, never implements, three collaborators: a
// ContextManager that makes the GL context current, a View that owns
// the visible drawable, and a TableLoader that resolves the GL function
// table (see backend/opengl for the go-gl backed loader and
// integration/glfwhost for GLFW-backed collaborators).
//
// # Threading
//
// Everything is single-threaded and context-affine. Drive a Compositor
// from one goroutine pinned to its OS thread; the package adds no
// locking around GL state. Recoverable failures (lost context, missing
// view) come back as errors; host protocol violations (double collect,
// wrong layer count) panic.
package glcompose

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
