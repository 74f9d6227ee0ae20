// Package opengl provides the desktop OpenGL function table for
// glcompose, backed by the go-gl bindings.
//
// The package targets the 3.3 core profile, the lowest version the
// go-gl generated bindings ship for that still covers every call the
// compositor makes (framebuffer objects, blits and indexed extension
// queries are all core since 3.0).
//
// # Registration
//
// Importing the package registers it with the glcompose loader
// registry, so most hosts only need a blank import:
//
//	import _ "github.com/gogpu/glcompose/backend/opengl"
//
//	comp, err := glcompose.New(ctx)
//
// # Explicit loading
//
// Windowing layers that own the symbol lookup can resolve the table
// through their own proc address function instead:
//
//	comp, err := glcompose.New(ctx, glcompose.WithLoader(func() (gles.API, error) {
//	    return opengl.Load(glfw.GetProcAddress)
//	}))
//
// Either way a GL context must be current on the calling thread when
// the table is loaded.
package opengl
