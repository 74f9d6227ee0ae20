package opengl

import (
	"github.com/gogpu/glcompose"
	"github.com/gogpu/glcompose/gles"
)

// LoaderName identifies this loader in the glcompose registry.
const LoaderName = "opengl"

// LoaderPriority ranks this loader in the registry. Native bindings
// register at 100 so they win over fallback or diagnostic tables.
const LoaderPriority = 100

// init registers the opengl table loader on package import.
// This enables automatic table resolution when initializing a
// compositor without an explicit loader.
//
// To use this backend, import the package for its side effect:
//
//	import _ "github.com/gogpu/glcompose/backend/opengl"
func init() {
	glcompose.RegisterLoader(LoaderName, LoaderPriority, func() (gles.API, error) {
		return Load(nil)
	}, nil)
}
