// Package gles defines the slice of the OpenGL (ES) API that the
// compositor consumes: a resolved function table, the enum constants it
// passes to that table, and the capability data (version, extensions)
// that drives format negotiation.
//
// The package contains no bindings of its own. Real tables are provided
// by backends such as backend/opengl; tests provide in-memory fakes.
// Everything here is context-affine: a table is only meaningful on the
// thread whose GL context produced it.
package gles
