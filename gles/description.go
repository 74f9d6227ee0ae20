// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gles

import (
	"fmt"
	"strings"
)

// Description holds the capability data of a live GL connection: the
// parsed version and the set of supported extensions. It is built once,
// right after the function table is resolved, and read-only afterwards.
type Description struct {
	version    Version
	renderer   string
	extensions map[string]bool
}

// Describe queries the capability data of the context behind api.
//
// The version string must parse; a table that cannot report a usable
// version is considered invalid and Describe returns an error without
// further queries. Extensions are read with GetStringi on 3.0+ contexts
// and from the space-separated GetString(EXTENSIONS) list on older ones.
func Describe(api API) (*Description, error) {
	ver, err := ParseVersion(api.GetString(VERSION))
	if err != nil {
		return nil, fmt.Errorf("gles: describe: %w", err)
	}

	d := &Description{
		version:    ver,
		renderer:   api.GetString(RENDERER),
		extensions: make(map[string]bool),
	}

	if ver.AtLeast(3, 0) {
		n := api.GetInteger(NUM_EXTENSIONS)
		for i := range n {
			if ext := api.GetStringi(EXTENSIONS, i); ext != "" {
				d.extensions[ext] = true
			}
		}
		return d, nil
	}

	for _, ext := range strings.Fields(api.GetString(EXTENSIONS)) {
		d.extensions[ext] = true
	}
	return d, nil
}

// NewDescription builds a Description from explicit capability data.
// Intended for tests and for negotiating against synthetic capability
// sets without a live context.
func NewDescription(version Version, extensions ...string) *Description {
	d := &Description{
		version:    version,
		extensions: make(map[string]bool, len(extensions)),
	}
	for _, ext := range extensions {
		d.extensions[ext] = true
	}
	return d
}

// Version returns the parsed context version.
func (d *Description) Version() Version {
	return d.version
}

// Renderer returns the driver's renderer string, if one was reported.
func (d *Description) Renderer() string {
	return d.renderer
}

// HasExtension reports whether the context supports the named extension.
func (d *Description) HasExtension(name string) bool {
	return d.extensions[name]
}

// Extensions returns the supported extension names in unspecified order.
func (d *Description) Extensions() []string {
	out := make([]string, 0, len(d.extensions))
	for ext := range d.extensions {
		out = append(out, ext)
	}
	return out
}
