// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcompose

import (
	"github.com/gogpu/glcompose/gles"
	"github.com/gogpu/gputypes"
)

// Extensions gating BGRA presentation support.
const (
	extTextureFormatBGRA8888      = "GL_EXT_texture_format_BGRA8888"
	extAppleTextureFormatBGRA8888 = "GL_APPLE_texture_format_BGRA8888"
)

// SupportedTextureFormat selects the presentation format to declare for
// backing stores, given the driver's capability data.
//
// BGRA8 matches the byte order of common displays and avoids a channel
// swizzle on present, so it wins whenever the driver can texture from
// it: either through the vendor-neutral BGRA8888 extension, or through
// the Apple variant on a 3.0 or newer context. Everything else falls
// back to RGBA8, which every driver supports.
//
// Pure function of its input; negotiate once at initialization and reuse
// the result for every descriptor.
func SupportedTextureFormat(desc *gles.Description) gputypes.TextureFormat {
	switch {
	case desc.HasExtension(extTextureFormatBGRA8888):
		return gputypes.TextureFormatBGRA8Unorm
	case desc.HasExtension(extAppleTextureFormatBGRA8888) && desc.Version().AtLeast(3, 0):
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}
