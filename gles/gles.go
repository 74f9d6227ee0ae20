// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gles

// Enum is a GL enumerant or bitfield value.
type Enum uint32

// The constants below are the subset of GL enumerants the compositor
// passes to an API implementation. Values are the standard GL ones so
// backends can forward them unchanged.
const (
	TEXTURE_2D Enum = 0x0DE1

	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803

	NEAREST       Enum = 0x2600
	CLAMP_TO_EDGE Enum = 0x812F

	RGBA          Enum = 0x1908
	RGBA8         Enum = 0x8058
	BGRA8_EXT     Enum = 0x93A1
	UNSIGNED_BYTE Enum = 0x1401

	FRAMEBUFFER      Enum = 0x8D40
	READ_FRAMEBUFFER Enum = 0x8CA8
	DRAW_FRAMEBUFFER Enum = 0x8CA9

	COLOR_ATTACHMENT0    Enum = 0x8CE0
	FRAMEBUFFER_COMPLETE Enum = 0x8CD5

	COLOR_BUFFER_BIT Enum = 0x00004000

	NO_ERROR Enum = 0

	VENDOR         Enum = 0x1F00
	RENDERER       Enum = 0x1F01
	VERSION        Enum = 0x1F02
	EXTENSIONS     Enum = 0x1F03
	NUM_EXTENSIONS Enum = 0x821D
)

// API is the resolved GL function table the compositor drives. It covers
// exactly the entry points needed to allocate framebuffer-backed render
// targets, blit one onto a destination, and query driver capability.
//
// All calls assume the owning GL context is current on the calling
// thread. Implementations do not synchronize.
type API interface {
	// CreateTexture generates one texture object name.
	CreateTexture() uint32
	// CreateFramebuffer generates one framebuffer object name.
	CreateFramebuffer() uint32
	// DeleteTexture deletes a texture object.
	DeleteTexture(texture uint32)
	// DeleteFramebuffer deletes a framebuffer object.
	DeleteFramebuffer(framebuffer uint32)

	// BindTexture binds a texture to a texture target. Binding 0
	// restores the default texture.
	BindTexture(target Enum, texture uint32)
	// BindFramebuffer binds a framebuffer to FRAMEBUFFER,
	// READ_FRAMEBUFFER or DRAW_FRAMEBUFFER. Binding 0 restores the
	// default framebuffer.
	BindFramebuffer(target Enum, framebuffer uint32)

	// TexParameteri sets an integer texture parameter on the texture
	// currently bound to target.
	TexParameteri(target, pname Enum, param Enum)
	// TexImage2D allocates storage for the texture currently bound to
	// target. No pixel data is uploaded.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum)
	// FramebufferTexture2D attaches a texture level to an attachment
	// point of the framebuffer currently bound to target.
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int)
	// CheckFramebufferStatus reports the completeness of the
	// framebuffer currently bound to target.
	CheckFramebufferStatus(target Enum) Enum

	// BlitFramebuffer copies the mask-selected buffers of the rectangle
	// (srcX0,srcY0)-(srcX1,srcY1) in the READ_FRAMEBUFFER binding to
	// (dstX0,dstY0)-(dstX1,dstY1) in the DRAW_FRAMEBUFFER binding.
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter Enum)

	// GetError returns and clears the oldest recorded error flag,
	// NO_ERROR if none.
	GetError() Enum
	// GetInteger returns an integer state value such as NUM_EXTENSIONS.
	GetInteger(pname Enum) int
	// GetString returns a string describing the current connection,
	// such as VERSION or RENDERER.
	GetString(pname Enum) string
	// GetStringi returns an indexed string such as the i-th extension
	// name. Only valid on version 3.0 and later contexts.
	GetStringi(pname Enum, index int) string
}
