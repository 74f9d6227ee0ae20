package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/glcompose/gles"
)

// Functions is a resolved OpenGL function table. It satisfies gles.API
// by delegating to the go-gl bindings, which dispatch through function
// pointers filled in by Load.
//
// Like the context it was loaded against, a Functions table is only
// valid on the thread that context is current on.
type Functions struct{}

// Load resolves the OpenGL function pointers and returns the table.
//
// When procAddr is non-nil it is used for symbol lookup, which is how
// windowing layers plug in (glfw.GetProcAddress). With nil the
// bindings use the platform's default resolution. A GL context must be
// current on the calling thread in both cases.
func Load(procAddr func(name string) unsafe.Pointer) (*Functions, error) {
	var err error
	if procAddr != nil {
		err = gl.InitWithProcAddrFunc(procAddr)
	} else {
		err = gl.Init()
	}
	if err != nil {
		return nil, fmt.Errorf("opengl: resolve function pointers: %w", err)
	}
	return &Functions{}, nil
}

func (Functions) CreateTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (Functions) CreateFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (Functions) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (Functions) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

func (Functions) BindTexture(target gles.Enum, texture uint32) {
	gl.BindTexture(uint32(target), texture)
}

func (Functions) BindFramebuffer(target gles.Enum, framebuffer uint32) {
	gl.BindFramebuffer(uint32(target), framebuffer)
}

func (Functions) TexParameteri(target, pname, param gles.Enum) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Functions) TexImage2D(target gles.Enum, level int, internalFormat gles.Enum, width, height int, format, ty gles.Enum) {
	// Allocation only; pixel upload happens elsewhere.
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat),
		int32(width), int32(height), 0, uint32(format), uint32(ty), gl.Ptr(nil))
}

func (Functions) FramebufferTexture2D(target, attachment, texTarget gles.Enum, texture uint32, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), texture, int32(level))
}

func (Functions) CheckFramebufferStatus(target gles.Enum) gles.Enum {
	return gles.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter gles.Enum) {
	gl.BlitFramebuffer(int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1),
		int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1),
		uint32(mask), uint32(filter))
}

func (Functions) GetError() gles.Enum {
	return gles.Enum(gl.GetError())
}

func (Functions) GetInteger(pname gles.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (Functions) GetString(pname gles.Enum) string {
	s := gl.GetString(uint32(pname))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Functions) GetStringi(pname gles.Enum, index int) string {
	s := gl.GetStringi(uint32(pname), uint32(index))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
