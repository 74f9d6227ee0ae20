package glcompose

import (
	"errors"
	"testing"

	"github.com/gogpu/glcompose/gles"
	"github.com/gogpu/gputypes"
)

// texAlloc records one TexImage2D call.
type texAlloc struct {
	target         gles.Enum
	level          int
	internalFormat gles.Enum
	width, height  int
	format, ty     gles.Enum
}

// blitCall records one BlitFramebuffer call.
type blitCall struct {
	srcX0, srcY0, srcX1, srcY1 int
	dstX0, dstY0, dstX1, dstY1 int
	mask, filter               gles.Enum
}

// attachCall records one FramebufferTexture2D call.
type attachCall struct {
	target, attachment, texTarget gles.Enum
	texture                       uint32
	level                         int
}

// fakeAPI is an in-memory gles.API that records every call the
// compositor makes and tracks live object counts. Texture names start
// at 1001 and framebuffer names at 1 so a swapped id shows up in
// assertions immediately.
type fakeAPI struct {
	version    string
	renderer   string
	extensions []string

	nextTexture      uint32
	nextFramebuffer  uint32
	liveTextures     map[uint32]bool
	liveFramebuffers map[uint32]bool

	texBinds    []uint32
	fboBinds    map[gles.Enum][]uint32
	texParams   map[gles.Enum]gles.Enum
	allocs      []texAlloc
	attachments []attachCall
	blits       []blitCall

	status  gles.Enum // CheckFramebufferStatus result
	errCode gles.Enum // next GetError result, cleared on read
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		version:          "OpenGL ES 3.0 (fake)",
		renderer:         "fake",
		nextTexture:      1000,
		liveTextures:     make(map[uint32]bool),
		liveFramebuffers: make(map[uint32]bool),
		fboBinds:         make(map[gles.Enum][]uint32),
		texParams:        make(map[gles.Enum]gles.Enum),
		status:           gles.FRAMEBUFFER_COMPLETE,
		errCode:          gles.NO_ERROR,
	}
}

// liveObjects counts textures and framebuffers created and not deleted.
func (f *fakeAPI) liveObjects() int {
	return len(f.liveTextures) + len(f.liveFramebuffers)
}

func (f *fakeAPI) CreateTexture() uint32 {
	f.nextTexture++
	f.liveTextures[f.nextTexture] = true
	return f.nextTexture
}

func (f *fakeAPI) CreateFramebuffer() uint32 {
	f.nextFramebuffer++
	f.liveFramebuffers[f.nextFramebuffer] = true
	return f.nextFramebuffer
}

func (f *fakeAPI) DeleteTexture(texture uint32)         { delete(f.liveTextures, texture) }
func (f *fakeAPI) DeleteFramebuffer(framebuffer uint32) { delete(f.liveFramebuffers, framebuffer) }

func (f *fakeAPI) BindTexture(target gles.Enum, texture uint32) {
	f.texBinds = append(f.texBinds, texture)
}

func (f *fakeAPI) BindFramebuffer(target gles.Enum, framebuffer uint32) {
	f.fboBinds[target] = append(f.fboBinds[target], framebuffer)
}

func (f *fakeAPI) TexParameteri(target, pname, param gles.Enum) {
	f.texParams[pname] = param
}

func (f *fakeAPI) TexImage2D(target gles.Enum, level int, internalFormat gles.Enum, width, height int, format, ty gles.Enum) {
	f.allocs = append(f.allocs, texAlloc{target, level, internalFormat, width, height, format, ty})
}

func (f *fakeAPI) FramebufferTexture2D(target, attachment, texTarget gles.Enum, texture uint32, level int) {
	f.attachments = append(f.attachments, attachCall{target, attachment, texTarget, texture, level})
}

func (f *fakeAPI) CheckFramebufferStatus(gles.Enum) gles.Enum { return f.status }

func (f *fakeAPI) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask, filter gles.Enum) {
	f.blits = append(f.blits, blitCall{srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter})
}

func (f *fakeAPI) GetError() gles.Enum {
	code := f.errCode
	f.errCode = gles.NO_ERROR
	return code
}

func (f *fakeAPI) GetInteger(pname gles.Enum) int {
	if pname == gles.NUM_EXTENSIONS {
		return len(f.extensions)
	}
	return 0
}

func (f *fakeAPI) GetString(pname gles.Enum) string {
	switch pname {
	case gles.VERSION:
		return f.version
	case gles.RENDERER:
		return f.renderer
	}
	return ""
}

func (f *fakeAPI) GetStringi(pname gles.Enum, index int) string {
	if pname == gles.EXTENSIONS {
		return f.extensions[index]
	}
	return ""
}

// fakeContext counts MakeCurrent calls and fails when err is set.
type fakeContext struct {
	calls int
	err   error
}

func (c *fakeContext) MakeCurrent() error {
	c.calls++
	return c.err
}

// fakeView hands out a fixed destination framebuffer and records the
// sizes it was asked for.
type fakeView struct {
	fbo      uint32
	requests [][2]int
	swaps    int
	swapErr  error
}

func (v *fakeView) FramebufferID(width, height int) uint32 {
	v.requests = append(v.requests, [2]int{width, height})
	return v.fbo
}

func (v *fakeView) SwapBuffers() error {
	v.swaps++
	return v.swapErr
}

// loaderFor wraps a table in a TableLoader that always succeeds.
func loaderFor(api gles.API) TableLoader {
	return func() (gles.API, error) { return api, nil }
}

// newTestCompositor builds an initialized compositor over api.
func newTestCompositor(t *testing.T, api *fakeAPI) (*Compositor, *fakeContext) {
	t.Helper()

	ctx := &fakeContext{}
	comp, err := New(ctx, WithLoader(loaderFor(api)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := comp.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return comp, ctx
}

// mustPanic asserts that fn panics.
func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	fn()
}

func TestNewNilContextManager(t *testing.T) {
	comp, err := New(nil)
	if !errors.Is(err, ErrNilContextManager) {
		t.Errorf("New(nil) error = %v, want ErrNilContextManager", err)
	}
	if comp != nil {
		t.Error("New(nil) returned a compositor")
	}
}

func TestNewUninitialized(t *testing.T) {
	comp, err := New(&fakeContext{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if comp.Initialized() {
		t.Error("Initialized() = true before Initialize")
	}
	if got := comp.Format(); got != gputypes.TextureFormatUndefined {
		t.Errorf("Format() = %v before Initialize, want Undefined", got)
	}
}

func TestInitialize(t *testing.T) {
	api := newFakeAPI()
	comp, ctx := newTestCompositor(t, api)

	if !comp.Initialized() {
		t.Error("Initialized() = false after Initialize")
	}
	if ctx.calls != 1 {
		t.Errorf("MakeCurrent calls = %d, want 1", ctx.calls)
	}
	if got := comp.Format(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v with no extensions, want RGBA8Unorm", got)
	}
}

func TestInitializeNegotiatesBGRA(t *testing.T) {
	api := newFakeAPI()
	api.extensions = []string{"GL_EXT_texture_format_BGRA8888"}
	comp, _ := newTestCompositor(t, api)

	if got := comp.Format(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm", got)
	}
}

func TestInitializeMakeCurrentFailure(t *testing.T) {
	ctx := &fakeContext{err: errors.New("context lost")}
	loaderCalls := 0
	comp, err := New(ctx, WithLoader(func() (gles.API, error) {
		loaderCalls++
		return newFakeAPI(), nil
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := comp.Initialize(); err == nil {
		t.Fatal("Initialize = nil error with failing MakeCurrent")
	}
	if comp.Initialized() {
		t.Error("Initialized() = true after failed Initialize")
	}
	if loaderCalls != 0 {
		t.Errorf("loader calls = %d, want 0 when MakeCurrent fails", loaderCalls)
	}

	// The failure is environmental; clearing it makes a retry succeed.
	ctx.err = nil
	if err := comp.Initialize(); err != nil {
		t.Fatalf("retry Initialize failed: %v", err)
	}
	if !comp.Initialized() {
		t.Error("Initialized() = false after successful retry")
	}
}

func TestInitializeLoaderFailure(t *testing.T) {
	ctx := &fakeContext{}
	fail := true
	comp, err := New(ctx, WithLoader(func() (gles.API, error) {
		if fail {
			return nil, errors.New("resolver produced no table")
		}
		return newFakeAPI(), nil
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := comp.Initialize(); err == nil {
		t.Fatal("Initialize = nil error with failing loader")
	}
	if comp.Initialized() {
		t.Error("Initialized() = true after loader failure")
	}

	fail = false
	if err := comp.Initialize(); err != nil {
		t.Fatalf("retry Initialize failed: %v", err)
	}
}

func TestInitializeInvalidTable(t *testing.T) {
	api := newFakeAPI()
	api.version = "not a gl version"

	ctx := &fakeContext{}
	comp, err := New(ctx, WithLoader(loaderFor(api)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := comp.Initialize(); err == nil {
		t.Fatal("Initialize = nil error with unparseable version")
	}
	if comp.Initialized() {
		t.Error("Initialized() = true after invalid table")
	}
	if got := comp.Format(); got != gputypes.TextureFormatUndefined {
		t.Errorf("Format() = %v after failed Initialize, want Undefined", got)
	}

	api.version = "OpenGL ES 3.0"
	if err := comp.Initialize(); err != nil {
		t.Fatalf("retry Initialize failed: %v", err)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	ctx := &fakeContext{}
	loaderCalls := 0
	comp, err := New(ctx, WithLoader(func() (gles.API, error) {
		loaderCalls++
		return newFakeAPI(), nil
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := comp.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := comp.Initialize(); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}

	if ctx.calls != 1 {
		t.Errorf("MakeCurrent calls = %d after double Initialize, want 1", ctx.calls)
	}
	if loaderCalls != 1 {
		t.Errorf("loader calls = %d after double Initialize, want 1", loaderCalls)
	}
}

func TestInitializeUsesRegistry(t *testing.T) {
	api := newFakeAPI()
	RegisterLoader("test-registry", 100, loaderFor(api), nil)
	t.Cleanup(func() { UnregisterLoader("test-registry") })

	comp, err := New(&fakeContext{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := comp.Initialize(); err != nil {
		t.Fatalf("Initialize via registry failed: %v", err)
	}
	if !comp.Initialized() {
		t.Error("Initialized() = false")
	}
}

func TestInitializeNoLoaderAvailable(t *testing.T) {
	comp, err := New(&fakeContext{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = comp.Initialize()
	if !errors.Is(err, ErrNoLoaderAvailable) {
		t.Errorf("Initialize error = %v, want ErrNoLoaderAvailable", err)
	}
}

func TestCreateTriggersLazyInitialize(t *testing.T) {
	api := newFakeAPI()
	ctx := &fakeContext{}
	comp, err := New(ctx, WithLoader(loaderFor(api)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	store, err := comp.CreateBackingStore(64, 64)
	if err != nil {
		t.Fatalf("CreateBackingStore failed: %v", err)
	}
	if !comp.Initialized() {
		t.Error("Initialized() = false after lazy create")
	}
	if ctx.calls != 1 {
		t.Errorf("MakeCurrent calls = %d, want 1", ctx.calls)
	}
	if err := comp.CollectBackingStore(store); err != nil {
		t.Fatalf("CollectBackingStore failed: %v", err)
	}
}

func TestCreateLazyInitializeFailure(t *testing.T) {
	ctx := &fakeContext{}
	loaderCalls := 0
	comp, err := New(ctx, WithLoader(func() (gles.API, error) {
		loaderCalls++
		return nil, errors.New("no table")
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	store, err := comp.CreateBackingStore(64, 64)
	if err == nil {
		t.Fatal("CreateBackingStore = nil error with failing loader")
	}
	if store != nil {
		t.Error("CreateBackingStore returned a store despite init failure")
	}
	if comp.Initialized() {
		t.Error("Initialized() = true after failed lazy init")
	}

	// The failed create's first and only effects are the context
	// acquisition and the table load attempt.
	if ctx.calls != 1 {
		t.Errorf("MakeCurrent calls = %d, want 1", ctx.calls)
	}
	if loaderCalls != 1 {
		t.Errorf("loader calls = %d, want 1", loaderCalls)
	}
	if comp.LiveBackingStores() != 0 {
		t.Errorf("LiveBackingStores() = %d, want 0", comp.LiveBackingStores())
	}
}

func TestCreateLazyInitializeMakeCurrentFirst(t *testing.T) {
	ctx := &fakeContext{err: errors.New("context lost")}
	loaderCalls := 0
	comp, err := New(ctx, WithLoader(func() (gles.API, error) {
		loaderCalls++
		return newFakeAPI(), nil
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := comp.CreateBackingStore(64, 64); err == nil {
		t.Fatal("CreateBackingStore = nil error with failing MakeCurrent")
	}
	if loaderCalls != 0 {
		t.Errorf("loader calls = %d, want 0 when MakeCurrent fails", loaderCalls)
	}
}

func TestCreateCollectBalance(t *testing.T) {
	api := newFakeAPI()
	comp, _ := newTestCompositor(t, api)

	baseline := api.liveObjects()
	const n = 8

	// FIFO pairing.
	stores := make([]*BackingStore, 0, n)
	for i := range n {
		s, err := comp.CreateBackingStore(16+i, 16+i)
		if err != nil {
			t.Fatalf("CreateBackingStore %d failed: %v", i, err)
		}
		stores = append(stores, s)
	}
	if got := comp.LiveBackingStores(); got != n {
		t.Errorf("LiveBackingStores() = %d, want %d", got, n)
	}
	for _, s := range stores {
		if err := comp.CollectBackingStore(s); err != nil {
			t.Fatalf("CollectBackingStore failed: %v", err)
		}
	}
	if got := api.liveObjects(); got != baseline {
		t.Errorf("live GPU objects = %d after FIFO cycle, want %d", got, baseline)
	}
	if got := comp.LiveBackingStores(); got != 0 {
		t.Errorf("LiveBackingStores() = %d after FIFO cycle, want 0", got)
	}

	// LIFO pairing.
	stores = stores[:0]
	for range n {
		s, err := comp.CreateBackingStore(32, 32)
		if err != nil {
			t.Fatalf("CreateBackingStore failed: %v", err)
		}
		stores = append(stores, s)
	}
	for i := n - 1; i >= 0; i-- {
		if err := comp.CollectBackingStore(stores[i]); err != nil {
			t.Fatalf("CollectBackingStore failed: %v", err)
		}
	}
	if got := api.liveObjects(); got != baseline {
		t.Errorf("live GPU objects = %d after LIFO cycle, want %d", got, baseline)
	}
}

func TestSetViewDetach(t *testing.T) {
	api := newFakeAPI()
	comp, _ := newTestCompositor(t, api)

	view := &fakeView{fbo: 3}
	comp.SetView(view)

	store, err := comp.CreateBackingStore(8, 8)
	if err != nil {
		t.Fatalf("CreateBackingStore failed: %v", err)
	}
	layers := []Layer{{Kind: LayerKindBackingStore, Store: store, Width: 8, Height: 8}}

	if err := comp.Present(layers); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	comp.SetView(nil)
	if err := comp.Present(layers); !errors.Is(err, ErrNoView) {
		t.Errorf("Present after detach error = %v, want ErrNoView", err)
	}
}
