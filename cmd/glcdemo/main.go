// Command glcdemo opens a window and pumps frames through a glcompose
// compositor: it clears a backing store to an animated color each frame
// and presents it.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glcompose"
	"github.com/gogpu/glcompose/integration/glfwhost"
)

func init() {
	// glfw event handling and GL contexts are main-thread only.
	runtime.LockOSThread()
}

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		frames  = flag.Int("frames", 0, "frame count to render, 0 runs until the window closes")
		verbose = flag.Bool("verbose", false, "log compositor lifecycle")
	)
	flag.Parse()

	if *verbose {
		glcompose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to init glfw: %v", err)
	}
	defer glfw.Terminate()

	win, err := newWindow(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}

	host, err := glfwhost.New(win)
	if err != nil {
		log.Fatalf("Failed to wrap window: %v", err)
	}

	comp, err := glcompose.New(host,
		glcompose.WithView(host),
		glcompose.WithLoader(glfwhost.Loader()),
	)
	if err != nil {
		log.Fatalf("Failed to create compositor: %v", err)
	}
	if err := comp.Initialize(); err != nil {
		log.Fatalf("Failed to initialize compositor: %v", err)
	}
	log.Printf("Compositor ready, presentation format %v", comp.Format())

	fbw, fbh := win.GetFramebufferSize()
	store, err := comp.CreateBackingStore(fbw, fbh)
	if err != nil {
		log.Fatalf("Failed to create backing store: %v", err)
	}

	frame := 0
	for !win.ShouldClose() {
		// Recreate the store when the drawable changed size.
		if w, h := win.GetFramebufferSize(); w != fbw || h != fbh {
			if err := comp.CollectBackingStore(store); err != nil {
				log.Fatalf("Failed to collect backing store: %v", err)
			}
			fbw, fbh = w, h
			store, err = comp.CreateBackingStore(fbw, fbh)
			if err != nil {
				log.Fatalf("Failed to create backing store: %v", err)
			}
		}

		drawFrame(store, fbw, fbh, frame)

		layers := []glcompose.Layer{{
			Kind:   glcompose.LayerKindBackingStore,
			Store:  store,
			Width:  fbw,
			Height: fbh,
		}}
		if err := comp.Present(layers); err != nil {
			log.Fatalf("Failed to present frame %d: %v", frame, err)
		}

		glfw.PollEvents()
		frame++
		if *frames > 0 && frame >= *frames {
			break
		}
	}

	if err := comp.CollectBackingStore(store); err != nil {
		log.Fatalf("Failed to collect backing store: %v", err)
	}
	log.Printf("Presented %d frames (%dx%d)", frame, fbw, fbh)
}

func newWindow(width, height int) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, "glcompose demo", nil, nil)
	if err != nil {
		return nil, err
	}
	return win, nil
}

// drawFrame plays the role of the host rendering pipeline: it renders
// into the backing store's framebuffer through the same bindings the
// compositor loaded.
func drawFrame(store *glcompose.BackingStore, width, height, frame int) {
	t := float64(frame) / 120
	r := 0.5 + 0.5*math.Sin(t)
	g := 0.5 + 0.5*math.Sin(t+2*math.Pi/3)
	b := 0.5 + 0.5*math.Sin(t+4*math.Pi/3)

	gl.BindFramebuffer(gl.FRAMEBUFFER, store.ID)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(float32(r), float32(g), float32(b), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
