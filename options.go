package glcompose

// Option configures a Compositor during creation.
//
// Example:
//
//	// Default: best registered table loader, view attached later.
//	comp, err := glcompose.New(ctx)
//
//	// Explicit wiring (dependency injection):
//	comp, err := glcompose.New(ctx,
//	    glcompose.WithView(view),
//	    glcompose.WithLoader(loader),
//	)
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	view   View
	loader TableLoader
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		view:   nil, // Attached later via SetView
		loader: nil, // Will fall back to the loader registry
	}
}

// WithView attaches a view at construction time. Equivalent to calling
// SetView right after New; Present fails with ErrNoView until a view is
// attached one way or the other.
func WithView(v View) Option {
	return func(o *options) {
		o.view = v
	}
}

// WithLoader sets the function table loader used by Initialize,
// bypassing the loader registry. Use this to wire a resolver explicitly:
//
//	comp, err := glcompose.New(ctx, glcompose.WithLoader(func() (gles.API, error) {
//	    return opengl.Load(glfw.GetProcAddress)
//	}))
//
// The loader is invoked only during initialization, never per frame.
func WithLoader(l TableLoader) Option {
	return func(o *options) {
		o.loader = l
	}
}
