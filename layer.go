package glcompose

// LayerKind identifies the content of a presentation layer.
type LayerKind uint32

const (
	// LayerKindUndefined is the zero value and never valid for present.
	LayerKindUndefined LayerKind = iota

	// LayerKindBackingStore is a layer whose content is a backing store
	// produced by CreateBackingStore. The only kind Present accepts.
	LayerKindBackingStore

	// LayerKindPlatformView is a layer embedding a native view. Not
	// supported by this compositor; submitting one is a host protocol
	// violation.
	LayerKindPlatformView
)

// String returns the kind name.
func (k LayerKind) String() string {
	switch k {
	case LayerKindBackingStore:
		return "backing-store"
	case LayerKindPlatformView:
		return "platform-view"
	default:
		return "undefined"
	}
}

// Layer is one content item submitted for a single Present call. Layers
// are transient; the compositor never retains them.
type Layer struct {
	// Kind selects the content interpretation.
	Kind LayerKind

	// Store is the content descriptor for LayerKindBackingStore layers.
	Store *BackingStore

	// Width and Height are the layer's size in physical pixels. The
	// destination drawable is sized to match before the copy.
	Width  int
	Height int
}
