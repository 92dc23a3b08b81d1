package qrgrid

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Default: Go Mono labels
//	r, _ := qrgrid.NewRenderer()
//
//	// Bare grid without axis labels
//	r, _ := qrgrid.NewRenderer(qrgrid.WithoutLabels())
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	fonts  *LabelFonts
	labels bool
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		fonts:  nil, // Go Mono if nil
		labels: true,
	}
}

// WithLabelFonts sets custom font sources for the axis labels.
func WithLabelFonts(f LabelFonts) RendererOption {
	return func(o *rendererOptions) {
		o.fonts = &f
	}
}

// WithoutLabels disables the axis index labels. The gutter is still
// reserved so hit testing and layout are unchanged.
func WithoutLabels() RendererOption {
	return func(o *rendererOptions) {
		o.labels = false
	}
}

// ViewportOption configures a Viewport during creation.
type ViewportOption func(*viewportOptions)

type viewportOptions struct {
	state    ViewState
	renderer *Renderer
	exporter Exporter
	printer  Printer
	onRender func(Frame)
}

func defaultViewportOptions() viewportOptions {
	return viewportOptions{
		state: DefaultViewState(),
	}
}

// WithViewState sets the initial view. The cell size is clamped.
func WithViewState(s ViewState) ViewportOption {
	return func(o *viewportOptions) {
		o.state = s.WithCellSize(s.CellSize)
	}
}

// WithRenderer sets the renderer used for every redraw.
func WithRenderer(r *Renderer) ViewportOption {
	return func(o *viewportOptions) {
		o.renderer = r
	}
}

// WithExporter sets the collaborator that receives export snapshots.
func WithExporter(e Exporter) ViewportOption {
	return func(o *viewportOptions) {
		o.exporter = e
	}
}

// WithPrinter sets the collaborator that receives print snapshots.
func WithPrinter(p Printer) ViewportOption {
	return func(o *viewportOptions) {
		o.printer = p
	}
}

// OnRender registers a callback invoked after every redraw with the new
// frame. It runs with the viewport lock held and must not call back into
// the viewport.
func OnRender(fn func(Frame)) ViewportOption {
	return func(o *viewportOptions) {
		o.onRender = fn
	}
}
