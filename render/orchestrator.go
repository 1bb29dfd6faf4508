package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen Screen, proj Projection) *RenderOrchestrator {
	return &RenderOrchestrator{
		canvas:    NewCanvas(screen, proj),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard layers: particles, logo, overlay, status line
func NewDefaultOrchestrator(screen Screen, proj Projection) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen, proj)
	o.Register(NewParticleRenderer(), PriorityParticle)
	o.Register(NewLogoRenderer(), PriorityLogo)
	o.Register(NewOverlayRenderer(), PriorityOverlay)
	o.Register(NewStatusRenderer(), PriorityDebug)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize resyncs the terminal after a size change
func (o *RenderOrchestrator) Resize() {
	o.canvas.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
// Clearing every frame is what removes stale overlay annotations once debug is off
func (o *RenderOrchestrator) RenderFrame(ctx *RenderContext) {
	o.canvas.screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	o.canvas.screen.Show()
}
