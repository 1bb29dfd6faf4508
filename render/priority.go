package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityParticle RenderPriority = iota
	PriorityLogo
	PriorityOverlay
	PriorityDebug
)
