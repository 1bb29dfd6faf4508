package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/bounce/input"
	"github.com/lixenwraith/bounce/render"
)

// FrameRenderer draws a frame, render.RenderOrchestrator satisfies it
type FrameRenderer interface {
	RenderFrame(ctx *render.RenderContext)
	Resize()
}

// Loop drives the scene: one tick and one frame per ticker fire, input handled between ticks
// It is the single writer of scene state
type Loop struct {
	scene    *Scene
	renderer FrameRenderer
	viewport Viewport
	keymap   input.Keymap
	clock    Clock
	logger   *zap.Logger

	restarts int
	uptime   time.Duration
}

// NewLoop wires a scene to its renderer, viewport and clock
func NewLoop(scene *Scene, renderer FrameRenderer, viewport Viewport, keymap input.Keymap, clock Clock, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		scene:    scene,
		renderer: renderer,
		viewport: viewport,
		keymap:   keymap,
		clock:    clock,
		logger:   logger.Named("loop"),
	}
}

// Run blocks until ctx is done, events is closed, or a quit key arrives
// A resize tears down the ticker, remeasures bounds, and starts a fresh ticker
func (l *Loop) Run(ctx context.Context, events <-chan input.Event) error {
	interval := l.scene.params.FrameInterval

	started := l.clock.Now()
	l.scene.Measure(l.viewport)
	ticker := l.clock.NewTicker(interval)
	defer func() {
		ticker.Stop()
		l.uptime = l.clock.Now().Sub(started)
		l.logger.Info("frame loop stopped", zap.Duration("uptime", l.uptime), zap.Int("restarts", l.restarts))
	}()

	l.renderer.RenderFrame(l.scene.RenderContext())
	l.logger.Info("frame loop started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				l.logger.Info("event source closed")
				return nil
			}

			switch ev.Kind {
			case input.EventResize:
				ticker.Stop()
				l.scene.Measure(l.viewport)
				l.renderer.Resize()
				ticker = l.clock.NewTicker(interval)
				l.restarts++
				l.renderer.RenderFrame(l.scene.RenderContext())

			case input.EventKey:
				action := l.keymap.Resolve(ev.Key)
				if action == input.ActionQuit {
					l.logger.Info("quit requested")
					return nil
				}
				l.scene.HandleAction(action)
			}

		case now := <-ticker.C():
			l.scene.Tick(now)
			l.renderer.RenderFrame(l.scene.RenderContext())
		}
	}
}

// Restarts returns how many times the ticker was rebuilt, read only after Run returns
func (l *Loop) Restarts() int {
	return l.restarts
}

// Uptime returns clock time spent in Run, read only after Run returns
func (l *Loop) Uptime() time.Duration {
	return l.uptime
}
