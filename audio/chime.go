// Package audio plays a short synthesized chime when a particle burst fires
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/effect"
)

// Config controls chime output
type Config struct {
	Enabled  bool
	Volume   float64       // Linear, 0 silences
	Cooldown time.Duration // Min gap between chimes, corner bursts repeat every tick near a corner
}

// DefaultConfig returns enabled chimes at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Volume:   0.5,
		Cooldown: constants.ChimeCooldown,
	}
}

// Chime implements effect.Emitter with throttled audio feedback
type Chime struct {
	cfg     Config
	limiter *rate.Limiter

	mu          sync.Mutex
	initialized bool
	play        func(beep.Streamer)

	played atomic.Int64
}

// NewChime creates a chime, Start must be called before it makes any sound
func NewChime(cfg Config) *Chime {
	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = constants.ChimeCooldown
	}
	return &Chime{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cooldown), 1),
	}
}

// Start initializes the speaker, failure leaves the chime silent
func (c *Chime) Start() error {
	if !c.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	c.attach(func(s beep.Streamer) { speaker.Play(s) })
	return nil
}

// attach sets the output sink, speaker.Play in production
func (c *Chime) attach(play func(beep.Streamer)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.play = play
	c.initialized = true
}

// Stop drops queued sounds and detaches output
func (c *Chime) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	if c.cfg.Enabled {
		speaker.Clear()
	}
	c.play = nil
	c.initialized = false
}

// Emit plays a chime unless muted or still cooling down
func (c *Chime) Emit(b effect.Burst) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.play == nil || c.cfg.Volume <= 0 {
		return
	}
	if !c.limiter.Allow() {
		return
	}

	if b.Manual {
		c.play(CreateBurstChime(constants.ChimeDuration, c.cfg.Volume))
	} else {
		c.play(CreateCornerChime(constants.ChimeDuration, c.cfg.Volume))
	}
	c.played.Add(1)
}

// Played returns the number of chimes started
func (c *Chime) Played() int64 {
	return c.played.Load()
}
