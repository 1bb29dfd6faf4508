package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Tail fade length, keeps a cut-off partial from clicking
const partialFade = 4 * time.Millisecond

// partial is one exponentially decaying sine component of a struck tone
type partial struct {
	step   float64 // Phase advance per sample, in cycles
	phase  float64
	level  float64 // Current amplitude after decay
	peak   float64
	decay  float64 // Per-sample amplitude multiplier
	attack int
	fade   int
	pos    int
	length int
}

// newPartial builds a partial that reaches amp after attack and loses 1/e of its level every tau
func newPartial(freq, amp float64, tau, attack, length time.Duration, rate beep.SampleRate) *partial {
	p := &partial{
		step:   freq / float64(rate),
		peak:   amp,
		level:  amp,
		decay:  1,
		attack: rate.N(attack),
		fade:   rate.N(partialFade),
		length: rate.N(length),
	}
	if n := rate.N(tau); n > 0 {
		p.decay = math.Exp(-1 / float64(n))
	}
	return p
}

// gain is the amplitude at the current sample
func (p *partial) gain() float64 {
	if p.pos < p.attack {
		return p.peak * float64(p.pos) / float64(p.attack)
	}
	g := p.level
	if left := p.length - p.pos; left < p.fade {
		g *= float64(left) / float64(p.fade)
	}
	return g
}

func (p *partial) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.pos >= p.length {
			// (0, true) would mean "more later", done is reported once nothing was written
			return i, i > 0
		}

		v := p.gain() * math.Sin(2*math.Pi*p.phase)
		samples[i][0] = v
		samples[i][1] = v

		p.phase += p.step
		p.phase -= math.Floor(p.phase)
		if p.pos >= p.attack {
			p.level *= p.decay
		}
		p.pos++
	}
	return len(samples), true
}

func (p *partial) Err() error { return nil }

// newVolume scales by a linear factor, math.Log2(0) is -Inf so 0 maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
