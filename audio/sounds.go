package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(44100)

	strikeAttack = 3 * time.Millisecond
)

// Bell partials relative to the strike note: hum, prime, tierce, quint, nominal
// Upper partials die faster, which is what makes the strike sound metallic
var bellPartials = []struct {
	ratio, amp, tau float64 // tau is a fraction of the tone length
}{
	{0.5, 0.20, 0.9},
	{1.0, 0.45, 0.6},
	{1.2, 0.15, 0.35},
	{1.5, 0.10, 0.25},
	{2.0, 0.10, 0.2},
}

// CreateCornerChime generates a rising two-note strike for a corner hit
func CreateCornerChime(duration time.Duration, volume float64) beep.Streamer {
	first := duration / 3

	// E6 then A6, the second rings out
	return newVolume(beep.Seq(
		strike(1318.51, first, sampleRate),
		strike(1760.0, duration-first, sampleRate),
	), volume)
}

// CreateBurstChime generates a single low strike for a manual burst
func CreateBurstChime(duration time.Duration, volume float64) beep.Streamer {
	return newVolume(strike(659.25, duration, sampleRate), volume)
}

// strike sums the bell partials of a note, amplitudes total 1 so the mix never clips
func strike(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(bellPartials))
	for i, bp := range bellPartials {
		tau := time.Duration(bp.tau * float64(d))
		parts[i] = newPartial(freq*bp.ratio, bp.amp, tau, strikeAttack, d, rate)
	}
	return beep.Mix(parts...)
}
