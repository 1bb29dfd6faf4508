package constants

import "time"

// Burst Parameters
const (
	// CornerParticleCount is the particle count of a corner-hit burst
	CornerParticleCount = 100
	// CornerSpread is the cone width in degrees of a corner-hit burst
	CornerSpread = 70.0

	// ManualParticleCount is the particle count of a key-triggered burst
	ManualParticleCount = 150
	// ManualSpread is the cone width in degrees of a key-triggered burst
	ManualSpread = 120.0
)

// Particle Simulation
const (
	// ParticleStartSpeed is the initial speed in virtual pixels per second
	ParticleStartSpeed = 420.0
	// ParticleGravity is downward acceleration in virtual pixels per second²
	ParticleGravity = 480.0
	// ParticleDecay is the per-second velocity retention factor
	ParticleDecay = 0.4
	// ParticleLifetime is how long a particle lives before removal
	ParticleLifetime = 1800 * time.Millisecond
	// MaxParticles caps live particles, oldest are dropped first
	MaxParticles = 4000
)

// Chime
const (
	// ChimeCooldown is the minimum gap between two corner chimes
	ChimeCooldown = 400 * time.Millisecond
	// ChimeDuration is the length of one chime
	ChimeDuration = 350 * time.Millisecond
)
