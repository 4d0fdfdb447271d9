// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     audio
// Description: Sine tone synthesis with raised-cosine keying envelope
// Author:      Mike Stoffels
// Created:     2025-12-15
// License:     MIT
// ============================================================================

package audio

import (
	"math"
	"time"
)

// SynthConfig holds tone synthesis settings
type SynthConfig struct {
	SampleRate int
	ToneHz     float64
	Volume     float64

	// Ramp is the rise and fall time of each tone, suppressing key clicks
	Ramp time.Duration
}

// DefaultSynthConfig returns a 600 Hz tone at half volume
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		SampleRate: 44100,
		ToneHz:     600,
		Volume:     0.5,
		Ramp:       5 * time.Millisecond,
	}
}

// samplesFor converts a duration into a sample count at rate
func samplesFor(d time.Duration, rate int) int {
	return int(math.Round(d.Seconds() * float64(rate)))
}

// Synthesize renders elements as mono samples in [-Volume, Volume]
func Synthesize(elements []Element, cfg SynthConfig) []float32 {
	total := 0
	for _, e := range elements {
		total += samplesFor(e.Duration, cfg.SampleRate)
	}
	samples := make([]float32, 0, total)

	step := 2 * math.Pi * cfg.ToneHz / float64(cfg.SampleRate)
	for _, e := range elements {
		n := samplesFor(e.Duration, cfg.SampleRate)
		if !e.On {
			samples = append(samples, make([]float32, n)...)
			continue
		}

		ramp := samplesFor(cfg.Ramp, cfg.SampleRate)
		if ramp > n/2 {
			ramp = n / 2
		}

		for i := 0; i < n; i++ {
			gain := cfg.Volume * envelope(i, n, ramp)
			samples = append(samples, float32(gain*math.Sin(step*float64(i))))
		}
	}

	return samples
}

// envelope is a raised-cosine ramp over the first and last ramp samples
func envelope(i, n, ramp int) float64 {
	if ramp <= 0 {
		return 1
	}
	switch {
	case i < ramp:
		return 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(ramp))
	case i >= n-ramp:
		return 0.5 - 0.5*math.Cos(math.Pi*float64(n-1-i)/float64(ramp))
	default:
		return 1
	}
}
