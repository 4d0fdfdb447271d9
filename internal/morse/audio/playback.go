// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     audio
// Description: Speaker output of synthesized code using PortAudio
// Author:      Mike Stoffels
// Created:     2025-12-15
// License:     MIT
// ============================================================================

package audio

import (
	"context"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// DefaultFramesPerBuffer is the output buffer size
const DefaultFramesPerBuffer = 1024

// Sink consumes rendered samples
type Sink interface {
	Play(ctx context.Context, samples []float32) error
}

// Playback plays samples on the default output device
type Playback struct {
	mu         sync.Mutex
	sampleRate float64
	bufferSize int
	playing    bool
}

// NewPlayback creates a playback instance for sampleRate
func NewPlayback(sampleRate int) *Playback {
	return &Playback{
		sampleRate: float64(sampleRate),
		bufferSize: DefaultFramesPerBuffer,
	}
}

// Play blocks until all samples are played or ctx is cancelled
func (p *Playback) Play(ctx context.Context, samples []float32) error {
	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return fmt.Errorf("already playing")
	}
	p.playing = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	}()

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	defer portaudio.Terminate()

	buffer := make([]float32, p.bufferSize)

	stream, err := portaudio.OpenDefaultStream(
		0, // input channels (none)
		1, // output channels
		p.sampleRate,
		len(buffer),
		&buffer,
	)
	if err != nil {
		return fmt.Errorf("failed to open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start output stream: %w", err)
	}
	defer stream.Stop()

	for position := 0; position < len(samples); position += len(buffer) {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := copy(buffer, samples[position:])
		clear(buffer[n:])

		if err := stream.Write(); err != nil {
			return fmt.Errorf("failed to write to stream: %w", err)
		}
	}

	return nil
}
