package main

import (
	"math"
	"sync"
)

// listenerToneStream is a stereo 16-bit PCM sine whose gain follows the
// wave height under the listener.
type listenerToneStream struct {
	mu     sync.Mutex
	target float32
	gain   float32
	phase  float64
	step   float64
}

func newListenerToneStream(sampleRate int, toneHz float64) *listenerToneStream {
	return &listenerToneStream{step: 2 * math.Pi * toneHz / float64(sampleRate)}
}

// SetLevel sets the gain the tone glides towards, clamped to [0, 1].
func (s *listenerToneStream) SetLevel(v float32) {
	if v > 1 {
		v = 1
	} else if v < 0 {
		v = 0
	}
	s.mu.Lock()
	s.target = v
	s.mu.Unlock()
}

func (s *listenerToneStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Ensure we generate whole stereo frames (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < frameBytes; i += 4 {
		s.gain += (s.target - s.gain) * audioGainSmoothing
		v := int16(float64(s.gain) * math.Sin(s.phase) * pcm16MaxValue)
		s.phase += s.step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *listenerToneStream) Close() error {
	return nil
}
