package main

import (
	"encoding/binary"
	"testing"
)

func TestListenerToneWholeFrames(t *testing.T) {
	s := newListenerToneStream(audioSampleRate, audioToneHz)
	p := make([]byte, 7)
	n, err := s.Read(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected one 4-byte frame, got %d bytes", n)
	}
	if n, _ := s.Read(make([]byte, 3)); n != 0 {
		t.Errorf("expected no partial frame, got %d bytes", n)
	}
}

func TestListenerToneSilentAtZeroLevel(t *testing.T) {
	s := newListenerToneStream(audioSampleRate, audioToneHz)
	p := make([]byte, 4*256)
	if _, err := s.Read(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range p {
		if b != 0 {
			t.Fatalf("expected silence, byte %d = %d", i, b)
		}
	}
}

func TestListenerToneStereoAndBounded(t *testing.T) {
	s := newListenerToneStream(audioSampleRate, audioToneHz)
	s.SetLevel(5)
	if s.target != 1 {
		t.Fatalf("expected level clamped to 1, got %v", s.target)
	}
	p := make([]byte, 4*audioSampleRate/10)
	if _, err := s.Read(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nonZero := false
	for i := 0; i < len(p); i += 4 {
		left := int16(binary.LittleEndian.Uint16(p[i:]))
		right := int16(binary.LittleEndian.Uint16(p[i+2:]))
		if left != right {
			t.Fatalf("frame %d: left %d != right %d", i/4, left, right)
		}
		if left != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("expected an audible tone after raising the level")
	}

	s.SetLevel(-1)
	if s.target != 0 {
		t.Errorf("expected level clamped to 0, got %v", s.target)
	}
}
