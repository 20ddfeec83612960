// Package audio plays short synthesized tones for game events.
// Nothing is loaded from disk; every sound is generated from sine waves.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of every generated sound.
const SampleRate = beep.SampleRate(44100)

// Kind identifies a sound effect.
type Kind int

const (
	KindFlap  Kind = iota // Short chirp on jump
	KindScore             // Two rising notes on a gap pass
	KindCrash             // Low falling notes on death
)

// note is one tone of an effect. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var sounds = map[Kind][]note{
	KindFlap:  {{660, 40 * time.Millisecond}},
	KindScore: {{988, 60 * time.Millisecond}, {1319, 90 * time.Millisecond}},
	KindCrash: {{220, 90 * time.Millisecond}, {0, 20 * time.Millisecond}, {147, 160 * time.Millisecond}},
}

// Player reacts to game events with sound.
type Player interface {
	Flap()
	Score()
	Crash()
	Close() error
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Flap()        {}
func (Nop) Score()       {}
func (Nop) Crash()       {}
func (Nop) Close() error { return nil }

// Streamer builds the finite stream for a sound at the given volume (0..1).
func Streamer(k Kind, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := sounds[k]
	if !ok {
		return nil, fmt.Errorf("audio: unknown sound %d", k)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.dur)))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %vHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Speaker plays sounds on the default audio device.
type Speaker struct {
	volume  float64
	streams map[Kind]*beep.Buffer
}

// NewSpeaker opens the audio device and pre-renders every sound.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}

	s := &Speaker{volume: volume, streams: make(map[Kind]*beep.Buffer, len(sounds))}
	for k := range sounds {
		st, err := Streamer(k, SampleRate, volume)
		if err != nil {
			speaker.Close()
			return nil, err
		}
		buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
		buf.Append(st)
		s.streams[k] = buf
	}
	return s, nil
}

func (s *Speaker) play(k Kind) {
	buf := s.streams[k]
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Flap plays the jump chirp.
func (s *Speaker) Flap() { s.play(KindFlap) }

// Score plays the gap-pass chime.
func (s *Speaker) Score() { s.play(KindScore) }

// Crash plays the death sound.
func (s *Speaker) Crash() { s.play(KindCrash) }

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
