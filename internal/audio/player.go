package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	log "github.com/sirupsen/logrus"
)

// Player streams a Synth to the default output device.
type Player struct {
	Synth  *Synth
	Stream *portaudio.Stream
	Active bool
}

func NewPlayer(s *Synth) *Player {
	return &Player{Synth: s}
}

// Start opens a stereo output-only stream. On failure the player stays
// inactive and the caller may continue silently.
func (p *Player) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.Synth.Process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio open: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio start: %w", err)
	}

	log.WithFields(log.Fields{
		"rate":   SampleRate,
		"buffer": BufferSize,
	}).Info("audio started")

	p.Stream = stream
	p.Active = true
	return nil
}

func (p *Player) Stop() {
	if !p.Active {
		return
	}
	if p.Stream != nil {
		p.Stream.Stop()
		p.Stream.Close()
	}
	portaudio.Terminate()
	p.Active = false
}
