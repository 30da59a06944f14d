package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// Player plays one clip on demand. Play restarts the clip if it is
// already playing.
type Player struct {
	mu   sync.Mutex
	clip Clip
	pos  int

	stream *portaudio.Stream
}

// NewPlayer opens the default output device at the clip's sample rate.
func NewPlayer(clip Clip) (*Player, error) {
	if clip.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", clip.SampleRate)
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	p := &Player{clip: clip, pos: len(clip.Samples)}
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(clip.SampleRate), 0, p.fill)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %w", err)
	}
	p.stream = stream
	return p, nil
}

// fill runs on the PortAudio callback thread.
func (p *Player) fill(out []float32) {
	p.mu.Lock()
	n := copy(out, p.clip.Samples[p.pos:])
	p.pos += n
	p.mu.Unlock()

	clear(out[n:])
}

func (p *Player) Play() {
	p.mu.Lock()
	p.pos = 0
	p.mu.Unlock()
}

// Playing reports whether the clip has samples left to play.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos < len(p.clip.Samples)
}

func (p *Player) Close() error {
	if p.stream == nil {
		return nil
	}
	err := p.stream.Close()
	p.stream = nil
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
