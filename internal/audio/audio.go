// Package audio plays the game's sound effects.
package audio

import (
	"bytes"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-snake/internal/audio/synth"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// formatFloat32LE is oto.FormatFloat32LE.
const formatFloat32LE = 0

// Player plays sound effects without blocking the caller.
type Player interface {
	Play(s core.Sound)
	Close() error
}

// Nop is a Player that discards every sound. Used when audio is disabled
// or no output device is available.
type Nop struct{}

func (Nop) Play(core.Sound) {}
func (Nop) Close() error    { return nil }

// OtoPlayer plays sounds through the system audio device.
type OtoPlayer struct {
	ctx   *oto.Context
	ready chan struct{}

	mu     sync.Mutex
	cache  map[core.Sound][]byte
	wg     sync.WaitGroup
	closed bool
}

// Open creates an audio context on the default output device.
func Open() (*OtoPlayer, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, formatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &OtoPlayer{
		ctx:   ctx,
		ready: ready,
		cache: make(map[core.Sound][]byte),
	}, nil
}

// Play starts the sound in the background. Sounds requested before the
// device is ready are dropped.
func (p *OtoPlayer) Play(s core.Sound) {
	select {
	case <-p.ready:
	default:
		return
	}

	samples := p.samples(s)
	if len(samples) == 0 {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		player := p.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(synth.Volume(s))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

// samples returns the cached PCM buffer for s, generating it on first use.
func (p *OtoPlayer) samples(s core.Sound) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf, ok := p.cache[s]
	if !ok {
		buf = synth.Generate(s)
		p.cache[s] = buf
	}
	return buf
}

// Close waits for playing sounds to finish and suspends the device.
func (p *OtoPlayer) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
	return p.ctx.Suspend()
}
