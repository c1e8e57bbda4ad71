package audio

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNop(t *testing.T) {
	var p Player = Nop{}
	p.Play(core.SoundEat)
	p.Play(core.SoundHit)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestOtoPlayerCachesSamples(t *testing.T) {
	p := &OtoPlayer{cache: make(map[core.Sound][]byte)}

	first := p.samples(core.SoundBonus)
	if len(first) == 0 {
		t.Fatal("expected samples for bonus sound")
	}
	second := p.samples(core.SoundBonus)
	if &first[0] != &second[0] {
		t.Error("samples should be generated once and reused")
	}
}

func TestOtoPlayerDropsBeforeReady(t *testing.T) {
	p := &OtoPlayer{
		ready: make(chan struct{}),
		cache: make(map[core.Sound][]byte),
	}
	p.Play(core.SoundEat)
	if len(p.cache) != 0 {
		t.Error("sound played before the device was ready")
	}
}
