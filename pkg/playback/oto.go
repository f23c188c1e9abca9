package playback

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	log "github.com/echocat/slf4g"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

// There can only be one oto context per process; it is kept for the whole
// lifetime even if an Oto instance is disposed.
var (
	otoContext     *oto.Context
	otoContextErr  error
	otoContextRate int
	otoContextOnce sync.Once
)

func otoContextFor(sampleRate int) (*oto.Context, error) {
	otoContextOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			otoContextErr = fmt.Errorf("cannot initialize audio output: %w", err)
			return
		}
		<-ready
		otoContext = ctx
		otoContextRate = sampleRate
	})
	if otoContextErr != nil {
		return nil, otoContextErr
	}
	if otoContextRate != sampleRate {
		return nil, fmt.Errorf("audio output already initialized with sample rate %d; cannot switch to %d", otoContextRate, sampleRate)
	}
	return otoContext, nil
}

type Oto struct {
	conf  *Configuration
	ctx   *oto.Context
	mutex sync.RWMutex
}

func (this *Oto) Initialize(conf *Configuration) error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	ctx, err := otoContextFor(int(conf.SampleRate))
	if err != nil {
		return err
	}

	this.conf = conf
	this.ctx = ctx
	log.With("sampleRate", conf.SampleRate).
		With("mode", conf.Mode).
		Debug("Audio output initialized.")
	return nil
}

// Play blocks until both tones faded out.
func (this *Oto) Play(a, b interval.Note) error {
	this.mutex.RLock()
	ctx, conf := this.ctx, this.conf
	this.mutex.RUnlock()

	if ctx == nil {
		return fmt.Errorf("audio output not initialized")
	}

	player := ctx.NewPlayer(bytes.NewReader(Render(conf, a, b)))
	defer func() {
		_ = player.Close()
	}()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("cannot play %v and %v: %w", a, b, err)
	}
	return nil
}

func (this *Oto) Dispose() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	this.conf = nil
	this.ctx = nil
	return nil
}

func (this *Oto) GetType() Type {
	return TypeOto
}
