package playback

import (
	"fmt"
	"sync"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

// Facade delegates to the Playback selected by Configuration.Type.
type Facade struct {
	Playback

	lock sync.RWMutex
}

func (this *Facade) Play(a, b interval.Note) error {
	this.lock.RLock()
	defer this.lock.RUnlock()

	if v := this.Playback; v != nil {
		return v.Play(a, b)
	}
	return fmt.Errorf("playback not initialized")
}

func (this *Facade) Initialize(conf *Configuration) error {
	this.lock.Lock()
	defer this.lock.Unlock()

	if this.Playback != nil {
		return nil
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	switch conf.Type.OrDefault() {
	case TypeOto:
		var buf Oto
		if err := buf.Initialize(conf); err != nil {
			return err
		}
		this.Playback = &buf
	case TypeSilent:
		var buf Silent
		if err := buf.Initialize(conf); err != nil {
			return err
		}
		this.Playback = &buf
	default:
		return fmt.Errorf("unsupported playback type: %v", conf.Type)
	}

	return nil
}

func (this *Facade) Dispose() error {
	this.lock.Lock()
	defer this.lock.Unlock()

	defer func() {
		this.Playback = nil
	}()

	if v := this.Playback; v != nil {
		return v.Dispose()
	}
	return nil
}

func (this *Facade) GetType() Type {
	this.lock.RLock()
	defer this.lock.RUnlock()

	if v := this.Playback; v != nil {
		return v.GetType()
	}

	return 0
}
