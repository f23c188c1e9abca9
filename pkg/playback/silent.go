package playback

import (
	"fmt"

	log "github.com/echocat/slf4g"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

// Silent does not produce any sound but logs which tones would have been
// played. Useful without an audio device.
type Silent struct {
	conf *Configuration
}

func (this *Silent) Initialize(conf *Configuration) error {
	this.conf = conf
	return nil
}

func (this *Silent) Play(a, b interval.Note) error {
	if this.conf == nil {
		return fmt.Errorf("silent playback not initialized")
	}
	log.With("toneA", a).
		With("toneB", b).
		With("frequencies", []string{
			fmt.Sprintf("%.2fHz", a.Frequency()),
			fmt.Sprintf("%.2fHz", b.Frequency()),
		}).
		With("mode", this.conf.Mode).
		Info("Tones played silently.")
	return nil
}

func (this *Silent) Dispose() error {
	this.conf = nil
	return nil
}

func (this *Silent) GetType() Type {
	return TypeSilent
}
