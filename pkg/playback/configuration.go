package playback

import (
	"fmt"
	"time"

	"github.com/blaubaer/interval-trainer/pkg/common"
)

func NewConfiguration() Configuration {
	return Configuration{
		TypeDefault,
		ModeDefault,

		500 * time.Millisecond,
		1500 * time.Millisecond,
		250 * time.Millisecond,
		2 * time.Second,

		0.5,
		44100,
	}
}

type Configuration struct {
	Type Type `yaml:"type"`
	Mode Mode `yaml:"mode"`

	Delay        time.Duration `yaml:"delay,omitempty"`
	ToneDuration time.Duration `yaml:"toneDuration,omitempty"`
	Gap          time.Duration `yaml:"gap,omitempty"`
	Release      time.Duration `yaml:"release,omitempty"`

	Volume     float64 `yaml:"volume,omitempty"`
	SampleRate uint32  `yaml:"sampleRate,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("playback.type", "How tones are played. Possible values: "+AllTypes.String()).
		Envar("IT_PLAYBACK_TYPE").
		SetValue(&this.Type)
	using.Flag("playback.mode", "If the tones are played together or one after another. Possible values: "+AllModes.String()).
		Envar("IT_PLAYBACK_MODE").
		SetValue(&this.Mode)
	using.Flag("playback.delay", "Silence before the first tone starts.").
		Envar("IT_PLAYBACK_DELAY").
		DurationVar(&this.Delay)
	using.Flag("playback.toneDuration", "How long each tone is held before it is released.").
		Envar("IT_PLAYBACK_TONE_DURATION").
		DurationVar(&this.ToneDuration)
	using.Flag("playback.gap", "Silence between both tones in melodic mode.").
		Envar("IT_PLAYBACK_GAP").
		DurationVar(&this.Gap)
	using.Flag("playback.release", "How long a tone fades out after it was released.").
		Envar("IT_PLAYBACK_RELEASE").
		DurationVar(&this.Release)
	using.Flag("playback.volume", "Volume between 0 (mute) and 1 (full).").
		Envar("IT_PLAYBACK_VOLUME").
		Float64Var(&this.Volume)
	using.Flag("playback.sampleRate", "Sample rate in Hz of the audio output.").
		Envar("IT_PLAYBACK_SAMPLE_RATE").
		Uint32Var(&this.SampleRate)
}

func (this *Configuration) Validate() error {
	if this.Volume < 0 || this.Volume > 1 {
		return fmt.Errorf("illegal playback volume %v: has to be between 0 and 1", this.Volume)
	}
	if this.SampleRate < 8000 {
		return fmt.Errorf("illegal playback sample rate %d: has to be at least 8000", this.SampleRate)
	}
	if this.ToneDuration <= 0 {
		return fmt.Errorf("illegal playback tone duration %v: has to be positive", this.ToneDuration)
	}
	if this.Delay < 0 || this.Gap < 0 || this.Release < 0 {
		return fmt.Errorf("playback delay (%v), gap (%v) and release (%v) must not be negative", this.Delay, this.Gap, this.Release)
	}
	return nil
}
