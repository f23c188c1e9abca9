package app

import (
	"os"
	"path/filepath"

	"github.com/blaubaer/interval-trainer/pkg/common"
	"github.com/blaubaer/interval-trainer/pkg/playback"
	"github.com/blaubaer/interval-trainer/pkg/question"
)

const appName = "interval-trainer"

func NewConfiguration() Configuration {
	return Configuration{
		false,

		question.NewConfiguration(),
		playback.NewConfiguration(),
	}
}

type Configuration struct {
	PreventAutoSave bool `yaml:"preventAutoSave"`

	Questions question.Configuration `yaml:"questions"`
	Playback  playback.Configuration `yaml:"playback"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("preventAutoSave", "If provided configuration will NOT automatically be saved if it does not exist yet.").
		Envar("IT_PREVENT_AUTO_SAVE").
		BoolVar(&this.PreventAutoSave)

	this.Questions.SetupConfiguration(using)
	this.Playback.SetupConfiguration(using)
}

func defaultConfigurationFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "configuration.yml"
	}

	return filepath.Join(dir, appName, "configuration.yml")
}
