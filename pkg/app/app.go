package app

import (
	"context"
	"fmt"
	"os"

	"dario.cat/mergo"
	log "github.com/echocat/slf4g"

	"github.com/blaubaer/interval-trainer/pkg/common"
	"github.com/blaubaer/interval-trainer/pkg/console"
	"github.com/blaubaer/interval-trainer/pkg/playback"
	"github.com/blaubaer/interval-trainer/pkg/question"
	"github.com/blaubaer/interval-trainer/pkg/session"
)

func NewApp() *App {
	return &App{
		config: NewConfiguration(),
	}
}

type App struct {
	Playback          playback.Facade
	Console           console.Console
	ConfigurationFile string

	configFromFlags Configuration
	config          Configuration
	bank            *question.Bank
}

func (this *App) SetupConfiguration(using common.FlagHolder) {
	this.configFromFlags.SetupConfiguration(using)

	using.Flag("configuration", "Defines the file from which the configuration should be loaded and/or stored to.").
		Short('c').
		Envar("IT_CONFIGURATION").
		StringVar(&this.ConfigurationFile)
}

func (this *App) Run(ctx context.Context) error {
	if this.bank == nil {
		return fmt.Errorf("not initialized")
	}

	controller := session.NewController(this.bank, &this.Playback, &this.Console, int(this.config.Questions.Count))
	defer controller.Wait()

	log.With("questions", this.config.Questions.Count).
		With("playback", this.Playback.GetType()).
		Debug("Game ready.")

	return this.Console.Run(ctx, controller)
}

func (this *App) Initialize() (rErr error) {
	success := false
	defer func() {
		if !success {
			if err := this.Dispose(); err != nil && rErr == nil {
				rErr = err
			}
		}
	}()

	if err := this.resolveConfiguration(); err != nil {
		return err
	}

	if this.config.Questions.Count == 0 {
		return fmt.Errorf("at least one question per game is required")
	}
	bank, err := question.NewBank(&this.config.Questions)
	if err != nil {
		return fmt.Errorf("cannot create questions: %w", err)
	}
	this.bank = bank

	if err := this.Playback.Initialize(&this.config.Playback); err != nil {
		return err
	}

	if err := this.saveConf(); err != nil {
		return err
	}

	success = true
	return nil
}

// resolveConfiguration loads the configuration file on top of the defaults
// and then applies every explicitly provided flag.
func (this *App) resolveConfiguration() error {
	if err := this.config.loadFromFile(this.configurationFile(), true); err != nil {
		return err
	}
	if err := mergo.Merge(&this.config, this.configFromFlags, mergo.WithOverride); err != nil {
		return fmt.Errorf("cannot apply flags to configuration: %w", err)
	}
	return nil
}

func (this *App) configurationFile() string {
	if v := this.ConfigurationFile; v != "" {
		return v
	}
	return defaultConfigurationFile()
}

func (this *App) saveConf() error {
	if this.config.PreventAutoSave {
		log.Debug("Automatically save of configuration disabled.")
		return nil
	}

	fn := this.configurationFile()
	_, err := os.Stat(fn)
	if os.IsNotExist(err) {
		log.With("file", fn).Info("Configuration absent.")
		// Ok, we should save...
	} else if err != nil {
		return err
	} else {
		// Does exist, skip...
		return nil
	}

	if err := this.config.saveToFile(fn); err != nil {
		return err
	}

	log.With("file", fn).Info("Configuration saved.")

	return nil
}

func (this *App) Dispose() error {
	this.bank = nil
	return this.Playback.Dispose()
}
