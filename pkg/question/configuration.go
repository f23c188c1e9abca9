package question

import (
	"github.com/blaubaer/interval-trainer/pkg/common"
	"github.com/blaubaer/interval-trainer/pkg/interval"
)

func NewConfiguration() Configuration {
	return Configuration{
		10,

		interval.Note(48), // C3
		interval.Note(72), // C5
		DirectionDefault,

		interval.Intervals{},
		0,
	}
}

type Configuration struct {
	Count uint `yaml:"count"`

	LowestNote  interval.Note `yaml:"lowestNote"`
	HighestNote interval.Note `yaml:"highestNote"`
	Direction   Direction     `yaml:"direction"`

	Intervals interval.Intervals `yaml:"intervals,omitempty"`
	Seed      uint64             `yaml:"seed,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("questions.count", "How many questions one game consists of.").
		Envar("IT_QUESTIONS_COUNT").
		UintVar(&this.Count)
	using.Flag("questions.lowestNote", "Lowest note a question may use, like C3 or F#2.").
		Envar("IT_QUESTIONS_LOWEST_NOTE").
		SetValue(&this.LowestNote)
	using.Flag("questions.highestNote", "Highest note a question may use, like C5 or A4.").
		Envar("IT_QUESTIONS_HIGHEST_NOTE").
		SetValue(&this.HighestNote)
	using.Flag("questions.direction", "Order of the two tones. Possible values: "+AllDirections.String()).
		Envar("IT_QUESTIONS_DIRECTION").
		SetValue(&this.Direction)
	using.Flag("questions.interval", "Interval(s) to be asked. If absent all are asked. Possible values: "+interval.AllIntervals.String()).
		Envar("IT_QUESTIONS_INTERVALS").
		SetValue(&this.Intervals)
	using.Flag("questions.seed", "Seed for the question generator. 0 means a new random one on every game.").
		Envar("IT_QUESTIONS_SEED").
		Uint64Var(&this.Seed)
}
