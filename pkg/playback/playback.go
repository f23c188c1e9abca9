package playback

import (
	"github.com/blaubaer/interval-trainer/pkg/interval"
)

type Playback interface {
	Play(a, b interval.Note) error
	Dispose() error

	GetType() Type
}
