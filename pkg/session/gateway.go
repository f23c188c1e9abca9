package session

import (
	"github.com/blaubaer/interval-trainer/pkg/interval"
	"github.com/blaubaer/interval-trainer/pkg/question"
)

// QuestionSource supplies the questions of a new session.
type QuestionSource interface {
	Generate(count int) question.Questions
}

// Playback renders both tones audibly. It may block until the tones are
// played; the Controller always calls it on its own goroutine.
type Playback interface {
	Play(a, b interval.Note) error
}

// Presentation turns a RenderState into something the user can see.
type Presentation interface {
	Render(RenderState)
}

// RenderState is everything a Presentation needs to draw the current
// screen. If Finished is set only FinalScore and QuestionCount are relevant.
type RenderState struct {
	QuestionNumber    int  `json:"questionNumber"`
	QuestionCount     int  `json:"questionCount"`
	Score             int  `json:"score"`
	SubmitEnabled     bool `json:"submitEnabled"`
	ReplayLabelActive bool `json:"replayLabelActive"`
	Finished          bool `json:"finished"`
	FinalScore        int  `json:"finalScore"`
}

func (this RenderState) IsStarted() bool {
	return this.QuestionNumber > 0 || this.Finished
}
