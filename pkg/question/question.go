package question

import (
	"fmt"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

type Question struct {
	Index   int               `json:"index"`
	ToneA   interval.Note     `json:"toneA"`
	ToneB   interval.Note     `json:"toneB"`
	Correct interval.Interval `json:"correct"`
}

func (this Question) String() string {
	return fmt.Sprintf("#%d %v-%v (%v)", this.Index, this.ToneA, this.ToneB, this.Correct)
}

// IsCorrect reports whether answer matches the interval between both tones.
func (this Question) IsCorrect(answer interval.Interval) bool {
	return answer.IsValid() && answer == this.Correct
}

func (this Question) Validate() error {
	if !this.Correct.IsValid() {
		return fmt.Errorf("question %d has an illegal interval: %d", this.Index, uint8(this.Correct))
	}
	if d := interval.Distance(this.ToneA, this.ToneB); d != this.Correct.Semitones() {
		return fmt.Errorf("question %d: %v and %v are %d semitones apart but %v requires %d", this.Index, this.ToneA, this.ToneB, d, this.Correct, this.Correct.Semitones())
	}
	return nil
}

type Questions []Question

func (this Questions) IsZero() bool {
	return len(this) <= 0
}

func (this Questions) HasContent() bool {
	return !this.IsZero()
}
