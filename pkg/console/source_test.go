package console

import (
	"github.com/blaubaer/interval-trainer/pkg/interval"
	"github.com/blaubaer/interval-trainer/pkg/question"
)

type fixedSource []interval.Interval

func (this fixedSource) Generate(count int) question.Questions {
	result := make(question.Questions, count)
	for i := range result {
		v := this[i%len(this)]
		result[i] = question.Question{
			Index:   i,
			ToneA:   interval.C4,
			ToneB:   interval.C4 + interval.Note(v),
			Correct: v,
		}
	}
	return result
}
