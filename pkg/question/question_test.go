package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

func TestQuestion_Validate(t *testing.T) {
	assert.NoError(t, Question{ToneA: 60, ToneB: 67, Correct: interval.PerfectFifth}.Validate())
	assert.NoError(t, Question{ToneA: 67, ToneB: 60, Correct: interval.PerfectFifth}.Validate())
	assert.Error(t, Question{ToneA: 60, ToneB: 66, Correct: interval.PerfectFifth}.Validate())
	assert.Error(t, Question{ToneA: 60, ToneB: 60, Correct: interval.Interval(0)}.Validate())
}

func TestQuestion_IsCorrect(t *testing.T) {
	q := Question{ToneA: 60, ToneB: 64, Correct: interval.MajorThird}

	assert.True(t, q.IsCorrect(interval.MajorThird))
	assert.False(t, q.IsCorrect(interval.MinorThird))
	assert.False(t, q.IsCorrect(interval.Interval(0)))
	assert.Equal(t, "#0 C4-E4 (major 3rd)", q.String())
}

func TestDirection_Set(t *testing.T) {
	var actual Direction
	require.NoError(t, actual.Set(" Down "))
	assert.Equal(t, DirectionDescending, actual)
	require.NoError(t, actual.Set("random"))
	assert.Equal(t, DirectionRandom, actual)
	assert.Error(t, actual.Set("sideways"))

	assert.Equal(t, "ascending", Direction(0).String())
	_, err := Direction(0).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "ascending,descending,random", AllDirections.String())
}
