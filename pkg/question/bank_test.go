package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

func newTestBank(t *testing.T, customizer ...func(*Configuration)) *Bank {
	t.Helper()
	conf := NewConfiguration()
	conf.Seed = 666
	for _, c := range customizer {
		c(&conf)
	}
	bank, err := NewBank(&conf)
	require.NoError(t, err)
	return bank
}

func TestBank_Generate(t *testing.T) {
	instance := newTestBank(t)

	actual := instance.Generate(200)
	require.Len(t, actual, 200)

	for i, q := range actual {
		assert.Equal(t, i, q.Index)
		assert.NoError(t, q.Validate())
		assert.True(t, interval.AllIntervals.Has(q.Correct))
		assert.Less(t, q.ToneA, q.ToneB, "default direction is ascending")
		assert.GreaterOrEqual(t, q.ToneA, interval.Note(48))
		assert.LessOrEqual(t, q.ToneB, interval.Note(72))
	}
}

func TestBank_Generate_nothing(t *testing.T) {
	instance := newTestBank(t)

	assert.Empty(t, instance.Generate(0))
	assert.Empty(t, instance.Generate(-1))
}

func TestBank_Generate_sameSeedSameQuestions(t *testing.T) {
	a := newTestBank(t).Generate(20)
	b := newTestBank(t).Generate(20)

	assert.Equal(t, a, b)
}

func TestBank_Generate_restrictedIntervals(t *testing.T) {
	instance := newTestBank(t, func(conf *Configuration) {
		conf.Intervals = interval.Intervals{interval.MajorThird, interval.PerfectFifth}
	})

	for _, q := range instance.Generate(100) {
		assert.Contains(t, interval.Intervals{interval.MajorThird, interval.PerfectFifth}, q.Correct)
		assert.NoError(t, q.Validate())
	}
}

func TestBank_Generate_descending(t *testing.T) {
	instance := newTestBank(t, func(conf *Configuration) {
		conf.Direction = DirectionDescending
	})

	for _, q := range instance.Generate(50) {
		assert.Greater(t, q.ToneA, q.ToneB)
		assert.NoError(t, q.Validate())
	}
}

func TestBank_Generate_random(t *testing.T) {
	instance := newTestBank(t, func(conf *Configuration) {
		conf.Direction = DirectionRandom
	})

	var ascending, descending int
	for _, q := range instance.Generate(200) {
		assert.NoError(t, q.Validate())
		if q.ToneA < q.ToneB {
			ascending++
		} else {
			descending++
		}
	}
	assert.NotZero(t, ascending)
	assert.NotZero(t, descending)
}

func TestBank_Generate_narrowestPossibleRange(t *testing.T) {
	instance := newTestBank(t, func(conf *Configuration) {
		conf.LowestNote = interval.C4
		conf.HighestNote = interval.C4 + 11
		conf.Intervals = interval.Intervals{interval.MajorSeventh}
	})

	for _, q := range instance.Generate(10) {
		assert.Equal(t, interval.C4, q.ToneA)
		assert.Equal(t, interval.C4+11, q.ToneB)
	}
}

func TestNewBank_failures(t *testing.T) {
	conf := NewConfiguration()
	conf.LowestNote, conf.HighestNote = 72, 48
	_, err := NewBank(&conf)
	assert.Error(t, err)

	conf = NewConfiguration()
	conf.LowestNote, conf.HighestNote = 60, 65
	_, err = NewBank(&conf)
	assert.ErrorContains(t, err, "spans 5 semitones")

	conf.Intervals = interval.Intervals{interval.MinorSecond, interval.PerfectFourth}
	_, err = NewBank(&conf)
	assert.NoError(t, err)

	conf = NewConfiguration()
	conf.Intervals = interval.Intervals{interval.Interval(42)}
	_, err = NewBank(&conf)
	assert.Error(t, err)
}
