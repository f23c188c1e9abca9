package playback

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

func samplesOf(t *testing.T, buf []byte) []int16 {
	t.Helper()
	require.Zero(t, len(buf)%2)
	result := make([]int16, len(buf)/2)
	for i := range result {
		result[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
	}
	return result
}

func peakOf(in []int16) (result int) {
	for _, v := range in {
		a := int(v)
		if a < 0 {
			a = -a
		}
		if a > result {
			result = a
		}
	}
	return result
}

func TestRender_harmonic(t *testing.T) {
	conf := NewConfiguration()
	conf.SampleRate = 8000

	actual := samplesOf(t, Render(&conf, interval.C4, interval.C4+7))

	assert.Len(t, actual, int(Duration(&conf).Seconds()*8000))

	delay := int(conf.Delay.Seconds() * 8000)
	assert.Zero(t, peakOf(actual[:delay]), "silence before the tones start")
	assert.NotZero(t, peakOf(actual[delay:delay+800]))
	assert.LessOrEqual(t, peakOf(actual), int(conf.Volume*math.MaxInt16)+1)

	tail := actual[len(actual)-80:]
	assert.Less(t, peakOf(tail), peakOf(actual)/100, "tones are faded out at the end")
}

func TestRender_melodic(t *testing.T) {
	conf := NewConfiguration()
	conf.SampleRate = 8000
	harmonic := Render(&conf, interval.A4, interval.A4+3)

	conf.Mode = ModeMelodic
	melodic := Render(&conf, interval.A4, interval.A4+3)

	assert.Greater(t, len(melodic), len(harmonic))
	assert.Len(t, melodic, 2*int(Duration(&conf).Seconds()*8000))
}

func TestRender_mute(t *testing.T) {
	conf := NewConfiguration()
	conf.SampleRate = 8000
	conf.Volume = 0

	assert.Zero(t, peakOf(samplesOf(t, Render(&conf, interval.C4, interval.C4+1))))
}

func TestRender_withoutRelease(t *testing.T) {
	conf := NewConfiguration()
	conf.SampleRate = 8000
	conf.Delay = 0
	conf.Release = 0
	conf.ToneDuration = 100 * time.Millisecond

	actual := samplesOf(t, Render(&conf, interval.C4, interval.C4+12))
	assert.Len(t, actual, 800)
	assert.NotZero(t, peakOf(actual))
}

func TestDuration(t *testing.T) {
	conf := NewConfiguration()
	assert.Equal(t, 4*time.Second, Duration(&conf))

	conf.Mode = ModeMelodic
	assert.Equal(t, 5750*time.Millisecond, Duration(&conf))
}
