package playback

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

// Relative amplitude and decay speed of the partials of each tone. Higher
// partials fade faster which gives a soft, piano like timbre.
var partials = []struct {
	multiple  float64
	amplitude float64
	decay     float64
}{
	{1, 1, 0.6},
	{2, 0.45, 1.2},
	{3, 0.2, 2.0},
	{4, 0.08, 3.0},
}

const attack = 5 * time.Millisecond

// ln(1000): the release envelope reaches -60 dB after the release duration.
const releaseFactor = 6.907755

type voice struct {
	note  interval.Note
	start int
	hold  int
}

// Render synthesises both notes as signed 16-bit little endian mono PCM
// according to the given configuration.
func Render(conf *Configuration, a, b interval.Note) []byte {
	rate := float64(conf.SampleRate)
	samplesOf := func(d time.Duration) int {
		return int(d.Seconds() * rate)
	}

	delay := samplesOf(conf.Delay)
	hold := samplesOf(conf.ToneDuration)
	release := samplesOf(conf.Release)

	voices := []voice{{a, delay, hold}, {b, delay, hold}}
	if conf.Mode.OrDefault() == ModeMelodic {
		voices[1].start = delay + hold + samplesOf(conf.Gap)
	}

	total := voices[1].start + hold + release
	buf := make([]byte, total*2)

	var partialSum float64
	for _, p := range partials {
		partialSum += p.amplitude
	}
	// In melodic mode the second tone starts while the first one is still
	// releasing, so both modes are normalized for two voices.
	gain := conf.Volume / (partialSum * float64(len(voices)))

	for i := 0; i < total; i++ {
		var sample float64
		for _, v := range voices {
			sample += v.sample(i, rate, release)
		}
		sample *= gain
		sample = math.Max(-1, math.Min(1, sample))
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(int16(sample*math.MaxInt16)))
	}

	return buf
}

func (this voice) sample(i int, rate float64, release int) float64 {
	n := i - this.start
	if n < 0 || n >= this.hold+release {
		return 0
	}

	t := float64(n) / rate
	env := 1.0
	if a := attack.Seconds() * rate; float64(n) < a {
		env = float64(n) / a
	}
	if n >= this.hold {
		if release == 0 {
			return 0
		}
		env *= math.Exp(-releaseFactor * float64(n-this.hold) / float64(release))
	}

	freq := this.note.Frequency()
	var result float64
	for _, p := range partials {
		f := freq * p.multiple
		if f >= rate/2 {
			continue
		}
		result += p.amplitude * math.Exp(-p.decay*t) * math.Sin(2*math.Pi*f*t)
	}
	return result * env
}

// Duration returns how long the audio produced by Render for the same
// configuration lasts.
func Duration(conf *Configuration) time.Duration {
	d := conf.Delay + conf.ToneDuration + conf.Release
	if conf.Mode.OrDefault() == ModeMelodic {
		d += conf.ToneDuration + conf.Gap
	}
	return d
}
