package question

import (
	"fmt"
	"math/rand/v2"
	"sync"

	log "github.com/echocat/slf4g"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

// Bank generates questions based on a Configuration.
type Bank struct {
	conf      *Configuration
	intervals interval.Intervals
	rnd       *rand.Rand
	mutex     sync.Mutex
}

func NewBank(conf *Configuration) (*Bank, error) {
	intervals := conf.Intervals.Resolve()
	if len(intervals) == 0 {
		return nil, fmt.Errorf("no valid intervals configured: %v", conf.Intervals)
	}
	if conf.LowestNote > conf.HighestNote {
		return nil, fmt.Errorf("lowest note %v is above highest note %v", conf.LowestNote, conf.HighestNote)
	}
	if !conf.HighestNote.IsValid() {
		return nil, fmt.Errorf("illegal highest note: %d", uint8(conf.HighestNote))
	}
	if span, widest := interval.Distance(conf.LowestNote, conf.HighestNote), intervals.Widest(); span < widest.Semitones() {
		return nil, fmt.Errorf("note range %v-%v spans %d semitones but %v requires %d", conf.LowestNote, conf.HighestNote, span, widest, widest.Semitones())
	}

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.With("seed", seed).
		With("intervals", intervals).
		Debug("Question bank created.")

	return &Bank{
		conf:      conf,
		intervals: intervals,
		rnd:       rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Generate returns count questions. Every question uses one of the
// configured intervals and two notes within the configured range which are
// exactly that many semitones apart.
func (this *Bank) Generate(count int) Questions {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	result := make(Questions, 0, max(count, 0))
	for i := 0; i < count; i++ {
		result = append(result, this.generate(i))
	}
	return result
}

func (this *Bank) generate(index int) Question {
	correct := this.intervals[this.rnd.IntN(len(this.intervals))]

	// Every lower note in [lowest, highest-semitones] keeps the upper one in range.
	lowest := int(this.conf.LowestNote)
	choices := int(this.conf.HighestNote) - correct.Semitones() - lowest + 1
	lower := interval.Note(lowest + this.rnd.IntN(choices))
	upper := interval.Note(int(lower) + correct.Semitones())

	q := Question{
		Index:   index,
		ToneA:   lower,
		ToneB:   upper,
		Correct: correct,
	}

	switch this.conf.Direction.OrDefault() {
	case DirectionDescending:
		q.ToneA, q.ToneB = upper, lower
	case DirectionRandom:
		if this.rnd.IntN(2) == 1 {
			q.ToneA, q.ToneB = upper, lower
		}
	}

	return q
}
