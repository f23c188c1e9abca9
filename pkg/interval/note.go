package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Note is a tone identified by its MIDI note number, 60 being the middle C
// (C4) and 69 the concert A (A4, 440 Hz).
type Note uint8

const (
	MinNote = Note(0)
	MaxNote = Note(127)

	C4 = Note(60)
	A4 = Note(69)
)

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letterOffsets = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

func (this Note) IsValid() bool {
	return this <= MaxNote
}

func (this Note) Octave() int {
	return int(this)/12 - 1
}

func (this Note) PitchClass() string {
	return pitchClasses[int(this)%12]
}

// Frequency returns the frequency in Hz using twelve-tone equal temperament.
func (this Note) Frequency() float64 {
	return 440 * math.Pow(2, float64(int(this)-int(A4))/12)
}

// Transpose returns the note which is the given number of semitones away.
func (this Note) Transpose(semitones int) (Note, error) {
	v := int(this) + semitones
	if v < int(MinNote) || v > int(MaxNote) {
		return 0, fmt.Errorf("cannot transpose %v by %d semitones: out of range", this, semitones)
	}
	return Note(v), nil
}

// Distance returns the number of semitones between a and b, regardless of
// their order.
func Distance(a, b Note) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Set parses notes like "C4", "D#4", "Ds4", "Eb3" or "A-1". A plain number is
// taken as MIDI note number.
func (this *Note) Set(plain string) error {
	fail := func() error {
		return fmt.Errorf("illegal-note: %s", plain)
	}

	trimmed := strings.TrimSpace(plain)
	if n, err := strconv.ParseUint(trimmed, 10, 8); err == nil {
		if Note(n) > MaxNote {
			return fail()
		}
		*this = Note(n)
		return nil
	}
	if len(trimmed) < 2 {
		return fail()
	}

	offset, ok := letterOffsets[strings.ToUpper(trimmed[:1])[0]]
	if !ok {
		return fail()
	}
	rest := trimmed[1:]
	switch rest[0] {
	case '#', 's':
		offset++
		rest = rest[1:]
	case 'b':
		offset--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return fail()
	}
	v := (octave+1)*12 + offset
	if v < int(MinNote) || v > int(MaxNote) {
		return fail()
	}

	*this = Note(v)
	return nil
}

func (this Note) String() string {
	if !this.IsValid() {
		return fmt.Sprintf("illegal-note-%d", this)
	}
	return this.PitchClass() + strconv.Itoa(this.Octave())
}

func (this Note) MarshalText() (text []byte, err error) {
	if !this.IsValid() {
		return nil, fmt.Errorf("illegal note: %d", uint8(this))
	}
	return []byte(this.String()), nil
}

func (this *Note) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}
