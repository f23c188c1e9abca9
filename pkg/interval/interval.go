package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is the musical distance between two tones. Its value is the
// number of semitones between them.
type Interval uint8

const (
	MinorSecond   = Interval(1)
	MajorSecond   = Interval(2)
	MinorThird    = Interval(3)
	MajorThird    = Interval(4)
	PerfectFourth = Interval(5)
	Tritone       = Interval(6)
	PerfectFifth  = Interval(7)
	MinorSixth    = Interval(8)
	MajorSixth    = Interval(9)
	MinorSeventh  = Interval(10)
	MajorSeventh  = Interval(11)
)

var (
	AllIntervals = Intervals{
		MinorSecond,
		MajorSecond,
		MinorThird,
		MajorThird,
		PerfectFourth,
		Tritone,
		PerfectFifth,
		MinorSixth,
		MajorSixth,
		MinorSeventh,
		MajorSeventh,
	}

	names = [...]string{
		MinorSecond:   "minor 2nd",
		MajorSecond:   "major 2nd",
		MinorThird:    "minor 3rd",
		MajorThird:    "major 3rd",
		PerfectFourth: "perfect 4th",
		Tritone:       "tritone",
		PerfectFifth:  "perfect 5th",
		MinorSixth:    "minor 6th",
		MajorSixth:    "major 6th",
		MinorSeventh:  "minor 7th",
		MajorSeventh:  "major 7th",
	}

	// Short names are case-sensitive: m is minor, M is major.
	shortNames = [...]string{
		MinorSecond:   "m2",
		MajorSecond:   "M2",
		MinorThird:    "m3",
		MajorThird:    "M3",
		PerfectFourth: "P4",
		Tritone:       "TT",
		PerfectFifth:  "P5",
		MinorSixth:    "m6",
		MajorSixth:    "M6",
		MinorSeventh:  "m7",
		MajorSeventh:  "M7",
	}
)

func (this Interval) IsValid() bool {
	return this >= MinorSecond && this <= MajorSeventh
}

func (this Interval) Semitones() int {
	return int(this)
}

func (this Interval) Name() string {
	if !this.IsValid() {
		return fmt.Sprintf("illegal-interval-%d", this)
	}
	return names[this]
}

func (this Interval) ShortName() string {
	if !this.IsValid() {
		return fmt.Sprintf("illegal-interval-%d", this)
	}
	return shortNames[this]
}

// Set accepts the full name ("minor 2nd", "minor-2nd"), the short name ("m2")
// or the number of semitones ("1").
func (this *Interval) Set(plain string) error {
	trimmed := strings.TrimSpace(plain)
	for i, v := range shortNames {
		if v != "" && v == trimmed {
			*this = Interval(i)
			return nil
		}
	}

	normalized := normalizeName(trimmed)
	for i, v := range names {
		if v != "" && v == normalized {
			*this = Interval(i)
			return nil
		}
	}

	if n, err := strconv.ParseUint(trimmed, 10, 8); err == nil && Interval(n).IsValid() {
		*this = Interval(n)
		return nil
	}

	return fmt.Errorf("illegal-interval: %s", plain)
}

func normalizeName(in string) string {
	in = strings.ToLower(in)
	in = strings.NewReplacer("-", " ", "_", " ").Replace(in)
	return strings.Join(strings.Fields(in), " ")
}

func (this Interval) String() string {
	return this.Name()
}

func (this Interval) MarshalText() (text []byte, err error) {
	if !this.IsValid() {
		return nil, fmt.Errorf("illegal interval: %d", uint8(this))
	}
	return []byte(this.Name()), nil
}

func (this *Interval) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Intervals []Interval

// Set adds the comma separated intervals of plain. It can be used multiple
// times on the same flag.
func (this *Intervals) Set(plain string) error {
	for _, plain := range strings.Split(plain, ",") {
		plain = strings.TrimSpace(plain)
		if plain != "" {
			var v Interval
			if err := v.Set(plain); err != nil {
				return err
			}
			*this = append(*this, v)
		}
	}
	return nil
}

func (this Intervals) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Intervals) String() string {
	return strings.Join(this.Strings(), ",")
}

func (this Intervals) IsCumulative() bool {
	return true
}

// Has reports whether v is part of this set. An empty set contains every
// interval.
func (this Intervals) Has(v Interval) bool {
	if len(this) == 0 {
		return v.IsValid()
	}
	for _, candidate := range this {
		if v == candidate {
			return true
		}
	}
	return false
}

// Resolve returns the intervals in catalog order without duplicates. An
// empty set resolves to AllIntervals.
func (this Intervals) Resolve() Intervals {
	result := make(Intervals, 0, len(AllIntervals))
	for _, v := range AllIntervals {
		if this.Has(v) {
			result = append(result, v)
		}
	}
	return result
}

// Widest returns the largest interval of this set or 0 if it is empty.
func (this Intervals) Widest() (result Interval) {
	for _, v := range this {
		if v > result {
			result = v
		}
	}
	return result
}
