package question

import (
	"fmt"
	"strings"
)

// Direction defines the order of both tones of a question. The zero value
// is unset and treated as DirectionDefault.
type Direction uint8

const (
	DirectionAscending  = Direction(1)
	DirectionDescending = Direction(2)
	DirectionRandom     = Direction(3)

	DirectionDefault = DirectionAscending
)

var (
	AllDirections = Directions{
		DirectionAscending,
		DirectionDescending,
		DirectionRandom,
	}
)

func (this Direction) OrDefault() Direction {
	if this == 0 {
		return DirectionDefault
	}
	return this
}

func (this *Direction) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "ascending", "asc", "up":
		*this = DirectionAscending
		return nil
	case "descending", "desc", "down":
		*this = DirectionDescending
		return nil
	case "random", "any":
		*this = DirectionRandom
		return nil
	default:
		return fmt.Errorf("illegal-direction: %s", plain)
	}
}

func (this Direction) String() string {
	v, err := this.OrDefault().MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-direction-%d", this)
	}
	return string(v)
}

func (this Direction) MarshalText() (text []byte, err error) {
	switch this {
	case DirectionAscending:
		return []byte("ascending"), nil
	case DirectionDescending:
		return []byte("descending"), nil
	case DirectionRandom:
		return []byte("random"), nil
	default:
		return nil, fmt.Errorf("illegal direction: %d", uint8(this))
	}
}

func (this *Direction) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Directions []Direction

func (this Directions) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Directions) String() string {
	return strings.Join(this.Strings(), ",")
}
