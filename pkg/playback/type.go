package playback

import (
	"fmt"
	"strings"
)

type Type uint8

const (
	TypeOto    = Type(1)
	TypeSilent = Type(2)

	TypeDefault = TypeOto
)

var (
	AllTypes = Types{
		TypeOto,
		TypeSilent,
	}
)

func (this Type) OrDefault() Type {
	if this == 0 {
		return TypeDefault
	}
	return this
}

func (this *Type) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "oto", "speaker":
		*this = TypeOto
		return nil
	case "silent", "none":
		*this = TypeSilent
		return nil
	default:
		return fmt.Errorf("illegal-playback-type: %s", plain)
	}
}

func (this Type) String() string {
	v, err := this.OrDefault().MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-playback-type-%d", this)
	}
	return string(v)
}

func (this Type) MarshalText() (text []byte, err error) {
	switch this {
	case TypeOto:
		return []byte("oto"), nil
	case TypeSilent:
		return []byte("silent"), nil
	default:
		return nil, fmt.Errorf("illegal playback type: %d", uint8(this))
	}
}

func (this *Type) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Types []Type

func (this Types) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Types) String() string {
	return strings.Join(this.Strings(), ",")
}

// Mode defines whether both tones sound together or one after another.
type Mode uint8

const (
	ModeHarmonic = Mode(1)
	ModeMelodic  = Mode(2)

	ModeDefault = ModeHarmonic
)

var (
	AllModes = Modes{
		ModeHarmonic,
		ModeMelodic,
	}
)

func (this Mode) OrDefault() Mode {
	if this == 0 {
		return ModeDefault
	}
	return this
}

func (this *Mode) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "harmonic", "together", "chord":
		*this = ModeHarmonic
		return nil
	case "melodic", "sequential", "arpeggio":
		*this = ModeMelodic
		return nil
	default:
		return fmt.Errorf("illegal-playback-mode: %s", plain)
	}
}

func (this Mode) String() string {
	v, err := this.OrDefault().MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-playback-mode-%d", this)
	}
	return string(v)
}

func (this Mode) MarshalText() (text []byte, err error) {
	switch this {
	case ModeHarmonic:
		return []byte("harmonic"), nil
	case ModeMelodic:
		return []byte("melodic"), nil
	default:
		return nil, fmt.Errorf("illegal playback mode: %d", uint8(this))
	}
}

func (this *Mode) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Modes []Mode

func (this Modes) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Modes) String() string {
	return strings.Join(this.Strings(), ",")
}
