package session

import (
	"fmt"
	"strings"

	"github.com/blaubaer/interval-trainer/pkg/interval"
)

// Intent is something the user wants the Controller to do.
type Intent uint8

const (
	IntentStart           = Intent(1)
	IntentSelectInterval  = Intent(2)
	IntentRequestPlayback = Intent(3)
	IntentSkip            = Intent(4)
	IntentSubmit          = Intent(5)
)

var (
	AllIntents = Intents{
		IntentStart,
		IntentSelectInterval,
		IntentRequestPlayback,
		IntentSkip,
		IntentSubmit,
	}
)

func (this *Intent) Set(plain string) error {
	for _, candidate := range AllIntents {
		if strings.EqualFold(strings.TrimSpace(plain), candidate.String()) {
			*this = candidate
			return nil
		}
	}
	return fmt.Errorf("illegal-intent: %s", plain)
}

func (this Intent) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-intent-%d", this)
	}
	return string(v)
}

func (this Intent) MarshalText() (text []byte, err error) {
	switch this {
	case IntentStart:
		return []byte("start"), nil
	case IntentSelectInterval:
		return []byte("selectInterval"), nil
	case IntentRequestPlayback:
		return []byte("requestPlayback"), nil
	case IntentSkip:
		return []byte("skip"), nil
	case IntentSubmit:
		return []byte("submit"), nil
	default:
		return nil, fmt.Errorf("illegal intent: %d", uint8(this))
	}
}

func (this *Intent) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Intents []Intent

func (this Intents) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Intents) String() string {
	return strings.Join(this.Strings(), ",")
}

// Event is an Intent sent by the presentation. Interval is only respected
// for IntentSelectInterval.
type Event struct {
	Intent   Intent            `json:"intent"`
	Interval interval.Interval `json:"interval,omitempty"`
}

func (this Event) String() string {
	if this.Intent == IntentSelectInterval {
		return fmt.Sprintf("%v(%v)", this.Intent, this.Interval)
	}
	return this.Intent.String()
}
