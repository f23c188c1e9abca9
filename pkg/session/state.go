package session

import (
	"fmt"
	"strings"
)

type State uint8

const (
	StateNotStarted = State(0)
	StateInProgress = State(1)
	StateFinished   = State(2)
)

var (
	AllStates = States{
		StateNotStarted,
		StateInProgress,
		StateFinished,
	}
)

func (this *State) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "notstarted", "not-started", "not started":
		*this = StateNotStarted
		return nil
	case "inprogress", "in-progress", "in progress":
		*this = StateInProgress
		return nil
	case "finished":
		*this = StateFinished
		return nil
	default:
		return fmt.Errorf("illegal-session-state: %s", plain)
	}
}

func (this State) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-session-state-%d", this)
	}
	return string(v)
}

func (this State) MarshalText() (text []byte, err error) {
	switch this {
	case StateNotStarted:
		return []byte("not started"), nil
	case StateInProgress:
		return []byte("in progress"), nil
	case StateFinished:
		return []byte("finished"), nil
	default:
		return nil, fmt.Errorf("illegal session state: %d", uint8(this))
	}
}

func (this *State) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type States []State

func (this States) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this States) String() string {
	return strings.Join(this.Strings(), ",")
}
