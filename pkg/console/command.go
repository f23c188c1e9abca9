package console

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/blaubaer/interval-trainer/pkg/interval"
	"github.com/blaubaer/interval-trainer/pkg/session"
)

type CommandKind uint8

const (
	CommandNone = CommandKind(iota)
	CommandEvent
	CommandHelp
	CommandQuit
)

// Command is one parsed line of user input.
type Command struct {
	Kind  CommandKind
	Event session.Event
}

var keywords = map[string]Command{
	"start":           {Kind: CommandEvent, Event: session.Event{Intent: session.IntentStart}},
	"again":           {Kind: CommandEvent, Event: session.Event{Intent: session.IntentStart}},
	"play":            {Kind: CommandEvent, Event: session.Event{Intent: session.IntentRequestPlayback}},
	"replay":          {Kind: CommandEvent, Event: session.Event{Intent: session.IntentRequestPlayback}},
	"p":               {Kind: CommandEvent, Event: session.Event{Intent: session.IntentRequestPlayback}},
	"requestplayback": {Kind: CommandEvent, Event: session.Event{Intent: session.IntentRequestPlayback}},
	"skip":            {Kind: CommandEvent, Event: session.Event{Intent: session.IntentSkip}},
	"s":               {Kind: CommandEvent, Event: session.Event{Intent: session.IntentSkip}},
	"submit":          {Kind: CommandEvent, Event: session.Event{Intent: session.IntentSubmit}},
	"next":            {Kind: CommandEvent, Event: session.Event{Intent: session.IntentSubmit}},
	"n":               {Kind: CommandEvent, Event: session.Event{Intent: session.IntentSubmit}},
	"help":            {Kind: CommandHelp},
	"?":               {Kind: CommandHelp},
	"quit":            {Kind: CommandQuit},
	"exit":            {Kind: CommandQuit},
	"q":               {Kind: CommandQuit},
}

var selectKeywords = []string{"select", "selectinterval", "pick"}

// ParseCommand translates a line like "play", "select minor 3rd", "m3" or
// "3" into a Command.
func ParseCommand(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Command{}, nil
	}

	if v, ok := keywords[strings.ToLower(trimmed)]; ok {
		return v, nil
	}

	plain := trimmed
	if first, rest, ok := strings.Cut(trimmed, " "); ok {
		for _, kw := range selectKeywords {
			if strings.EqualFold(first, kw) {
				plain = rest
				break
			}
		}
	}

	var v interval.Interval
	if err := v.Set(plain); err != nil {
		return Command{}, fmt.Errorf("unknown command %q; type help to see all commands", trimmed)
	}
	return Command{
		Kind: CommandEvent,
		Event: session.Event{
			Intent:   session.IntentSelectInterval,
			Interval: v,
		},
	}, nil
}

func newCompleter() readline.AutoCompleter {
	intervals := make([]readline.PrefixCompleterInterface, len(interval.AllIntervals))
	for i, v := range interval.AllIntervals {
		intervals[i] = readline.PcItem(strings.ReplaceAll(v.Name(), " ", "-"))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("start"),
		readline.PcItem("play"),
		readline.PcItem("replay"),
		readline.PcItem("select", intervals...),
		readline.PcItem("submit"),
		readline.PcItem("next"),
		readline.PcItem("skip"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
