package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/interval-trainer/pkg/interval"
	"github.com/blaubaer/interval-trainer/pkg/session"
)

func TestParseCommand(t *testing.T) {
	event := func(intent session.Intent) Command {
		return Command{Kind: CommandEvent, Event: session.Event{Intent: intent}}
	}
	selectOf := func(v interval.Interval) Command {
		return Command{Kind: CommandEvent, Event: session.Event{Intent: session.IntentSelectInterval, Interval: v}}
	}

	cases := []struct {
		line     string
		expected Command
	}{
		{"", Command{}},
		{"   ", Command{}},
		{"start", event(session.IntentStart)},
		{"Again", event(session.IntentStart)},
		{"play", event(session.IntentRequestPlayback)},
		{"replay", event(session.IntentRequestPlayback)},
		{"requestPlayback", event(session.IntentRequestPlayback)},
		{"skip", event(session.IntentSkip)},
		{" s ", event(session.IntentSkip)},
		{"submit", event(session.IntentSubmit)},
		{"next", event(session.IntentSubmit)},
		{"help", Command{Kind: CommandHelp}},
		{"quit", Command{Kind: CommandQuit}},
		{"3", selectOf(interval.MinorThird)},
		{"P5", selectOf(interval.PerfectFifth)},
		{"M3", selectOf(interval.MajorThird)},
		{"m3", selectOf(interval.MinorThird)},
		{"tritone", selectOf(interval.Tritone)},
		{"major 6th", selectOf(interval.MajorSixth)},
		{"select minor-7th", selectOf(interval.MinorSeventh)},
		{"selectInterval 11", selectOf(interval.MajorSeventh)},
	}
	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			actual, err := ParseCommand(c.line)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}

	for _, line := range []string{"dance", "select", "select octave", "12"} {
		_, err := ParseCommand(line)
		assert.Error(t, err, line)
	}
}

func TestConsole_Render(t *testing.T) {
	var buf bytes.Buffer
	instance := Console{Stdout: &buf}

	instance.Render(session.RenderState{})
	assert.Contains(t, buf.String(), "Guess the interval between the 2 tones.")
	assert.Contains(t, buf.String(), "[ Start ]")

	buf.Reset()
	instance.Render(session.RenderState{QuestionNumber: 2, QuestionCount: 10, Score: 1})
	assert.Contains(t, buf.String(), "Question: 2/10")
	assert.Contains(t, buf.String(), "[ Play tones ]")
	assert.Contains(t, buf.String(), "Minor 2nd")
	assert.Contains(t, buf.String(), "Major 7th")
	assert.Contains(t, buf.String(), "(select an interval first)")
	assert.Contains(t, buf.String(), "Score: 1")

	buf.Reset()
	instance.Render(session.RenderState{QuestionNumber: 2, QuestionCount: 10, Score: 1, SubmitEnabled: true, ReplayLabelActive: true})
	assert.Contains(t, buf.String(), "[ Replay tones ]")
	assert.Contains(t, buf.String(), "[ Move to next ]  type: next")

	buf.Reset()
	instance.Render(session.RenderState{QuestionCount: 10, Score: 7, Finished: true, FinalScore: 7})
	assert.Contains(t, buf.String(), "Your score: 7/10")
	assert.Contains(t, buf.String(), "[ Play again! ]")
}

type recordingDispatcher struct {
	events []session.Event
	err    error
}

func (this *recordingDispatcher) Dispatch(e session.Event) error {
	this.events = append(this.events, e)
	return this.err
}

func TestConsole_handle(t *testing.T) {
	var buf bytes.Buffer
	instance := Console{Stdout: &buf}
	dispatcher := &recordingDispatcher{}

	quit, err := instance.handle("m2", dispatcher)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, []session.Event{{Intent: session.IntentSelectInterval, Interval: interval.MinorSecond}}, dispatcher.events)
	assert.Contains(t, buf.String(), "Selected: minor 2nd")

	buf.Reset()
	quit, err = instance.handle("what?", dispatcher)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, buf.String(), `unknown command "what?"`)
	assert.Len(t, dispatcher.events, 1)

	buf.Reset()
	quit, err = instance.handle("help", dispatcher)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, buf.String(), "Commands:")

	quit, err = instance.handle("q", dispatcher)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestConsole_handle_rejected(t *testing.T) {
	var buf bytes.Buffer
	instance := Console{Stdout: &buf}
	dispatcher := &recordingDispatcher{err: &session.InvalidTransitionError{
		Intent: session.IntentSubmit,
		State:  session.StateInProgress,
		Reason: "no interval selected",
	}}

	quit, err := instance.handle("next", dispatcher)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, buf.String(), "Not possible right now: no interval selected.")
}

func TestConsole_handle_failure(t *testing.T) {
	instance := Console{Stdout: &bytes.Buffer{}}
	expected := errors.New("expected")

	_, err := instance.handle("start", &recordingDispatcher{err: expected})
	assert.Same(t, expected, err)
}

func TestConsole_withController(t *testing.T) {
	var buf bytes.Buffer
	instance := &Console{Stdout: &buf}
	source := fixedSource{interval.PerfectFourth, interval.MinorSixth}
	controller := session.NewController(source, nil, instance, 2)

	for _, line := range []string{"start", "next", "P4", "next", "skip"} {
		quit, err := instance.handle(line, controller)
		require.NoError(t, err)
		require.False(t, quit)
	}

	assert.Contains(t, buf.String(), "Not possible right now: no interval selected.")
	assert.Contains(t, buf.String(), "Question: 2/2")
	assert.Contains(t, buf.String(), "Your score: 1/2")
	assert.Equal(t, session.StateFinished, controller.State())
}
