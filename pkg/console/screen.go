package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/blaubaer/interval-trainer/pkg/interval"
	"github.com/blaubaer/interval-trainer/pkg/session"
)

const (
	title = "Interval Trainer"
	rule  = "Guess the interval between the 2 tones."
)

func writeStartScreen(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n\n%s\n\n[ Start ]  type: start\n", title, strings.Repeat("=", len(title)), rule)
}

func writeQuestionScreen(w io.Writer, s session.RenderState) {
	var b strings.Builder
	fmt.Fprintf(&b, "\nQuestion: %d/%d\n", s.QuestionNumber, s.QuestionCount)
	if s.ReplayLabelActive {
		b.WriteString("[ Replay tones ]  type: replay\n")
	} else {
		b.WriteString("[ Play tones ]  type: play\n")
	}
	fmt.Fprintf(&b, "%s\n\n", rule)

	for i, v := range interval.AllIntervals {
		fmt.Fprintf(&b, "  %2d %-3s %-12s", v.Semitones(), v.ShortName(), toSentenceCase(v.Name()))
		if i%3 == 2 || i == len(interval.AllIntervals)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n[ Skip ]  type: skip\n")
	if s.SubmitEnabled {
		b.WriteString("[ Move to next ]  type: next\n")
	} else {
		b.WriteString("[ Move to next ]  (select an interval first)\n")
	}
	fmt.Fprintf(&b, "Score: %d\n", s.Score)

	_, _ = io.WriteString(w, b.String())
}

func writeResultScreen(w io.Writer, s session.RenderState) {
	_, _ = fmt.Fprintf(w, "\nYour score: %d/%d\n\n[ Play again! ]  type: start\n", s.FinalScore, s.QuestionCount)
}

func writeHelp(w io.Writer) {
	_, _ = io.WriteString(w, `
Commands:
  start                 start a new game
  play, replay, p       play the tones of the current question
  <interval>            select an interval by number (1-11), short name (m3, P5)
                        or name (minor-3rd); "select <interval>" works as well
  next, submit, n       answer with the selected interval
  skip, s               skip the current question
  help, ?               show this help
  quit, exit, q         leave
`)
}

func toSentenceCase(in string) string {
	if in == "" {
		return in
	}
	return strings.ToUpper(in[:1]) + in[1:]
}
