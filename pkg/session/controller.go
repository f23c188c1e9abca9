package session

import (
	"fmt"
	"sync"

	log "github.com/echocat/slf4g"
	"github.com/google/uuid"

	"github.com/blaubaer/interval-trainer/pkg/interval"
	"github.com/blaubaer/interval-trainer/pkg/question"
)

// Controller drives one game after another. It is not safe for concurrent
// use: all intents have to come from one dispatching goroutine.
type Controller struct {
	questions    QuestionSource
	playback     Playback
	presentation Presentation
	count        int

	current *session
	playing sync.WaitGroup
}

type session struct {
	id             uuid.UUID
	questions      question.Questions
	currentIndex   int
	score          int
	selected       *interval.Interval
	hasPlayedTones bool
}

func (this *session) finished() bool {
	return this.currentIndex >= len(this.questions)
}

func (this *session) currentQuestion() question.Question {
	return this.questions[this.currentIndex]
}

func NewController(questions QuestionSource, playback Playback, presentation Presentation, count int) *Controller {
	return &Controller{
		questions:    questions,
		playback:     playback,
		presentation: presentation,
		count:        count,
	}
}

func (this *Controller) State() State {
	if this.current == nil {
		return StateNotStarted
	}
	if this.current.finished() {
		return StateFinished
	}
	return StateInProgress
}

// Snapshot returns the RenderState of the current screen.
func (this *Controller) Snapshot() RenderState {
	s := this.current
	switch this.State() {
	case StateInProgress:
		return RenderState{
			QuestionNumber:    s.currentIndex + 1,
			QuestionCount:     len(s.questions),
			Score:             s.score,
			SubmitEnabled:     s.selected != nil,
			ReplayLabelActive: s.hasPlayedTones,
		}
	case StateFinished:
		return RenderState{
			QuestionCount: len(s.questions),
			Score:         s.score,
			Finished:      true,
			FinalScore:    s.score,
		}
	default:
		return RenderState{}
	}
}

// Start throws away whatever was played before and starts a new session
// with fresh questions.
func (this *Controller) Start() {
	qs := this.questions.Generate(this.count)
	this.current = &session{
		id:        uuid.New(),
		questions: qs,
	}

	log.With("session", this.current.id).
		With("questions", len(qs)).
		Info("Session started.")

	this.render()
}

func (this *Controller) SelectInterval(v interval.Interval) error {
	if err := this.requireInProgress(IntentSelectInterval); err != nil {
		return err
	}
	if !v.IsValid() {
		return this.reject(IntentSelectInterval, fmt.Sprintf("unknown interval %d", uint8(v)))
	}

	this.current.selected = &v
	log.With("session", this.current.id).
		With("interval", v).
		Debug("Interval selected.")

	this.render()
	return nil
}

// RequestPlayback plays the tones of the current question without waiting
// for them to finish.
func (this *Controller) RequestPlayback() error {
	if err := this.requireInProgress(IntentRequestPlayback); err != nil {
		return err
	}

	s := this.current
	s.hasPlayedTones = true
	q := s.currentQuestion()
	logger := log.With("session", s.id).
		With("question", q.Index).
		With("tones", []interval.Note{q.ToneA, q.ToneB})

	if p := this.playback; p != nil {
		this.playing.Add(1)
		go func() {
			defer this.playing.Done()
			if err := p.Play(q.ToneA, q.ToneB); err != nil {
				logger.WithError(err).
					Warn("Cannot play tones. Try again.")
				return
			}
			logger.Debug("Tones played.")
		}()
	} else {
		logger.Debug("No playback available.")
	}

	this.render()
	return nil
}

// Skip moves to the next question; a skipped question is never correct.
func (this *Controller) Skip() error {
	if err := this.requireInProgress(IntentSkip); err != nil {
		return err
	}
	this.advance(nil)
	return nil
}

func (this *Controller) Submit() error {
	if err := this.requireInProgress(IntentSubmit); err != nil {
		return err
	}
	if this.current.selected == nil {
		return this.reject(IntentSubmit, "no interval selected")
	}
	this.advance(this.current.selected)
	return nil
}

func (this *Controller) Dispatch(e Event) error {
	switch e.Intent {
	case IntentStart:
		this.Start()
		return nil
	case IntentSelectInterval:
		return this.SelectInterval(e.Interval)
	case IntentRequestPlayback:
		return this.RequestPlayback()
	case IntentSkip:
		return this.Skip()
	case IntentSubmit:
		return this.Submit()
	default:
		return this.reject(e.Intent, "unknown intent")
	}
}

// Wait blocks until every requested playback has ended.
func (this *Controller) Wait() {
	this.playing.Wait()
}

func (this *Controller) advance(answer *interval.Interval) {
	s := this.current
	q := s.currentQuestion()
	correct := answer != nil && q.IsCorrect(*answer)
	if correct {
		s.score++
	}

	logger := log.With("session", s.id).
		With("question", q.Index).
		With("correct", correct).
		With("score", s.score)
	if answer == nil {
		logger.Debug("Question skipped.")
	} else {
		logger.With("answer", *answer).
			With("expected", q.Correct).
			Debug("Question answered.")
	}

	s.currentIndex++
	s.selected = nil
	s.hasPlayedTones = false

	if s.finished() {
		log.With("session", s.id).
			With("score", s.score).
			With("questions", len(s.questions)).
			Info("Session finished.")
	}

	this.render()
}

func (this *Controller) requireInProgress(intent Intent) error {
	switch this.State() {
	case StateInProgress:
		return nil
	case StateFinished:
		return this.reject(intent, "session is finished; start a new one")
	default:
		return this.reject(intent, "session is not started yet")
	}
}

func (this *Controller) reject(intent Intent, reason string) error {
	err := &InvalidTransitionError{
		Intent: intent,
		State:  this.State(),
		Reason: reason,
	}
	log.WithError(err).
		Debug("Intent rejected.")
	return err
}

func (this *Controller) render() {
	if v := this.presentation; v != nil {
		v.Render(this.Snapshot())
	}
}
