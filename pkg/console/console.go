package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/chzyer/readline"
	log "github.com/echocat/slf4g"

	"github.com/blaubaer/interval-trainer/pkg/common"
	"github.com/blaubaer/interval-trainer/pkg/session"
)

// Dispatcher receives the events entered by the user.
type Dispatcher interface {
	Dispatch(session.Event) error
}

// Console is a terminal based presentation of the game. It renders every
// RenderState it receives and reads commands from the terminal.
type Console struct {
	Prompt string

	Stdin  io.ReadCloser
	Stdout io.Writer

	// OnOpen is called with a writer which does not break the prompt while
	// the console is running. OnClose is called once it stopped.
	OnOpen  func(stderr io.Writer)
	OnClose func()

	out   io.Writer
	mutex sync.Mutex
}

func (this *Console) Render(s session.RenderState) {
	w := this.writer()
	switch {
	case s.Finished:
		writeResultScreen(w, s)
	case s.IsStarted():
		writeQuestionScreen(w, s)
	default:
		writeStartScreen(w)
	}
}

func (this *Console) writer() io.Writer {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if v := this.out; v != nil {
		return v
	}
	if v := this.Stdout; v != nil {
		return v
	}
	return os.Stdout
}

// Run reads commands until the user quits, the input ends or ctx is done.
// Every event is passed to the dispatcher on the calling goroutine.
func (this *Console) Run(ctx context.Context, dispatcher Dispatcher) error {
	prompt := this.Prompt
	if prompt == "" {
		prompt = "> "
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           this.Stdin,
		Stdout:          this.Stdout,
	})
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}
	defer func() {
		_ = l.Close()
	}()

	this.mutex.Lock()
	this.out = l.Stdout()
	this.mutex.Unlock()
	defer func() {
		this.mutex.Lock()
		this.out = nil
		this.mutex.Unlock()
	}()

	if v := this.OnOpen; v != nil {
		v(l.Stderr())
	}
	if v := this.OnClose; v != nil {
		defer v()
	}

	ctxInner, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctxInner.Done()
		_ = l.Close()
	}()

	this.Render(session.RenderState{})

	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			log.Debug("Console closed by user.")
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				log.Debug("Console interrupted.")
				return nil
			}
			return fmt.Errorf("cannot read from terminal: %w", err)
		}

		if quit, err := this.handle(line, dispatcher); err != nil {
			return err
		} else if quit {
			return nil
		}
	}
}

func (this *Console) handle(line string, dispatcher Dispatcher) (quit bool, _ error) {
	w := this.writer()

	cmd, err := ParseCommand(line)
	if err != nil {
		_, _ = fmt.Fprintln(w, err)
		return false, nil
	}

	switch cmd.Kind {
	case CommandQuit:
		return true, nil
	case CommandHelp:
		writeHelp(w)
		return false, nil
	case CommandEvent:
		if err := dispatcher.Dispatch(cmd.Event); err != nil {
			if ite, ok := common.AsError[*session.InvalidTransitionError](err); ok {
				_, _ = fmt.Fprintf(w, "Not possible right now: %s.\n", ite.Reason)
				return false, nil
			}
			return false, err
		}
		if cmd.Event.Intent == session.IntentSelectInterval {
			_, _ = fmt.Fprintf(w, "Selected: %v\n", cmd.Event.Interval)
		}
		return false, nil
	default:
		return false, nil
	}
}
