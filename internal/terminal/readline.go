package terminal

import (
	"errors"

	"github.com/chzyer/readline"

	"github.com/Neev4n/nixu/pkg/shell"
)

// Reader is a shell.LineReader backed by a readline instance.
type Reader struct {
	rl *readline.Instance
}

func New(completer readline.AutoCompleter) (*Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		AutoComplete: completer,
		// "\n" disables readline's own marker, the shell prints it
		InterruptPrompt: "\n",
	})
	if err != nil {
		return nil, err
	}

	return &Reader{rl: rl}, nil
}

func (r *Reader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)

	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", shell.ErrInterrupted
	}

	return line, err
}

func (r *Reader) Close() error {
	return r.rl.Close()
}
