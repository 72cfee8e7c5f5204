package shell

import (
	"context"
)

type Executor interface {
	Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error)
}

// LineReader is the terminal input collaborator. ReadLine returns
// ErrInterrupted when the user breaks out of the current line and io.EOF
// when the input stream is closed.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ConfigSource produces a fresh configuration snapshot. It is consulted once
// at startup and once per loop iteration.
type ConfigSource interface {
	Load() (Config, error)
}

// Config is one snapshot of the shell configuration.
type Config struct {
	Prompt     string
	Aliases    map[string]string
	Startup    []string
	HistoryCap int
}
