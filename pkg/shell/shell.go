package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
)

// name-tag for user visible diagnostics
const Name = "nixu"

const interruptMarker = "^C"

// exit error
var ErrExit = errors.New("exit")

// returned by a LineReader when the user breaks out of the current line
var ErrInterrupted = errors.New("interrupted")

// type Builtin
type Builtin func(args []string, s *Shell) error

// type Shell
type Shell struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	reader   LineReader
	source   ConfigSource
	executor Executor
	logger   *slog.Logger
	builtins map[string]Builtin

	history    *History
	aliases    *AliasTable
	prompt     string
	historyCap int
}

// func New
func New(reader LineReader, source ConfigSource, in io.Reader, out, errw io.Writer) *Shell {
	s := &Shell{
		In:       in,
		Out:      out,
		Err:      errw,
		reader:   reader,
		source:   source,
		executor: &DefaultExecutor{},
		logger:   slog.New(slog.DiscardHandler),
		builtins: make(map[string]Builtin),
		history:  NewHistory(),
	}

	s.aliases = NewAliasTable(nil, s.history)
	s.registerBuiltins()
	return s
}

func (s *Shell) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Shell) SetExecutor(executor Executor) {
	s.executor = executor
}

func (s *Shell) History() *History {
	return s.history
}

// AliasNames returns the alias keys captured at startup, sorted.
func (s *Shell) AliasNames() []string {
	return s.aliases.Names()
}

// BuiltinNames returns the builtin command words in sorted order.
func (s *Shell) BuiltinNames() []string {
	return slices.Sorted(maps.Keys(s.builtins))
}

// Run executes the startup commands and then reads, expands and dispatches
// lines until exit is requested or the input stream ends. It returns nil on
// exit and an error only when the initial configuration cannot be loaded.
func (s *Shell) Run() error {
	if err := s.start(); err != nil {
		if errors.Is(err, ErrExit) {
			return nil
		}
		return err
	}

	for {
		s.refresh()

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Out)
			return nil
		}

		line = s.aliases.Expand(line, s.historyCap)

		if s.dispatch(Tokenize(line)) {
			return nil
		}
	}
}

func (s *Shell) start() error {
	cfg, err := s.source.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s.apply(cfg)
	s.aliases = NewAliasTable(cfg.Aliases, s.history)

	for _, line := range cfg.Startup {
		s.logger.Debug("startup_command", "line", line)

		if s.dispatch(Tokenize(line)) {
			return ErrExit
		}
	}

	return nil
}

// refresh picks up the prompt and history capacity for this iteration. The
// previous snapshot stays in effect when the reload fails.
func (s *Shell) refresh() {
	cfg, err := s.source.Load()
	if err != nil {
		s.logger.Warn("config_reload_failed", "error", err)
		return
	}

	s.apply(cfg)
}

func (s *Shell) apply(cfg Config) {
	s.prompt = cfg.Prompt
	s.historyCap = cfg.HistoryCap
}

func (s *Shell) readLine() (string, error) {
	line, err := s.reader.ReadLine(s.prompt)

	switch {
	case err == nil:
		return line, nil

	case errors.Is(err, ErrInterrupted):
		fmt.Fprintln(s.Out, interruptMarker)
		return "", nil

	case errors.Is(err, io.EOF):
		return "", io.EOF

	default:
		s.logger.Debug("read_failed", "error", err)
		return "", nil
	}
}

// dispatch executes one parsed command, reports recoverable failures and
// reports whether the shell should stop.
func (s *Shell) dispatch(command string, args []string) bool {
	err := s.Execute(command, args)

	if errors.Is(err, ErrExit) {
		return true
	}

	if err != nil {
		s.report(err)
	}

	return false
}

// Execute runs a builtin or an external program and blocks until it is done.
// The empty command is a no-op.
func (s *Shell) Execute(command string, args []string) error {
	if command == "" {
		return nil
	}

	s.logger.Debug("dispatch", "command", command, "args", args)

	// check built ins
	if fn, ok := s.builtins[command]; ok {
		return fn(args, s)
	}

	ioBinding := IOBindings{
		Stdin:  s.In,
		Stdout: s.Out,
		Stderr: s.Err,
	}

	exitCode, err := s.executor.Execute(context.Background(), command, args, ioBinding)
	if err != nil {
		return err
	}

	s.logger.Debug("process_exited", "command", command, "code", exitCode)
	return nil
}

func (s *Shell) report(err error) {
	fmt.Fprintf(s.Err, "%s: %v\n", Name, err)
}
