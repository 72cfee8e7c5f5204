package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neev4n/nixu/internal/config"
	"github.com/Neev4n/nixu/internal/logging"
	"github.com/Neev4n/nixu/internal/terminal"
	"github.com/Neev4n/nixu/pkg/shell"
)

var version = "dev"

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

func main() {
	root := &cobra.Command{
		Use:           "nixu",
		Short:         "A small interactive command shell",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.Flags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/nixu/config.yaml)")
	root.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&logFormat, "log-format", "", "log format: text or json")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", shell.Name, err)
		os.Exit(1)
	}
}

func run() error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	loader := config.NewLoader(path, cfgFile != "")

	file, err := loader.Read()
	if err != nil {
		return err
	}
	if logLevel != "" {
		file.LogLevel = logLevel
	}
	if logFormat != "" {
		file.LogFormat = logFormat
	}
	logger := logging.New(os.Stderr, file.LogLevel, file.LogFormat)

	completer := terminal.NewCompleter(os.Getenv("PATH"))
	reader, err := terminal.New(completer)
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer reader.Close()

	s := shell.New(reader, loader, os.Stdin, os.Stdout, os.Stderr)
	s.SetLogger(logger)

	completer.AddWords(s.BuiltinNames()...)
	completer.AddSource(s.AliasNames)

	return s.Run()
}
