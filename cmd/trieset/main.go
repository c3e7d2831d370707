package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/e11jah/trie"
	"github.com/e11jah/trie/internal/config"
	"github.com/e11jah/trie/internal/repl"
)

func main() {
	flags := pflag.NewFlagSet("trieset", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to config file")
	flags.String("keys", config.KeysString, "Key type: string or int")
	flags.String("prompt", "> ", "Prompt printed before each command")
	flags.String("log.level", "info", "Log level")
	help := flags.Bool("help", false, "Show help message")

	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *help {
		showHelp(flags)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := cfg.Log.ZerologLevel()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	var store repl.Store
	switch cfg.Keys {
	case config.KeysInt:
		store = repl.NewIntStore(trie.NewIntegerSet[int64](trie.WithLogger(logger)))
	default:
		store = repl.NewStringStore(trie.NewStringSet(trie.WithLogger(logger)))
	}

	logger.Debug().Str("keys", cfg.Keys).Msg("starting shell")

	shell := repl.New(store, os.Stdin, os.Stdout,
		repl.WithPrompt(cfg.Prompt),
		repl.WithLogger(logger),
	)
	if err := shell.Run(); err != nil {
		logger.Error().Err(err).Msg("shell stopped")
		os.Exit(1)
	}
}

func showHelp(flags *pflag.FlagSet) {
	helpText := `trieset - interactive trie set shell

Usage:
  trieset [flags]

Commands:
  insert <key>    Add key, print the new size
  erase <key>     Remove key, print the new size
  count <key>     Print 1 if key is present, else 0
  digits <key>    Print the radix 16 digits of key
  size            Print the number of keys
  clear           Remove every key
  quit            Exit

Flags:
`
	fmt.Print(helpText)
	flags.PrintDefaults()
}
