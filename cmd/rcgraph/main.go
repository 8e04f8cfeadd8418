// Command rcgraph runs scenario scripts against shared node graphs and
// prints their trace.
//
//	rcgraph -list
//	rcgraph -builtin graph
//	rcgraph -scenario path/to/file.toml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rcgraph/internal/logging"
	"github.com/katalvlaran/rcgraph/scenario"
)

type options struct {
	file    string
	builtin string
	list    bool
}

func main() {
	opts := parseFlags()
	log := logging.NewRuntime("rcgraph")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout, log); err != nil {
		stop()
		fatalf("%v", err)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.file, "scenario", "", "scenario TOML file to run")
	flag.StringVar(&opts.builtin, "builtin", "", "embedded scenario to run (see -list)")
	flag.BoolVar(&opts.list, "list", false, "list embedded scenarios and exit")
	flag.Parse()
	return opts
}

func run(ctx context.Context, opts options, out io.Writer, log zerolog.Logger) error {
	if opts.list {
		for _, name := range scenario.Builtins() {
			s, err := scenario.Builtin(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-10s %s\n", name, s.Description)
		}
		return nil
	}

	s, err := load(opts)
	if err != nil {
		return err
	}

	rep, err := scenario.NewRunner(scenario.WithLogger(log), scenario.WithOutput(out)).Run(ctx, s)
	if err != nil {
		return err
	}
	log.Info().
		Str("scenario", rep.Scenario).
		Int("steps", rep.Steps).
		Int("clones", rep.Stats.Clones).
		Int("drops", rep.Stats.Drops).
		Msg("report")
	return nil
}

func load(opts options) (*scenario.Scenario, error) {
	switch {
	case opts.file != "" && opts.builtin != "":
		return nil, fmt.Errorf("-scenario and -builtin are mutually exclusive")
	case opts.file != "":
		return scenario.Load(opts.file)
	case opts.builtin != "":
		return scenario.Builtin(opts.builtin)
	default:
		return scenario.Builtin("graph")
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rcgraph: "+format+"\n", args...)
	os.Exit(1)
}
