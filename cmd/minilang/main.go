package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"minilang/config"
	"minilang/eval"
	"minilang/parser"
	"minilang/report"
	"minilang/trace"
	"minilang/types"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("minilang: ")

	configPath := flag.String("config", "", "YAML configuration file")

	// Report flags
	lexemes := flag.String("lexemes", "", "Write the lexeme listing to this file")
	globals := flag.String("globals", "", "Write the global variable report to this file")
	functions := flag.String("functions", "", "Write the function report to this file")

	// Trace flags
	traceEnabled := flag.Bool("trace", false, "Trace function calls to stderr")
	traceFilter := flag.String("trace-filter", "", "Comma separated function name globs to trace (e.g., 'fib*,main')")

	maxDepth := flag.Int("max-depth", types.DefaultMaxDepth, "Maximum call depth (0 disables the limit)")
	repl := flag.Bool("repl", false, "Start an interactive session")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: minilang [flags] file\n       minilang -repl [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("%v", err)
		}
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lexemes":
			cfg.Lexemes = *lexemes
		case "globals":
			cfg.Globals = *globals
		case "functions":
			cfg.Functions = *functions
		case "trace":
			cfg.Trace = *traceEnabled
		case "trace-filter":
			cfg.TraceFilter = config.SplitFilters(*traceFilter)
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.Trace {
		trace.Init(true, cfg.TraceFilter, os.Stderr)
		if len(cfg.TraceFilter) > 0 {
			log.Printf("Tracing enabled with filters: %v", cfg.TraceFilter)
		}
	} else {
		trace.Init(false, nil, nil)
	}

	if *repl {
		os.Exit(runRepl(cfg))
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, flag.Arg(0), os.Stdout); err != nil {
		var te *types.Error
		if errors.As(err, &te) {
			log.Print(te.Traceback())
		} else {
			log.Print(err)
		}
		os.Exit(1)
	}
}

// run executes a source file: lexeme listing, load, global report, main,
// function report. The function report is written even when main fails.
func run(cfg config.Config, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src := string(data)

	if err := writeReport(cfg.Lexemes, func(w io.Writer) error {
		return report.WriteLexemes(w, parser.Lexemes(src))
	}); err != nil {
		return err
	}

	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}

	ev := eval.New(eval.WithOutput(out), eval.WithMaxDepth(cfg.MaxDepth))
	if err := ev.Load(prog); err != nil {
		return err
	}

	if err := writeReport(cfg.Globals, func(w io.Writer) error {
		return report.WriteGlobals(w, ev)
	}); err != nil {
		return err
	}

	runErr := ev.RunMain()

	if err := writeReport(cfg.Functions, func(w io.Writer) error {
		return report.WriteFunctions(w, ev)
	}); err != nil {
		return err
	}
	return runErr
}

// writeReport creates path and hands it to write; an empty path skips the report
func writeReport(path string, write func(io.Writer) error) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
