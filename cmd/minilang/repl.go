package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"minilang/config"
	"minilang/eval"
	"minilang/parser"
	"minilang/report"
)

const (
	promptMain = "ml> "
	promptCont = "... "
)

func runRepl(cfg config.Config) int {
	fmt.Println("minilang interactive session. Type :help for commands.")

	histPath := cfg.History
	if histPath != "" && !filepath.IsAbs(histPath) {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, histPath)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	s := newSession(cfg, os.Stdout)
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		quit, err := s.handle(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if quit {
			break
		}
	}
	return 0
}

// readByParseProbe reads lines until they form a complete chunk: a
// command, something that parses, or input that fails for a reason more
// lines cannot fix. It returns false at end of input.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C drops the pending chunk
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, _, err := classify(src); parser.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// session is the persistent state behind the REPL. Global declarations and
// functions accumulate across chunks.
type session struct {
	cfg config.Config
	ev  *eval.Evaluator
	out io.Writer
}

func newSession(cfg config.Config, out io.Writer) *session {
	return &session{
		cfg: cfg,
		ev:  eval.New(eval.WithOutput(out), eval.WithMaxDepth(cfg.MaxDepth)),
		out: out,
	}
}

// handle runs one chunk of input and reports whether the session should end
func (s *session) handle(code string) (bool, error) {
	if cmd := strings.TrimSpace(code); strings.HasPrefix(cmd, ":") {
		return s.command(cmd)
	}

	prog, stmts, err := classify(code)
	if err != nil {
		return false, err
	}
	if prog != nil {
		return false, s.ev.Load(prog)
	}
	_, err = s.ev.Exec(stmts)
	return false, err
}

func (s *session) command(cmd string) (bool, error) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true, nil
	case ":run":
		return false, s.ev.RunMain()
	case ":globals":
		return false, report.WriteGlobals(s.out, s.ev)
	case ":functions":
		return false, report.WriteFunctions(s.out, s.ev)
	case ":reset":
		s.ev = eval.New(eval.WithOutput(s.out), eval.WithMaxDepth(s.cfg.MaxDepth))
		return false, nil
	case ":help":
		fmt.Fprintln(s.out, "Enter global declarations, functions or statements.")
		fmt.Fprintln(s.out, "  :run        call main")
		fmt.Fprintln(s.out, "  :globals    list global variables")
		fmt.Fprintln(s.out, "  :functions  describe declared functions")
		fmt.Fprintln(s.out, "  :reset      forget all declarations")
		fmt.Fprintln(s.out, "  :quit       leave")
		return false, nil
	}
	return false, fmt.Errorf("unknown command %s; type :help", cmd)
}

// classify parses src as global lines when it starts with a type or void
// and as statements otherwise. A chunk like `int x = 1;` is valid both ways
// and is loaded as a global.
func classify(src string) (*parser.Program, []parser.Stmt, error) {
	prog, progErr := parser.Parse(src)
	if progErr == nil {
		return prog, nil, nil
	}
	stmts, stmtErr := parser.ParseStatements(src)
	if stmtErr == nil {
		return nil, stmts, nil
	}

	switch {
	case parser.IsIncomplete(progErr) && startsWithType(src):
		return nil, nil, progErr
	case parser.IsIncomplete(stmtErr):
		return nil, nil, stmtErr
	case startsWithType(src):
		return nil, nil, progErr
	}
	return nil, nil, stmtErr
}

func startsWithType(src string) bool {
	toks := parser.Lexemes(src)
	if len(toks) == 0 {
		return false
	}
	switch toks[0].Type {
	case parser.TOKEN_TYPE_INT, parser.TOKEN_TYPE_FLOAT, parser.TOKEN_TYPE_DOUBLE,
		parser.TOKEN_TYPE_STRING, parser.TOKEN_VOID:
		return true
	}
	return false
}
