package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/peterh/liner"
)

const (
	banner     = "IdeLISP (type (exit ()) to quit)"
	promptCont = ".. "
)

// ReadEvalPrint evaluates one chunk of input and renders the result. Parse
// errors are rendered the same way evaluation errors are.
func ReadEvalPrint(in *Interpreter, env *Env, src string) (val Value, out string) {
	val, err := in.EvalSource(env, "<stdin>", src)
	if err != nil {
		return Error(err.Error()), "Error: " + err.Error()
	}
	return val, Print(val)
}

// RunFile loads path into env and returns the process exit code.
func RunFile(in *Interpreter, env *Env, path string, w io.Writer) int {
	if val := in.LoadFile(env, path); isError(val) {
		fmt.Fprintln(w, Print(val))
		return 1
	}
	return 0
}

// ReadEvalPrintLoop runs the interactive shell until input ends or exit is
// called. History is saved on both paths.
func ReadEvalPrintLoop(in *Interpreter, env *Env, cfg *Config) {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			if cfg.HistoryFile != "" {
				saveHistory(ln, cfg.HistoryFile)
			}
			_ = ln.Close()
		})
	}
	defer shutdown()
	defer onExit(in, shutdown)()

	fmt.Fprintln(in.out, banner)
	for {
		src, ok := readInput(ln, cfg.Prompt, promptCont)
		if !ok {
			fmt.Fprintln(in.out)
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		printResult(in, env, src)
	}
}

// printResult evaluates src and writes its display form to the interpreter's
// output, after anything print wrote.
func printResult(in *Interpreter, env *Env, src string) {
	_, output := ReadEvalPrint(in, env, src)
	fmt.Fprintln(in.out, output)
}

// onExit makes the exit builtin run cleanup before the current exit hook.
// The returned func restores the previous hook.
func onExit(in *Interpreter, cleanup func()) (restore func()) {
	exit := in.exit
	in.exit = func(code int) {
		cleanup()
		exit(code)
	}
	return func() { in.exit = exit }
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		slog.Debug("history not saved", slog.String("path", path), slog.Any("err", err))
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		slog.Debug("history not saved", slog.String("path", path), slog.Any("err", err))
	}
}

// readInput keeps prompting while the input so far is an unfinished form.
// ok is false once input is exhausted.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var sb strings.Builder
	for {
		p := prompt
		if sb.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			sb.Reset()
			continue
		}
		if err != nil {
			if sb.Len() > 0 && errors.Is(err, io.EOF) {
				return sb.String(), true
			}
			return "", false
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		if _, perr := Parse("<stdin>", sb.String()); IsIncomplete(perr) {
			continue
		}
		return sb.String(), true
	}
}
