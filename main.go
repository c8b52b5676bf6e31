package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("idelisp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sourceFile := fs.String("f", "", "execute the given source file and exit")
	configPath := fs.String("config", "", "path to a YAML config file (default $HOME/"+configFileName+")")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Debug("config loaded",
		slog.Int("max_depth", cfg.MaxDepth),
		slog.Bool("caller_frame_merge", cfg.CallerFrameMerge),
		slog.Int("prelude", len(cfg.Prelude)))

	opts := append(cfg.Options(), WithOutput(stdout), WithLogger(logger))
	in := NewInterpreter(opts...)
	env := in.NewGlobalEnv()

	for _, path := range cfg.Prelude {
		if code := RunFile(in, env, path, stdout); code != 0 {
			return code
		}
	}

	if *sourceFile != "" {
		return RunFile(in, env, *sourceFile, stdout)
	}

	ReadEvalPrintLoop(in, env, cfg)
	return 0
}
