package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultMaxDepth bounds nested evaluation; Eval has no tail call elimination.
const DefaultMaxDepth = 10000

// Interpreter holds the host-facing state shared by every evaluation: where
// print writes, what exit does, and the evaluation policies.
type Interpreter struct {
	out    io.Writer
	exit   func(code int)
	logger *slog.Logger

	// MaxDepth limits nested Eval calls; 0 disables the limit.
	MaxDepth int
	// CallerFrameMerge seeds each call frame with a copy of the caller's own
	// bindings before chaining it to the closure environment.
	CallerFrameMerge bool

	depth int
}

type Option func(*Interpreter)

func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

func WithExit(fn func(code int)) Option {
	return func(in *Interpreter) { in.exit = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

func WithMaxDepth(n int) Option {
	return func(in *Interpreter) { in.MaxDepth = n }
}

func WithCallerFrameMerge(enabled bool) Option {
	return func(in *Interpreter) { in.CallerFrameMerge = enabled }
}

func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		out:      os.Stdout,
		exit:     os.Exit,
		logger:   slog.Default(),
		MaxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// NewGlobalEnv returns a fresh root frame holding the builtin table.
func (in *Interpreter) NewGlobalEnv() *Env {
	env := NewEnv()
	AddBuiltins(env)
	return env
}

// Eval reduces val in env. Failures come back as Error values.
func (in *Interpreter) Eval(env *Env, val Value) Value {
	if in.MaxDepth > 0 && in.depth >= in.MaxDepth {
		return Error("Maximum recursion depth exceeded")
	}
	in.depth++
	defer func() { in.depth-- }()

	switch t := val.(type) {
	case Symbol:
		return env.Get(string(t))
	case SExpr:
		return in.evalSExpr(env, t)
	case HashMap:
		return in.evalHashMap(env, t)
	default:
		return t
	}
}

func (in *Interpreter) evalSExpr(env *Env, sexpr SExpr) Value {
	items := make([]Value, len(sexpr))
	for i, v := range sexpr {
		items[i] = in.Eval(env, v)
	}

	for _, v := range items {
		if isError(v) {
			return v
		}
	}

	switch len(items) {
	case 0:
		return sexpr
	case 1:
		return in.Eval(env, items[0])
	}

	switch front := items[0].(type) {
	case Builtin:
		return front.fn(in, env, items[1:])
	case Function:
		return in.apply(env, front, items[1:])
	default:
		return errorf("Invalid first element, expected %s or %s, got %s",
			typeBuiltin, typeFunc, TypeName(front))
	}
}

func (in *Interpreter) evalHashMap(env *Env, hm HashMap) Value {
	keys := make([]Value, hm.Len())
	vals := make([]Value, hm.Len())
	for i := range hm.Keys {
		keys[i] = in.Eval(env, hm.Keys[i])
		vals[i] = in.Eval(env, hm.Vals[i])
	}

	for i := range keys {
		if isError(keys[i]) {
			return keys[i]
		}
		if isError(vals[i]) {
			return vals[i]
		}
	}

	// evaluated keys may collide, later pairs win
	ret := HashMap{Keys: []Value{}, Vals: []Value{}}
	for i := range keys {
		ret = ret.Assoc(keys[i], vals[i])
	}
	return ret
}

// apply binds args to fn's parameters. Once every parameter is bound the body
// is evaluated; otherwise a partially applied Function is returned.
func (in *Interpreter) apply(env *Env, fn Function, args []Value) Value {
	expected, got := len(fn.Params), len(args)

	var fnEnv *Env
	if in.CallerFrameMerge {
		fnEnv = env.copyFrame()
		fnEnv.parent = fn.Env
	} else {
		fnEnv = NewEnclosedEnv(fn.Env)
	}

	// (f ()) calls a zero arity function
	if len(fn.Params) == 0 && len(args) == 1 && isEmptyExpr(args[0]) {
		args = nil
	}

	params := fn.Params
	for len(args) > 0 {
		if len(params) == 0 {
			return errorf("Function received too many arguments, expected %d, got %d", expected, got)
		}

		param, ok := params[0].(Symbol)
		if !ok {
			return errorf("Cannot bind non-symbol, got %s, expected %s", TypeName(params[0]), typeSymbol)
		}
		params = params[1:]

		if param == "&rest" {
			return in.bindRest(fnEnv, fn, params, QExpr(args))
		}

		fnEnv.Put(string(param), args[0])
		args = args[1:]
	}

	// a pending &rest with nothing left to collect binds the empty list
	if len(params) > 0 && Equals(params[0], Symbol("&rest")) {
		return in.bindRest(fnEnv, fn, params[1:], QExpr{})
	}

	if len(params) > 0 {
		in.logger.Debug("partial application",
			slog.Int("bound", expected-len(params)),
			slog.Int("remaining", len(params)))
		return Function{Params: params, Body: fn.Body, Env: fnEnv}
	}

	in.logger.Debug("function call",
		slog.Int("params", expected),
		slog.Int("args", got))
	return in.Eval(fnEnv, SExpr(fn.Body))
}

func (in *Interpreter) bindRest(fnEnv *Env, fn Function, params QExpr, rest QExpr) Value {
	if len(params) != 1 {
		return Error("Invalid function format, &rest must be followed by symbol")
	}
	sym, ok := params[0].(Symbol)
	if !ok {
		return errorf("Cannot bind non-symbol, got %s, expected %s", TypeName(params[0]), typeSymbol)
	}
	fnEnv.Put(string(sym), rest)
	return in.Eval(fnEnv, SExpr(fn.Body))
}

// EvalProgram evaluates the forms of a program root in order, stopping at the
// first Error. It returns the last value, or () for an empty program.
func (in *Interpreter) EvalProgram(env *Env, program SExpr) Value {
	var ret Value = SExpr{}
	for _, form := range program {
		ret = in.Eval(env, form)
		if isError(ret) {
			return ret
		}
	}
	return ret
}

// EvalSource parses and evaluates src. Parse and read failures are returned
// as Go errors; evaluation failures come back as Error values.
func (in *Interpreter) EvalSource(env *Env, name, src string) (Value, error) {
	program, err := parseProgram(name, src)
	if err != nil {
		return nil, err
	}
	return in.EvalProgram(env, program), nil
}

// LoadFile evaluates every form of the file at path in env.
func (in *Interpreter) LoadFile(env *Env, path string) Value {
	in.logger.Debug("load", slog.String("path", path))

	src, err := os.ReadFile(path)
	if err != nil {
		return errorf("Could not load module %s, reason %v", path, err)
	}
	program, err := parseProgram(path, string(src))
	if err != nil {
		return errorf("Could not load module %s, reason %v", path, err)
	}

	if ret := in.EvalProgram(env, program); isError(ret) {
		return ret
	}
	return SExpr{}
}

func parseProgram(name, src string) (SExpr, error) {
	root, err := Parse(name, src)
	if err != nil {
		return nil, err
	}
	val, err := Read(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return val.(SExpr), nil
}
