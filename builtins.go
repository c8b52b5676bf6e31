package main

// builtinTable is the fixed set of primitives installed by AddBuiltins.
var builtinTable = []struct {
	name string
	fn   builtinFunc
}{
	// List
	{"head", builtinHead},
	{"tail", builtinTail},
	{"list", builtinList},
	{"join", builtinJoin},

	// Expression
	{"eval", builtinEval},

	// Env
	{"def", builtinDef},
	{"defl", builtinDefl},
	{"let", builtinLet},

	// System
	{"exit", builtinExit},
	{"print", builtinPrint},
	{"load", builtinLoad},
	{"error", builtinError},
	{"type", builtinType},
	{"len", builtinLen},

	// Functions
	{"fn", builtinFn},
	{"defn", builtinDefn},

	// String
	{"concat", builtinConcat},
	{"str-split", builtinStrSplit},
	{"str", builtinStr},
	{"upper-case", builtinUpperCase},
	{"lower-case", builtinLowerCase},

	// HashMap
	{"hash-map", builtinHashMap},
	{"key", builtinKey},
	{"assoc", builtinAssoc},
	{"deassoc", builtinDeassoc},

	// Operators
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"%", builtinMod},
	{"^", builtinPow},
	{"min", builtinMin},
	{"max", builtinMax},

	// Comparisons
	{">", builtinGt},
	{">=", builtinGte},
	{"<", builtinLt},
	{"<=", builtinLte},
	{"==", builtinEq},
	{"!=", builtinNeq},
	{"and", builtinAnd},
	{"or", builtinOr},
	{"not", builtinNot},

	// Conditionals
	{"if", builtinIf},

	// Keyword
	{"keyword", builtinKeyword},
}

// AddBuiltin binds a single primitive in env.
func AddBuiltin(env *Env, name string, fn builtinFunc) {
	env.Put(name, Builtin{Name: name, fn: fn})
}

// AddBuiltins installs the full primitive table in env.
func AddBuiltins(env *Env) {
	for _, b := range builtinTable {
		AddBuiltin(env, b.name, b.fn)
	}
}

// Argument checks. Each returns ok=false together with the Error to hand
// back to the caller.

func expectCount(fn string, args []Value, n int) (Error, bool) {
	if len(args) != n {
		return errorf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			fn, len(args), n), false
	}
	return "", true
}

func expectType(fn string, args []Value, i int, want string) (Error, bool) {
	if got := TypeName(args[i]); got != want {
		return errorf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			fn, i, got, want), false
	}
	return "", true
}

func expectTypes(fn string, args []Value, want ...string) (Error, bool) {
	if e, ok := expectCount(fn, args, len(want)); !ok {
		return e, false
	}
	for i, w := range want {
		if e, ok := expectType(fn, args, i, w); !ok {
			return e, false
		}
	}
	return "", true
}

func expectNotEmpty(fn string, args []Value, i int) (Error, bool) {
	if isEmptyExpr(args[i]) {
		return errorf("Function '%s' passed '() for argument %d.", fn, i), false
	}
	return "", true
}

func expectSymbols(fn string, vals []Value) (Error, bool) {
	for _, v := range vals {
		if _, ok := v.(Symbol); !ok {
			return errorf("Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				fn, TypeName(v), typeSymbol), false
		}
	}
	return "", true
}

// List

func builtinHead(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("head", args, typeQExpr); !ok {
		return e
	}
	if e, ok := expectNotEmpty("head", args, 0); !ok {
		return e
	}
	return QExpr{args[0].(QExpr)[0]}
}

func builtinTail(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("tail", args, typeQExpr); !ok {
		return e
	}
	if e, ok := expectNotEmpty("tail", args, 0); !ok {
		return e
	}
	q := args[0].(QExpr)
	return append(QExpr{}, q[1:]...)
}

func builtinList(in *Interpreter, env *Env, args []Value) Value {
	return QExpr(args)
}

func builtinJoin(in *Interpreter, env *Env, args []Value) Value {
	ret := QExpr{}
	for i := range args {
		if e, ok := expectType("join", args, i, typeQExpr); !ok {
			return e
		}
		ret = append(ret, args[i].(QExpr)...)
	}
	return ret
}

// Expression

func builtinEval(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("eval", args, typeQExpr); !ok {
		return e
	}
	return in.Eval(env, SExpr(args[0].(QExpr)))
}

// Env

func builtinDef(in *Interpreter, env *Env, args []Value) Value {
	return defineVars("def", env.PutGlobal, args)
}

func builtinDefl(in *Interpreter, env *Env, args []Value) Value {
	return defineVars("defl", env.Put, args)
}

// defineVars binds a single Symbol/Keyword to a value, or a quoted list of
// names to a quoted list of values of the same length.
func defineVars(fn string, put func(string, Value), args []Value) Value {
	if e, ok := expectCount(fn, args, 2); !ok {
		return e
	}

	names, isList := args[0].(QExpr)
	if !isList {
		name, ok := bindingName(args[0])
		if !ok {
			return errorf("Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				fn, TypeName(args[0]), typeSymbol)
		}
		put(name, args[1])
		return SExpr{}
	}

	if e, ok := expectType(fn, args, 1, typeQExpr); !ok {
		return e
	}
	vals := args[1].(QExpr)
	if len(names) != len(vals) {
		return errorf("Function '%s' passed %d names but %d values.", fn, len(names), len(vals))
	}

	keys := make([]string, len(names))
	for i, n := range names {
		name, ok := bindingName(n)
		if !ok {
			return errorf("Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				fn, TypeName(n), typeSymbol)
		}
		keys[i] = name
	}
	for i, k := range keys {
		put(k, vals[i])
	}
	return SExpr{}
}

func bindingName(v Value) (string, bool) {
	switch t := v.(type) {
	case Symbol:
		return string(t), true
	case Keyword:
		return string(t), true
	}
	return "", false
}

func builtinLet(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("let", args, typeQExpr, typeQExpr, typeQExpr); !ok {
		return e
	}
	names, vals, body := args[0].(QExpr), args[1].(QExpr), args[2].(QExpr)
	if len(names) != len(vals) {
		return Error("let must receive same number of keywords as values")
	}
	if e, ok := expectSymbols("let", names); !ok {
		return e
	}

	local := NewEnclosedEnv(env)
	for i, n := range names {
		local.Put(string(n.(Symbol)), vals[i])
	}
	return in.Eval(local, SExpr(body))
}

// Functions

func builtinFn(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("fn", args, typeQExpr, typeQExpr); !ok {
		return e
	}
	params := args[0].(QExpr)
	if e, ok := expectSymbols("fn", params); !ok {
		return e
	}
	return Function{Params: params, Body: args[1].(QExpr), Env: env}
}

func builtinDefn(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("defn", args, typeKeyword, typeQExpr, typeQExpr); !ok {
		return e
	}
	params := args[1].(QExpr)
	if e, ok := expectSymbols("defn", params); !ok {
		return e
	}
	env.PutGlobal(string(args[0].(Keyword)), Function{
		Params: params,
		Body:   args[2].(QExpr),
		Env:    env,
	})
	return SExpr{}
}

// Conditionals

func builtinIf(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("if", args, typeInteger, typeQExpr, typeQExpr); !ok {
		return e
	}
	if IsTruthy(args[0]) {
		return in.Eval(env, SExpr(args[1].(QExpr)))
	}
	return in.Eval(env, SExpr(args[2].(QExpr)))
}
