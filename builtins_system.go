package main

import (
	"fmt"
	"unicode/utf8"
)

func builtinPrint(in *Interpreter, env *Env, args []Value) Value {
	for _, arg := range args {
		fmt.Fprint(in.out, Print(arg), " ")
	}
	fmt.Fprintln(in.out)
	return SExpr{}
}

func builtinLoad(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("load", args, typeStr); !ok {
		return e
	}
	return in.LoadFile(env, string(args[0].(Str)))
}

func builtinExit(in *Interpreter, env *Env, args []Value) Value {
	in.logger.Debug("exit requested")
	in.exit(0)
	return SExpr{}
}

func builtinError(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("error", args, typeStr); !ok {
		return e
	}
	return Error(args[0].(Str))
}

func builtinType(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("type", args, 1); !ok {
		return e
	}
	return Str(TypeName(args[0]))
}

func builtinLen(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("len", args, 1); !ok {
		return e
	}
	switch t := args[0].(type) {
	case SExpr:
		return Integer(len(t))
	case QExpr:
		return Integer(len(t))
	case HashMap:
		return Integer(t.Len())
	case Str:
		return Integer(utf8.RuneCountInString(string(t)))
	}
	return errorf("Type %s does not support len", TypeName(args[0]))
}
