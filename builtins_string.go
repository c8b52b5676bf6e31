package main

import (
	"strconv"
	"strings"
)

func builtinConcat(in *Interpreter, env *Env, args []Value) Value {
	var sb strings.Builder
	for i, arg := range args {
		s, ok := arg.(Str)
		if !ok {
			return errorf("Function 'concat' passed incorrect type for argument %d. Got %s, Expected %s.",
				i, TypeName(arg), typeStr)
		}
		sb.WriteString(string(s))
	}
	return Str(sb.String())
}

func builtinStrSplit(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("str-split", args, typeStr); !ok {
		return e
	}
	ret := QExpr{}
	for _, ch := range string(args[0].(Str)) {
		ret = append(ret, Str(string(ch)))
	}
	return ret
}

func builtinStr(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("str", args, 1); !ok {
		return e
	}
	switch t := args[0].(type) {
	case Integer:
		return Str(strconv.FormatInt(int64(t), 10))
	case Decimal:
		return Str(Print(t))
	case Symbol:
		return Str(t)
	case Str:
		return t
	case Error:
		return Str(t)
	}
	return errorf("Type %s does not support str", TypeName(args[0]))
}

func builtinUpperCase(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("upper-case", args, typeStr); !ok {
		return e
	}
	return Str(strings.ToUpper(string(args[0].(Str))))
}

func builtinLowerCase(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("lower-case", args, typeStr); !ok {
		return e
	}
	return Str(strings.ToLower(string(args[0].(Str))))
}

func builtinKeyword(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("keyword", args, typeStr); !ok {
		return e
	}
	return Keyword(args[0].(Str))
}
