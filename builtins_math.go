package main

import "math"

// Operators

func builtinAdd(in *Interpreter, env *Env, args []Value) Value {
	return agg("+", args,
		func(r, x int64) Value {
			return Integer(r + x)
		},
		func(r, x float64) Value {
			return Decimal(r + x)
		})
}

func builtinSub(in *Interpreter, env *Env, args []Value) Value {
	if len(args) == 1 {
		switch t := args[0].(type) {
		case Integer:
			return -t
		case Decimal:
			return -t
		}
	}
	return agg("-", args,
		func(r, x int64) Value {
			return Integer(r - x)
		},
		func(r, x float64) Value {
			return Decimal(r - x)
		})
}

func builtinMul(in *Interpreter, env *Env, args []Value) Value {
	return agg("*", args,
		func(r, x int64) Value {
			return Integer(r * x)
		},
		func(r, x float64) Value {
			return Decimal(r * x)
		})
}

func builtinDiv(in *Interpreter, env *Env, args []Value) Value {
	return agg("/", args,
		func(r, x int64) Value {
			if x == 0 {
				return Error("Division by zero")
			}
			return Integer(r / x)
		},
		func(r, x float64) Value {
			if x == 0 {
				return Error("Division by zero")
			}
			return Decimal(r / x)
		})
}

func builtinMod(in *Interpreter, env *Env, args []Value) Value {
	return agg("%", args,
		func(r, x int64) Value {
			if x == 0 {
				return Error("Modulo by zero")
			}
			return Integer(r % x)
		},
		func(r, x float64) Value {
			if x == 0 {
				return Error("Modulo by zero")
			}
			return Decimal(math.Mod(r, x))
		})
}

func builtinPow(in *Interpreter, env *Env, args []Value) Value {
	return agg("^", args,
		func(r, x int64) Value {
			return Integer(int64(math.Pow(float64(r), float64(x))))
		},
		func(r, x float64) Value {
			return Decimal(math.Pow(r, x))
		})
}

func builtinMin(in *Interpreter, env *Env, args []Value) Value {
	return agg("min", args,
		func(r, x int64) Value {
			return Integer(min(r, x))
		},
		func(r, x float64) Value {
			return Decimal(math.Min(r, x))
		})
}

func builtinMax(in *Interpreter, env *Env, args []Value) Value {
	return agg("max", args,
		func(r, x int64) Value {
			return Integer(max(r, x))
		},
		func(r, x float64) Value {
			return Decimal(math.Max(r, x))
		})
}

// agg left-folds args with accumInt when every operand is an Integer, and
// with accumFloat over promoted operands otherwise.
func agg(name string, args []Value, accumInt func(int64, int64) Value, accumFloat func(float64, float64) Value) Value {
	if len(args) < 1 {
		return errorf("Function '%s' passed no arguments.", name)
	}

	allInt := true
	for _, arg := range args {
		if !isNumeric(arg) {
			return errorf("Cannot operate on non-number, got %s", TypeName(arg))
		}
		if _, isInt := arg.(Integer); !isInt {
			allInt = false
		}
	}

	if allInt {
		ret := args[0]
		for i := 1; i < len(args); i++ {
			ret = accumInt(int64(ret.(Integer)), int64(args[i].(Integer)))
			if isError(ret) {
				return ret
			}
		}
		return ret
	}

	var ret Value = Decimal(toFloat(args[0]))
	for i := 1; i < len(args); i++ {
		ret = accumFloat(float64(ret.(Decimal)), toFloat(args[i]))
		if isError(ret) {
			return ret
		}
	}
	return ret
}

// Comparisons

func builtinGt(in *Interpreter, env *Env, args []Value) Value {
	return order(">", args,
		func(r, x int64) bool {
			return r > x
		},
		func(r, x float64) bool {
			return r > x
		})
}

func builtinGte(in *Interpreter, env *Env, args []Value) Value {
	return order(">=", args,
		func(r, x int64) bool {
			return r >= x
		},
		func(r, x float64) bool {
			return r >= x
		})
}

func builtinLt(in *Interpreter, env *Env, args []Value) Value {
	return order("<", args,
		func(r, x int64) bool {
			return r < x
		},
		func(r, x float64) bool {
			return r < x
		})
}

func builtinLte(in *Interpreter, env *Env, args []Value) Value {
	return order("<=", args,
		func(r, x int64) bool {
			return r <= x
		},
		func(r, x float64) bool {
			return r <= x
		})
}

func order(name string, args []Value, orderInt func(int64, int64) bool, orderFloat func(float64, float64) bool) Value {
	if e, ok := expectCount(name, args, 2); !ok {
		return e
	}
	for _, arg := range args {
		if !isNumeric(arg) {
			return errorf("Cannot %s operate on non-number, got %s", name, TypeName(arg))
		}
	}

	ri, rIsInt := args[0].(Integer)
	ai, aIsInt := args[1].(Integer)
	if rIsInt && aIsInt {
		return boolValue(orderInt(int64(ri), int64(ai)))
	}
	return boolValue(orderFloat(toFloat(args[0]), toFloat(args[1])))
}

func builtinEq(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("==", args, 2); !ok {
		return e
	}
	return boolValue(Equals(args[0], args[1]))
}

func builtinNeq(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("!=", args, 2); !ok {
		return e
	}
	return boolValue(!Equals(args[0], args[1]))
}

// and/or/not evaluate nothing themselves; every operand has already been
// reduced by the caller.

func builtinAnd(in *Interpreter, env *Env, args []Value) Value {
	for _, arg := range args {
		if !IsTruthy(arg) {
			return boolValue(false)
		}
	}
	return boolValue(true)
}

func builtinOr(in *Interpreter, env *Env, args []Value) Value {
	for _, arg := range args {
		if IsTruthy(arg) {
			return boolValue(true)
		}
	}
	return boolValue(false)
}

func builtinNot(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("not", args, 1); !ok {
		return e
	}
	return boolValue(!IsTruthy(args[0]))
}
