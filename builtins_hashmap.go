package main

func builtinHashMap(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectTypes("hash-map", args, typeQExpr); !ok {
		return e
	}
	items := args[0].(QExpr)
	if len(items)%2 != 0 {
		return Error("Uneven amount of key vs values")
	}

	hm := HashMap{Keys: []Value{}, Vals: []Value{}}
	for i := 0; i < len(items); i += 2 {
		hm = hm.Assoc(items[i], items[i+1])
	}
	return hm
}

// (key hm k)
func builtinKey(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("key", args, 2); !ok {
		return e
	}
	if e, ok := expectType("key", args, 0, typeHashMap); !ok {
		return e
	}
	val, found := args[0].(HashMap).Get(args[1])
	if !found {
		return Error("Key not found")
	}
	return val
}

// (assoc k v hm)
func builtinAssoc(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("assoc", args, 3); !ok {
		return e
	}
	if e, ok := expectType("assoc", args, 2, typeHashMap); !ok {
		return e
	}
	return args[2].(HashMap).Assoc(args[0], args[1])
}

// (deassoc k hm)
func builtinDeassoc(in *Interpreter, env *Env, args []Value) Value {
	if e, ok := expectCount("deassoc", args, 2); !ok {
		return e
	}
	if e, ok := expectType("deassoc", args, 1, typeHashMap); !ok {
		return e
	}
	hm, found := args[1].(HashMap).Dissoc(args[0])
	if !found {
		return Error("Key not found")
	}
	return hm
}
