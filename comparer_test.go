package main

import "testing"

func TestEqual(t *testing.T) {
	shouldEqual(t, Integer(1), Integer(1))
	shouldEqual(t, Decimal(2.5), Decimal(2.5))
	shouldEqual(t, Decimal(2.5), Decimal(2.500001))
	shouldEqual(t, Str("hello"), Str("hello"))
	shouldEqual(t, Symbol("sym"), Symbol("sym"))
	shouldEqual(t, Keyword("kw"), Keyword("kw"))
	shouldEqual(t, Error("boom"), Error("boom"))
	shouldEqual(t, SExpr{}, SExpr{})
	shouldEqual(t, QExpr{Integer(1), Integer(2)}, QExpr{Integer(1), Integer(2)})
	shouldEqual(t, QExpr{QExpr{Str("a")}}, QExpr{QExpr{Str("a")}})
	shouldEqual(t, Builtin{Name: "+", fn: builtinAdd}, Builtin{Name: "+"})
	shouldEqual(t,
		HashMap{Keys: []Value{Keyword("a")}, Vals: []Value{Integer(1)}},
		HashMap{Keys: []Value{Keyword("a")}, Vals: []Value{Integer(1)}})
	shouldEqual(t, HashMap{}, HashMap{Keys: []Value{}, Vals: []Value{}})
}

func TestNotEqual(t *testing.T) {
	shouldNotEqual(t, Integer(1), Integer(2))
	shouldNotEqual(t, Decimal(2.5), Decimal(2.6))
	shouldNotEqual(t, Str("hello"), Str("goodbye"))
	shouldNotEqual(t, Symbol("a"), Symbol("b"))
	shouldNotEqual(t, Error("a"), Error("b"))
	shouldNotEqual(t, QExpr{Integer(1), Integer(2)}, QExpr{Integer(1), Integer(3)})
	shouldNotEqual(t, QExpr{Integer(1), Integer(2)}, QExpr{Integer(2), Integer(1)})
	shouldNotEqual(t, QExpr{Integer(1)}, QExpr{Integer(1), Integer(1)})
	shouldNotEqual(t, Builtin{Name: "+"}, Builtin{Name: "-"})
	shouldNotEqual(t,
		HashMap{Keys: []Value{Keyword("a")}, Vals: []Value{Integer(1)}},
		HashMap{Keys: []Value{Keyword("a")}, Vals: []Value{Integer(2)}})
	shouldNotEqual(t,
		HashMap{Keys: []Value{Keyword("a"), Keyword("b")}, Vals: []Value{Integer(1), Integer(2)}},
		HashMap{Keys: []Value{Keyword("b"), Keyword("a")}, Vals: []Value{Integer(2), Integer(1)}})
}

func TestTypeMismatch(t *testing.T) {
	shouldNotEqual(t, Integer(1), Decimal(1))
	shouldNotEqual(t, Str("a"), Symbol("a"))
	shouldNotEqual(t, Keyword("a"), Symbol("a"))
	shouldNotEqual(t, Str("boom"), Error("boom"))
	shouldNotEqual(t, SExpr{Integer(1)}, QExpr{Integer(1)})
	shouldNotEqual(t, SExpr{}, HashMap{})
}

func TestFunctionEqual(t *testing.T) {
	params := QExpr{Symbol("x")}
	body := QExpr{Symbol("+"), Symbol("x"), Integer(1)}
	env := NewEnv()
	env.Put("y", Integer(1))

	shouldEqual(t, Function{Params: params, Body: body}, Function{Params: params, Body: body, Env: env})
	shouldNotEqual(t,
		Function{Params: params, Body: body},
		Function{Params: QExpr{Symbol("y")}, Body: body})
	shouldNotEqual(t,
		Function{Params: params, Body: body},
		Function{Params: params, Body: QExpr{Symbol("x")}})
}

func TestTruthy(t *testing.T) {
	truthy := []Value{
		Integer(1),
		Decimal(0.5),
		Decimal(-2),
		Str("x"),
		Keyword("k"),
		Symbol("s"),
		Error("e"),
		QExpr{Integer(0)},
		SExpr{Integer(0)},
		HashMap{Keys: []Value{Integer(1)}, Vals: []Value{Integer(1)}},
		Builtin{Name: "+"},
		Function{},
	}
	for _, v := range truthy {
		if !IsTruthy(v) {
			t.Errorf("%s - Expected: truthy", Print(v))
		}
	}

	falsy := []Value{
		Integer(0),
		Integer(2),
		Integer(-1),
		Decimal(0),
		Decimal(0.000001),
		Str(""),
		QExpr{},
		SExpr{},
		HashMap{},
	}
	for _, v := range falsy {
		if IsTruthy(v) {
			t.Errorf("%s - Expected: falsy", Print(v))
		}
	}
}

func shouldEqual(t *testing.T, val1, val2 Value) {
	t.Helper()
	if !Equals(val1, val2) {
		t.Errorf("\n%s | %s - Expected: equal", Print(val1), Print(val2))
	}
}

func shouldNotEqual(t *testing.T, val1, val2 Value) {
	t.Helper()
	if Equals(val1, val2) {
		t.Errorf("\n%s | %s - Expected: not equal", Print(val1), Print(val2))
	}
}
