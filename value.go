package main

import "fmt"

// Value is any runtime datum. Values are never edited in place once another
// component holds them; builtins build new slices instead of mutating the
// ones they were handed, so frames and closures can share them freely.
type Value interface {
	typeName() string
}

type Error string
type Integer int64
type Decimal float64
type Symbol string
type Keyword string
type Str string

// SExpr is an expression to be evaluated.
type SExpr []Value

// QExpr is a quoted list; it is never evaluated implicitly.
type QExpr []Value

// HashMap keeps parallel key and value slices in insertion order. Keys are
// unique by Equals and looked up linearly.
type HashMap struct {
	Keys []Value
	Vals []Value
}

// builtins receive pre-evaluated arguments and own the slice
type builtinFunc func(in *Interpreter, env *Env, args []Value) Value

// Builtin refers to one of the fixed primitive operations.
type Builtin struct {
	Name string
	fn   builtinFunc
}

// Function is a user defined closure. Params shrinks as arguments are
// applied; Env is the frame the body will be evaluated against.
type Function struct {
	Params QExpr
	Body   QExpr
	Env    *Env
}

// display names reported by the type builtin and in error messages
const (
	typeError   = "Error"
	typeInteger = "Number"
	typeDecimal = "Decimal"
	typeSymbol  = "Symbol"
	typeKeyword = "Keyword"
	typeStr     = "String"
	typeSExpr   = "S-Expression"
	typeQExpr   = "Quoted Expression"
	typeHashMap = "HashMap"
	typeBuiltin = "Builtin"
	typeFunc    = "Function"
)

func (Error) typeName() string    { return typeError }
func (Integer) typeName() string  { return typeInteger }
func (Decimal) typeName() string  { return typeDecimal }
func (Symbol) typeName() string   { return typeSymbol }
func (Keyword) typeName() string  { return typeKeyword }
func (Str) typeName() string      { return typeStr }
func (SExpr) typeName() string    { return typeSExpr }
func (QExpr) typeName() string    { return typeQExpr }
func (HashMap) typeName() string  { return typeHashMap }
func (Builtin) typeName() string  { return typeBuiltin }
func (Function) typeName() string { return typeFunc }

// TypeName returns the display name of a value's variant.
func TypeName(v Value) string {
	if v == nil {
		return "Unknown"
	}
	return v.typeName()
}

func errorf(format string, args ...any) Error {
	return Error(fmt.Sprintf(format, args...))
}

func isError(v Value) bool {
	_, ok := v.(Error)
	return ok
}

func boolValue(b bool) Integer {
	if b {
		return 1
	}
	return 0
}

func isNumeric(v Value) bool {
	switch v.(type) {
	case Integer, Decimal:
		return true
	}
	return false
}

func toFloat(v Value) float64 {
	switch t := v.(type) {
	case Integer:
		return float64(t)
	case Decimal:
		return float64(t)
	}
	return 0
}

// isEmptyExpr reports whether v is () or '().
func isEmptyExpr(v Value) bool {
	switch t := v.(type) {
	case SExpr:
		return len(t) == 0
	case QExpr:
		return len(t) == 0
	}
	return false
}

func (h HashMap) Len() int {
	return len(h.Keys)
}

func (h HashMap) index(key Value) int {
	for i, k := range h.Keys {
		if Equals(k, key) {
			return i
		}
	}
	return -1
}

// Get looks up key by Equals.
func (h HashMap) Get(key Value) (Value, bool) {
	i := h.index(key)
	if i < 0 {
		return nil, false
	}
	return h.Vals[i], true
}

// Assoc returns a copy of h with key bound to val. An existing equal key keeps
// its position.
func (h HashMap) Assoc(key, val Value) HashMap {
	ret := HashMap{
		Keys: append(make([]Value, 0, len(h.Keys)+1), h.Keys...),
		Vals: append(make([]Value, 0, len(h.Vals)+1), h.Vals...),
	}
	if i := ret.index(key); i >= 0 {
		ret.Vals[i] = val
		return ret
	}
	ret.Keys = append(ret.Keys, key)
	ret.Vals = append(ret.Vals, val)
	return ret
}

// Dissoc returns a copy of h without key. ok is false when key is absent.
func (h HashMap) Dissoc(key Value) (ret HashMap, ok bool) {
	i := h.index(key)
	if i < 0 {
		return h, false
	}
	ret.Keys = make([]Value, 0, len(h.Keys)-1)
	ret.Vals = make([]Value, 0, len(h.Vals)-1)
	ret.Keys = append(append(ret.Keys, h.Keys[:i]...), h.Keys[i+1:]...)
	ret.Vals = append(append(ret.Vals, h.Vals[:i]...), h.Vals[i+1:]...)
	return ret, true
}
