package main

import "math"

// tolerance for Decimal comparison and truthiness
const epsilon = 0.00001

func Equals(v1, v2 Value) bool {
	switch a := v1.(type) {
	case Integer:
		b, ok := v2.(Integer)
		return ok && a == b
	case Decimal:
		b, ok := v2.(Decimal)
		return ok && math.Abs(float64(a)-float64(b)) <= epsilon
	case Error:
		b, ok := v2.(Error)
		return ok && a == b
	case Symbol:
		b, ok := v2.(Symbol)
		return ok && a == b
	case Keyword:
		b, ok := v2.(Keyword)
		return ok && a == b
	case Str:
		b, ok := v2.(Str)
		return ok && a == b
	case Builtin:
		b, ok := v2.(Builtin)
		return ok && a.Name == b.Name
	case Function:
		// the closure environment is not part of a function's identity
		b, ok := v2.(Function)
		return ok && sliceEquals(a.Params, b.Params) && sliceEquals(a.Body, b.Body)
	case SExpr:
		b, ok := v2.(SExpr)
		return ok && sliceEquals(a, b)
	case QExpr:
		b, ok := v2.(QExpr)
		return ok && sliceEquals(a, b)
	case HashMap:
		b, ok := v2.(HashMap)
		return ok && mapEquals(a, b)
	}
	return false
}

func sliceEquals(slice1, slice2 []Value) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := 0; i < len(slice1); i++ {
		if !Equals(slice1[i], slice2[i]) {
			return false
		}
	}
	return true
}

// hashmaps are ordered, so pairs are compared position by position
func mapEquals(map1, map2 HashMap) bool {
	return sliceEquals(map1.Keys, map2.Keys) && sliceEquals(map1.Vals, map2.Vals)
}

func IsTruthy(val Value) bool {
	switch t := val.(type) {
	case Integer:
		return t == 1
	case Decimal:
		return math.Abs(float64(t)) > epsilon
	case Error, Symbol, Builtin, Function:
		return true
	case SExpr:
		return len(t) > 0
	case QExpr:
		return len(t) > 0
	case Str:
		return len(t) > 0
	case Keyword:
		return len(t) > 0
	case HashMap:
		return t.Len() > 0
	}
	return false
}
