package main

import (
	"strconv"
	"strings"
)

func Print(val Value) string {
	switch t := val.(type) {
	case Error:
		return "Error: " + string(t)
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Decimal:
		return strconv.FormatFloat(float64(t), 'g', 10, 64)
	case Symbol:
		return string(t)
	case Keyword:
		return ":" + string(t)
	case Str:
		return `"` + escapeString(string(t)) + `"`
	case SExpr:
		return printSlice("(", t, ")")
	case QExpr:
		return printSlice("'(", t, ")")
	case Builtin:
		return "<builtin>"
	case Function:
		return "(fn " + Print(t.Params) + " " + Print(t.Body) + ")"
	case HashMap:
		arr := make([]string, t.Len())
		for i := range t.Keys {
			arr[i] = Print(t.Keys[i]) + ": " + Print(t.Vals[i])
		}
		return "{" + strings.Join(arr, " ") + "}"
	case nil:
		return "nil"
	default:
		return "<unknown>"
	}
}

func printSlice(open string, vals []Value, close string) string {
	arr := make([]string, len(vals))
	for i, v := range vals {
		arr[i] = Print(v)
	}
	return open + strings.Join(arr, " ") + close
}

var escapes = map[rune]rune{
	'\a': 'a',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	0:    '0',
}

func escapeString(s string) string {
	var sb strings.Builder
	for _, ch := range s {
		if esc, ok := escapes[ch]; ok {
			sb.WriteRune('\\')
			sb.WriteRune(esc)
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}
