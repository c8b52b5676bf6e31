package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedNumber is returned by Read for numeric literals that do not fit.
var ErrMalformedNumber = errors.New("invalid number")

var delimiters = map[string]bool{
	"(":  true,
	"'(": true,
	")":  true,
	"{":  true,
	"}":  true,
}

// Read converts a parse node into a Value without evaluating anything. The
// program root reads as an SExpr holding every top-level form.
func Read(node *Node) (Value, error) {
	switch {
	case strings.Contains(node.Tag, "decimal"):
		return readDecimal(node.Text)
	case strings.Contains(node.Tag, "number"):
		return readNumber(node.Text)
	case strings.Contains(node.Tag, "string"):
		return readString(node.Text)
	case strings.Contains(node.Tag, "keyword"):
		return Keyword(strings.TrimPrefix(node.Text, ":")), nil
	case strings.Contains(node.Tag, "symbol"):
		return Symbol(node.Text), nil
	}

	var items []Value
	for _, child := range node.Children {
		if skipChild(child) {
			continue
		}
		item, err := Read(child)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	switch {
	case node.Tag == ">", strings.Contains(node.Tag, "sexpr"):
		return SExpr(items), nil
	case strings.Contains(node.Tag, "qexpr"):
		return QExpr(items), nil
	case strings.Contains(node.Tag, "hashmap"):
		return readHashMap(items)
	}
	return nil, fmt.Errorf("unknown parse node tag %q", node.Tag)
}

func skipChild(n *Node) bool {
	return strings.Contains(n.Tag, "comment") || n.Tag == "regex" || delimiters[n.Text]
}

func readHashMap(items []Value) (Value, error) {
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("hashmap literal must contain an even number of forms")
	}
	// repeated keys collapse, later pairs win
	hm := HashMap{Keys: []Value{}, Vals: []Value{}}
	for i := 0; i < len(items); i += 2 {
		hm = hm.Assoc(items[i], items[i+1])
	}
	return hm, nil
}

func readNumber(s string) (Value, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedNumber, s)
	}
	return Integer(i), nil
}

func readDecimal(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedNumber, s)
	}
	return Decimal(f), nil
}

func readString(raw string) (Value, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return nil, fmt.Errorf("malformed string literal: %s", raw)
	}
	return Str(unescapeString(raw[1 : len(raw)-1])), nil
}

// unescapeString decodes the escapes written by escapeString. Unknown escapes
// are kept verbatim.
func unescapeString(s string) string {
	var sb strings.Builder
	escaped := false
	for _, ch := range s {
		if !escaped {
			if ch == '\\' {
				escaped = true
			} else {
				sb.WriteRune(ch)
			}
			continue
		}
		escaped = false
		switch ch {
		case 'a':
			sb.WriteRune('\a')
		case 'b':
			sb.WriteRune('\b')
		case 'f':
			sb.WriteRune('\f')
		case 'n':
			sb.WriteRune('\n')
		case 'r':
			sb.WriteRune('\r')
		case 't':
			sb.WriteRune('\t')
		case 'v':
			sb.WriteRune('\v')
		case '0':
			sb.WriteRune(0)
		case '\\', '\'', '"':
			sb.WriteRune(ch)
		default:
			sb.WriteRune('\\')
			sb.WriteRune(ch)
		}
	}
	if escaped {
		sb.WriteRune('\\')
	}
	return sb.String()
}
