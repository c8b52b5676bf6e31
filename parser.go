package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

// Node is one element of a parse tree. Tag names the grammar rules that
// produced it (e.g. "expr|number|regex"), Text holds the matched source for
// leaves, and Children holds sub-nodes including delimiters and comments.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// ParseError reports where parsing failed. Incomplete is set when the input
// ended inside an open list or string.
type ParseError struct {
	Name       string
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err was caused by input ending too early.
func IsIncomplete(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Incomplete
}

var (
	decimalPattern = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
	numberPattern  = regexp.MustCompile(`^-?[0-9]+$`)
	symbolPattern  = regexp.MustCompile(`^[a-zA-Z0-9_+^\-*/\\=<>!&%?]+$`)
)

var macros map[rune]func(p *parser) (*Node, error)

func init() {
	macros = map[rune]func(p *parser) (*Node, error){
		'"':  stringReader,
		';':  commentReader,
		'(':  sexprReader,
		'\'': qexprReader,
		')':  unmatchedDelimiterReader,
		'{':  hashmapReader,
		'}':  unmatchedDelimiterReader,
		':':  keywordReader,
	}
}

type parser struct {
	name string
	in   *bufio.Reader

	line, col int
	lastCol   int
}

// Parse reads a whole program from src.
func Parse(name, src string) (*Node, error) {
	return ParseReader(name, strings.NewReader(src))
}

// ParseReader reads a whole program from r. The root node is tagged ">" and
// its first and last children are the start and end anchors.
func ParseReader(name string, r io.Reader) (*Node, error) {
	p := &parser{name: name, in: bufio.NewReader(r), line: 1}
	root := &Node{Tag: ">", Children: []*Node{{Tag: "regex"}}}
	for {
		n, err := p.readExpr()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, n)
	}
	root.Children = append(root.Children, &Node{Tag: "regex"})
	return root, nil
}

func (p *parser) readRune() (rune, error) {
	ch, _, err := p.in.ReadRune()
	if err != nil {
		return 0, err
	}
	p.lastCol = p.col
	if ch == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
	return ch, nil
}

func (p *parser) unreadRune(ch rune) {
	if err := p.in.UnreadRune(); err != nil {
		return
	}
	if ch == '\n' {
		p.line--
	}
	p.col = p.lastCol
}

func (p *parser) errorf(incomplete bool, format string, args ...any) error {
	return &ParseError{
		Name:       p.name,
		Line:       p.line,
		Col:        p.col,
		Msg:        fmt.Sprintf(format, args...),
		Incomplete: incomplete,
	}
}

// skipWhitespace returns the first non-space rune.
func (p *parser) skipWhitespace() (rune, error) {
	for {
		ch, err := p.readRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(ch) {
			return ch, nil
		}
	}
}

func (p *parser) readExpr() (*Node, error) {
	ch, err := p.skipWhitespace()
	if err != nil {
		return nil, err
	}

	macroFn, isMacro := macros[ch]
	if isMacro {
		return macroFn(p)
	}

	if isTokenChar(ch) {
		return p.readAtom(ch)
	}

	return nil, p.errorf(false, "unexpected character %q", ch)
}

func isSymbolChar(ch rune) bool {
	return ch < unicode.MaxASCII && symbolPattern.MatchString(string(ch))
}

func isTokenChar(ch rune) bool {
	return isSymbolChar(ch) || ch == '.'
}

func (p *parser) readToken(initch rune) string {
	var sb strings.Builder
	if initch != 0 {
		sb.WriteRune(initch)
	}

	for {
		ch, err := p.readRune()
		if err != nil {
			return sb.String()
		}
		if !isTokenChar(ch) {
			p.unreadRune(ch)
			return sb.String()
		}
		sb.WriteRune(ch)
	}
}

func (p *parser) readAtom(initch rune) (*Node, error) {
	token := p.readToken(initch)
	switch {
	case decimalPattern.MatchString(token):
		return &Node{Tag: "expr|decimal|regex", Text: token}, nil
	case numberPattern.MatchString(token):
		return &Node{Tag: "expr|number|regex", Text: token}, nil
	case symbolPattern.MatchString(token):
		return &Node{Tag: "expr|symbol|regex", Text: token}, nil
	}
	return nil, p.errorf(false, "invalid token: %s", token)
}

func keywordReader(p *parser) (*Node, error) {
	token := p.readToken(0)
	if token == "" || !symbolPattern.MatchString(token) {
		return nil, p.errorf(false, "invalid keyword: :%s", token)
	}
	return &Node{Tag: "expr|keyword|regex", Text: ":" + token}, nil
}

// stringReader keeps the raw literal, quotes and escapes included.
func stringReader(p *parser) (*Node, error) {
	var sb strings.Builder
	sb.WriteRune('"')

	for {
		ch, err := p.readRune()
		if err != nil {
			return nil, p.errorf(true, "unterminated string")
		}
		sb.WriteRune(ch)
		if ch == '"' {
			break
		}
		if ch == '\\' {
			ch, err = p.readRune()
			if err != nil {
				return nil, p.errorf(true, "unterminated string")
			}
			sb.WriteRune(ch)
		}
	}

	return &Node{Tag: "expr|string|regex", Text: sb.String()}, nil
}

func commentReader(p *parser) (*Node, error) {
	var sb strings.Builder
	sb.WriteRune(';')
	for {
		ch, err := p.readRune()
		if err != nil {
			break
		}
		if ch == '\n' || ch == '\r' {
			p.unreadRune(ch)
			break
		}
		sb.WriteRune(ch)
	}
	return &Node{Tag: "expr|comment|regex", Text: sb.String()}, nil
}

func sexprReader(p *parser) (*Node, error) {
	return p.readDelimitedList("sexpr", "(", ')')
}

func qexprReader(p *parser) (*Node, error) {
	ch, err := p.readRune()
	if err != nil || ch != '(' {
		return nil, p.errorf(err != nil, "expected '(' after quote")
	}
	return p.readDelimitedList("qexpr", "'(", ')')
}

func hashmapReader(p *parser) (*Node, error) {
	n, err := p.readDelimitedList("hashmap", "{", '}')
	if err != nil {
		return nil, err
	}
	forms := 0
	for _, c := range n.Children {
		if strings.HasPrefix(c.Tag, "expr|") && !strings.Contains(c.Tag, "comment") {
			forms++
		}
	}
	if forms%2 != 0 {
		return nil, p.errorf(false, "hashmap literal must contain an even number of forms")
	}
	return n, nil
}

func unmatchedDelimiterReader(p *parser) (*Node, error) {
	return nil, p.errorf(false, "unmatched delimiter")
}

func (p *parser) readDelimitedList(kind, open string, delim rune) (*Node, error) {
	n := &Node{
		Tag:      "expr|" + kind + "|>",
		Children: []*Node{{Tag: "char", Text: open}},
	}

	for {
		ch, err := p.skipWhitespace()
		if err != nil {
			return nil, p.errorf(true, "unexpected end of input, expected '%c'", delim)
		}

		if ch == delim {
			n.Children = append(n.Children, &Node{Tag: "char", Text: string(delim)})
			return n, nil
		}

		p.unreadRune(ch)
		child, err := p.readExpr()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
}
