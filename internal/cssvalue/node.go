package cssvalue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrMalformed is returned by Parse for values that are not a well-formed
// sequence of CSS component values.
var ErrMalformed = errors.New("malformed css value")

// Span is a half-open byte range [Start, End) within the parsed value text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Shift returns s moved by offset bytes.
func (s Span) Shift(offset int) Span {
	return Span{Start: s.Start + offset, End: s.End + offset}
}

// Node is one component of a parsed value. The set of implementations is
// closed; switch on the concrete type.
type Node interface {
	Span() Span
	node()
}

// Dimension is a number with a unit, e.g. "12px" or "1.5rem".
type Dimension struct {
	Number string
	Unit   string
	Pos    Span
}

// Number is a unitless number, e.g. "0" or "400".
type Number struct {
	Text string
	Pos  Span
}

// Percentage is a number followed by "%".
type Percentage struct {
	Number string
	Pos    Span
}

// Hash is a "#..." token, usually a hex color.
type Hash struct {
	Text string
	Pos  Span
}

// Ident is an identifier or a custom property name.
type Ident struct {
	Text string
	Pos  Span
}

// String is a quoted string including its quotes.
type String struct {
	Text string
	Pos  Span
}

// URL is an unquoted or quoted url(...) token.
type URL struct {
	Text string
	Pos  Span
}

// Function is a function call. Pos covers the name through the closing
// parenthesis. Plain parenthesised groups have an empty Name.
type Function struct {
	Name string
	Args []Node
	Pos  Span
}

// Operator is a separator or any other single delimiter: ",", "/", "+", "!"...
type Operator struct {
	Text string
	Pos  Span
}

// Value is the root of a parsed value.
type Value struct {
	Source string
	Nodes  []Node
	Pos    Span
}

func (n *Dimension) Span() Span  { return n.Pos }
func (n *Number) Span() Span     { return n.Pos }
func (n *Percentage) Span() Span { return n.Pos }
func (n *Hash) Span() Span       { return n.Pos }
func (n *Ident) Span() Span      { return n.Pos }
func (n *String) Span() Span     { return n.Pos }
func (n *URL) Span() Span        { return n.Pos }
func (n *Function) Span() Span   { return n.Pos }
func (n *Operator) Span() Span   { return n.Pos }
func (n *Value) Span() Span      { return n.Pos }

func (*Dimension) node()  {}
func (*Number) node()     {}
func (*Percentage) node() {}
func (*Hash) node()       {}
func (*Ident) node()      {}
func (*String) node()     {}
func (*URL) node()        {}
func (*Function) node()   {}
func (*Operator) node()   {}
func (*Value) node()      {}

// Text returns the source text covered by n.
func (v *Value) Text(n Node) string {
	s := n.Span()
	return v.Source[s.Start:s.End]
}

type token struct {
	tt   css.TokenType
	data string
	pos  Span
}

// Parse builds the value tree for text. Whitespace and comments are dropped;
// every node keeps its byte span in text.
func Parse(text string) (*Value, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	nodes, err := p.parseList(false)
	if err != nil {
		return nil, err
	}
	return &Value{Source: text, Nodes: nodes, Pos: Span{Start: 0, End: len(text)}}, nil
}

func lex(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))
	var toks []token
	offset := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		pos := Span{Start: offset, End: offset + len(data)}
		offset = pos.End
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.BadStringToken, css.BadURLToken, css.SemicolonToken,
			css.LeftBraceToken, css.RightBraceToken, css.CDOToken, css.CDCToken:
			return nil, fmt.Errorf("%w: unexpected %s at %d", ErrMalformed, tt, pos.Start)
		case css.StringToken:
			// the lexer accepts a string cut short by EOF
			if len(data) < 2 || data[len(data)-1] != data[0] {
				return nil, fmt.Errorf("%w: unterminated string at %d", ErrMalformed, pos.Start)
			}
		}
		toks = append(toks, token{tt: tt, data: string(data), pos: pos})
	}
	if offset != len(text) {
		return nil, fmt.Errorf("%w: lexer stopped at %d of %d", ErrMalformed, offset, len(text))
	}
	return toks, nil
}

type parser struct {
	toks []token
	i    int
}

// parseList consumes nodes until EOF, or until the closing parenthesis when
// nested is true. The closing parenthesis is left for the caller.
func (p *parser) parseList(nested bool) ([]Node, error) {
	var nodes []Node
	for p.i < len(p.toks) {
		t := p.toks[p.i]
		if t.tt == css.RightParenthesisToken {
			if !nested {
				return nil, fmt.Errorf("%w: unbalanced ')' at %d", ErrMalformed, t.pos.Start)
			}
			return nodes, nil
		}
		p.i++
		switch t.tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			fn, err := p.parseFunction(t)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, fn)
		case css.DimensionToken:
			num, unit := splitNumeric(t.data)
			nodes = append(nodes, &Dimension{Number: num, Unit: strings.ToLower(unit), Pos: t.pos})
		case css.NumberToken:
			nodes = append(nodes, &Number{Text: t.data, Pos: t.pos})
		case css.PercentageToken:
			nodes = append(nodes, &Percentage{Number: strings.TrimSuffix(t.data, "%"), Pos: t.pos})
		case css.HashToken:
			nodes = append(nodes, &Hash{Text: t.data, Pos: t.pos})
		case css.IdentToken, css.CustomPropertyNameToken:
			nodes = append(nodes, &Ident{Text: t.data, Pos: t.pos})
		case css.StringToken:
			nodes = append(nodes, &String{Text: t.data, Pos: t.pos})
		case css.URLToken:
			nodes = append(nodes, &URL{Text: t.data, Pos: t.pos})
		default:
			nodes = append(nodes, &Operator{Text: t.data, Pos: t.pos})
		}
	}
	if nested {
		return nil, fmt.Errorf("%w: unterminated function", ErrMalformed)
	}
	return nodes, nil
}

func (p *parser) parseFunction(open token) (*Function, error) {
	name := ""
	if open.tt == css.FunctionToken {
		name = strings.ToLower(strings.TrimSuffix(open.data, "("))
	}
	args, err := p.parseList(true)
	if err != nil {
		return nil, err
	}
	closing := p.toks[p.i]
	p.i++
	return &Function{
		Name: name,
		Args: args,
		Pos:  Span{Start: open.pos.Start, End: closing.pos.End},
	}, nil
}

// splitNumeric splits a dimension token such as "-1.5e2px" into number and unit.
func splitNumeric(s string) (string, string) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i+1 < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
