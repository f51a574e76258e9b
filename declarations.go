package stylehooks

import (
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one property: value pair found in a stylesheet.
// Offset is the byte offset of Value in the scanned content; Value has
// surrounding whitespace and any !important flag removed.
type Declaration struct {
	Property string
	Value    string
	Offset   int
}

type lexToken struct {
	tt         css.TokenType
	text       string
	start, end int
}

// ExtractDeclarations returns every declaration in content in document order.
// Content may be a full stylesheet (nested rules and at-rules included) or a
// bare declaration list such as a style attribute.
func ExtractDeclarations(content string) []Declaration {
	lexer := css.NewLexer(parse.NewInputString(content))

	var decls []Declaration
	var stmt []lexToken
	offset, depth := 0, 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal; a trailing declaration has no ';'
			if d, ok := declarationFrom(content, stmt, offset); ok {
				decls = append(decls, d)
			}
			break
		}
		start := offset
		offset += len(data)

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		}

		if depth == 0 {
			switch tt {
			case css.LeftBraceToken:
				// Selector or at-rule prelude
				stmt = stmt[:0]
				continue
			case css.SemicolonToken, css.RightBraceToken:
				if d, ok := declarationFrom(content, stmt, start); ok {
					decls = append(decls, d)
				}
				stmt = stmt[:0]
				continue
			}
		}

		stmt = append(stmt, lexToken{tt: tt, text: string(data), start: start, end: offset})
	}

	return decls
}

// declarationFrom builds a declaration from the tokens of one statement
// ending at end. Statements that do not start with "ident :" are skipped.
func declarationFrom(content string, stmt []lexToken, end int) (Declaration, bool) {
	i := skipTrivia(stmt, 0)
	if i >= len(stmt) || (stmt[i].tt != css.IdentToken && stmt[i].tt != css.CustomPropertyNameToken) {
		return Declaration{}, false
	}
	prop := stmt[i].text

	i = skipTrivia(stmt, i+1)
	if i >= len(stmt) || stmt[i].tt != css.ColonToken {
		return Declaration{}, false
	}
	valueStart := stmt[i].end

	valueEnd := end
	if bang, ok := importantFlag(stmt[i+1:]); ok {
		valueEnd = bang
	}

	raw := content[valueStart:valueEnd]
	trimmed := strings.TrimLeft(raw, " \t\r\n\f")
	lead := len(raw) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, " \t\r\n\f")
	if trimmed == "" {
		return Declaration{}, false
	}

	return Declaration{
		Property: prop,
		Value:    trimmed,
		Offset:   valueStart + lead,
	}, true
}

// importantFlag returns the offset of a trailing "! important".
func importantFlag(value []lexToken) (int, bool) {
	j := len(value) - 1
	for j >= 0 && isTrivia(value[j].tt) {
		j--
	}
	if j < 0 || value[j].tt != css.IdentToken || !strings.EqualFold(value[j].text, "important") {
		return 0, false
	}
	j--
	for j >= 0 && isTrivia(value[j].tt) {
		j--
	}
	if j < 0 || value[j].tt != css.DelimToken || value[j].text != "!" {
		return 0, false
	}
	return value[j].start, true
}

func skipTrivia(toks []lexToken, i int) int {
	for i < len(toks) && isTrivia(toks[i].tt) {
		i++
	}
	return i
}

func isTrivia(tt css.TokenType) bool {
	return tt == css.WhitespaceToken || tt == css.CommentToken || tt == css.CDOToken || tt == css.CDCToken
}

// lineIndex converts byte offsets to 1-based line and column numbers.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

// Position returns the line and column of offset.
func (li *lineIndex) Position(offset int) (int, int) {
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return line + 1, offset - li.starts[line] + 1
}

// Line returns the text of a 1-based line without its line ending.
func (li *lineIndex) Line(n int) string {
	if n < 1 || n > len(li.starts) {
		return ""
	}
	start := li.starts[n-1]
	end := len(li.content)
	if n < len(li.starts) {
		end = li.starts[n] - 1
	}
	return strings.TrimSuffix(li.content[start:end], "\r")
}
