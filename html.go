package stylehooks

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ExtractHTMLDeclarations returns the declarations of every <style> element
// and style attribute in an HTML document. Offsets are relative to content.
func ExtractHTMLDeclarations(content string) []Declaration {
	z := html.NewTokenizer(strings.NewReader(content))

	var decls []Declaration
	offset := 0
	inStyle := false

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a read error; either way the document is done
			break
		}
		raw := z.Raw()
		start := offset
		offset += len(raw)

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) == "style" && tt == html.StartTagToken {
				inStyle = true
			}
			if hasAttr {
				decls = append(decls, styleAttributeDeclarations(raw, start)...)
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "style" {
				inStyle = false
			}
		case html.TextToken:
			if inStyle {
				decls = append(decls, shiftDeclarations(ExtractDeclarations(string(raw)), start)...)
			}
		}
	}

	return decls
}

// styleAttributeDeclarations scans the raw bytes of one start tag.
func styleAttributeDeclarations(raw []byte, tagOffset int) []Declaration {
	if !bytes.Contains(bytes.ToLower(raw), []byte("style")) {
		return nil
	}
	s, e, ok := styleAttributeValue(raw)
	if !ok {
		return nil
	}
	return shiftDeclarations(ExtractDeclarations(string(raw[s:e])), tagOffset+s)
}

// styleAttributeValue walks the attributes of a raw start tag in order and
// returns the byte range of the first style value. Quoted values are
// skipped whole, so "style=" inside another attribute never matches.
func styleAttributeValue(raw []byte) (int, int, bool) {
	n := len(raw)
	i := 1
	for i < n && !isHTMLSpace(raw[i]) && raw[i] != '>' && raw[i] != '/' {
		i++
	}

	for i < n {
		for i < n && (isHTMLSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= n || raw[i] == '>' {
			break
		}

		nameStart := i
		for i < n && !isHTMLSpace(raw[i]) && raw[i] != '=' && raw[i] != '>' && raw[i] != '/' {
			i++
		}
		if i == nameStart {
			i++
			continue
		}
		name := raw[nameStart:i]

		for i < n && isHTMLSpace(raw[i]) {
			i++
		}
		if i >= n || raw[i] != '=' {
			continue
		}
		i++
		for i < n && isHTMLSpace(raw[i]) {
			i++
		}

		var start, end int
		if i < n && (raw[i] == '"' || raw[i] == '\'') {
			quote := raw[i]
			i++
			start = i
			for i < n && raw[i] != quote {
				i++
			}
			end = i
			if i < n {
				i++
			}
		} else {
			start = i
			for i < n && !isHTMLSpace(raw[i]) && raw[i] != '>' {
				i++
			}
			end = i
		}

		if bytes.EqualFold(name, []byte("style")) {
			return start, end, true
		}
	}
	return 0, 0, false
}

func isHTMLSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func shiftDeclarations(decls []Declaration, by int) []Declaration {
	for i := range decls {
		decls[i].Offset += by
	}
	return decls
}

// isHTMLFile reports whether path is scanned as HTML rather than CSS.
func isHTMLFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
