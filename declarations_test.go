package stylehooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDeclarations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Declaration
	}{
		{
			name:    "single rule",
			content: ".a { color: red; }",
			want:    []Declaration{{Property: "color", Value: "red", Offset: 12}},
		},
		{
			name:    "last declaration without semicolon",
			content: ".a{margin:0 4px}",
			want:    []Declaration{{Property: "margin", Value: "0 4px", Offset: 10}},
		},
		{
			name:    "important is stripped",
			content: ".a { color: #fff !important; }",
			want:    []Declaration{{Property: "color", Value: "#fff", Offset: 12}},
		},
		{
			name:    "custom property is kept",
			content: ":root { --brand: #0176d3; }",
			want:    []Declaration{{Property: "--brand", Value: "#0176d3", Offset: 17}},
		},
		{
			name:    "bare declaration list",
			content: "color: red; padding: 1rem",
			want: []Declaration{
				{Property: "color", Value: "red", Offset: 7},
				{Property: "padding", Value: "1rem", Offset: 21},
			},
		},
		{
			name:    "semicolon inside function does not split",
			content: `.a { background: url("a;b.png") #fff; }`,
			want:    []Declaration{{Property: "background", Value: `url("a;b.png") #fff`, Offset: 17}},
		},
		{
			name:    "at-rules and nested rules",
			content: "@import url(x.css);\n@media (min-width: 10px) { .a { color: red } }",
			want:    []Declaration{{Property: "color", Value: "red", Offset: 59}},
		},
		{
			name:    "selector with pseudo class is not a declaration",
			content: "a:hover { color: blue; }",
			want:    []Declaration{{Property: "color", Value: "blue", Offset: 17}},
		},
		{
			name:    "comments are skipped",
			content: ".a { /* note */ color: red; }",
			want:    []Declaration{{Property: "color", Value: "red", Offset: 23}},
		},
		{
			name:    "empty value is skipped",
			content: ".a { color: ; }",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDeclarations(tt.content)
			require.Equal(t, tt.want, got)
			for _, d := range got {
				assert.Equal(t, d.Value, tt.content[d.Offset:d.Offset+len(d.Value)])
			}
		})
	}
}

func TestLineIndex(t *testing.T) {
	content := "a\n\tbc\r\n\nd"
	li := newLineIndex(content)

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 2, 1},
		{4, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
		{9, 4, 2},
	}
	for _, tt := range tests {
		line, col := li.Position(tt.offset)
		assert.Equal(t, tt.wantLine, line, "offset %d", tt.offset)
		assert.Equal(t, tt.wantCol, col, "offset %d", tt.offset)
	}

	assert.Equal(t, "a", li.Line(1))
	assert.Equal(t, "\tbc", li.Line(2))
	assert.Equal(t, "", li.Line(3))
	assert.Equal(t, "d", li.Line(4))
	assert.Equal(t, "", li.Line(5))
}
