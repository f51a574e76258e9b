package stylehooks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLDeclarations(t *testing.T) {
	content := `<!DOCTYPE html>
<html>
<head>
<style>
  .title { color: #0176d3; }
</style>
</head>
<body>
  <div class="card" style="margin: 16px; padding:0.5rem">x</div>
  <p STYLE='color:red'>y</p>
  <img src="a.png" style=width:10px>
</body>
</html>
`
	decls := ExtractHTMLDeclarations(content)
	require.Len(t, decls, 5)

	want := []struct{ prop, value string }{
		{"color", "#0176d3"},
		{"margin", "16px"},
		{"padding", "0.5rem"},
		{"color", "red"},
		{"width", "10px"},
	}
	for i, w := range want {
		assert.Equal(t, w.prop, decls[i].Property)
		assert.Equal(t, w.value, decls[i].Value)
		assert.Equal(t, w.value, content[decls[i].Offset:decls[i].Offset+len(w.value)],
			"offset of %s", w.prop)
	}
	assert.Equal(t, strings.Index(content, "#0176d3"), decls[0].Offset)
}

func TestExtractHTMLDeclarationsIgnoresScriptsAndText(t *testing.T) {
	content := `<p>color: red;</p><script>var style = "color: blue";</script>`
	assert.Empty(t, ExtractHTMLDeclarations(content))
}

func TestExtractHTMLDeclarationsAttributeBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "style text inside another attribute", content: `<div title="a style=color:red">x</div>`},
		{name: "single-quoted attribute", content: `<div data-x='style="color: red"'>x</div>`},
		{name: "real style after a decoy", content: `<div title="style=color:red" style="color: #0176d3">x</div>`, want: []string{"#0176d3"}},
		{name: "valueless attribute first", content: `<input disabled style = "width: 10px">`, want: []string{"10px"}},
		{name: "first style wins", content: `<p style="color: blue" style="color: red">x</p>`, want: []string{"blue"}},
		{name: "attribute named like style", content: `<p data-style="color: red">x</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := ExtractHTMLDeclarations(tt.content)
			var got []string
			for _, d := range decls {
				got = append(got, d.Value)
				assert.Equal(t, d.Value, tt.content[d.Offset:d.Offset+len(d.Value)])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHTMLFile(t *testing.T) {
	assert.True(t, isHTMLFile("a/b/index.html"))
	assert.True(t, isHTMLFile("PAGE.HTM"))
	assert.False(t, isHTMLFile("styles.css"))
}
