package hooks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMapping(t *testing.T) {
	m, err := LoadMapping(filepath.Join("testdata", "metadata.json"))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"#0176d3", "#ffffff", "1rem"}, m.Values())

	entries, ok := m.Get("#0176d3")
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{
		Name:       "--slds-g-color-accent-1",
		Properties: []string{"color", "fill"},
		Group:      "theme",
	}, entries[0])

	_, ok = m.Get("#000000")
	assert.False(t, ok)
}

func TestParseMappingKeepsDocumentOrder(t *testing.T) {
	data := []byte(`
z-last:
  - {name: --a, properties: ["*"]}
a-first:
  - {name: --b, properties: [color]}
m-middle:
  - {name: --c, properties: [margin]}
`)
	m, err := ParseMapping(data)
	require.NoError(t, err)

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"z-last", "a-first", "m-middle"}, keys)
}

func TestParseMappingErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty document", data: "", wantErr: ErrEmptyMapping},
		{name: "empty object", data: "{}", wantErr: ErrEmptyMapping},
		{name: "top level array", data: `[1, 2]`},
		{name: "entries not a list", data: `{"#fff": "nope"}`},
		{name: "hook without name", data: `{"#fff": [{"properties": ["color"]}]}`},
		{name: "invalid syntax", data: `{"#fff": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMapping([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadMappingMissingFile(t *testing.T) {
	_, err := LoadMapping(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMappingAddMergesEntries(t *testing.T) {
	m := NewMapping()
	m.Add("4px", Entry{Name: "--a", Properties: []string{"margin"}})
	m.Add("8px", Entry{Name: "--b", Properties: []string{"margin"}})
	m.Add("4px", Entry{Name: "--c", Properties: []string{"padding"}})

	assert.Equal(t, []string{"4px", "8px"}, m.Values())
	entries, _ := m.Get("4px")
	assert.Len(t, entries, 2)
}

func TestMappingWriteJSONRoundTrip(t *testing.T) {
	m := NewMapping()
	m.Add("#ffffff", Entry{Name: "--surface", Properties: []string{"background-color"}, Group: "surface"})
	m.Add("#000000", Entry{Name: "--ink", Properties: []string{"color"}})

	var buf bytes.Buffer
	require.NoError(t, m.WriteJSON(&buf))
	assert.NotContains(t, buf.String(), `"group": ""`)

	back, err := ParseMapping(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, m.Values(), back.Values())
	entries, _ := back.Get("#ffffff")
	assert.Equal(t, "surface", entries[0].Group)
}

func TestEntryAppliesTo(t *testing.T) {
	e := Entry{Name: "--x", Properties: []string{"color", "*"}}
	assert.True(t, e.AppliesTo("color"))
	assert.False(t, e.AppliesTo("fill"))
	assert.True(t, e.AppliesToAny("fill"))
}
