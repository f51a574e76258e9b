package match

import (
	"github.com/yacobolo/stylehooks/internal/hooks"
)

func hook(name, group string, props ...string) hooks.Entry {
	return hooks.Entry{Name: name, Properties: props, Group: group}
}

type mappingRow struct {
	value   string
	entries []hooks.Entry
}

func buildMapping(rows ...mappingRow) *hooks.Mapping {
	m := hooks.NewMapping()
	for _, r := range rows {
		m.Add(r.value, r.entries...)
	}
	return m
}

func row(value string, entries ...hooks.Entry) mappingRow {
	return mappingRow{value: value, entries: entries}
}
