package cssvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitValue(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   UnitValue
		wantOK bool
	}{
		{name: "pixels", input: "16px", want: UnitValue{Number: 16, Unit: UnitPx}, wantOK: true},
		{name: "rem", input: "0.75rem", want: UnitValue{Number: 0.75, Unit: UnitRem}, wantOK: true},
		{name: "percentage", input: "50%", want: UnitValue{Number: 50, Unit: UnitPercent}, wantOK: true},
		{name: "unitless", input: "400", want: UnitValue{Number: 400}, wantOK: true},
		{name: "negative", input: "-4px", want: UnitValue{Number: -4, Unit: UnitPx}, wantOK: true},
		{name: "leading dot", input: ".5rem", want: UnitValue{Number: 0.5, Unit: UnitRem}, wantOK: true},
		{name: "uppercase unit", input: "8PX", want: UnitValue{Number: 8, Unit: UnitPx}, wantOK: true},
		{name: "unsupported unit", input: "12pt", wantOK: false},
		{name: "em is not a density unit", input: "1em", wantOK: false},
		{name: "multiple tokens", input: "4px 8px", wantOK: false},
		{name: "keyword", input: "bold", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseUnitValue(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDensityValueKeyword(t *testing.T) {
	v, ok := ParseDensityValue("Bold")
	require.True(t, ok)
	assert.True(t, v.IsKeyword())
	assert.Equal(t, "bold", v.Keyword)

	_, ok = ParseDensityValue("12pt")
	assert.False(t, ok)
}

func TestToAlternateUnitValue(t *testing.T) {
	rem, ok := ToAlternateUnitValue(16, UnitPx)
	require.True(t, ok)
	assert.Equal(t, UnitValue{Number: 1, Unit: UnitRem}, rem)

	rem, ok = ToAlternateUnitValue(13, UnitPx)
	require.True(t, ok)
	assert.Equal(t, 0.8125, rem.Number)

	rem, ok = ToAlternateUnitValue(10, UnitPx)
	require.True(t, ok)
	assert.Equal(t, 0.625, rem.Number)

	rem, ok = ToAlternateUnitValue(7, UnitPx)
	require.True(t, ok)
	assert.Equal(t, 0.4375, rem.Number)

	px, ok := ToAlternateUnitValue(0.875, UnitRem)
	require.True(t, ok)
	assert.Equal(t, UnitValue{Number: 14, Unit: UnitPx}, px)

	_, ok = ToAlternateUnitValue(50, UnitPercent)
	assert.False(t, ok)
	_, ok = ToAlternateUnitValue(400, UnitNone)
	assert.False(t, ok)
}

func TestUnitRoundTrip(t *testing.T) {
	for px := 1; px <= 200; px++ {
		rem, ok := ToAlternateUnitValue(float64(px), UnitPx)
		require.True(t, ok)
		back, ok := ToAlternateUnitValue(rem.Number, rem.Unit)
		require.True(t, ok)
		assert.Equal(t, float64(px), back.Number, "%dpx -> %v -> %v", px, rem, back)
	}
}

func TestUnitValueEqualAndZero(t *testing.T) {
	a, _ := ParseUnitValue("1rem")
	b, _ := ParseUnitValue("1.0rem")
	c, _ := ParseUnitValue("1px")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	zero, _ := ParseUnitValue("0px")
	assert.True(t, zero.IsZero())
	assert.False(t, a.IsZero())

	kw := UnitValue{Keyword: "bold"}
	assert.True(t, kw.Equal(UnitValue{Keyword: "BOLD"}))
	assert.False(t, kw.IsZero())
	assert.Equal(t, "1rem", a.String())
}
