package codegen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latchflow/latchc/internal/ir"
)

func TestEncodeLiteralPrimitives(t *testing.T) {
	cases := []struct {
		name string
		in   ir.Value
		want string
	}{
		{"null", ir.Null{}, "None"},
		{"true", ir.Bool(true), "True"},
		{"false", ir.Bool(false), "False"},
		{"int", ir.Int(42), "42"},
		{"negative int", ir.Int(-1), "-1"},
		{"float", ir.Float(2.5), "2.5"},
		{"whole float keeps marker", ir.Float(5), "5.0"},
		{"exponent float", ir.Float(1e21), "1e+21"},
		{"string", ir.String("hello"), `"hello"`},
		{"empty string", ir.String(""), `""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeLiteral(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeLiteralStringEscapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"control char", "a\x01b", `"a\x01b"`},
		{"delete char", "a\x7fb", `"a\x7fb"`},
		{"unicode passthrough", "héllo wörld", `"héllo wörld"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeLiteral(ir.String(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeLiteralArray(t *testing.T) {
	got, err := EncodeLiteral(ir.Array{ir.Int(1), ir.String("two"), ir.Bool(true), ir.Null{}})
	require.NoError(t, err)
	assert.Equal(t, `[1, "two", True, None]`, got)
}

func TestEncodeLiteralObjectSortedKeys(t *testing.T) {
	got, err := EncodeLiteral(ir.Object{
		"url":    ir.String("https://example.com"),
		"method": ir.String("GET"),
		"count":  ir.Int(3),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"count": 3, "method": "GET", "url": "https://example.com"}`, got)
}

func TestEncodeLiteralNested(t *testing.T) {
	got, err := EncodeLiteral(ir.Object{
		"headers": ir.Object{"Accept": ir.String("application/json")},
		"body":    ir.Array{ir.Object{"id": ir.Int(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"body": [{"id": 1}], "headers": {"Accept": "application/json"}}`, got)
}

func TestEncodeLiteralRejectsNonFinite(t *testing.T) {
	_, err := EncodeLiteral(ir.Float(math.NaN()))
	require.Error(t, err)

	_, err = EncodeLiteral(ir.Array{ir.Float(math.Inf(1))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array[0]")
}

func TestEncodeLiteralNilValue(t *testing.T) {
	got, err := EncodeLiteral(nil)
	require.NoError(t, err)
	assert.Equal(t, "None", got)
}
