package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalPrimitives(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want string
	}{
		{"null", Null{}, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"float", Float(2.5), "2.5"},
		{"string", String("hello"), `"hello"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MarshalCanonical(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestMarshalCanonicalSortsObjectKeys(t *testing.T) {
	obj := Object{
		"zebra": Int(1),
		"apple": Int(2),
		"mango": Int(3),
	}

	got, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"apple":2,"mango":3,"zebra":1}`, string(got))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	got, err := MarshalCanonical(String("<a href=\"x\">&</a>"))
	require.NoError(t, err)
	assert.Equal(t, `"<a href=\"x\">&</a>"`, string(got))
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// "e" + combining acute accent (NFD) normalizes to the precomposed
	// U+00E9 (NFC), so both spellings canonicalize identically.
	decomposed, err := MarshalCanonical(String("e\u0301"))
	require.NoError(t, err)
	precomposed, err := MarshalCanonical(String("\u00e9"))
	require.NoError(t, err)

	assert.Equal(t, string(precomposed), string(decomposed))
	assert.Equal(t, "\"\u00e9\"", string(decomposed))
}

func TestMarshalCanonicalRejectsNonFiniteFloats(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := MarshalCanonical(Float(f))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-finite")
	}
}

func TestMarshalCanonicalNested(t *testing.T) {
	v := Object{
		"b": Array{Int(1), Null{}, Object{"x": Bool(false)}},
		"a": Float(0.5),
	}

	got, err := MarshalCanonical(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":0.5,"b":[1,null,{"x":false}]}`, string(got))
}

func TestMarshalCanonicalDeterministic(t *testing.T) {
	obj := Object{"k1": String("v1"), "k2": Int(2), "k3": Array{Bool(true)}}

	first, err := MarshalCanonical(obj)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := MarshalCanonical(obj)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}
