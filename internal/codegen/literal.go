package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/latchflow/latchc/internal/ir"
)

// EncodeLiteral renders a Value as a Python literal. It is total over
// the sealed Value set: null maps to None, booleans to True/False,
// numbers to numeric literals, strings to escaped double-quoted
// literals, arrays to lists, objects to dicts with keys in sorted order
// so output is deterministic.
//
// A value outside the sealed set is a defect in the caller; the encoder
// fails loudly rather than silently stringifying it.
func EncodeLiteral(v ir.Value) (string, error) {
	switch val := v.(type) {
	case nil, ir.Null:
		return "None", nil
	case ir.Bool:
		if val {
			return "True", nil
		}
		return "False", nil
	case ir.Int:
		return strconv.FormatInt(int64(val), 10), nil
	case ir.Float:
		return encodeFloat(float64(val))
	case ir.String:
		return encodeString(string(val)), nil
	case ir.Array:
		parts := make([]string, len(val))
		for i, elem := range val {
			encoded, err := EncodeLiteral(elem)
			if err != nil {
				return "", fmt.Errorf("array[%d]: %w", i, err)
			}
			parts[i] = encoded
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case ir.Object:
		keys := val.SortedKeys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			encoded, err := EncodeLiteral(val[k])
			if err != nil {
				return "", fmt.Errorf("object[%q]: %w", k, err)
			}
			parts[i] = encodeString(k) + ": " + encoded
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	default:
		return "", fmt.Errorf("value is not encodable as a literal: %T", v)
	}
}

func encodeFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("non-finite float is not encodable as a literal: %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Bare "1e+06" is a valid Python float literal, but "5" formatted from
	// a float must keep a marker so Python sees a float, not an int.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// encodeString produces a double-quoted Python string literal. Quotes,
// backslashes, and control characters are escaped; everything else is
// carried through as UTF-8, which Python 3 source accepts.
func encodeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(fmt.Sprintf(`\x%02x`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
