package terse

import (
	"math"
	"strconv"
	"strings"
)

// MaxDepth is the nesting bound enforced symmetrically by Encode and
// Decode. The root value sits at depth 0.
const MaxDepth = 100

// Encode converts a Value to compressed text: an optional K{…}K header
// listing non-seeded key mappings, followed by the body.
func Encode(v *Value) (string, error) {
	e := &encoder{dict: newKeyDict()}
	if err := e.emit(v, 0); err != nil {
		return "", err
	}
	body := e.sb.String()
	header := e.header()
	if header == "" {
		return body, nil
	}
	return header + body, nil
}

type encoder struct {
	sb   strings.Builder
	dict *keyDict
}

func (e *encoder) emit(v *Value, depth int) error {
	if depth > MaxDepth {
		return codecErr(KindDepthExceeded, e.sb.Len(), "nesting deeper than %d levels", MaxDepth)
	}
	if v == nil || v.IsNull() {
		e.sb.WriteString("n")
		return nil
	}

	switch v.typ {
	case TypeBool:
		if v.boolVal {
			e.sb.WriteString("t")
		} else {
			e.sb.WriteString("f")
		}

	case TypeInt:
		e.sb.WriteString(strconv.FormatInt(v.intVal, 10))

	case TypeFloat:
		e.sb.WriteString(formatFloat(v.floatVal))

	case TypeStr:
		e.sb.WriteString("\"")
		e.sb.WriteString(escapeString(v.strVal))
		e.sb.WriteString("\"")

	case TypeList:
		e.sb.WriteString("[")
		for i, elem := range v.listVal {
			if i > 0 {
				e.sb.WriteString(",")
			}
			if err := e.emit(elem, depth+1); err != nil {
				return err
			}
		}
		e.sb.WriteString("]")

	case TypeMap:
		e.sb.WriteString("{")
		for i, entry := range v.mapVal {
			if i > 0 {
				e.sb.WriteString(",")
			}
			e.sb.WriteString(e.dict.shorten(entry.Key))
			e.sb.WriteString(":")
			if err := e.emit(entry.Value, depth+1); err != nil {
				return err
			}
		}
		e.sb.WriteString("}")
	}
	return nil
}

// header serializes the dictionary entries allocated during the
// traversal. Seeded keys never appear; an empty header is elided.
func (e *encoder) header() string {
	if len(e.dict.allocated) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("K{")
	for i, long := range e.dict.allocated {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(e.dict.longToShort[long])
		sb.WriteString(":")
		sb.WriteString(escapeHeaderKey(long))
	}
	sb.WriteString("}K")
	return sb.String()
}

// formatFloat renders a float with at most 8 fractional digits,
// stripping trailing zeros and a trailing dot. Precision beyond 8
// fractional digits is lost by design. The wire grammar has no
// non-finite form, so NaN and infinities render as null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "n"
	}
	s := strconv.FormatFloat(f, 'f', 8, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString("\\\\")
		case '"':
			sb.WriteString("\\\"")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func escapeHeaderKey(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString("\\\\")
		case ':':
			sb.WriteString("\\:")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
