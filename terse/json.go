package terse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON and Value. Object key order is preserved in
// both directions, since Map entries are ordered. Input may be JSONC
// (comments and trailing commas are stripped before parsing).

// FromJSON converts JSON or JSONC bytes to a Value.
func FromJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	v, err := fromJSONToken(dec)
	if err != nil {
		return nil, fmt.Errorf("terse: JSON parse error: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("terse: trailing data after JSON value")
	}
	return v, nil
}

func fromJSONToken(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil

	case bool:
		return Bool(t), nil

	case string:
		return Str(t), nil

	case json.Number:
		return numberValue(t)

	case json.Delim:
		switch t {
		case '[':
			out := List()
			for dec.More() {
				elem, err := fromJSONToken(dec)
				if err != nil {
					return nil, err
				}
				out.Append(elem)
			}
			if _, err := dec.Token(); err != nil { // closing ]
				return nil, err
			}
			return out, nil

		case '{':
			out := Map()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := fromJSONToken(dec)
				if err != nil {
					return nil, err
				}
				out.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing }
				return nil, err
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

// numberValue keeps integral numbers within the float64-safe range as
// ints, matching the wire grammar's dot-presence rule. NaN and
// infinities cannot appear in JSON so no check is needed here.
func numberValue(n json.Number) (*Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, err
	}
	if f == math.Trunc(f) && f >= -9007199254740991 && f <= 9007199254740991 && !strings.Contains(s, ".") {
		return Int(int64(f)), nil
	}
	return Float(f), nil
}

// ToJSON converts a Value to JSON text, preserving map entry order.
func ToJSON(v *Value) ([]byte, error) {
	var sb strings.Builder
	if err := writeJSON(&sb, v); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func writeJSON(sb *strings.Builder, v *Value) error {
	if v.IsNull() {
		sb.WriteString("null")
		return nil
	}
	switch v.typ {
	case TypeBool:
		sb.WriteString(strconv.FormatBool(v.boolVal))
	case TypeInt:
		sb.WriteString(strconv.FormatInt(v.intVal, 10))
	case TypeFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return fmt.Errorf("terse: non-finite float has no JSON form")
		}
		sb.WriteString(strconv.FormatFloat(v.floatVal, 'f', -1, 64))
	case TypeStr:
		b, err := json.Marshal(v.strVal)
		if err != nil {
			return err
		}
		sb.Write(b)
	case TypeList:
		sb.WriteString("[")
		for i, elem := range v.listVal {
			if i > 0 {
				sb.WriteString(",")
			}
			if err := writeJSON(sb, elem); err != nil {
				return err
			}
		}
		sb.WriteString("]")
	case TypeMap:
		sb.WriteString("{")
		for i, entry := range v.mapVal {
			if i > 0 {
				sb.WriteString(",")
			}
			b, err := json.Marshal(entry.Key)
			if err != nil {
				return err
			}
			sb.Write(b)
			sb.WriteString(":")
			if err := writeJSON(sb, entry.Value); err != nil {
				return err
			}
		}
		sb.WriteString("}")
	}
	return nil
}
