package terse

import "fmt"

// Type represents terse value types.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeStr
	TypeList
	TypeMap
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "str"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value represents a terse value.
type Value struct {
	typ Type

	// Scalar values (only one valid based on typ)
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	// Container values
	listVal []*Value
	mapVal  []MapEntry
}

// MapEntry represents a key-value pair in a map. Entry order is the
// insertion order and is preserved through encode and decode.
type MapEntry struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{typ: TypeNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{typ: TypeBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{typ: TypeInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{typ: TypeFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{typ: TypeStr, strVal: v}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{typ: TypeList, listVal: values}
}

// Map creates a map value from key-value pairs.
func Map(entries ...MapEntry) *Value {
	return &Value{typ: TypeMap, mapVal: entries}
}

// Field creates a MapEntry for use in Map construction.
func Field(key string, value *Value) MapEntry {
	return MapEntry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value type.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.typ
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.typ == TypeNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("terse: nil value")
	}
	if v.typ != TypeBool {
		return false, fmt.Errorf("terse: expected bool, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("terse: nil value")
	}
	if v.typ != TypeInt {
		return 0, fmt.Errorf("terse: expected int, got %s", v.typ)
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("terse: nil value")
	}
	if v.typ != TypeFloat {
		return 0, fmt.Errorf("terse: expected float, got %s", v.typ)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("terse: nil value")
	}
	if v.typ != TypeStr {
		return "", fmt.Errorf("terse: expected str, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("terse: nil value")
	}
	if v.typ != TypeList {
		return nil, fmt.Errorf("terse: expected list, got %s", v.typ)
	}
	return v.listVal, nil
}

// AsMap returns the map entries.
func (v *Value) AsMap() ([]MapEntry, error) {
	if v == nil {
		return nil, fmt.Errorf("terse: nil value")
	}
	if v.typ != TypeMap {
		return nil, fmt.Errorf("terse: expected map, got %s", v.typ)
	}
	return v.mapVal, nil
}

// Len returns the length of a list or map.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeList:
		return len(v.listVal)
	case TypeMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Get returns a field value by key from a map, or nil.
func (v *Value) Get(key string) *Value {
	if v == nil || v.typ != TypeMap {
		return nil
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of a list.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.typ != TypeList {
		return nil, fmt.Errorf("terse: not a list")
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("terse: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a field value on a map. An existing key keeps its position
// and has its value replaced; a new key is appended.
func (v *Value) Set(key string, val *Value) {
	if v.typ != TypeMap {
		panic("terse: cannot set on non-map")
	}
	for i := range v.mapVal {
		if v.mapVal[i].Key == key {
			v.mapVal[i].Value = val
			return
		}
	}
	v.mapVal = append(v.mapVal, MapEntry{Key: key, Value: val})
}

// Append adds a value to a list.
func (v *Value) Append(val *Value) {
	if v.typ != TypeList {
		panic("terse: cannot append to non-list")
	}
	v.listVal = append(v.listVal, val)
}

// ============================================================
// Comparison
// ============================================================

// Equal reports deep structural equality. Map entries compare in order,
// so two maps with the same pairs in different positions are not equal.
func (v *Value) Equal(o *Value) bool {
	if v.IsNull() || o.IsNull() {
		return v.IsNull() && o.IsNull()
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeBool:
		return v.boolVal == o.boolVal
	case TypeInt:
		return v.intVal == o.intVal
	case TypeFloat:
		return v.floatVal == o.floatVal
	case TypeStr:
		return v.strVal == o.strVal
	case TypeList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case TypeMap:
		if len(v.mapVal) != len(o.mapVal) {
			return false
		}
		for i := range v.mapVal {
			if v.mapVal[i].Key != o.mapVal[i].Key {
				return false
			}
			if !v.mapVal[i].Value.Equal(o.mapVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Number returns a numeric value as float64 if int or float.
func (v *Value) Number() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.typ {
	case TypeInt:
		return float64(v.intVal), true
	case TypeFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}
