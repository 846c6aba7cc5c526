package world

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueType is the type of a property value. The set of types is closed:
// properties hold strings, numbers, or booleans, and nothing else.
type ValueType int

const (
	Str ValueType = iota
	Num
	Bool
)

func (t ValueType) String() string {
	switch t {
	case Str:
		return "str"
	case Num:
		return "num"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Value is a property value tagged with its type. The zero value is the
// empty string.
type Value struct {
	v string
	t ValueType
}

// NewStr returns a Value of Str type whose value is the given string.
func NewStr(s string) Value {
	return Value{v: s, t: Str}
}

// NewNum returns a Value of Num type whose value is the given int.
func NewNum(n int) Value {
	return Value{v: strconv.Itoa(n), t: Num}
}

// NewBool returns a Value of Bool type whose value is the given bool.
func NewBool(b bool) Value {
	return Value{v: strconv.FormatBool(b), t: Bool}
}

// FromNative converts a plain Go scalar, such as one produced by decoding
// JSON or TOML, into a Value. Supported inputs are bool, string, int, int64,
// and integral float64; anything else returns a non-nil error.
func FromNative(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case bool:
		return NewBool(v), nil
	case string:
		return NewStr(v), nil
	case int:
		return NewNum(v), nil
	case int64:
		return NewNum(int(v)), nil
	case float64:
		if v != float64(int(v)) {
			return Value{}, fmt.Errorf("non-integer number %v is not a valid property value", v)
		}
		return NewNum(int(v)), nil
	default:
		return Value{}, fmt.Errorf("%T is not a valid property value type; must be bool, number, or string", raw)
	}
}

// Type returns the type of the Value.
func (v Value) Type() ValueType {
	return v.t
}

// Bool returns the current value of v as a bool. If it is not already a Bool
// type, it is cast to one: non-zero numbers are true, and a string is true
// unless it is empty or spells "false" in any casing.
func (v Value) Bool() bool {
	switch v.t {
	case Bool:
		b, err := strconv.ParseBool(v.v)
		if err != nil {
			// should never happen
			panic(fmt.Sprintf("wrong type: %q is not bool-able", v.v))
		}
		return b
	case Num:
		return v.Num() != 0
	default:
		return !(strings.EqualFold(v.v, "false") || v.v == "")
	}
}

// Num returns the current value of v as an int. If it is not already a Num
// type, it is cast to one: true is 1, false is 0, and a string is its parsed
// integer value, or 1 if non-empty and unparsable, or 0 if empty.
func (v Value) Num() int {
	switch v.t {
	case Bool:
		if v.Bool() {
			return 1
		}
		return 0
	default:
		n, err := strconv.Atoi(v.v)
		if err != nil {
			if v.t == Num {
				// should never happen
				panic(fmt.Sprintf("wrong type: %q is not int-able", v.v))
			}
			if v.v == "" {
				return 0
			}
			return 1
		}
		return n
	}
}

// Str returns the current value of v as a string. Bools render as "true" or
// "false" and nums as their decimal representation.
func (v Value) Str() string {
	return v.v
}

// String returns a human-readable rendering of the value for debugging
// output. Str values are quoted so their type remains distinguishable.
func (v Value) String() string {
	if v.t == Str {
		return fmt.Sprintf("%q", v.v)
	}
	return v.v
}

// MarshalJSON encodes the value as the native JSON scalar of its type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.t {
	case Bool:
		return json.Marshal(v.Bool())
	case Num:
		return json.Marshal(v.Num())
	default:
		return json.Marshal(v.v)
	}
}
