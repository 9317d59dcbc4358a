package payload

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type kind int

const (
	kindAbsent kind = iota
	kindString
	kindInt
	kindBool
	kindCart
)

// Value is a tagged union of the field value types the gateway protocol
// knows about: strings, integers, booleans and carts. Rendering into the
// canonical message is centralized here so that signing and verification can
// never disagree on the textual form of a value.
type Value struct {
	kind kind
	str  string
	num  int64
	b    bool
	cart Cart
}

// String wraps a string value.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Int wraps an integer value.
func Int(n int64) Value {
	return Value{kind: kindInt, num: n}
}

// Bool wraps a boolean value. Booleans render into the canonical message as
// the lowercase literals "true" and "false".
func Bool(b bool) Value {
	return Value{kind: kindBool, b: b}
}

// CartValue wraps a cart. Cart values are flattened into the canonical
// message as a pipe-joined sequence of all item values.
func CartValue(c Cart) Value {
	return Value{kind: kindCart, cart: c}
}

// Absent is the empty sentinel. Absent values are dropped when a payload is
// assembled with New.
func Absent() Value {
	return Value{}
}

// FromJSON converts a decoded JSON value into a Value. Only the scalar types
// that can appear in signed response fields are supported; numbers must be
// json.Number so their wire representation survives canonicalization intact.
func FromJSON(v any) (Value, error) {
	switch t := v.(type) {
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return String(t.String()), nil
	default:
		return Value{}, fmt.Errorf("unsupported response value type %T", v)
	}
}

// IsEmpty reports whether the value is one of the empty sentinels: absent,
// the empty string or an empty cart. Zero and false are not empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case kindAbsent:
		return true
	case kindString:
		return v.str == ""
	case kindCart:
		return len(v.cart) == 0
	}
	return false
}

// Text returns the canonical textual form of a scalar value. Cart values
// have no scalar form and render empty; they are flattened by Canonical.
func (v Value) Text() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindBool:
		if v.b {
			return "true"
		}
		return "false"
	}
	return ""
}

// Int64 returns the value as an integer. It converts string values holding
// decimal digits, so it works on response fields decoded from JSON numbers.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case kindInt:
		return v.num, true
	case kindString:
		n, err := strconv.ParseInt(v.str, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Cart returns the cart held by a cart value, or nil for other kinds.
func (v Value) Cart() Cart {
	return v.cart
}

// MarshalJSON renders the value in its natural JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindString:
		return json.Marshal(v.str)
	case kindInt:
		return json.Marshal(v.num)
	case kindBool:
		return json.Marshal(v.b)
	case kindCart:
		return v.cart.MarshalJSON()
	}
	return []byte("null"), nil
}
