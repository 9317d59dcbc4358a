// Package payload implements the canonical payload model of the CSOB payment
// gateway protocol.
//
// A payload is an ordered mapping of fields. Insertion order is part of the
// protocol: the signature of a payload is computed over its values joined by
// "|" in mapping order, so two payloads with the same fields in different
// order sign differently.
//
// # Building a payload
//
// Assemble fields with New, which drops empty values the way the gateway
// expects:
//
//	fields := payload.New(
//		payload.Pair("merchantId", payload.String("M1MIPS0000")),
//		payload.Pair("dttm", payload.DTTM(time.Now())),
//	)
//
// # Canonical message
//
// Canonical renders the exact byte sequence that is signed and verified.
// It is the single source of truth for canonicalization; both signing and
// verification go through it.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Field is one (key, value) pair of an ordered payload mapping.
type Field struct {
	Key   string
	Value Value
}

// Pair builds a Field.
func Pair(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// Fields is an ordered field mapping. Keys are unique; order is significant.
type Fields []Field

// Cart is an ordered sequence of line items. Each item is itself an ordered
// mapping of scalar values.
type Cart []Fields

// ErrNestedCart is returned when a cart item itself contains a cart value.
// The protocol flattens carts one level only, so deeper nesting cannot be
// encoded faithfully and is rejected.
var ErrNestedCart = errors.New("cart items must hold scalar values only")

// CartItem builds one cart line item in the field order the gateway signs:
// name, quantity, amount, description. Description is optional.
func CartItem(name string, quantity, amount int64, description string) Fields {
	item := Fields{
		Pair("name", String(name)),
		Pair("quantity", Int(quantity)),
		Pair("amount", Int(amount)),
	}
	if description != "" {
		item = append(item, Pair("description", String(description)))
	}
	return item
}

// New assembles an ordered payload from pairs, excluding pairs whose value
// is one of the empty sentinels (absent, empty string, empty cart).
func New(pairs ...Field) Fields {
	fields := make(Fields, 0, len(pairs))
	for _, p := range pairs {
		if p.Value.IsEmpty() {
			continue
		}
		fields = append(fields, p)
	}
	return fields
}

// Append returns fields with (key, v) added as the final entry. Unlike New
// it performs no empty filtering.
func (f Fields) Append(key string, v Value) Fields {
	return append(f, Pair(key, v))
}

// Get returns the value stored under key.
func (f Fields) Get(key string) (Value, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return Value{}, false
}

// Canonical renders the ordered fields into the exact byte sequence that is
// signed and verified: all values joined by "|" in mapping order, carts
// flattened into a pipe-joined sub-sequence of their item values, booleans
// as lowercase literals, everything else in its natural string form.
//
// The caller must exclude the signature field itself before calling.
func Canonical(f Fields) ([]byte, error) {
	parts := make([]string, 0, len(f))
	for _, field := range f {
		if field.Value.kind == kindCart {
			flat, err := flattenCart(field.Value.cart)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field.Key, err)
			}
			parts = append(parts, flat)
			continue
		}
		parts = append(parts, field.Value.Text())
	}
	return []byte(strings.Join(parts, "|")), nil
}

// flattenCart joins all values of all cart items, each item's values in the
// item's own insertion order, across items in sequence order.
func flattenCart(c Cart) (string, error) {
	var parts []string
	for _, item := range c {
		for _, field := range item {
			if field.Value.kind == kindCart {
				return "", ErrNestedCart
			}
			parts = append(parts, field.Value.Text())
		}
	}
	return strings.Join(parts, "|"), nil
}

// MarshalJSON renders the mapping as a JSON object with keys in insertion
// order, which is the order the gateway displays in its request logs.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		val, err := field.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders the cart as a JSON array of item objects.
func (c Cart) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		obj, err := item.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(obj)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// String renders the mapping as "k=v" pairs for diagnostics.
func (f Fields) String() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field.Key)
		b.WriteByte('=')
		if field.Value.kind == kindCart {
			flat, err := flattenCart(field.Value.cart)
			if err != nil {
				flat = "<invalid cart>"
			}
			b.WriteString(flat)
			continue
		}
		b.WriteString(field.Value.Text())
	}
	return b.String()
}
