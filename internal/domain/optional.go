package domain

import (
	"encoding/json"
	"fmt"
)

// Optional is one field of a partial update. Set reports whether the caller
// supplied the field at all; Null marks an explicit null, which only nullable
// columns accept.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a supplied, non-null field.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns a field explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Ptr returns the value as a pointer, nil when null or unset.
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON marks the field as supplied whenever its key is present.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// required rejects an explicit null on a NOT NULL column.
func required[T any](name string, o Optional[T]) error {
	if o.Set && o.Null {
		return fmt.Errorf("%w: %s cannot be null", ErrInvalidInput, name)
	}
	return nil
}

// anySet reports whether at least one field was supplied.
func anySet(flags ...bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
