package model

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Optional holds a field of a partial update. Set is false when the key is absent,
// Null is true when the key is present with a json null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Present reports whether the field carries a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// validationValue is nil for absent and null fields so omitempty skips them.
// Present values come back as a pointer, keeping "" and 0 subject to the other tags.
func (o Optional[T]) validationValue() interface{} {
	if !o.Present() {
		return nil
	}
	v := o.Value
	return &v
}

type optional interface {
	validationValue() interface{}
}

// OptionalValue exposes the wrapped value of an Optional to validator tags.
func OptionalValue(field reflect.Value) interface{} {
	if o, ok := field.Interface().(optional); ok {
		return o.validationValue()
	}
	return nil
}

// OptionalTypes lists the Optional instantiations used by request bodies.
func OptionalTypes() []interface{} {
	return []interface{}{Optional[string]{}, Optional[int]{}, Optional[Date]{}}
}

// IDList accepts either a single integer or a list of integers.
type IDList []int

func (l *IDList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	if id, err := strconv.Atoi(string(b)); err == nil {
		*l = IDList{id}
		return nil
	}
	var ids []int
	if err := json.Unmarshal(b, &ids); err != nil {
		return errors.New("expected an integer or a list of integers")
	}
	*l = ids
	return nil
}

// Unique returns the ids without duplicates, keeping the first occurrence order.
func (l IDList) Unique() []int {
	seen := make(map[int]struct{}, len(l))
	out := make([]int, 0, len(l))
	for _, id := range l {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
