package domain

import "encoding/json"

// Optional records whether a JSON field was present in a request body.
// A literal null is treated the same as an absent field.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ValidationValue exposes the wrapped value to the validator, or nil when absent.
func (o Optional[T]) ValidationValue() any {
	if !o.Set {
		return nil
	}
	return o.Value
}

// Apply writes the value into dst when present.
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

// ApplyPtr writes a pointer to the value into dst when present.
func (o Optional[T]) ApplyPtr(dst **T) {
	if o.Set {
		v := o.Value
		*dst = &v
	}
}
