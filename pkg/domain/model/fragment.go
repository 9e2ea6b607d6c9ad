package model

import (
	"encoding/json"
	"math"

	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

// Fragment is an untyped JSON object taken from a webhook payload. Its
// accessors report absence and type mismatches as MissingField and
// InvalidField errors naming the full field path, e.g. "discussion.title".
type Fragment struct {
	kind   types.EventKind
	name   string
	values map[string]any
}

// NewFragment wraps values decoded from the object called name in an event
// of the given kind. A nil map behaves as an empty object.
func NewFragment(kind types.EventKind, name string, values map[string]any) Fragment {
	return Fragment{kind: kind, name: name, values: values}
}

// Name is the field path of the fragment itself
func (f Fragment) Name() string { return f.name }

// Present reports whether the fragment object existed in the payload
func (f Fragment) Present() bool { return f.values != nil }

func (f Fragment) path(key string) string {
	return f.name + "." + key
}

// Has reports whether key is present, including as null
func (f Fragment) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// String returns a required string value
func (f Fragment) String(key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", ErrMissingField(f.kind, f.path(key))
	}
	s, ok := v.(string)
	if !ok {
		return "", ErrInvalidField(f.kind, f.path(key))
	}
	return s, nil
}

// OptionalString returns the value when it is present and a string
func (f Fragment) OptionalString(key string) (string, bool) {
	s, ok := f.values[key].(string)
	return s, ok
}

// Int returns a required integral number
func (f Fragment) Int(key string) (int64, error) {
	v, ok := f.values[key]
	if !ok {
		return 0, ErrMissingField(f.kind, f.path(key))
	}

	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, ErrInvalidField(f.kind, f.path(key))
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, ErrInvalidField(f.kind, f.path(key))
		}
		return i, nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, ErrInvalidField(f.kind, f.path(key))
	}
}
