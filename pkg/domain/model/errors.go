package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

// Tags classify mapping failures. Callers branch on them with goerr.HasTag.
var (
	TagMissingField  = goerr.NewTag("missing_field")
	TagInvalidField  = goerr.NewTag("invalid_field")
	TagMissingTitle  = goerr.NewTag("missing_title")
	TagMissingURL    = goerr.NewTag("missing_url")
	TagMissingAuthor = goerr.NewTag("missing_author")
)

const (
	errKeyKind  = "kind"
	errKeyField = "field"
)

// ErrMissingField reports a required field absent for the given event kind
func ErrMissingField(kind types.EventKind, field string) error {
	return goerr.New(fmt.Sprintf("missing field in event: %s::%s", kind, field),
		goerr.T(TagMissingField),
		goerr.V(errKeyKind, kind),
		goerr.V(errKeyField, field),
	)
}

// ErrInvalidField reports a field that is present but has the wrong JSON type
func ErrInvalidField(kind types.EventKind, field string) error {
	return goerr.New(fmt.Sprintf("invalid field in event: %s::%s", kind, field),
		goerr.T(TagInvalidField),
		goerr.V(errKeyKind, kind),
		goerr.V(errKeyField, field),
	)
}

// IsMissingField reports whether err is a missing field error
func IsMissingField(err error) bool {
	return goerr.HasTag(err, TagMissingField)
}

// IsInvalidField reports whether err is an invalid field error
func IsInvalidField(err error) bool {
	return goerr.HasTag(err, TagInvalidField)
}

// FieldOf returns the event kind and field name carried by a field error.
// ok is false when err is not a field error.
func FieldOf(err error) (kind types.EventKind, field string, ok bool) {
	if !IsMissingField(err) && !IsInvalidField(err) {
		return "", "", false
	}

	e := goerr.Unwrap(err)
	if e == nil {
		return "", "", false
	}

	values := e.Values()
	kind, _ = values[errKeyKind].(types.EventKind)
	field, _ = values[errKeyField].(string)
	return kind, field, true
}
