package xerrors

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not found"
	default:
		return "internal"
	}
}

type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	Validation *ValidationInfo
}

type ValidationInfo struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Validation != nil && len(e.Validation.Fields) > 0 {
		msg += " (" + e.Validation.String() + ")"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// String renders the fields sorted by key as "key: message" pairs.
func (v *ValidationInfo) String() string {
	keys := slices.Sorted(maps.Keys(v.Fields))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + v.Fields[k]
	}
	return strings.Join(parts, "; ")
}

func Invalid(opts ...Option) *Error  { return newErr(KindInvalid, opts) }
func NotFound(opts ...Option) *Error { return newErr(KindNotFound, opts) }
func Internal(opts ...Option) *Error { return newErr(KindInternal, opts) }

func Validation(fields map[string]string, opts ...Option) *Error {
	e := &Error{
		Kind:       KindInvalid,
		Message:    "validation failed",
		Validation: &ValidationInfo{Fields: fields},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func newErr(kind Kind, opts []Option) *Error {
	e := &Error{Kind: kind, Message: kind.String()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

// WithFieldPrefix namespaces every validation field, e.g. "workouts[3]." + "duration_min".
func WithFieldPrefix(prefix string) Option {
	return func(e *Error) {
		if e.Validation == nil {
			return
		}
		prefixed := make(map[string]string, len(e.Validation.Fields))
		for k, v := range e.Validation.Fields {
			prefixed[prefix+k] = v
		}
		e.Validation.Fields = prefixed
	}
}

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Fields returns the validation fields carried anywhere in err's chain.
func Fields(err error) map[string]string {
	if e := As(err); e != nil && e.Validation != nil {
		return e.Validation.Fields
	}
	return nil
}

// Merge combines validation errors into one; nil inputs are skipped.
func Merge(errs ...*Error) *Error {
	fields := make(map[string]string)
	for _, e := range errs {
		if e == nil || e.Validation == nil {
			continue
		}
		maps.Copy(fields, e.Validation.Fields)
	}
	if len(fields) == 0 {
		return nil
	}
	return Validation(fields)
}
