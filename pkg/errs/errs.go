// Package errs provides a kind-based error type that carries the operation
// stack, the failing parameter and the user involved, so transport code can
// map failures to HTTP responses without knowing where they came from.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the error type used throughout the backend.
type Error struct {
	// Op is the operation being performed, usually "type.Method".
	Op Op
	// User is the identity the operation was performed on behalf of.
	User UserName
	// Kind is the class of error, e.g. NotExist or Database.
	Kind Kind
	// Param is the argument or field the error relates to.
	Param Parameter
	// Err is the underlying error.
	Err error
}

func (e *Error) isZero() bool {
	return e.Op == "" && e.User == "" && e.Kind == Other && e.Param == "" && e.Err == nil
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Op describes an operation, usually as the type and method name.
type Op string

// UserName is the identity of the calling user.
type UserName string

// Parameter is the name of a request parameter or struct field.
type Parameter string

// Kind defines the kind of error this is.
type Kind uint8

const (
	Other Kind = iota
	Internal
	IO
	Database
	InvalidRequest
	Validation
	Exist
	NotExist
	Unauthenticated
	Unauthorized
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other_error"
	case Internal:
		return "internal_error"
	case IO:
		return "io_error"
	case Database:
		return "database_error"
	case InvalidRequest:
		return "invalid_request_error"
	case Validation:
		return "validation_error"
	case Exist:
		return "item_already_exists"
	case NotExist:
		return "item_does_not_exist"
	case Unauthenticated:
		return "unauthenticated_request"
	case Unauthorized:
		return "unauthorized_request"
	}

	return "unknown_error_kind"
}

// E builds an error value from its arguments.
// There must be at least one argument or E panics.
// The type of each argument determines its meaning.
// If more than one argument of a given type is presented,
// only the last one is recorded.
//
// The types are:
//
//	errs.Op
//		The operation being performed.
//	errs.UserName
//		The identity of the user the operation was performed for.
//	errs.Kind
//		The class of error.
//	errs.Parameter
//		The parameter the error relates to.
//	error
//		The underlying error that triggered this one.
//	string
//		Treated as an error message and wrapped with Str.
//
// If the underlying error is an *Error and the Kind of the new error is
// unset, the Kind is copied from the underlying error.
func E(args ...any) error {
	if len(args) == 0 {
		panic("call to errs.E with no arguments")
	}

	e := &Error{}

	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case UserName:
			e.User = a
		case Kind:
			e.Kind = a
		case Parameter:
			e.Param = a
		case *Error:
			cp := *a
			e.Err = &cp
		case error:
			e.Err = a
		case string:
			e.Err = Str(a)
		default:
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	prev, ok := e.Err.(*Error)
	if !ok {
		return e
	}

	if e.Kind == Other {
		e.Kind = prev.Kind
	}

	if e.Param == "" {
		e.Param = prev.Param
	}

	if e.User == "" {
		e.User = prev.User
	}

	return e
}

// Separator is the string used to separate nested errors.
const Separator = ":\n\t"

func pad(b *strings.Builder, str string) {
	if b.Len() == 0 {
		return
	}

	b.WriteString(str)
}

func (e *Error) Error() string {
	b := &strings.Builder{}

	if e.Op != "" {
		pad(b, ": ")
		b.WriteString(string(e.Op))
	}

	if e.User != "" {
		pad(b, ", ")
		b.WriteString("user ")
		b.WriteString(string(e.User))
	}

	if e.Param != "" {
		pad(b, ", ")
		b.WriteString("parameter ")
		b.WriteString(string(e.Param))
	}

	if e.Kind != Other {
		pad(b, ": ")
		b.WriteString(e.Kind.String())
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			if !prev.isZero() {
				pad(b, Separator)
				b.WriteString(e.Err.Error())
			}
		} else {
			pad(b, ": ")
			b.WriteString(e.Err.Error())
		}
	}

	if b.Len() == 0 {
		return "no error"
	}

	return b.String()
}

type errorString struct {
	s string
}

func (e *errorString) Error() string {
	return e.s
}

// Str returns an error that formats as the given text.
func Str(text string) error {
	return &errorString{s: text}
}

// Errorf is equivalent to fmt.Errorf, but allows clients to import only this
// package for all error handling.
func Errorf(format string, args ...any) error {
	return &errorString{s: fmt.Sprintf(format, args...)}
}

// KindIs reports whether err is an *Error of the given Kind.
// If err is nil then KindIs returns false.
func KindIs(kind Kind, err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	if e.Kind != Other {
		return e.Kind == kind
	}

	if e.Err != nil {
		return KindIs(kind, e.Err)
	}

	return false
}

// OpStack returns the operations the error passed through, outermost first.
func OpStack(err error) []string {
	var ops []string

	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}

		if e.Op != "" {
			ops = append(ops, string(e.Op))
		}

		err = e.Err
	}

	return ops
}

// Message returns the innermost message that is not an *Error, which is the
// text that was given when the error was first created.
func Message(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return err.Error()
		}

		if e.Err == nil {
			return e.Kind.String()
		}

		err = e.Err
	}

	return ""
}

// Match compares its two error arguments. It can be used to check for
// expected errors in tests. Both arguments must have underlying type *Error
// or Match will return false. Otherwise it returns true iff every non-zero
// element of the first error is equal to the corresponding element of the
// second. If the Err field is a *Error, Match recurs on that field; otherwise
// it compares the strings returned by the Error methods.
func Match(err1, err2 error) bool {
	e1, ok := err1.(*Error)
	if !ok {
		return false
	}

	e2, ok := err2.(*Error)
	if !ok {
		return false
	}

	if e1.Op != "" && e2.Op != e1.Op {
		return false
	}

	if e1.User != "" && e2.User != e1.User {
		return false
	}

	if e1.Kind != Other && e2.Kind != e1.Kind {
		return false
	}

	if e1.Param != "" && e2.Param != e1.Param {
		return false
	}

	if e1.Err != nil {
		if _, ok := e1.Err.(*Error); ok {
			return Match(e1.Err, e2.Err)
		}

		if e2.Err == nil || e2.Err.Error() != e1.Err.Error() {
			return false
		}
	}

	return true
}
