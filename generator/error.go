/**
 * Copyright (c) 2019, The Hypnos Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package generator

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"unsafe"

	"github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "generator.Close".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of Kind
const (
	ErrKindOther    ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindUsage                   // An operation was invoked on a computation in a state that forbids it.
	ErrKindProtocol                // The computation's body violated the suspension protocol.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindUsage:
		return "usage error"
	case ErrKindProtocol:
		return "protocol violation"
	}
	return "unknown error kind"
}

// ErrState records the computation state observed when an error was raised. The zero value means
// the state was not recorded; this lets the five real states (including StateNotStarted) all be
// representable without reserving one as "absent".
type ErrState struct {
	state State
	known bool
}

// InState builds the ErrState recording s.
func InState(s State) ErrState {
	return ErrState{state: s, known: true}
}

// Known returns true if a state was recorded.
func (s ErrState) Known() bool {
	return s.known
}

// State returns the recorded state. Only meaningful when Known reports true.
func (s ErrState) State() State {
	return s.state
}

func (s ErrState) String() string {
	if !s.known {
		return "unrecorded"
	}
	return s.state.String()
}

// ErrorWithState indicates an error that knows the computation state it was raised in. If a state
// is not given in the arguments to NewError, NewError will retrieve one from the underlying error
// (if provided) that implements this interface.
type ErrorWithState interface {
	ErrState() ErrState
}

// An Error describes an error found while driving a suspendable computation: a misuse of the
// resumption protocol, a body that violated it, or a wrapped underlying failure. It can be
// serialized to JSON for inclusion in diagnostic output such as session transcripts.
//
// An Error can be built by wrapping an error value; information (if unspecified in the arguments
// to NewError) in the wrapped value is propagated to the newly created Error. It also includes Op,
// ErrKind and the computation State at the time of the error, all of which show when printing the
// error value. This makes it helpful for programmers.
//
// Injected errors and unhandled internal errors of a computation are never wrapped in an Error;
// they propagate to the resuming caller with their identity intact.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// State is the state of the computation at the time the error was raised.
	State ErrState

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of upspin.io/errors [0].
//
// The variadic arguments may carry, in any order: an Op, an ErrKind, a State (or ErrState), and an
// underlying error.
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case State:
			e.State = InState(arg)
		case ErrState:
			e.State = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Propagate state from the underlying error when one is not provided in argument.
	prev := e.Err
	if prev != nil {
		if !e.State.Known() {
			switch errWithState := prev.(type) {
			case ErrorWithState:
				e.State = errWithState.ErrState()
			case *Error:
				e.State = errWithState.State
			}
		}

		// Pull kind from underlying error.
		if e.Kind == ErrKindOther {
			if prev, ok := prev.(*Error); ok {
				e.Kind = prev.Kind
			}
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	// If the previous error was also one of ours, suppress duplications so the message won't
	// contain the same kind or state twice.
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.State.Known() {
		// Don't print state if the next error already did.
		if nextErr == nil || nextErr.State != e.State {
			if b.Len() == initialLen {
				b.WriteString("In state ")
			} else {
				b.WriteString(" in state ")
			}
			b.WriteString(e.State.String())
		}
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if len(err.Op) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("op")
		stream.WriteString(string(err.Op))
	}

	if err.Kind != ErrKindOther {
		stream.WriteMore()
		stream.WriteObjectField("kind")
		stream.WriteString(err.Kind.String())
	}

	if err.State.Known() {
		stream.WriteMore()
		stream.WriteObjectField("state")
		stream.WriteString(err.State.String())
	}

	if err.Err != nil {
		stream.WriteMore()
		stream.WriteObjectField("cause")
		if prev, ok := err.Err.(*Error); ok {
			stream.WriteVal(prev)
		} else {
			stream.WriteString(err.Err.Error())
		}
	}

	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("generator.Error", errorMarshaller{})
}
