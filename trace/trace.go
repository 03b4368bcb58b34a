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

// Package trace records the resumption history of a generator. A Session wraps a
// generator.Generator and mirrors its operations, appending one Event per call while delegating
// with unchanged semantics. The transcript serializes to JSON for diagnostic consumption, which
// makes a misbehaving computation's history inspectable after the fact.
package trace

import (
	"unsafe"

	"github.com/botobag/hypnos/generator"

	"github.com/json-iterator/go"
)

// EventKind classifies how a recorded operation answered.
type EventKind string

// Enumeration of EventKind
const (
	// The operation returned a produced value.
	EventProduced EventKind = "produced"

	// The operation observed termination.
	EventTerminated EventKind = "terminated"

	// The operation returned an error.
	EventFailed EventKind = "failed"
)

// An Event records one operation invoked on a traced generator together with its answer.
type Event struct {
	// Op is the operation that was invoked, such as "generator.Next".
	Op generator.Op

	// Input is the value injected by Send, if any.
	Input interface{}

	// Cause is the error injected by Throw, if any.
	Cause error

	// Kind classifies the answer.
	Kind EventKind

	// Value is the produced value when Kind is EventProduced.
	Value interface{}

	// Final is the completion value observed at termination, if any.
	Final interface{}

	// Err is the error the operation returned when Kind is EventFailed.
	Err error
}

// A Session traces a Generator: every mirrored operation is delegated verbatim and recorded as an
// Event. A Session shares its Generator's ownership model; it is not safe for concurrent use.
type Session struct {
	g      *generator.Generator
	events []Event
}

// New returns a Session tracing g.
func New(g *generator.Generator) *Session {
	if g == nil {
		panic("trace: New with nil Generator")
	}
	return &Session{g: g}
}

const (
	opNext   generator.Op = "generator.Next"
	opNextOr generator.Op = "generator.NextOr"
	opSend   generator.Op = "generator.Send"
	opThrow  generator.Op = "generator.Throw"
	opClose  generator.Op = "generator.Close"
)

// Next mirrors generator.Generator.Next.
func (s *Session) Next() (generator.Outcome, error) {
	out, err := s.g.Next()
	s.record(opNext, nil, nil, out, err)
	return out, err
}

// NextOr mirrors generator.Generator.NextOr. The recorded Event reflects the underlying
// resumption, so a substituted default is recorded as the termination it stands in for.
func (s *Session) NextOr(def interface{}) (interface{}, error) {
	out, err := s.g.Next()
	s.record(opNextOr, nil, nil, out, err)
	if err != nil {
		return nil, err
	}
	if out.Terminated() {
		return def, nil
	}
	return out.Value(), nil
}

// Send mirrors generator.Generator.Send.
func (s *Session) Send(input interface{}) (generator.Outcome, error) {
	out, err := s.g.Send(input)
	s.record(opSend, input, nil, out, err)
	return out, err
}

// Throw mirrors generator.Generator.Throw.
func (s *Session) Throw(cause error) (generator.Outcome, error) {
	out, err := s.g.Throw(cause)
	s.record(opThrow, nil, cause, out, err)
	return out, err
}

// Close mirrors generator.Generator.Close. A successful close is recorded as an observed
// termination.
func (s *Session) Close() error {
	err := s.g.Close()
	s.record(opClose, nil, nil, generator.Terminate(), err)
	return err
}

func (s *Session) record(op generator.Op, input interface{}, cause error, out generator.Outcome, err error) {
	event := Event{
		Op:    op,
		Input: input,
		Cause: cause,
	}
	switch {
	case err != nil:
		event.Kind = EventFailed
		event.Err = err
	case out.Terminated():
		event.Kind = EventTerminated
		if final, ok := out.Final(); ok {
			event.Final = final
		}
	default:
		event.Kind = EventProduced
		event.Value = out.Value()
	}
	s.events = append(s.events, event)
}

// Events returns the transcript recorded so far, in call order.
func (s *Session) Events() []Event {
	return s.events
}

// MarshalJSON implements json.Marshaler. The transcript serializes as an array of Event objects.
func (s *Session) MarshalJSON() ([]byte, error) {
	if len(s.events) == 0 {
		return []byte("[]"), nil
	}
	return jsoniter.Marshal(s.events)
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// eventMarshaller implements jsoniter.ValEncoder to encode Event to JSON.
type eventMarshaller struct{}

var _ jsoniter.ValEncoder = eventMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (eventMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return len((*Event)(ptr).Op) == 0
}

// Encode implements jsoniter.ValEncoder.
func (eventMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	event := (*Event)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("op")
	stream.WriteString(string(event.Op))

	if event.Input != nil {
		stream.WriteMore()
		stream.WriteObjectField("input")
		stream.WriteVal(event.Input)
	}

	if event.Cause != nil {
		stream.WriteMore()
		stream.WriteObjectField("cause")
		writeErr(stream, event.Cause)
	}

	stream.WriteMore()
	stream.WriteObjectField("kind")
	stream.WriteString(string(event.Kind))

	if event.Kind == EventProduced {
		stream.WriteMore()
		stream.WriteObjectField("value")
		stream.WriteVal(event.Value)
	}

	if event.Final != nil {
		stream.WriteMore()
		stream.WriteObjectField("final")
		stream.WriteVal(event.Final)
	}

	if event.Err != nil {
		stream.WriteMore()
		stream.WriteObjectField("err")
		writeErr(stream, event.Err)
	}

	stream.WriteObjectEnd()
}

// writeErr writes structured JSON for the generator's own error type and plain text for any other.
func writeErr(stream *jsoniter.Stream, err error) {
	if e, ok := err.(*generator.Error); ok {
		stream.WriteVal(e)
	} else {
		stream.WriteString(err.Error())
	}
}

func init() {
	jsoniter.RegisterTypeEncoder("trace.Event", eventMarshaller{})
}
