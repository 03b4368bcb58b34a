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

// outcomeKind describes which variant an Outcome holds.
type outcomeKind uint8

// Enumeration of outcomeKind
const (
	// The zero Outcome: neither a produced value nor a termination signal. It only ever accompanies
	// a non-nil error.
	outcomeNone outcomeKind = iota

	// A value was produced at a suspension point; the computation is suspended there.
	outcomeProduced

	// The computation terminated, optionally carrying a final result value.
	outcomeTerminated
)

// An Outcome is the result of one resumption of a suspendable computation. It is a two-variant
// sum: Produced (a value was handed over at a suspension point) or Terminated (no further values
// will be produced, optionally with a final result). Termination deliberately does not travel on
// the error channel; an error from a resumption always means a failure, never the end of the
// sequence.
//
// The zero Outcome is neither variant. Resumption operations return it alongside a non-nil error,
// and a Stepper returning it with a nil error violates the Stepper contract.
type Outcome struct {
	kind  outcomeKind
	value interface{}
}

// Produce returns the Outcome that hands value to the consumer and leaves the computation
// suspended at the current suspension point.
func Produce(value interface{}) Outcome {
	return Outcome{
		kind:  outcomeProduced,
		value: value,
	}
}

// Terminate returns the Outcome that signals termination with no final result.
func Terminate() Outcome {
	return Outcome{
		kind: outcomeTerminated,
	}
}

// TerminateWith returns the Outcome that signals termination carrying a final result value. The
// value is delivered to exactly the resumption call that observes this Outcome; later resumptions
// of the same computation terminate without it. TerminateWith(nil) is identical to Terminate(): a
// nil final result is indistinguishable from no final result.
func TerminateWith(final interface{}) Outcome {
	return Outcome{
		kind:  outcomeTerminated,
		value: final,
	}
}

// Produced returns true if the Outcome carries a produced value.
func (o Outcome) Produced() bool {
	return o.kind == outcomeProduced
}

// Terminated returns true if the Outcome signals termination.
func (o Outcome) Terminated() bool {
	return o.kind == outcomeTerminated
}

// Value returns the produced value, or nil if the Outcome is not Produced.
func (o Outcome) Value() interface{} {
	if o.kind != outcomeProduced {
		return nil
	}
	return o.value
}

// Final returns the final result carried by a termination signal. The second return is false when
// the Outcome is not Terminated or terminated without a result.
func (o Outcome) Final() (interface{}, bool) {
	if o.kind != outcomeTerminated || o.value == nil {
		return nil, false
	}
	return o.value, true
}

func (o Outcome) String() string {
	switch o.kind {
	case outcomeProduced:
		return "produced"
	case outcomeTerminated:
		if o.value != nil {
			return "terminated (with final result)"
		}
		return "terminated"
	}
	return "none"
}
