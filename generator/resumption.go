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

// resumptionKind describes how the consumer resumed the computation.
type resumptionKind uint8

// Enumeration of resumptionKind
const (
	// Plain advance (Next, or Send with a nil input): no input is injected; the suspension
	// expression evaluates to nil.
	resumeAdvance resumptionKind = iota

	// An input value is injected (Send): it becomes the result of the paused suspension
	// expression.
	resumeInput

	// An error is injected (Throw), as if raised at the paused suspension point.
	resumeError

	// The cancellation request (Close). Deliberately a distinct variant rather than an injected
	// error so that a Step handling errors wholesale cannot swallow it.
	resumeCancel
)

// A Resumption tells a Stepper how the consumer resumed the computation. Exactly one of the
// variants below applies:
//
//  - plain advance: Input() is nil, Err() is nil, Canceling() is false;
//  - injected input: Input() is the value the suspension expression resumes with;
//  - injected error: Err() is non-nil and behaves as if raised at the suspension point. A Step
//    that does not guard against it returns it as its error ("unguarded"); a Step that recovers
//    may produce further values or terminate ("guarded");
//  - cancellation: Canceling() is true. The Step must release what it holds and either return
//    Terminate() or acknowledge by returning the Canceled sentinel as its error. Producing
//    another value instead is a protocol violation.
type Resumption struct {
	kind  resumptionKind
	input interface{}
	err   error
}

// Input returns the injected input value. It is nil on a plain advance and for the other variants.
func (r Resumption) Input() interface{} {
	return r.input
}

// Err returns the injected error, or nil when the resumption does not inject one.
func (r Resumption) Err() error {
	return r.err
}

// Canceling returns true when the resumption is a cancellation request.
func (r Resumption) Canceling() bool {
	return r.kind == resumeCancel
}
