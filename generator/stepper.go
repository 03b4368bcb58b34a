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

// A Stepper is the body of a suspendable computation. Its fields are the computation's saved local
// state (the locals that survive across suspension points, plus an explicit resume position where
// the logic needs one); its Step method is the computation's code, invoked once per resumption.
//
// Step receives the Resumption describing how the consumer resumed and answers with exactly one
// of:
//
//  - (Produce(value), nil): hand value to the consumer and suspend here;
//  - (Terminate(), nil) or (TerminateWith(final), nil): finish normally;
//  - (<zero Outcome>, err): fail; err propagates to the resuming caller unmodified.
//
// During a cancellation request (r.Canceling() is true), returning the Canceled sentinel as the
// error is a clean acknowledgement, equivalent to terminating normally. Producing a value during
// cancellation is a protocol violation; the Generator reports it and fails the computation.
//
// Returning the zero Outcome together with a nil error violates this contract; if a non-nil error
// is returned, the Outcome is ignored.
//
// A Stepper never sees a resumption it should not: the Generator handles terminated and
// not-started edge cases before the body runs, and Step is never invoked reentrantly.
type Stepper interface {
	Step(r Resumption) (Outcome, error)
}

// StepFunc is an adapter to allow the use of ordinary functions as the body of a computation,
// with the saved local state captured in the function's closure.
type StepFunc func(r Resumption) (Outcome, error)

// Step calls f(r).
func (f StepFunc) Step(r Resumption) (Outcome, error) {
	return f(r)
}

var _ Stepper = (StepFunc)(nil)

// canceled is defined to serve as type for Canceled. It allows us to define an immutable global
// variable.
type canceled int

// Error implements Go's error interface for "canceled".
func (canceled) Error() string {
	return "computation canceled"
}

var _ error = canceled(0)

// Canceled is returned by a Step to acknowledge a cancellation request by propagation instead of
// by terminating normally; Close treats it as a clean termination. Anywhere else it behaves as an
// ordinary error. Compare with == (it is never wrapped by this library).
const Canceled canceled = 0
