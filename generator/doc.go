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

// Package generator provides suspendable computations: units of sequential logic that pause at
// declared suspension points, hand a value to their consumer, and persist their local state until
// the consumer resumes them. The protocol is borrowed from the generator and semicoroutine design
// popularized by Python [0][1]: a consumer can simply ask for the next value (Next), inject a value
// that becomes the result of the paused suspension expression (Send), inject an error at the
// suspension point (Throw), or request graceful termination (Close). A computation terminates by
// finishing normally (optionally with a final result value), by letting an error escape, or by
// honoring a Close request; termination is one-way and stable.
//
// Stepper-Resumption-Outcome Design
//
// A Generator does not rely on goroutines or any other native suspension support; it is an explicit
// state machine. The body of the computation is a Stepper: an object whose fields are the saved
// local variables (including, where needed, an explicit resume position) and whose Step method is
// invoked once per resumption. Step receives a Resumption describing how the consumer resumed
// (plain advance, an injected input, an injected error, or the cancellation request) and answers
// with an Outcome: either Produce(value), which suspends the computation and hands value to the
// consumer, or Terminate()/TerminateWith(final), which completes it. Returning an error instead
// fails the computation and propagates the error to the resuming caller.
//
// The Generator enforces everything the body would otherwise have to get right: termination stays
// terminated, the completion value is delivered to exactly the call that observed it, reentrant
// resumption is rejected, and a body that keeps producing while it is being canceled is reported
// as a protocol violation. The cancellation request is a distinct Resumption variant rather than
// an ordinary injected error, so a Step that handles errors wholesale cannot swallow it by
// accident.
//
// A minimal bounded counter looks like this:
//
//	type counter struct {
//		next, limit int
//	}
//
//	func (c *counter) Step(r generator.Resumption) (generator.Outcome, error) {
//		if err := r.Err(); err != nil {
//			// Unguarded: let injected errors escape.
//			return generator.Outcome{}, err
//		}
//		if r.Canceling() || c.next >= c.limit {
//			return generator.Terminate(), nil
//		}
//		value := c.next
//		c.next++
//		return generator.Produce(value), nil
//	}
//
//	g := generator.New(&counter{limit: 2})
//	out, err := g.Next() // Produce(0)
//	out, err = g.Next()  // Produce(1)
//	out, err = g.Next()  // Terminate()
//
// Generators implement the iterator protocol (see package iterator): the produced values of g are
// consumable with iterator.Each(g, visit), with termination intercepted at the loop boundary and
// any final result discarded.
//
// [0]: https://docs.python.org/3/reference/expressions.html#yield-expressions
// [1]: https://peps.python.org/pep-0342/
package generator
