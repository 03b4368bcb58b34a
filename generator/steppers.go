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
	"github.com/botobag/hypnos/iterator"
)

//===----------------------------------------------------------------------------------------====//
// FromIterable
//===----------------------------------------------------------------------------------------====//

// iterableStepper produces the values of an iterable, one per resumption.
type iterableStepper struct {
	iterable iterator.Iterable

	// The cursor; obtained lazily on the first resumption so that no iteration work happens before
	// the computation first runs.
	iter iterator.Iterator
}

// FromIterable returns a Stepper producing the values of iterable, turning any iteration source
// into a suspendable computation. The computation is unguarded against injected errors (Throw
// propagates them) and answers cancellation by terminating cleanly. Cursor failures propagate and
// fail the computation.
func FromIterable(iterable iterator.Iterable) Stepper {
	return &iterableStepper{iterable: iterable}
}

// Step implements Stepper.
func (s *iterableStepper) Step(r Resumption) (Outcome, error) {
	if err := r.Err(); err != nil {
		return Outcome{}, err
	}
	if r.Canceling() {
		return Terminate(), nil
	}

	if s.iter == nil {
		s.iter = s.iterable.Iterator()
	}

	value, err := s.iter.Next()
	if err == iterator.Done {
		return Terminate(), nil
	} else if err != nil {
		return Outcome{}, err
	}
	return Produce(value), nil
}

//===----------------------------------------------------------------------------------------====//
// Chain
//===----------------------------------------------------------------------------------------====//

// chainStepper produces the values of a list of iterables, moving to the next source as each one
// is exhausted.
type chainStepper struct {
	// Sources not yet started; the head is consumed into iter when the current cursor finishes.
	sources []iterator.Iterable

	// Cursor over the current source.
	iter iterator.Iterator
}

// Chain returns a Stepper that concatenates the given iterables into one computation: it produces
// every value of the first iterable, then every value of the second, and so on. Error and
// cancellation behavior matches FromIterable.
func Chain(iterables ...iterator.Iterable) Stepper {
	return &chainStepper{sources: iterables}
}

// Step implements Stepper.
func (s *chainStepper) Step(r Resumption) (Outcome, error) {
	if err := r.Err(); err != nil {
		return Outcome{}, err
	}
	if r.Canceling() {
		return Terminate(), nil
	}

	for {
		if s.iter == nil {
			if len(s.sources) == 0 {
				return Terminate(), nil
			}
			s.iter = s.sources[0].Iterator()
			s.sources = s.sources[1:]
		}

		value, err := s.iter.Next()
		if err == iterator.Done {
			s.iter = nil
			continue
		} else if err != nil {
			return Outcome{}, err
		}
		return Produce(value), nil
	}
}

//===----------------------------------------------------------------------------------------====//
// Delegate
//===----------------------------------------------------------------------------------------====//

// delegateStepper forwards every resumption to an inner Generator.
type delegateStepper struct {
	inner *Generator
}

// Delegate returns a Stepper that transparently delegates to inner, in the manner of delegation to
// a subgenerator [0]: produced values pass through to the outer consumer, injected inputs and
// errors are forwarded to inner's suspension point, cancellation closes inner, and when inner
// terminates the outer computation terminates with inner's final result as its own.
//
// [0]: https://peps.python.org/pep-0380/
func Delegate(inner *Generator) Stepper {
	return &delegateStepper{inner: inner}
}

// Step implements Stepper.
func (s *delegateStepper) Step(r Resumption) (Outcome, error) {
	inner := s.inner
	switch {
	case r.Canceling():
		if err := inner.Close(); err != nil {
			return Outcome{}, err
		}
		return Terminate(), nil

	case r.Err() != nil:
		return forward(inner.Throw(r.Err()))

	default:
		return forward(inner.Send(r.Input()))
	}
}

// forward maps the inner Generator's answer to the delegating computation's own: inner's Outcome
// (produced or terminated, final result included) becomes the outer Outcome, and inner's failure
// becomes the outer failure.
func forward(out Outcome, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

var (
	_ Stepper = (*iterableStepper)(nil)
	_ Stepper = (*chainStepper)(nil)
	_ Stepper = (*delegateStepper)(nil)
)
