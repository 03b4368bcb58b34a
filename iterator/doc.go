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

// Package iterator defines the iteration protocol used throughout Hypnos. The protocol draws
// significant inspiration from the Iterator Guidelines established for Google Cloud Client
// Libraries for Go [0].
//
// The values flowing through the protocol are deliberately untyped (interface{}): sequences in
// Hypnos are produced by suspendable computations whose values are opaque to the machinery that
// moves them. Giving up compile-time element types is what lets one pair of interfaces serve every
// producer.
//
// A source of values implements Iterable. Its Iterator method returns a cursor over the values:
//
//	iterable := iterator.NewSliceIterable([]string{"red", "green", "blue"})
//	iter := iterable.Iterator()
//
// The cursor has just one method, Next, which returns the next value in the sequence. When the
// sequence is exhausted, Next returns the sentinel Done. Done is the termination signal: it flows
// on the error channel for convenience, but it is not a failure and must be tested by identity
// before any other error handling:
//
//	for {
//		value, err := iter.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			return err
//		}
//		process(value)
//	}
//
// The loop above is exactly what Each does. Each is the preferred way to consume a sequence:
// termination is intercepted at the loop boundary and never reaches the visit function or the
// caller, while genuine failures (from the cursor or from the visit function) abort the loop and
// propagate:
//
//	err := iterator.Each(iterable, func(value interface{}) error {
//		process(value)
//		return nil
//	})
//
// By convention, every iterator in this library also implements Iterable by returning itself.
// A half-consumed cursor can therefore be handed to Each to finish the remainder of its sequence,
// and single-use producers (such as generator.Generator) can stand on either side of the protocol.
// Code that defines its own iterators is encouraged to follow the same convention.
//
// An iterable that knows how many values it will produce can additionally implement SizedIterable
// to publish the count as a hint. Consumers must treat the hint as advisory: single-use producers
// generally cannot provide one.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
