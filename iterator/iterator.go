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

package iterator

// done is defined to serve as type for Done. It allows us to define an immutable global variable.
type done int

// Error implements Go's error interface for "done".
func (done) Error() string {
	return "no further values will be produced"
}

var _ error = done(0)

// Done is returned by an iterator's Next method when the iteration is complete; no further values
// will be produced. It is the termination signal of the protocol, not a failure: test it by
// identity (err == Done) before any other error handling. Done is never wrapped by this library.
const Done done = 0

// An Iterator is a cursor over a sequence of values. Iterators are single-pass: once Next has
// returned Done, every further call also returns Done.
type Iterator interface {
	// Next returns the next value in the sequence. It returns:
	//
	//  - (value, nil): the next value in the sequence;
	//  - (<ignored>, Done): the iterator is past the end of the sequence;
	//  - (<ignored>, <error>): an error occurred when fetching the next value.
	Next() (interface{}, error)
}

// An Iterable is a source of values that can be looped over (e.g., by Each). Multi-pass sources
// return a fresh cursor from every Iterator call; single-use producers return their one and only
// cursor.
type Iterable interface {
	// Iterator returns an iterator over the values in the source.
	Iterator() Iterator
}

// SizedIterable is an Iterable that provides a hint about the number of values it would produce.
type SizedIterable interface {
	Iterable

	// Size returns the number of values in the sequence. The hint is advisory.
	Size() int
}

// NextOr requests the next value from iter, substituting def once the iteration has completed.
// Termination never surfaces from NextOr: the caller receives a value (possibly def) or a genuine
// failure. The substitution does not restart the iterator; an exhausted iterator keeps yielding
// def.
func NextOr(iter Iterator, def interface{}) (interface{}, error) {
	value, err := iter.Next()
	if err == Done {
		return def, nil
	} else if err != nil {
		return nil, err
	}
	return value, nil
}
