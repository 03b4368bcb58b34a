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

// Each loops over the values of an iterable: it obtains a cursor from the iterable and requests
// values until the cursor signals termination, running visit on each one. Done is intercepted at
// the loop boundary; it never reaches visit and never surfaces to the caller. A non-Done error
// from the cursor aborts the loop and is returned as-is. An error returned by visit also aborts
// the loop and is returned as-is; the cursor is left wherever the loop stopped.
func Each(iterable Iterable, visit func(value interface{}) error) error {
	iter := iterable.Iterator()
	for {
		value, err := iter.Next()
		if err == Done {
			return nil
		} else if err != nil {
			return err
		}

		if err := visit(value); err != nil {
			return err
		}
	}
}
