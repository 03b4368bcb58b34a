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

// generatorIterator adapts a Generator to the iteration protocol.
type generatorIterator struct {
	g *Generator
}

// Next implements iterator.Iterator. Termination becomes iterator.Done; any final result is not
// part of the produced sequence and is discarded.
func (iter generatorIterator) Next() (interface{}, error) {
	out, err := iter.g.Next()
	if err != nil {
		return nil, err
	}
	if out.Terminated() {
		return nil, iterator.Done
	}
	return out.Value(), nil
}

// Iterator implements iterator.Iterable by returning the iterator itself.
func (iter generatorIterator) Iterator() iterator.Iterator {
	return iter
}

// Iterator returns the Generator's produced values as an iteration cursor, making the Generator an
// iterator.Iterable that can be consumed with iterator.Each. A Generator is a single-use producer:
// every call returns a cursor over the same underlying computation, never a fresh pass.
func (g *Generator) Iterator() iterator.Iterator {
	return generatorIterator{g}
}

var (
	_ iterator.Iterator = generatorIterator{}
	_ iterator.Iterable = generatorIterator{}
	_ iterator.Iterable = (*Generator)(nil)
)
