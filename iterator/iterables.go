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

import (
	"reflect"
)

//===----------------------------------------------------------------------------------------====//
// SliceIterable
//===----------------------------------------------------------------------------------------====//

// A SliceIterable wraps a Go slice (or array) into an Iterable that produces its elements in
// order. Note that the slice should not be modified during iteration.
type SliceIterable struct {
	// The slice to be iterated; Must be a Go slice or array.
	s interface{}
}

// NewSliceIterable creates a SliceIterable. s must be a Go slice or an array.
func NewSliceIterable(s interface{}) *SliceIterable {
	return &SliceIterable{s}
}

// Iterator implements Iterable. It returns an iterator over the elements of the slice; every call
// starts a fresh pass from the first element.
func (iterable *SliceIterable) Iterator() Iterator {
	return &SliceIterator{s: sliceValueOf(iterable.s)}
}

// Size implements SizedIterable. It returns the number of elements in the slice.
func (iterable *SliceIterable) Size() int {
	return sliceValueOf(iterable.s).Len()
}

// sliceValueOf unwraps s into a reflect.Value. It panics if s is neither a slice nor an array.
// Mimic reflect.mustBe.
func sliceValueOf(s interface{}) reflect.Value {
	v := reflect.ValueOf(s)
	if kind := v.Kind(); kind != reflect.Slice && kind != reflect.Array {
		panic(&reflect.ValueError{
			Method: "github.com/botobag/hypnos/iterator.NewSliceIterable",
			Kind:   kind,
		})
	}
	return v
}

// SliceIterator implements Iterator to loop over the elements in a slice.
type SliceIterator struct {
	s reflect.Value
	i int
}

// Next implements Iterator.
func (iter *SliceIterator) Next() (interface{}, error) {
	if iter.i >= iter.s.Len() {
		return nil, Done
	}
	value := iter.s.Index(iter.i).Interface()
	iter.i++
	return value, nil
}

// Iterator implements Iterable by returning the iterator itself, allowing a half-consumed cursor
// to be handed to Each.
func (iter *SliceIterator) Iterator() Iterator {
	return iter
}

//===----------------------------------------------------------------------------------------====//
// MapKeysIterable
//===----------------------------------------------------------------------------------------====//

// MapKeysIterable wraps a Go map into an Iterable and provides an iterator to loop over keys in
// the map. Note that the given map should not be modified during iteration. The iteration order is
// the runtime's map order and is not specified.
type MapKeysIterable struct {
	// The map to be iterated; Must be a Go map.
	m interface{}
}

// NewMapKeysIterable creates a MapKeysIterable. m must be a Go map.
func NewMapKeysIterable(m interface{}) *MapKeysIterable {
	return &MapKeysIterable{m}
}

// Iterator implements Iterable. It returns iterator for iterating map keys.
func (iterable *MapKeysIterable) Iterator() Iterator {
	return &MapKeysIterator{iter: mapRangeOf(iterable.m)}
}

// Size implements SizedIterable. It returns the number of entries in the map.
func (iterable *MapKeysIterable) Size() int {
	return reflect.ValueOf(iterable.m).Len()
}

// MapKeysIterator implements Iterator to loop over the keys in a map.
type MapKeysIterator struct {
	iter *reflect.MapIter
}

// Next implements Iterator.
func (iter *MapKeysIterator) Next() (interface{}, error) {
	mapIter := iter.iter
	if !mapIter.Next() {
		return nil, Done
	}
	return mapIter.Key().Interface(), nil
}

// Iterator implements Iterable by returning the iterator itself.
func (iter *MapKeysIterator) Iterator() Iterator {
	return iter
}

//===----------------------------------------------------------------------------------------====//
// MapValuesIterable
//===----------------------------------------------------------------------------------------====//

// MapValuesIterable wraps a Go map into an Iterable and provides an iterator to loop over the
// values in the map. Note that the given map should not be modified during iteration. The
// iteration order is the runtime's map order and is not specified.
type MapValuesIterable struct {
	// The map to be iterated; Must be a Go map.
	m interface{}
}

// NewMapValuesIterable creates a MapValuesIterable. m must be a Go map.
func NewMapValuesIterable(m interface{}) *MapValuesIterable {
	return &MapValuesIterable{m}
}

// Iterator implements Iterable. It returns iterator for iterating map values.
func (iterable *MapValuesIterable) Iterator() Iterator {
	return &MapValuesIterator{iter: mapRangeOf(iterable.m)}
}

// Size implements SizedIterable. It returns the number of entries in the map.
func (iterable *MapValuesIterable) Size() int {
	return reflect.ValueOf(iterable.m).Len()
}

// MapValuesIterator implements Iterator to loop over the values in a map.
type MapValuesIterator struct {
	iter *reflect.MapIter
}

// Next implements Iterator.
func (iter *MapValuesIterator) Next() (interface{}, error) {
	mapIter := iter.iter
	if !mapIter.Next() {
		return nil, Done
	}
	return mapIter.Value().Interface(), nil
}

// Iterator implements Iterable by returning the iterator itself.
func (iter *MapValuesIterator) Iterator() Iterator {
	return iter
}

// mapRangeOf obtains a map range iterator over m. It panics if m is not a Go map. Mimic
// reflect.mustBe.
func mapRangeOf(m interface{}) *reflect.MapIter {
	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Map {
		panic(&reflect.ValueError{
			Method: "github.com/botobag/hypnos/iterator.mapRangeOf",
			Kind:   v.Kind(),
		})
	}
	return v.MapRange()
}

//===----------------------------------------------------------------------------------------====//
// Range
//===----------------------------------------------------------------------------------------====//

// rangeIterable produces a bounded arithmetic progression of ints.
type rangeIterable struct {
	start int
	stop  int
	step  int
}

// Range returns a SizedIterable producing the ints start, start+step, start+2*step, ... up to but
// excluding stop. With a negative step the progression counts down towards stop (exclusive). A
// progression that is empty under these rules yields no values. Range panics if step is 0.
func Range(start, stop, step int) SizedIterable {
	if step == 0 {
		panic("iterator: Range with step 0")
	}
	return rangeIterable{start: start, stop: stop, step: step}
}

// Iterator implements Iterable. Every call starts a fresh pass from start.
func (r rangeIterable) Iterator() Iterator {
	return &RangeIterator{next: r.start, stop: r.stop, step: r.step}
}

// Size implements SizedIterable. It returns the number of ints in the progression.
func (r rangeIterable) Size() int {
	if r.step > 0 {
		if r.start >= r.stop {
			return 0
		}
		return (r.stop - r.start + r.step - 1) / r.step
	}
	if r.start <= r.stop {
		return 0
	}
	return (r.start - r.stop - r.step - 1) / -r.step
}

// RangeIterator implements Iterator to loop over an arithmetic progression.
type RangeIterator struct {
	next int
	stop int
	step int
}

// Next implements Iterator.
func (iter *RangeIterator) Next() (interface{}, error) {
	if iter.step > 0 {
		if iter.next >= iter.stop {
			return nil, Done
		}
	} else if iter.next <= iter.stop {
		return nil, Done
	}
	value := iter.next
	iter.next += iter.step
	return value, nil
}

// Iterator implements Iterable by returning the iterator itself.
func (iter *RangeIterator) Iterator() Iterator {
	return iter
}

var (
	_ SizedIterable = (*SliceIterable)(nil)
	_ SizedIterable = (*MapKeysIterable)(nil)
	_ SizedIterable = (*MapValuesIterable)(nil)
	_ SizedIterable = rangeIterable{}
	_ Iterable      = (*SliceIterator)(nil)
	_ Iterable      = (*MapKeysIterator)(nil)
	_ Iterable      = (*MapValuesIterator)(nil)
	_ Iterable      = (*RangeIterator)(nil)
)
