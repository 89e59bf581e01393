// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"iter"
	"time"
)

// An IteratorOption configures an Iterator.
type IteratorOption interface {
	apply(*Iterator)
}

// iteratorOptionFunc wraps a func so it satisfies the IteratorOption interface.
type iteratorOptionFunc func(*Iterator)

func (f iteratorOptionFunc) apply(it *Iterator) {
	f(it)
}

// WithEnd bounds the iterator: no instant after end is produced.
func WithEnd(end time.Time) IteratorOption {
	return iteratorOptionFunc(func(it *Iterator) {
		it.end = end
		it.bounded = true
	})
}

// Iterator walks forward minute by minute and yields the instants that
// satisfy a Specification, in increasing order.
//
// An Iterator is not safe for concurrent use. It cannot be rewound;
// build a new one to start over.
type Iterator struct {
	current time.Time
	next    time.Time
	spec    Specification
	end     time.Time
	bounded bool
	done    bool
}

// NewIterator returns an Iterator whose first candidate is start, rounded up
// to a whole minute. Without WithEnd the sequence is infinite, and for a
// Specification that is never satisfied Next never returns.
func NewIterator(start time.Time, spec Specification, options ...IteratorOption) *Iterator {
	first := TruncateMinute(start)
	if first.Before(start) {
		first = first.Add(time.Minute)
	}

	it := &Iterator{
		current: first,
		next:    first,
		spec:    spec,
	}
	for _, option := range options {
		option.apply(it)
	}
	return it
}

// Next returns the next satisfying instant. ok is false once the end bound
// has been passed.
func (it *Iterator) Next() (t time.Time, ok bool) {
	if it.done {
		return time.Time{}, false
	}

	it.advance()
	for {
		if it.bounded && it.current.After(it.end) {
			it.done = true
			return time.Time{}, false
		}
		if it.spec.IsSatisfiedBy(it.current) {
			return it.current, true
		}
		it.advance()
	}
}

// TruncateMinute rounds t down to a whole minute of its wall clock.
// Unlike t.Truncate(time.Minute) it honours offsets that are not a
// whole number of minutes.
func TruncateMinute(t time.Time) time.Time {
	return t.Add(-time.Duration(t.Second())*time.Second - time.Duration(t.Nanosecond()))
}

func (it *Iterator) advance() {
	it.current = it.next
	it.next = it.next.Add(time.Minute)
}

// All returns the remaining instants as a sequence. Pulling from it advances
// the iterator.
func (it *Iterator) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for {
			t, ok := it.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// Successors returns the instants from start on that satisfy spec.
// Each range over the result starts a fresh Iterator.
func Successors(start time.Time, spec Specification, options ...IteratorOption) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		NewIterator(start, spec, options...).All()(yield)
	}
}

// Take returns at most n instants from seq.
func Take(seq iter.Seq[time.Time], n int) []time.Time {
	if n <= 0 {
		return nil
	}
	times := make([]time.Time, 0, min(n, 64))
	for t := range seq {
		times = append(times, t)
		if len(times) == n {
			break
		}
	}
	return times
}
