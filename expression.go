// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cronseq computes the instants matched by five-field cron
// expressions.
//
// An Expression answers whether an instant is due and produces the
// upcoming instants lazily, minute by minute. Expressions are immutable
// and safe for concurrent use.
package cronseq

import (
	"iter"
	"time"

	"github.com/cnotch/cronseq/cron"
)

// Expression is a compiled cron expression.
type Expression struct {
	source  string
	expr    *cron.CronExpr
	spec    *cron.ExprSpecification
	loc     *time.Location
	horizon time.Duration
}

// MustParse is like Parse but panics if spec is malformed.
func MustParse(spec string, options ...Option) *Expression {
	e, err := Parse(spec, options...)
	if err != nil {
		panic(err)
	}
	return e
}

// Parse compiles spec. The error, if any, is a *cron.ParseError.
func Parse(spec string, options ...Option) (*Expression, error) {
	expr, err := cron.Parse(spec)
	if err != nil {
		return nil, err
	}

	e := &Expression{
		source:  spec,
		expr:    expr,
		spec:    cron.NewSpecification(expr),
		horizon: DefaultHorizon,
	}
	for _, option := range options {
		option.apply(e)
	}
	return e, nil
}

// String returns the source text of the expression.
func (e *Expression) String() string {
	return e.source
}

// AST returns the parsed expression.
func (e *Expression) AST() *cron.CronExpr {
	return e.expr
}

// Location returns the location instants are evaluated in, or nil when
// instants are evaluated in their own location.
func (e *Expression) Location() *time.Location {
	return e.loc
}

// IsSatisfiedBy implements cron.Specification.
func (e *Expression) IsSatisfiedBy(t time.Time) bool {
	return e.spec.IsSatisfiedBy(e.in(t))
}

// IsDue reports whether t matches the expression. Seconds are ignored.
func (e *Expression) IsDue(t time.Time) bool {
	return e.IsSatisfiedBy(t)
}

// Next returns the first matching instant strictly after from.
//
// Next returns 0(Time.IsZero()) if nothing matches within the horizon or
// if from is itself a zero value.
func (e *Expression) Next(from time.Time) time.Time {
	if from.IsZero() {
		return from
	}

	from = e.in(from)
	start := cron.TruncateMinute(from).Add(time.Minute)
	it := cron.NewIterator(start, e.spec, cron.WithEnd(from.Add(e.horizon)))
	next, ok := it.Next()
	if !ok {
		return time.Time{}
	}
	return next
}

// Successors returns the matching instants from start on, start included
// when it falls on a whole minute. An optional end bounds the sequence.
func (e *Expression) Successors(start time.Time, end ...time.Time) iter.Seq[time.Time] {
	var options []cron.IteratorOption
	if len(end) > 0 {
		options = append(options, cron.WithEnd(end[0]))
	}
	return cron.Successors(e.in(start), e.spec, options...)
}

// Upcoming returns the next n matching instants strictly after from.
// Fewer are returned when the horizon is exhausted.
func (e *Expression) Upcoming(from time.Time, n int) []time.Time {
	return Sequence(e, from, n)
}

func (e *Expression) in(t time.Time) time.Time {
	if e.loc == nil {
		return t
	}
	return t.In(e.loc)
}
