// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import "time"

// Specification decides whether an instant is due.
type Specification interface {
	IsSatisfiedBy(t time.Time) bool
}

// SpecificationFunc is an adapter to allow the use of ordinary functions as the Specification interface.
type SpecificationFunc func(time.Time) bool

// IsSatisfiedBy calls f(t).
func (f SpecificationFunc) IsSatisfiedBy(t time.Time) bool {
	return f(t)
}

// ExprSpecification is the Specification of a parsed cron expression.
// It is immutable and safe for concurrent use.
type ExprSpecification struct {
	expr *CronExpr
}

// NewSpecification returns the Specification of expr.
func NewSpecification(expr *CronExpr) *ExprSpecification {
	return &ExprSpecification{expr: expr}
}

// IsSatisfiedBy reports whether t matches every field of the expression.
func (s *ExprSpecification) IsSatisfiedBy(t time.Time) bool {
	return Evaluate(t, s.expr)
}

// Expr returns the expression the specification was built from.
func (s *ExprSpecification) Expr() *CronExpr {
	return s.expr
}
