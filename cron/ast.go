// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"strconv"
	"strings"
)

// Expr is a node of a parsed cron expression.
//
// The set of nodes is closed: NoOp, Value, LastValue, AnyValue, Per, Range,
// List and CronExpr.
type Expr interface {
	exprNode()
	String() string
}

// NoOp marks an absent step modifier. It never matches on its own.
type NoOp struct{}

// Value is a literal field value.
type Value struct {
	N int
}

// LastValue matches the last value of a field in the current calendar
// context, e.g. the last day of the month.
type LastValue struct{}

// AnyValue matches every value ("*").
type AnyValue struct{}

// Per matches every Option-th unit starting from Digit.
// Digit is AnyValue for "*/n" and a Value for "a/n".
type Per struct {
	Digit  Expr
	Option Expr
}

// Range matches the inclusive range [From, To], stepped by PerOption
// when PerOption is a Value.
type Range struct {
	From      Expr
	To        Expr
	PerOption Expr
}

// List matches when any of its alternatives matches.
type List struct {
	Exprs []Expr
}

// CronExpr is the root of a parsed expression. A time matches when all five
// fields match.
type CronExpr struct {
	Minutes    Expr
	Hours      Expr
	Days       Expr
	Months     Expr
	DaysOfWeek Expr
}

func (NoOp) exprNode()      {}
func (Value) exprNode()     {}
func (LastValue) exprNode() {}
func (AnyValue) exprNode()  {}
func (Per) exprNode()       {}
func (Range) exprNode()     {}
func (List) exprNode()      {}
func (CronExpr) exprNode()  {}

func (NoOp) String() string { return "" }

func (v Value) String() string { return strconv.Itoa(v.N) }

func (LastValue) String() string { return "L" }

func (AnyValue) String() string { return "*" }

func (p Per) String() string {
	return p.Digit.String() + "/" + p.Option.String()
}

func (r Range) String() string {
	s := r.From.String() + "-" + r.To.String()
	if _, ok := r.PerOption.(Value); ok {
		s += "/" + r.PerOption.String()
	}
	return s
}

func (l List) String() string {
	items := make([]string, len(l.Exprs))
	for i, e := range l.Exprs {
		items[i] = e.String()
	}
	return strings.Join(items, ",")
}

func (c CronExpr) String() string {
	return strings.Join([]string{
		c.Minutes.String(),
		c.Hours.String(),
		c.Days.String(),
		c.Months.String(),
		c.DaysOfWeek.String(),
	}, " ")
}

// newList returns the single element itself when exprs has length one.
func newList(exprs []Expr) Expr {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return List{Exprs: exprs}
}
