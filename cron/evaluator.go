// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import "time"

// Environment is the value of one field of an instant together with the
// largest value the field can take in the instant's calendar context.
type Environment struct {
	Now int
	Max int
}

// Evaluate reports whether t matches expr. The fields are read in t's
// location and combined with AND; day-of-month and day-of-week are no
// exception.
func Evaluate(t time.Time, expr *CronExpr) bool {
	if expr == nil {
		return false
	}
	return EvaluateField(Environment{t.Minute(), 59}, expr.Minutes) &&
		EvaluateField(Environment{t.Hour(), 23}, expr.Hours) &&
		EvaluateField(Environment{t.Day(), DaysInMonth(t.Year(), t.Month())}, expr.Days) &&
		EvaluateField(Environment{int(t.Month()), 12}, expr.Months) &&
		EvaluateField(Environment{weekday(t), 7}, expr.DaysOfWeek)
}

// EvaluateField reports whether the field value env.Now satisfies e.
// Shapes the parser never produces evaluate to false.
func EvaluateField(env Environment, e Expr) bool {
	switch e := e.(type) {
	case AnyValue:
		return true
	case LastValue:
		return env.Now == env.Max
	case Value:
		return env.Now == e.N
	case List:
		for _, item := range e.Exprs {
			if EvaluateField(env, item) {
				return true
			}
		}
		return false
	case Range:
		from, ok1 := e.From.(Value)
		to, ok2 := e.To.(Value)
		if !ok1 || !ok2 {
			return false
		}
		switch per := e.PerOption.(type) {
		case NoOp:
			return from.N <= env.Now && env.Now <= to.N
		case Value:
			return inSteps(env.Now, from.N, to.N, per.N)
		}
		return false
	case Per:
		per, ok := e.Option.(Value)
		if !ok {
			return false
		}
		switch digit := e.Digit.(type) {
		case AnyValue:
			return inSteps(env.Now, 0, env.Max, per.N)
		case Value:
			return inSteps(env.Now, digit.N, env.Max, per.N)
		}
		return false
	}
	return false
}

// inSteps reports whether n is one of start, start+step, ... not exceeding end.
func inSteps(n, start, end, step int) bool {
	if step <= 0 || n < start || n > end {
		return false
	}
	return (n-start)%step == 0
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return int(first.AddDate(0, 1, 0).Sub(first) / (24 * time.Hour))
}

// weekday numbers Sunday as 1 and Saturday as 7.
func weekday(t time.Time) int {
	return int(t.Weekday()) + 1
}
