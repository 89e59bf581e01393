// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// ParseError reports a malformed or out-of-domain cron expression.
type ParseError struct {
	Field    string // "minute", "hour", ...; empty for structural errors
	Fragment string // offending part of the input
	Offset   int    // byte offset of Fragment in the input
	Msg      string
	Err      error // underlying grammar error, if any
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("syntax error at offset %d: '%s': %s", e.Offset, e.Fragment, e.Msg)
	}
	return fmt.Sprintf("syntax error in %s field: '%s' at offset %d: %s", e.Field, e.Fragment, e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var namedExpressions = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 1",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// MustParse returns a new CronExpr pointer.
// It expects a well-formed cron expression.
// If a malformed cron expression is supplied, it will `panic`.
func MustParse(spec string) *CronExpr {
	expr, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return expr
}

// Parse compiles spec into a CronExpr.
// spec has five fields separated by single spaces:
//
//	<minute> <hour> <day-of-month> <month> <day-of-week>
//
// or is one of @yearly, @annually, @monthly, @weekly, @daily, @midnight
// and @hourly. A *ParseError is returned for a malformed spec.
func Parse(spec string) (*CronExpr, error) {
	if len(spec) == 0 {
		return nil, &ParseError{Msg: "empty spec string"}
	}

	if strings.HasPrefix(spec, "@") {
		named, ok := namedExpressions[strings.ToLower(spec)]
		if !ok {
			return nil, &ParseError{Fragment: spec, Msg: "unrecognized name of cron expression"}
		}
		spec = named
	}

	g, err := cronParser.ParseString("", spec)
	if err != nil {
		return nil, grammarError(spec, err)
	}

	expr := &CronExpr{}
	fields := []struct {
		spec *fieldSpec
		src  *fieldGrammar
		dst  *Expr
	}{
		{&minuteField, g.Minutes, &expr.Minutes},
		{&hourField, g.Hours, &expr.Hours},
		{&dayOfMonthField, g.Days, &expr.Days},
		{&monthField, g.Months, &expr.Months},
		{&dayOfWeekField, g.DaysOfWeek, &expr.DaysOfWeek},
	}
	for _, f := range fields {
		e, err := f.spec.convert(spec, f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = e
	}
	return expr, nil
}

func grammarError(spec string, err error) error {
	perr := &ParseError{Fragment: spec, Msg: err.Error(), Err: err}
	var pe participle.Error
	if errors.As(err, &pe) {
		offset := pe.Position().Offset
		if offset > len(spec) {
			offset = len(spec)
		}
		perr.Offset = offset
		perr.Msg = pe.Message()
		perr.Fragment = fragmentAt(spec, offset)
	}
	return perr
}

// fragmentAt returns the field of spec containing offset.
func fragmentAt(spec string, offset int) string {
	start := strings.LastIndexByte(spec[:offset], ' ') + 1
	end := strings.IndexByte(spec[offset:], ' ')
	if end < 0 {
		return spec[start:]
	}
	if end == 0 {
		return spec[start:offset]
	}
	return spec[start : offset+end]
}

// fieldSpec describes the literal domain of one field.
type fieldSpec struct {
	name     string
	min, max int
	names    map[string]int // upper case name -> value
	last     bool           // accepts L
}

var (
	minuteField     = fieldSpec{name: "minute", min: 0, max: 59}
	hourField       = fieldSpec{name: "hour", min: 0, max: 23}
	dayOfMonthField = fieldSpec{name: "day of month", min: 1, max: 31, last: true}
	monthField      = fieldSpec{name: "month", min: 1, max: 12, names: map[string]int{
		"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
		"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
	}}
	dayOfWeekField = fieldSpec{name: "day of week", min: 1, max: 7, last: true, names: map[string]int{
		"SUN": 1, "MON": 2, "TUE": 3, "WED": 4, "THU": 5, "FRI": 6, "SAT": 7,
	}}
)

func (fs *fieldSpec) convert(spec string, field *fieldGrammar) (Expr, error) {
	exprs := make([]Expr, 0, len(field.Items))
	for _, item := range field.Items {
		e, err := fs.convertItem(spec, item)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return newList(exprs), nil
}

func (fs *fieldSpec) convertItem(spec string, item *itemGrammar) (Expr, error) {
	fragment := spec[item.Pos.Offset:]
	if end := strings.IndexAny(fragment, ", "); end >= 0 {
		fragment = fragment[:end]
	}
	fail := func(msg string) error {
		return &ParseError{
			Field:    fs.name,
			Fragment: fragment,
			Offset:   item.Pos.Offset,
			Msg:      msg,
		}
	}

	switch {
	case item.Per != nil:
		step, msg := fs.step(item.Per.Option)
		if msg != "" {
			return nil, fail(msg)
		}
		return Per{Digit: AnyValue{}, Option: step}, nil

	case item.Any:
		return AnyValue{}, nil

	case item.Range != nil:
		from, msg := fs.literal(item.Range.From)
		if msg != "" {
			return nil, fail(msg)
		}
		to, msg := fs.literal(item.Range.To)
		if msg != "" {
			return nil, fail(msg)
		}
		if from.N > to.N {
			return nil, fail(fmt.Sprintf("range start %d is after range end %d", from.N, to.N))
		}
		var option Expr = NoOp{}
		if item.Range.Option != nil {
			step, msg := fs.step(*item.Range.Option)
			if msg != "" {
				return nil, fail(msg)
			}
			option = step
		}
		return Range{From: from, To: to, PerOption: option}, nil

	case item.Step != nil:
		from, msg := fs.literal(item.Step.From)
		if msg != "" {
			return nil, fail(msg)
		}
		step, msg := fs.step(item.Step.Option)
		if msg != "" {
			return nil, fail(msg)
		}
		return Per{Digit: from, Option: step}, nil

	case item.Value != nil:
		if fs.last && strings.EqualFold(item.Value.text(), "L") {
			return LastValue{}, nil
		}
		v, msg := fs.literal(item.Value)
		if msg != "" {
			return nil, fail(msg)
		}
		return v, nil
	}
	return nil, fail("empty entry")
}

// literal converts a number or a name into a Value within the field domain.
// A non-empty message reports why it could not.
func (fs *fieldSpec) literal(v *valueGrammar) (Value, string) {
	if v.Name != nil {
		n, ok := fs.names[strings.ToUpper(*v.Name)]
		if !ok {
			return Value{}, fmt.Sprintf("unknown name %q", *v.Name)
		}
		return Value{N: n}, ""
	}

	s := *v.Int
	if len(s) > 2 {
		return Value{}, fmt.Sprintf("value %s has more than two digits", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Value{}, err.Error()
	}
	if n < fs.min || n > fs.max {
		return Value{}, fmt.Sprintf("value %d out of range %d-%d", n, fs.min, fs.max)
	}
	return Value{N: n}, ""
}

func (fs *fieldSpec) step(s string) (Value, string) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > fs.max {
		return Value{}, fmt.Sprintf("step %s out of range 1-%d", s, fs.max)
	}
	return Value{N: n}, ""
}
