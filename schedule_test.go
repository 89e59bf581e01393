// Copyright (c) 2018,TianJin Tomatox  Technology Ltd. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cronseq

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type compsitetime struct {
	from     string
	expected bool
}
type compsitetest struct {
	compsite     func(l, r Schedule) Schedule
	op           string
	spec1, spec2 string
	layout       string
	times        []compsitetime
}

var compsitetests = []compsitetest{
	{
		Union, "∪",
		"*/6 * * * *", "*/15 * * * *",
		"Mon Jan 2 15:04 2006",
		[]compsitetime{
			{"Mon Jul 9 15:00 2012", true},
			{"Mon Jul 9 15:06 2012", true},
			{"Mon Jul 9 15:12 2012", true},
			{"Mon Jul 9 15:15 2012", true},
			{"Mon Jul 9 15:16 2012", false},
			{"Mon Jul 9 15:18 2012", true},
		},
	},
	{
		Minus, "-",
		"*/6 * * * *", "*/15 * * * *",
		"Mon Jan 2 15:04 2006",
		[]compsitetime{
			{"Mon Jul 9 15:00 2012", false},
			{"Mon Jul 9 15:06 2012", true},
			{"Mon Jul 9 15:12 2012", true},
			{"Mon Jul 9 15:15 2012", false},
			{"Mon Jul 9 15:16 2012", false},
			{"Mon Jul 9 15:18 2012", true},
		},
	},
	{
		Intersect, "∩",
		"*/6 * * * *", "*/15 * * * *",
		"Mon Jan 2 15:04 2006",
		[]compsitetime{
			{"Mon Jul 9 15:00 2012", true},
			{"Mon Jul 9 15:06 2012", false},
			{"Mon Jul 9 15:12 2012", false},
			{"Mon Jul 9 15:15 2012", false},
			{"Mon Jul 9 15:16 2012", false},
			{"Mon Jul 9 15:18 2012", false},
			{"Mon Jul 9 15:30 2012", true},
		},
	},
}

func TestCompsite(t *testing.T) {
	for _, test := range compsitetests {
		cron1 := MustParse(test.spec1)
		cron2 := MustParse(test.spec2)
		comp := test.compsite(cron1, cron2)

		for _, ctime := range test.times {
			from, _ := time.Parse(test.layout, ctime.from)
			from = from.Add(-1 * time.Second)
			next := comp.Next(from)
			nextstr := next.Format(test.layout)
			if ctime.expected {
				assert.True(t, ctime.from == nextstr, fmt.Sprintf("%s %s %s on %s",
					test.spec1, test.op, test.spec2, ctime.from))
			} else {
				assert.False(t, ctime.from == nextstr, fmt.Sprintf("%s %s %s on %s",
					test.spec1, test.op, test.spec2, ctime.from))
			}
		}
	}
}

// once fires a single time, at.
func once(at time.Time) Schedule {
	return ScheduleFunc(func(t time.Time) time.Time {
		if t.Before(at) {
			return at
		}
		return time.Time{}
	})
}

func TestCompsite_Termination(t *testing.T) {
	at := time.Date(2012, 7, 9, 15, 0, 0, 0, time.UTC)
	from := at.Add(-time.Hour)
	never := ScheduleFunc(func(time.Time) time.Time { return time.Time{} })

	assert.Equal(t, at, Union(never, once(at)).Next(from))
	assert.Equal(t, at, Union(once(at), never).Next(from))
	assert.True(t, Union(never, never).Next(from).IsZero())

	assert.Equal(t, at, Minus(once(at), never).Next(from))
	assert.True(t, Minus(once(at), once(at)).Next(from).IsZero())
	assert.True(t, Minus(never, once(at)).Next(from).IsZero())

	assert.True(t, Intersect(once(at), never).Next(from).IsZero())
	assert.Equal(t, at, Intersect(once(at), MustParse("0 * * * *")).Next(from))
}

func TestSequence(t *testing.T) {
	from := time.Date(2012, 7, 9, 15, 0, 0, 0, time.UTC)
	weekdays := Minus(MustParse("0 9 * * *"), MustParse("0 9 * * SAT,SUN"))

	got := Sequence(weekdays, from, 6)
	var days []string
	for _, t := range got {
		days = append(days, t.Format("Mon 02"))
	}
	assert.Equal(t, []string{"Tue 10", "Wed 11", "Thu 12", "Fri 13", "Mon 16", "Tue 17"}, days)

	at := from.Add(time.Hour)
	assert.Len(t, Sequence(once(at), from, 3), 1)
	assert.Nil(t, Sequence(once(at), from, 0))
	assert.Len(t, Sequence(once(at), from, math.MaxInt), 1)
}
