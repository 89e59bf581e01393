// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cronseq

import "time"

// DefaultHorizon bounds how far Expression.Next searches.
const DefaultHorizon = 30 * 366 * 24 * time.Hour

// An Option configures an Expression.
type Option interface {
	apply(*Expression)
}

// optionFunc wraps a func so it satisfies the Option interface.
type optionFunc func(*Expression)

func (f optionFunc) apply(e *Expression) {
	f(e)
}

// WithLocation evaluates instants in location instead of their own.
func WithLocation(location *time.Location) Option {
	return optionFunc(func(e *Expression) {
		if location == nil {
			return
		}
		e.loc = location
	})
}

// WithHorizon configures how far Next looks ahead before giving up.
func WithHorizon(horizon time.Duration) Option {
	return optionFunc(func(e *Expression) {
		if horizon <= 0 {
			return
		}
		e.horizon = horizon
	})
}
