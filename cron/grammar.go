// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar structs for the participle parser.
// Domains are not checked here, see fieldSpec.

var cronLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Name", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[*/,-]`},
	{Name: "Space", Pattern: ` `},
})

var cronParser = participle.MustBuild[cronGrammar](
	participle.Lexer(cronLexer),
	participle.UseLookahead(4),
)

// Fields are separated by exactly one space.
type cronGrammar struct {
	Minutes    *fieldGrammar `parser:"@@ Space"`
	Hours      *fieldGrammar `parser:"@@ Space"`
	Days       *fieldGrammar `parser:"@@ Space"`
	Months     *fieldGrammar `parser:"@@ Space"`
	DaysOfWeek *fieldGrammar `parser:"@@"`
}

type fieldGrammar struct {
	Items []*itemGrammar `parser:"@@ ( ',' @@ )*"`
}

// Alternatives are tried in order: "*/n", "*", "a-b[/n]", "a/n", "a".
type itemGrammar struct {
	Pos lexer.Position

	Per   *perGrammar   `parser:"  @@"`
	Any   bool          `parser:"| @'*'"`
	Range *rangeGrammar `parser:"| @@"`
	Step  *stepGrammar  `parser:"| @@"`
	Value *valueGrammar `parser:"| @@"`
}

type perGrammar struct {
	Option string `parser:"'*' '/' @Int"`
}

type rangeGrammar struct {
	From   *valueGrammar `parser:"@@ '-'"`
	To     *valueGrammar `parser:"@@"`
	Option *string       `parser:"( '/' @Int )?"`
}

type stepGrammar struct {
	From   *valueGrammar `parser:"@@ '/'"`
	Option string        `parser:"@Int"`
}

type valueGrammar struct {
	Int  *string `parser:"  @Int"`
	Name *string `parser:"| @Name"`
}

func (v *valueGrammar) text() string {
	if v.Int != nil {
		return *v.Int
	}
	return *v.Name
}
