// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cnotch/cronseq"
)

var errNoMatch = errors.New("no match")

func newNextCmd(opts *rootOptions) *cobra.Command {
	var (
		count int
		from  string
		until string
	)

	cmd := &cobra.Command{
		Use:   "next <expression>",
		Short: "Print the upcoming instants matched by an expression",
		Example: `  cronseq next "0-59/30 0-23/2 * * *" -n 5 --from 2021-01-01T01:01:00Z
  cronseq next "0 9 * * MON" --until 2030-01-01T00:00:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)

			loc, err := opts.location()
			if err != nil {
				return err
			}
			expr, err := cronseq.Parse(args[0], cronseq.WithLocation(loc))
			if err != nil {
				return err
			}

			start := time.Now()
			if from != "" {
				if start, err = parseInstant(from, loc); err != nil {
					return fmt.Errorf("--from: %w", err)
				}
			}

			var end []time.Time
			if until != "" {
				u, err := parseInstant(until, loc)
				if err != nil {
					return fmt.Errorf("--until: %w", err)
				}
				end = append(end, u)
			} else if count <= 0 {
				return errors.New("an unbounded listing needs --count or --until")
			}

			log.Debug("listing successors", "expression", expr.String(), "from", start, "until", until, "count", count)
			n := 0
			for t := range expr.Successors(start, end...) {
				fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
				n++
				if count > 0 && n == count {
					break
				}
			}
			log.Debug("listing done", "printed", n)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of instants to print (0 = until --until)")
	cmd.Flags().StringVar(&from, "from", "", "first candidate instant, RFC3339 (default: now)")
	cmd.Flags().StringVar(&until, "until", "", "last candidate instant, RFC3339")
	return cmd
}

func newMatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <expression> <instant>",
		Short: "Report whether an RFC3339 instant matches an expression",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)

			loc, err := opts.location()
			if err != nil {
				return err
			}
			expr, err := cronseq.Parse(args[0], cronseq.WithLocation(loc))
			if err != nil {
				return err
			}
			t, err := parseInstant(args[1], loc)
			if err != nil {
				return err
			}

			due := expr.IsDue(t)
			log.Debug("evaluated", "expression", expr.String(), "instant", t, "due", due)
			fmt.Fprintln(cmd.OutOrStdout(), due)
			if !due {
				return errNoMatch
			}
			return nil
		},
	}
}

func (o *rootOptions) location() (*time.Location, error) {
	if o.tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.tz)
	if err != nil {
		return nil, fmt.Errorf("--tz: %w", err)
	}
	return loc, nil
}

// parseInstant accepts RFC3339, or a zone-less "2006-01-02T15:04" read in loc.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, loc)
}
