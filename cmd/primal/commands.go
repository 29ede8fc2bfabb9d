package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primal/internal/config"
	"github.com/katalvlaran/primal/prime"
	"github.com/katalvlaran/primal/reduce"
)

// demoNumbers is the set used by the demo command.
var demoNumbers = []uint32{8, 12, 20}

func newFactorsCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "factors N...",
		Short: "print the prime factorization of each number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}
			ctx.writeFactors(cmd.OutOrStdout(), numbers)
			return nil
		},
	}
}

func newLCMCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lcm [N...]",
		Short: "print the least common multiple of the numbers",
		Long: `Prints the least common multiple computed from the union of prime powers.
Without arguments the result is 1. Any 0 makes the result 0. The result wraps
around on uint32 overflow unless --strict is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}
			v, err := ctx.lcm(numbers)
			if err != nil {
				return err
			}
			ctx.writeResult(cmd.OutOrStdout(), "LCM", numbers, v)
			return nil
		},
	}
}

func newGCFCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "gcf N...",
		Short: "print the greatest common factor of the numbers",
		Long: `Prints the greatest common factor computed from the intersection of prime
powers. Fails when no number is given or when one of them is 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}
			v, err := ctx.gcf(numbers)
			if err != nil {
				return err
			}
			ctx.writeResult(cmd.OutOrStdout(), "GCF", numbers, v)
			return nil
		},
	}
}

func newDemoCommand(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "factorize 3, then print the LCM and GCF of 8, 12 and 20",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx.writeFactors(out, []uint32{3})

			l, err := ctx.lcm(demoNumbers)
			if err != nil {
				return err
			}
			ctx.writeResult(out, "LCM", demoNumbers, l)

			g, err := ctx.gcf(demoNumbers)
			if err != nil {
				return err
			}
			ctx.writeResult(out, "GCF", demoNumbers, g)
			return nil
		},
	}
}

func (c *cliContext) lcm(numbers []uint32) (uint32, error) {
	c.log.Debugf("lcm of [%s]", formatNumbers(numbers))
	if c.cfg.Strict {
		v, err := reduce.LCMChecked(numbers)
		if err != nil {
			return 0, fmt.Errorf("lcm of [%s]: %w", formatNumbers(numbers), err)
		}
		return v, nil
	}

	return reduce.LCM(numbers), nil
}

func (c *cliContext) gcf(numbers []uint32) (uint32, error) {
	c.log.Debugf("gcf of [%s]", formatNumbers(numbers))
	v, err := reduce.GCF(numbers)
	if err != nil {
		return 0, fmt.Errorf("gcf of [%s]: %w", formatNumbers(numbers), err)
	}

	return v, nil
}

func (c *cliContext) factorize(n uint32) prime.Factorization {
	f := prime.Factors(n)
	if c.cfg.Sorted {
		f = f.Sorted()
	}
	c.log.Debugf("factors of %d: %s", n, f)

	return f
}

func (c *cliContext) writeFactors(w io.Writer, numbers []uint32) {
	if c.cfg.Format == config.FormatPlain {
		for _, n := range numbers {
			fmt.Fprintf(w, "%d = %s\n", n, c.factorize(n))
		}
		return
	}

	rows := make([][]string, 0, len(numbers))
	for _, n := range numbers {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(n), 10),
			c.factorize(n).String(),
			strconv.FormatBool(prime.IsPrime(n)),
		})
	}
	fmt.Fprintln(w, renderTable(w, []string{"Number", "Factors", "Prime"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft}))
}

func (c *cliContext) writeResult(w io.Writer, label string, numbers []uint32, v uint32) {
	c.log.Debugf("%s of [%s] = %d", label, formatNumbers(numbers), v)
	if c.cfg.Format == config.FormatPlain {
		fmt.Fprintln(w, v)
		return
	}

	rows := [][]string{{formatNumbers(numbers), strconv.FormatUint(uint64(v), 10)}}
	fmt.Fprintln(w, renderTable(w, []string{"Numbers", label}, rows,
		[]columnAlignment{alignLeft, alignRight}))
}
