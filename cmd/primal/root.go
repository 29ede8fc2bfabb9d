package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primal/internal/config"
)

// cliContext carries the resolved settings shared by every subcommand.
type cliContext struct {
	configFlag string
	logLevel   string
	format     string
	sorted     bool
	strict     bool

	cfg *config.Config
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	ctx := &cliContext{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "primal",
		Short:         "prime factorization, GCF and LCM of unsigned integers",
		Long:          `primal factorizes uint32 numbers by trial division and derives their greatest common factor and least common multiple from the prime powers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "TOML configuration file")
	flags.StringVar(&ctx.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVarP(&ctx.format, "format", "f", "", "output format: table or plain")
	flags.BoolVarP(&ctx.sorted, "sorted", "s", false, "sort prime factors by base")
	flags.BoolVar(&ctx.strict, "strict", false, "fail instead of wrapping when the LCM overflows uint32")

	rootCmd.AddCommand(newFactorsCommand(ctx))
	rootCmd.AddCommand(newLCMCommand(ctx))
	rootCmd.AddCommand(newGCFCommand(ctx))
	rootCmd.AddCommand(newDemoCommand(ctx))

	return rootCmd
}

// resolve loads the config file, applies flags that were set explicitly and
// configures the logger.
func (c *cliContext) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configFlag)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(c.logLevel)
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(c.format)
	}
	if flags.Changed("sorted") {
		cfg.Sorted = c.sorted
	}
	if flags.Changed("strict") {
		cfg.Strict = c.strict
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	c.cfg = cfg
	c.log.SetOutput(cmd.ErrOrStderr())
	c.log.SetLevel(cfg.Level())
	if c.configFlag != "" {
		c.log.Infof("loaded config %s", c.configFlag)
	}
	c.log.WithFields(logrus.Fields{
		"format": cfg.Format,
		"sorted": cfg.Sorted,
		"strict": cfg.Strict,
	}).Debug("settings resolved")

	return nil
}
