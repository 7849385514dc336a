// Package analyzer is the command line front end of the ordered-key index.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/ordtree/Trees"
)

type app struct {
	baseCmd *cobra.Command
	config  *configuration
	log     zerolog.Logger
}

// New creates the bstanalyzer application.
func New() *app {
	a := &app{config: &configuration{}, log: zerolog.Nop()}
	a.baseCmd = &cobra.Command{
		Use:           "bstanalyzer",
		Short:         "Build, inspect and edit binary search trees",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initialize(cmd); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}
	a.config.addConfigurationFlags(a.baseCmd)
	a.baseCmd.AddCommand(a.newSortCmd(), a.newBuildCmd(), a.newSessionCmd())
	return a
}

// Execute runs the application with the arguments of the process.
func (a *app) Execute(ctx context.Context) error {
	return a.baseCmd.ExecuteContext(ctx)
}

func (a *app) initialize(cmd *cobra.Command) error {
	var errs []error
	if err := a.config.initializeConfig(cmd); err != nil {
		errs = append(errs, fmt.Errorf("reading configuration: %w", err))
	}
	log, err := newLogger(cmd.ErrOrStderr(), a.config.LogLevel, a.config.LogFormat)
	if err != nil {
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	}
	a.log = log
	if _, err := a.config.strategy(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (a *app) newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort KEY...",
		Short: "Print the keys in ascending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinKeys(Trees.Sort(keys)))
			return nil
		},
	}
}

func (a *app) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [KEY...]",
		Short: "Build a tree with the configured strategy and print its traversals",
		Long:  "Build a tree with the configured strategy and print its traversals. Without keys the default keys are used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				keys = a.config.DefaultKeys
			}
			st, err := a.config.strategy()
			if err != nil {
				return err
			}
			t := st.Build(keys)
			a.log.Debug().Str(keyStrategy, string(st)).Uint32(keySize, t.Size()).Int(keyHeight, t.Height()).Msg("tree built")
			writeReport(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func (a *app) newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Edit a tree interactively, one command per line",
		Long:  "Edit a tree interactively, one command per line.\n\n" + strings.ReplaceAll(sessionHelp, "\n  ", "\n    "),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(a.config, a.log, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			a.log.Debug().Str(keyStrategy, string(s.strategy)).Bool(keyRebalanceDelete, a.config.RebalanceDelete).Msg("session started")
			return s.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}
