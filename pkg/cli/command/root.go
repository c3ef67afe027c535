// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/recsum/recsum/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logging.GetLogger("recsum", "cli")

type GlobalFlags struct {
	Config   string
	LogLevel string
}

// GetRootCommand returns the recsum command. Run without a subcommand it
// behaves like "recsum sum".
func GetRootCommand() *cobra.Command {
	config := viper.New()
	globalFlags := &GlobalFlags{}

	cmd := &cobra.Command{
		Use:           "recsum [left right]",
		Short:         "Combine two records and print both sums",
		Args:          validateSumArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := initConfig(config, globalFlags.Config); err != nil {
				return err
			}
			return initLogging(config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSumCommand(cmd, args, config)
		},
	}

	cmd.PersistentFlags().StringVar(&globalFlags.Config, "config", "", "config file (default is $HOME/.recsum/config.yaml)")
	cmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", logging.WarnLevel.String(), "the log level (debug, info, warn, error)")
	addSumFlags(cmd)

	config.SetDefault("log-level", logging.WarnLevel.String())

	cmd.AddCommand(newSumCommand(config))
	cmd.AddCommand(newConfigCommand(config))
	return cmd
}

func initLogging(config *viper.Viper) error {
	level, err := logging.ParseLevel(config.GetString("log-level"))
	if err != nil {
		return err
	}
	logging.SetLevel(level)
	return nil
}
