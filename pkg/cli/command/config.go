// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/recsum/recsum/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "RECSUM"

var configKeys = []string{
	"left",
	"right",
	"policy",
	"from",
	"output",
	"log-level",
}

func newConfigCommand(config *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <subcommand>",
		Short: "Read CLI configuration options",
	}
	cmd.AddCommand(newConfigGetCommand(config))
	return cmd
}

func newConfigGetCommand(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Args:      cobra.ExactArgs(1),
		ValidArgs: configKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGetCommand(cmd, args, config)
		},
	}
}

func runConfigGetCommand(cmd *cobra.Command, args []string, config *viper.Viper) error {
	if !isConfigKey(args[0]) {
		return errors.NewInvalid("unknown config key '%s'", args[0])
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
	return err
}

func isConfigKey(key string) bool {
	for _, configKey := range configKeys {
		if key == configKey {
			return true
		}
	}
	return false
}

func initConfig(config *viper.Viper, configFile string) error {
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		config.SetConfigName("config")
		config.AddConfigPath(filepath.Join(home, ".recsum"))
		config.AddConfigPath("/etc/recsum")
		config.AddConfigPath(".")
	}

	if err := config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.NewInvalid("failed to read config: %v", err)
	}
	log.Debugf("Using config file %s", config.ConfigFileUsed())
	return nil
}
