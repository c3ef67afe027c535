// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"math/bits"
	"os"
	"strconv"

	"github.com/recsum/recsum/pkg/combine"
	"github.com/recsum/recsum/pkg/driver"
	"github.com/recsum/recsum/pkg/errors"
	"github.com/recsum/recsum/pkg/record"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSumCommand(config *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [left right]",
		Short: "Combine two records twice and print both sums",
		Args:  validateSumArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSumCommand(cmd, args, config)
		},
	}
	return cmd
}

func addSumFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Uint("left", driver.DefaultLeft, "the left record's value")
	flags.Uint("right", driver.DefaultRight, "the right record's value")
	flags.String("policy", combine.Checked.String(), "the overflow policy (checked, wrapping, saturating)")
	flags.String("from", "", "a JSON or YAML file holding the two records")
	flags.StringP("output", "o", textOutput, "the output format (text, json, yaml)")
}

func validateSumArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return errors.NewInvalid("expected zero or two records, got %d", len(args))
	}
	return nil
}

func runSumCommand(cmd *cobra.Command, args []string, config *viper.Viper) error {
	x, y, err := getSumInputs(args, config)
	if err != nil {
		return err
	}

	policy, err := combine.ParsePolicy(config.GetString("policy"))
	if err != nil {
		return err
	}

	result, err := driver.Evaluate(x, y, combine.WithPolicy(policy))
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), result, config.GetString("output"))
}

func getSumInputs(args []string, config *viper.Viper) (record.Record, record.Record, error) {
	if len(args) == 2 {
		return parseRecords(args[0], args[1])
	}
	if path := config.GetString("from"); path != "" {
		return readRecords(path)
	}
	return parseRecords(config.GetString("left"), config.GetString("right"))
}

func parseRecords(left, right string) (record.Record, record.Record, error) {
	x, err := parseNum(left)
	if err != nil {
		return record.Record{}, record.Record{}, err
	}
	y, err := parseNum(right)
	if err != nil {
		return record.Record{}, record.Record{}, err
	}
	return record.New(x), record.New(y), nil
}

func parseNum(value string) (uint, error) {
	num, err := strconv.ParseUint(value, 0, bits.UintSize)
	if err != nil {
		return 0, errors.NewInvalid("'%s' is not a valid record value", value)
	}
	return uint(num), nil
}

func readRecords(path string) (record.Record, record.Record, error) {
	codec, err := record.CodecFor[[]record.Record](path)
	if err != nil {
		return record.Record{}, record.Record{}, err
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return record.Record{}, record.Record{}, errors.NewInvalid("failed to read records: %v", err)
	}
	records, err := codec.Decode(bytes)
	if err != nil {
		return record.Record{}, record.Record{}, err
	}
	if len(records) != 2 {
		return record.Record{}, record.Record{}, errors.NewInvalid("%s holds %d records, expected 2", path, len(records))
	}
	log.Debugf("Read %s and %s from %s", records[0], records[1], path)
	return records[0], records[1], nil
}
