// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"

	"github.com/recsum/recsum/pkg/driver"
	"github.com/recsum/recsum/pkg/errors"
	"github.com/recsum/recsum/pkg/record"
)

const (
	// http://tldp.org/LDP/abs/html/exitcodes.html
	ExitSuccess = iota
	ExitError
	ExitBadConnection
	ExitInvalidInput
	ExitBadFeature
	ExitInterrupted
	ExitIO
	ExitBadArgs = 128
)

const (
	textOutput = "text"
	jsonOutput = "json"
	yamlOutput = "yaml"
)

// ExitCodeFor returns the process exit code for the given error
func ExitCodeFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.Invalid:
		return ExitInvalidInput
	default:
		return ExitError
	}
}

func ExitWithError(code int, err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(code)
}

func writeResult(out io.Writer, result driver.Result, format string) error {
	var codec record.Codec[driver.Result]
	switch format {
	case textOutput, "":
		return result.WriteText(out)
	case jsonOutput:
		codec = record.JSON[driver.Result]()
	case yamlOutput:
		codec = record.YAML[driver.Result]()
	default:
		return errors.NewInvalid("unknown output format '%s'", format)
	}

	bytes, err := codec.Encode(result)
	if err != nil {
		return err
	}
	if format == jsonOutput {
		bytes = append(bytes, '\n')
	}
	_, err = out.Write(bytes)
	return err
}
