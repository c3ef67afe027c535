// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/recsum/recsum/pkg/cli/command"
)

func Execute() {
	rootCmd := command.GetRootCommand()
	if err := rootCmd.Execute(); err != nil {
		command.ExitWithError(command.ExitCodeFor(err), err)
	}
}
