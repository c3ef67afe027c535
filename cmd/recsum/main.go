// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/recsum/recsum/pkg/cli"

func main() {
	cli.Execute()
}
