/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

func newRootCmd(args []string, ver string) *cobra.Command {
	return cobrau.PrepareRootCmd(
		"odataq",
		"OData query options parser",
		args,
		ver,
		newParseCmd(),
		newImportCmd(),
	)
}
