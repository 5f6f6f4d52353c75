package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/passgen/version"
)

func newVersionCmd(root *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if root.jsonOutput {
				return writeJSON(cmd, info)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
