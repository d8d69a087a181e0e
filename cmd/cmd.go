package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func CljselCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "cljsel",
		Short:              `cljsel is a structural selection server for Lisp source`,
		DisableSuggestions: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(CmdServe())
	cmd.AddCommand(CmdVersion())

	return cmd
}

func Execute() {
	if err := CljselCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
