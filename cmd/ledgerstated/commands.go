package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const configFlag = "config"

func runCommand(configPath *string) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seed a demo ledger and replay a fixture transaction list through the transactor",
		Long: `Loads configuration (falling back to defaults if --config is not given),
seeds a small demo ledger, dispatches a fixed list of fixture transactions
through the Transactor driver, applies every persisting result to the
ledger, and prints the resulting transaction metadata as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(*configPath, !compact)
		},
	}

	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flags.BoolVar(&compact, "compact", false, "print metadata as compact JSON instead of indented")
	cmd.Flags().AddFlagSet(flags)

	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ledgerstated version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(cmdName, version)
		},
	}
}
