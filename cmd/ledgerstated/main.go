package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insolar/ledgerstate/log"
)

const cmdName = "ledgerstated"

const version = "0.1.0"

var logger = log.Global()

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     cmdName,
		Version: version,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, configFlag, "c", "", "path to config file")

	rootCmd.AddCommand(
		runCommand(&configPath),
		versionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(fmt.Sprintf("%s execution failed", cmdName), err)
		os.Exit(1)
	}
}
