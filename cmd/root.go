// Package cmd implements the command-line interface of the adt module. It exercises the containers
// from the shell and reports on their behaviour.
//
// The package is organized into several subpackages:
//
//   - stat: Fills a hash dictionary and prints the slot table statistics
//   - bench: Benchmarks the dictionary implementations against each other
//   - util: Shared utilities for command-line processing, configuration and logging (internal use)
//
// See adt -help for a list of all commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/gostonefire/adt/cmd/bench"
	"github.com/gostonefire/adt/cmd/stat"
	"github.com/gostonefire/adt/cmd/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "adt",
		Short: "inspect and benchmark the adt containers",
		Long: fmt.Sprintf(`adt (v%s)

Fills the containers of the adt module with generated data and reports
slot table statistics and benchmark results.`, Version),
		PersistentPreRunE: processRootConfig,
		SilenceUsage:      true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of adt",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("adt v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(stat.StatCmd)
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
	key = "hash"
	RootCmd.PersistentFlags().String(key, "crc32", util.WrapString("hash algorithm used by the dictionaries (crc32, xxhash)"))
}

// processRootConfig binds the flags to viper and sets up logging before any sub command runs
func processRootConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindFlags(cmd); err != nil {
		return err
	}

	return util.InitLoggers(viper.GetString("log-level"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
