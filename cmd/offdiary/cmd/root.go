// Package cmd provides the CLI commands for offdiary.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tail1887/offline-diary/internal/logging"
)

var (
	dataDir    string
	jsonOutput bool
	verbose    bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "offdiary",
	Short: "Offline diary - a local-first, optionally encrypted diary",
	Long: `offdiary keeps your diary in a local database, with per-entry
encryption protected by a password you choose.

Get started:
  offdiary signup <username>   Create an account
  offdiary login <username>    Log in
  offdiary new -t TITLE        Write an entry
  offdiary list                Browse entries

Examples:
  offdiary new -t "First day" --tags life,hello
  offdiary new -t "Secret" --encrypt
  offdiary list --search coding --sort latest
  offdiary show <id> --decrypt`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.offdiary)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initLogging() {
	level := "info"
	if isVerbose() {
		level = "debug"
	}
	logging.Setup(level)
}

// isVerbose returns whether verbose mode is enabled.
func isVerbose() bool {
	if verbose {
		return true
	}
	return viper.GetBool("verbose")
}
