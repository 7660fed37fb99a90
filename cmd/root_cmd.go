package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/iniq/internal/log"
	"github.com/dzjyyds666/iniq/parse/ini"
)

type RootParams struct {
	LogLevel string `json:"log_level"` // log level, LOG_LEVEL when empty
	Encoding string `json:"encoding"`  // input encoding, raw bytes when empty
}

var rootParams = &RootParams{}

var rootCmd = &cobra.Command{
	Use:   "iniq",
	Short: "Iniq reads and queries ini configuration files.",
	Long:  "Iniq reads ini configuration files and answers typed lookups against them. It can also dump a file as json, toml or yaml and watch it for changes.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Configure(log.Config{Level: rootParams.LogLevel, Output: cmd.ErrOrStderr()})
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Iniq",
	Long:  `All software has versions. This is Iniq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Iniq v0.1 -- HEAD")
	},
}

// loadOptions builds the parser options shared by every subcommand.
func loadOptions() ([]ini.Option, error) {
	enc, err := ini.LookupEncoding(rootParams.Encoding)
	if err != nil {
		return nil, err
	}
	return []ini.Option{
		ini.WithLogger(log.WithComponent("ini")),
		ini.WithEncoding(enc),
	}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootParams.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&rootParams.Encoding, "encoding", "e", "", "input encoding, e.g. windows-1251")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(launcherCmd)
}
