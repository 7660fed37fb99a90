package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/iniq/internal/launcher"
	"github.com/dzjyyds666/iniq/internal/log"
)

type LauncherParams struct {
	Input string `json:"input"` // launcher.ini path
}

var launcherParams = &LauncherParams{}

var launcherCmd = &cobra.Command{
	Use:   "launcher",
	Short: "Show the game launcher setup read from launcher.ini",
	Long: `Show the game launcher setup read from launcher.ini.

A missing file is not an error: the launcher falls back to its defaults.`,
	RunE: launcherRun,
}

func init() {
	launcherCmd.Flags().StringVarP(&launcherParams.Input, "input", "i", launcher.DefaultFile, "launcher.ini path")
}

func launcherRun(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	setup, err := launcher.Load(launcherParams.Input, opts...)
	if err != nil {
		logger := log.WithComponent("launcher")
		logger.Warn().
			Err(err).
			Str("event", "launcher.defaults").
			Msg("using default launcher setup")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "title:  %s\n", setup.Title)
	fmt.Fprintf(out, "game:   %s\n", setup.GamePath)
	fmt.Fprintf(out, "editor: %s\n", setup.EditorPath)
	return nil
}
