package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/iniq/internal/export"
	"github.com/dzjyyds666/iniq/internal/log"
	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/dzjyyds666/iniq/pkg"
)

type WatchParams struct {
	Input  string `json:"input"`  // input file path
	Format string `json:"format"` // output format printed after each reload
}

var watchParams = &WatchParams{}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print an ini file and print it again every time it changes",
	RunE:  watchRun,
}

func init() {
	watchCmd.Flags().StringVarP(&watchParams.Input, "input", "i", "", "input file path")
	watchCmd.Flags().StringVarP(&watchParams.Format, "format", "f", string(export.FormatJSON), "output format (json, toml, yaml)")
}

func watchRun(cmd *cobra.Command, args []string) error {
	if err := pkg.CheckInputFile(watchParams.Input); err != nil {
		return err
	}
	format, err := export.ParseFormat(watchParams.Format)
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	holder, err := ini.NewHolder(watchParams.Input, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := export.Write(out, holder.Get(), format); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates := make(chan *ini.Document, 1)
	holder.Subscribe(updates)

	done := make(chan error, 1)
	go func() { done <- holder.Watch(ctx) }()

	logger := log.WithComponent("watch")
	for {
		select {
		case doc := <-updates:
			if err := export.Write(out, doc, format); err != nil {
				logger.Error().Err(err).Str("event", "watch.write_failed").Msg("failed to print document")
			}
		case err := <-done:
			return err
		}
	}
}
