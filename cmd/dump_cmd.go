package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dzjyyds666/iniq/internal/export"
	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/dzjyyds666/iniq/pkg"
)

type DumpParams struct {
	Input  string `json:"input"`  // input file path
	Format string `json:"format"` // output format: json, toml or yaml
}

var dumpParams = &DumpParams{}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a whole ini file as json, toml or yaml",
	RunE:  dumpRun,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpParams.Input, "input", "i", "", "input file path")
	dumpCmd.Flags().StringVarP(&dumpParams.Format, "format", "f", string(export.FormatJSON), "output format (json, toml, yaml)")
}

func dumpRun(cmd *cobra.Command, args []string) error {
	if err := pkg.CheckInputFile(dumpParams.Input); err != nil {
		return err
	}
	format, err := export.ParseFormat(dumpParams.Format)
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	doc, err := ini.Load(dumpParams.Input, opts...)
	if err != nil {
		return err
	}
	return export.Write(cmd.OutOrStdout(), doc, format)
}
