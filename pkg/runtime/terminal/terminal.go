package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ht-tools/housing-atlas/pkg/runtime/terminal/commands"
	"github.com/ht-tools/housing-atlas/pkg/runtime/terminal/export"

	"github.com/ht-tools/housing-atlas/pkg/services/geo"
	"github.com/ht-tools/housing-atlas/pkg/services/report"
	"github.com/ht-tools/housing-atlas/pkg/services/satisfaction"
	"github.com/ht-tools/housing-atlas/pkg/store/geojson"
	surveycsv "github.com/ht-tools/housing-atlas/pkg/store/survey/csv"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	factory  commands.ControllerFactory
	reporter *export.Reporter
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory commands.ControllerFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Factory == nil {
		opts.Factory = defaultFactory
	}

	cli := &CLI{
		factory:  opts.Factory,
		reporter: export.NewReporter(opts.Output),
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "housing-atlas",
		Short: "Housing satisfaction survey analysis tool",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.factory, cli.reporter))
	cmd.AddCommand(commands.NewDistrictsCmd(cli.factory, cli.output))

	return cmd
}

// defaultFactory wires the file-backed stores: a CSV survey export, a
// GeoJSON boundary file and an optional INI alias table.
func defaultFactory(_ context.Context, survey, boundaries, aliases string) (report.Controller, error) {
	dict := satisfaction.DefaultReasonDictionary()

	aliasTable := geo.DefaultAliasTable()
	if aliases != "" {
		loaded, err := geo.LoadAliasTable(aliases)
		if err != nil {
			return nil, fmt.Errorf("failed to load alias table: %w", err)
		}
		aliasTable = loaded
	}

	return report.NewController(report.Dependencies{
		Rows:       surveycsv.NewStore(survey, dict),
		Boundaries: geojson.NewFileLoader(boundaries),
		Aliases:    aliasTable,
		Scale:      satisfaction.DefaultScale(),
		Reasons:    dict,
	}), nil
}
