package commands

import (
	"context"
	"fmt"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/runtime/terminal/export"
	"github.com/ht-tools/housing-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// ControllerFactory builds a report controller from the survey, boundary
// and alias paths supplied on the command line.
type ControllerFactory func(ctx context.Context, survey, boundaries, aliases string) (report.Controller, error)

func NewReportCmd(factory ControllerFactory, reporter *export.Reporter) *cobra.Command {
	var (
		surveyPath   string
		boundaryPath string
		aliasPath    string
		topReasons   int
		levels       []string
		districts    bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the full satisfaction report from a survey export",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ctrl, err := factory(ctx, surveyPath, boundaryPath, aliasPath)
			if err != nil {
				return fmt.Errorf("failed to initialize report controller: %w", err)
			}

			selected := make([]domain.SatisfactionLevel, 0, len(levels))
			for _, l := range levels {
				selected = append(selected, domain.SatisfactionLevel(l))
			}

			rep, err := ctrl.BuildReport(ctx, report.Options{
				Levels:           selected,
				TopReasons:       topReasons,
				IncludeDistricts: districts,
			})
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}

			return reporter.Handle(rep)
		},
	}

	cmd.Flags().StringVar(&surveyPath, "survey", "", "path to the survey CSV export")
	cmd.Flags().StringVar(&boundaryPath, "boundaries", "", "path to the district boundary GeoJSON")
	cmd.Flags().StringVar(&aliasPath, "aliases", "", "path to a district alias INI file (built-in table when omitted)")
	cmd.Flags().IntVar(&topReasons, "top", 3, "number of top dissatisfaction reasons to highlight")
	cmd.Flags().StringSliceVar(&levels, "levels", nil, "satisfaction levels to keep for the grouped sections (all when omitted)")
	cmd.Flags().BoolVar(&districts, "districts", false, "join district scores against the boundary dataset")
	_ = cmd.MarkFlagRequired("survey")

	return cmd
}
