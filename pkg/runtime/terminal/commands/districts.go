package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func NewDistrictsCmd(factory ControllerFactory, output io.Writer) *cobra.Command {
	var (
		surveyPath   string
		boundaryPath string
		aliasPath    string
	)

	cmd := &cobra.Command{
		Use:   "districts",
		Short: "Join survey scores to district boundaries and print the bucketed map data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ctrl, err := factory(ctx, surveyPath, boundaryPath, aliasPath)
			if err != nil {
				return fmt.Errorf("failed to initialize report controller: %w", err)
			}

			join, err := ctrl.Districts(ctx)
			if err != nil {
				return fmt.Errorf("failed to join districts: %w", err)
			}

			sep := fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", 22), strings.Repeat("-", 10),
				strings.Repeat("-", 12), strings.Repeat("-", 9))

			fmt.Fprintln(output, sep)
			fmt.Fprintf(output, "| %-20s | %8s | %-10s | %-7s |\n", "District", "Score", "Bucket", "Color")
			fmt.Fprintln(output, sep)
			for _, entry := range join.Entries {
				score := "no data"
				if entry.Score != nil {
					score = fmt.Sprintf("%.2f", *entry.Score)
				}
				fmt.Fprintf(output, "| %-20s | %8s | %-10s | %-7s |\n",
					entry.Name, score, entry.Bucket.Key, entry.Bucket.Color)
			}
			fmt.Fprintln(output, sep)

			if len(join.Unmatched) > 0 {
				fmt.Fprintf(output, "Unmatched survey districts: %s\n", strings.Join(join.Unmatched, ", "))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&surveyPath, "survey", "", "path to the survey CSV export")
	cmd.Flags().StringVar(&boundaryPath, "boundaries", "", "path to the district boundary GeoJSON")
	cmd.Flags().StringVar(&aliasPath, "aliases", "", "path to a district alias INI file (built-in table when omitted)")
	_ = cmd.MarkFlagRequired("survey")
	_ = cmd.MarkFlagRequired("boundaries")

	return cmd
}
