package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ht-tools/housing-atlas/pkg/server"
	"github.com/ht-tools/housing-atlas/pkg/services/config"
	"github.com/ht-tools/housing-atlas/pkg/services/geo"
	"github.com/ht-tools/housing-atlas/pkg/services/report"
	"github.com/ht-tools/housing-atlas/pkg/services/satisfaction"
	"github.com/ht-tools/housing-atlas/pkg/store/geojson"
	surveystore "github.com/ht-tools/housing-atlas/pkg/store/survey"
	surveycsv "github.com/ht-tools/housing-atlas/pkg/store/survey/csv"
	surveypg "github.com/ht-tools/housing-atlas/pkg/store/survey/postgres"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Housing Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "housing-atlas.yaml",
		"Path to the housing-atlas config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dict := satisfaction.DefaultReasonDictionary()

	rows, err := surveyStore(ctx, cfg, dict)
	if err != nil {
		return err
	}

	boundaries, err := boundaryLoader(ctx, cfg)
	if err != nil {
		return err
	}

	aliases := geo.DefaultAliasTable()
	if cfg.Aliases.Path != "" {
		aliases, err = geo.LoadAliasTable(cfg.Aliases.Path)
		if err != nil {
			return fmt.Errorf("failed to load alias table: %w", err)
		}
	}

	logger.Info().
		Str("survey_driver", cfg.Survey.Driver).
		Str("boundary_source", cfg.Boundaries.Source).
		Int("alias_entries", aliases.Len()).
		Msg("configuration loaded")

	controller := report.NewController(report.Dependencies{
		Rows:       rows,
		Boundaries: boundaries,
		Aliases:    aliases,
		Scale:      satisfaction.DefaultScale(),
		Reasons:    dict,
	})

	api := server.NewWebAPI(logger, server.Config{
		Addr: cfg.Server.Addr,
		Dependencies: server.Dependencies{
			Reports: controller,
		},
	})

	return api.Start()
}

func surveyStore(
	ctx context.Context,
	cfg *config.Config,
	dict satisfaction.ReasonDictionary,
) (surveystore.Store, error) {
	switch cfg.Survey.Driver {
	case config.SurveyDriverCSV:
		return surveycsv.NewStore(cfg.Survey.Path, dict), nil
	case config.SurveyDriverPostgres:
		db, err := surveypg.Open(ctx, cfg.Survey.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return surveypg.NewStore(db, dict)
	default:
		return nil, fmt.Errorf("unknown survey driver %q", cfg.Survey.Driver)
	}
}

func boundaryLoader(ctx context.Context, cfg *config.Config) (geojson.Loader, error) {
	switch cfg.Boundaries.Source {
	case config.BoundarySourceFile:
		return geojson.NewFileLoader(cfg.Boundaries.Path), nil
	case config.BoundarySourceS3:
		loader, err := geojson.NewS3LoaderFromEnv(ctx, cfg.Boundaries.Bucket, cfg.Boundaries.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to build s3 boundary loader: %w", err)
		}
		return loader, nil
	default:
		return nil, fmt.Errorf("unknown boundaries source %q", cfg.Boundaries.Source)
	}
}
