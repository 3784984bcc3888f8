package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	SurveyDriverCSV      = "csv"
	SurveyDriverPostgres = "postgres"

	BoundarySourceFile = "file"
	BoundarySourceS3   = "s3"
)

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type SurveyConfig struct {
	// Driver selects the row store backend: "csv" or "postgres".
	Driver string `mapstructure:"driver"`
	// Path is the CSV export location for the csv driver.
	Path string `mapstructure:"path"`
	// DSN is the connection string for the postgres driver.
	DSN string `mapstructure:"dsn"`
}

type BoundariesConfig struct {
	// Source selects the boundary dataset backend: "file" or "s3".
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	Bucket string `mapstructure:"bucket"`
	Key    string `mapstructure:"key"`
}

type AliasesConfig struct {
	// Path points at an ini alias table. Empty keeps the built-in table.
	Path string `mapstructure:"path"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Survey     SurveyConfig     `mapstructure:"survey"`
	Boundaries BoundariesConfig `mapstructure:"boundaries"`
	Aliases    AliasesConfig    `mapstructure:"aliases"`
}

// Load reads the app config file and applies defaults. The file format is
// whatever viper recognizes from the extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("survey.driver", SurveyDriverCSV)
	v.SetDefault("boundaries.source", BoundarySourceFile)
	v.SetDefault("boundaries.path", "distrito_all_s.geojson")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Survey.Driver {
	case SurveyDriverCSV:
		if c.Survey.Path == "" {
			return fmt.Errorf("survey.path is required for the csv driver")
		}
	case SurveyDriverPostgres:
		if c.Survey.DSN == "" {
			return fmt.Errorf("survey.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown survey driver %q", c.Survey.Driver)
	}

	switch c.Boundaries.Source {
	case BoundarySourceFile:
		if c.Boundaries.Path == "" {
			return fmt.Errorf("boundaries.path is required for the file source")
		}
	case BoundarySourceS3:
		if c.Boundaries.Bucket == "" || c.Boundaries.Key == "" {
			return fmt.Errorf("boundaries.bucket and boundaries.key are required for the s3 source")
		}
	default:
		return fmt.Errorf("unknown boundaries source %q", c.Boundaries.Source)
	}
	return nil
}
