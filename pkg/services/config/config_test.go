package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
server:
  addr: 0.0.0.0:9000
survey:
  driver: postgres
  dsn: postgres://atlas@localhost/survey?sslmode=disable
boundaries:
  source: s3
  bucket: geo-data
  key: distrito_all_s.geojson
aliases:
  path: aliases.ini
`))
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
		assert.Equal(t, SurveyDriverPostgres, cfg.Survey.Driver)
		assert.Equal(t, "geo-data", cfg.Boundaries.Bucket)
		assert.Equal(t, "aliases.ini", cfg.Aliases.Path)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "survey:\n  path: survey.csv\n"))
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
		assert.Equal(t, SurveyDriverCSV, cfg.Survey.Driver)
		assert.Equal(t, BoundarySourceFile, cfg.Boundaries.Source)
	})

	t.Run("csv driver requires a path", func(t *testing.T) {
		_, err := Load(writeConfig(t, "survey:\n  driver: csv\n"))
		assert.Error(t, err)
	})

	t.Run("postgres driver requires a dsn", func(t *testing.T) {
		_, err := Load(writeConfig(t, "survey:\n  driver: postgres\n"))
		assert.Error(t, err)
	})

	t.Run("unknown driver rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "survey:\n  driver: sqlite\n  path: x\n"))
		assert.Error(t, err)
	})

	t.Run("s3 source requires bucket and key", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
survey:
  path: survey.csv
boundaries:
  source: s3
  bucket: geo-data
`))
		assert.Error(t, err)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := Load("/does/not/exist.yaml")
		assert.Error(t, err)
	})
}
