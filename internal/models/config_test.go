package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
seed: 42
categories: [pizza, doces]
restaurants_per_category: 5
database:
  driver: sqlite3
  dsn: ":memory:"
export:
  format: parquet
`)
	cfg, err := LoadConfigWith(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, []string{"pizza", "doces"}, cfg.Categories)
	assert.Equal(t, 5, cfg.RestaurantsPerCategory)
	assert.Equal(t, 10, cfg.ProductsPerRestaurant)
	assert.Equal(t, IDResolutionDirect, cfg.IDResolution)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "parquet", cfg.Export.Format)
	assert.Equal(t, "local", cfg.Export.Destination)
	assert.Equal(t, 30, cfg.Cleanup.DaysOld)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "restaurants_per_category: 5\n")
	t.Setenv("FOODCATALOG_RESTAURANTS_PER_CATEGORY", "7")
	t.Setenv("FOODCATALOG_CATEGORIES", "japonesa,árabe")
	t.Setenv("FOODCATALOG_DATABASE_HOST", "db.internal")

	cfg, err := LoadConfigWith(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RestaurantsPerCategory)
	assert.Equal(t, []string{"japonesa", "árabe"}, cfg.Categories)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfigWith(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{IDResolution: IDResolutionReload, Export: ExportConfig{Format: "csv"}}
	}
	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.RestaurantsPerCategory = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.IDResolution = "guess"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Export.Format = "xlsx"
	assert.Error(t, cfg.Validate())
}

func TestPostgresDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "db", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=db sslmode=disable", d.PostgresDSN())
	d.DSN = "postgres://x"
	assert.Equal(t, "postgres://x", d.PostgresDSN())
}
