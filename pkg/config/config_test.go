package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 1, cfg.Catalog.HeaderRow)
	assert.Equal(t, ',', cfg.Catalog.Delimiter)
	assert.Equal(t, 5_000_000, cfg.Search.MaxNodes)
	assert.Equal(t, 10*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 5, cfg.Search.TopN)
	assert.True(t, cfg.Export.TermStart.IsZero())
	assert.Equal(t, "Asia/Seoul", cfg.Export.Timezone)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_DELIMITER", ";")
	t.Setenv("SEARCH_TIMEOUT", "250ms")
	t.Setenv("SEARCH_ELAPSED_GAP", "true")
	t.Setenv("TERM_START", "2026-03-02")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ';', cfg.Catalog.Delimiter)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.Timeout)
	assert.True(t, cfg.Search.ElapsedGap)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), cfg.Export.TermStart)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOG_PATH=./res/catalog.csv\nSEARCH_TOP_N=3\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_PATH")
		os.Unsetenv("SEARCH_TOP_N")
	})

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./res/catalog.csv", cfg.Catalog.Path)
	assert.Equal(t, 3, cfg.Search.TopN)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("bogus", time.Minute))
	assert.Equal(t, '\t', parseDelimiter(`\t`))
	assert.Equal(t, '|', parseDelimiter("|"))
	assert.Nil(t, splitAndTrim(""))
}
