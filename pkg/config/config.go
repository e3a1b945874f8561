package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS    CORSConfig
	Log     LogConfig
	Catalog CatalogConfig
	Search  SearchConfig
	Export  ExportConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig locates the course catalog. Path wins over URL.
type CatalogConfig struct {
	Path         string
	URL          string
	HeaderRow    int
	Delimiter    rune
	FetchTimeout time.Duration
}

// SearchConfig tunes schedule generation.
type SearchConfig struct {
	MaxNodes        int
	Timeout         time.Duration
	MaxSize         int
	TopN            int
	ElapsedGap      bool
	BackToBackBonus int
}

// ExportConfig holds what calendar and PDF exports need.
type ExportConfig struct {
	TermStart time.Time
	TermWeeks int
	Timezone  string
	FontPath  string
}

func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads the given env file if present, then the environment.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Catalog = CatalogConfig{
		Path:         v.GetString("CATALOG_PATH"),
		URL:          v.GetString("CATALOG_URL"),
		HeaderRow:    v.GetInt("CATALOG_HEADER_ROW"),
		Delimiter:    parseDelimiter(v.GetString("CATALOG_DELIMITER")),
		FetchTimeout: parseDuration(v.GetString("FETCH_TIMEOUT"), 15*time.Second),
	}

	cfg.Search = SearchConfig{
		MaxNodes:        v.GetInt("SEARCH_MAX_NODES"),
		Timeout:         parseDuration(v.GetString("SEARCH_TIMEOUT"), 10*time.Second),
		MaxSize:         v.GetInt("SEARCH_MAX_SIZE"),
		TopN:            v.GetInt("SEARCH_TOP_N"),
		ElapsedGap:      v.GetBool("SEARCH_ELAPSED_GAP"),
		BackToBackBonus: v.GetInt("SEARCH_BACK_TO_BACK_BONUS"),
	}

	cfg.Export = ExportConfig{
		TermStart: parseDate(v.GetString("TERM_START")),
		TermWeeks: v.GetInt("TERM_WEEKS"),
		Timezone:  v.GetString("TIMEZONE"),
		FontPath:  v.GetString("PDF_FONT_PATH"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("CATALOG_URL", "")
	v.SetDefault("CATALOG_HEADER_ROW", 1)
	v.SetDefault("CATALOG_DELIMITER", ",")
	v.SetDefault("FETCH_TIMEOUT", "15s")

	v.SetDefault("SEARCH_MAX_NODES", 5_000_000)
	v.SetDefault("SEARCH_TIMEOUT", "10s")
	v.SetDefault("SEARCH_MAX_SIZE", 0)
	v.SetDefault("SEARCH_TOP_N", 5)
	v.SetDefault("SEARCH_ELAPSED_GAP", false)
	v.SetDefault("SEARCH_BACK_TO_BACK_BONUS", 0)

	v.SetDefault("TERM_START", "")
	v.SetDefault("TERM_WEEKS", 16)
	v.SetDefault("TIMEZONE", "Asia/Seoul")
	v.SetDefault("PDF_FONT_PATH", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func parseDate(raw string) time.Time {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDelimiter(raw string) rune {
	switch raw {
	case "", ",":
		return ','
	case `\t`, "tab":
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
