package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rhyrak/course-planner/internal/csvio"
	"github.com/rhyrak/course-planner/internal/service"
	"github.com/rhyrak/course-planner/internal/tui"
	"github.com/rhyrak/course-planner/pkg/config"
	"github.com/rhyrak/course-planner/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Build weekly class schedules from a course catalog",
	Long: `planner reads the course catalog, keeps the courses that match your
constraints and prints the conflict-free schedules with the most credits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.Error(err.Error()))
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("env-file", ".env", "Env file with planner settings")
	f.StringP("catalog", "c", "", "Catalog CSV file (overrides CATALOG_PATH)")
	f.String("url", "", "Catalog CSV URL (overrides CATALOG_URL)")
	f.Int("header-row", 1, "Number of preamble rows before the CSV header")
	f.String("delimiter", ",", "CSV field delimiter")
	f.Bool("plain", false, "Disable spinners and interactive styling")
	f.BoolP("verbose", "v", false, "Log search statistics")
}

// setup loads the configuration, applies persistent flag overrides and
// builds the logger. Without --verbose only warnings are logged.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	f := cmd.Flags()
	envFile, _ := f.GetString("env-file")
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if f.Changed("catalog") {
		cfg.Catalog.Path, _ = f.GetString("catalog")
	}
	if f.Changed("url") {
		cfg.Catalog.URL, _ = f.GetString("url")
		if !f.Changed("catalog") {
			cfg.Catalog.Path = ""
		}
	}
	if f.Changed("header-row") {
		cfg.Catalog.HeaderRow, _ = f.GetInt("header-row")
	}
	if f.Changed("delimiter") {
		raw, _ := f.GetString("delimiter")
		if d := []rune(raw); len(d) > 0 {
			cfg.Catalog.Delimiter = d[0]
		}
		if raw == `\t` {
			cfg.Catalog.Delimiter = '\t'
		}
	}

	cfg.Log.Format = "console"
	if verbose, _ := f.GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	} else {
		cfg.Log.Level = "warn"
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func newPlanner(cfg *config.Config, log *zap.Logger, pc service.PlannerConfig) *service.PlannerService {
	return service.NewPlannerService(newCatalogSource(cfg), nil, log, nil, pc)
}

func newCatalogSource(cfg *config.Config) *csvio.Source {
	return service.NewCatalogSource(cfg.Catalog)
}
