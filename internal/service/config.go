package service

import (
	"fmt"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/rhyrak/course-planner/internal/csvio"
	"github.com/rhyrak/course-planner/internal/exporter"
	"github.com/rhyrak/course-planner/internal/scheduler"
	"github.com/rhyrak/course-planner/pkg/config"
)

// NewCatalogSource builds the catalog source described by cfg.
func NewCatalogSource(cfg config.CatalogConfig) *csvio.Source {
	loader := csvio.DefaultLoaderConfig()
	loader.HeaderRow = cfg.HeaderRow
	if cfg.Delimiter != 0 {
		loader.Delimiter = cfg.Delimiter
	}
	var client *http.Client
	if cfg.FetchTimeout > 0 {
		client = &http.Client{Timeout: cfg.FetchTimeout}
	}
	return &csvio.Source{Path: cfg.Path, URL: cfg.URL, Config: loader, Client: client}
}

// NewPlannerConfig translates the search and export settings.
func NewPlannerConfig(cfg *config.Config) (PlannerConfig, error) {
	opts := scheduler.NewDefaultOptions()
	if cfg.Search.TopN > 0 {
		opts.TopN = cfg.Search.TopN
	}
	opts.MaxSize = cfg.Search.MaxSize
	opts.MaxNodes = cfg.Search.MaxNodes
	opts.Timeout = cfg.Search.Timeout
	opts.ElapsedGap = cfg.Search.ElapsedGap
	opts.BackToBackBonus = cfg.Search.BackToBackBonus

	term, err := NewTerm(cfg.Export)
	if err != nil {
		return PlannerConfig{}, err
	}
	return PlannerConfig{Options: opts, Term: term, FontPath: cfg.Export.FontPath}, nil
}

// NewTerm resolves the configured timezone and places the term start date
// in it.
func NewTerm(cfg config.ExportConfig) (exporter.Term, error) {
	loc := time.Local
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return exporter.Term{}, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}
	term := exporter.Term{Weeks: cfg.TermWeeks, Location: loc}
	if !cfg.TermStart.IsZero() {
		y, m, d := cfg.TermStart.Date()
		term.Start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	return term, nil
}
