package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/course-planner/internal/csvio"
	"github.com/rhyrak/course-planner/internal/dto"
	"github.com/rhyrak/course-planner/pkg/config"
	appErrors "github.com/rhyrak/course-planner/pkg/errors"
)

func TestNewPlannerConfig(t *testing.T) {
	cfg := &config.Config{
		Search: config.SearchConfig{MaxNodes: 100, Timeout: time.Second, MaxSize: 4, TopN: 3, BackToBackBonus: 2},
		Export: config.ExportConfig{
			TermStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			TermWeeks: 15,
			Timezone:  "Asia/Seoul",
			FontPath:  "/fonts/nanum.ttf",
		},
	}

	pc, err := NewPlannerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, pc.Options.TopN)
	assert.Equal(t, 4, pc.Options.MaxSize)
	assert.Equal(t, 100, pc.Options.MaxNodes)
	assert.Equal(t, 2, pc.Options.BackToBackBonus)
	assert.Equal(t, "/fonts/nanum.ttf", pc.FontPath)
	assert.Equal(t, 15, pc.Term.Weeks)
	assert.Equal(t, "Asia/Seoul", pc.Term.Location.String())
	assert.Equal(t, "2026-03-01T15:00:00Z", pc.Term.Start.UTC().Format(time.RFC3339))
}

func TestNewPlannerConfigKeepsDefaultTopN(t *testing.T) {
	pc, err := NewPlannerConfig(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, 5, pc.Options.TopN)
	assert.True(t, pc.Term.Start.IsZero())
}

func TestNewTermBadTimezone(t *testing.T) {
	_, err := NewTerm(config.ExportConfig{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}

func TestNewCatalogSource(t *testing.T) {
	src := NewCatalogSource(config.CatalogConfig{Path: "catalog.csv", HeaderRow: 0, Delimiter: ';', FetchTimeout: time.Second})
	assert.Equal(t, "catalog.csv", src.Path)
	assert.Equal(t, 0, src.Config.HeaderRow)
	assert.Equal(t, ';', src.Config.Delimiter)
	require.NotNil(t, src.Client)
	assert.Equal(t, time.Second, src.Client.Timeout)
}

func TestGenerateReportsMisplacedCatalogHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	data := "교과목명,학점,학년,수업교시,주담당교수\n자료구조,3,2,월(09:00~10:30),김민수\n운영체제,3,3,화(13:00~14:30),이영희\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	src := NewCatalogSource(config.CatalogConfig{Path: path, HeaderRow: 1})
	svc, _, _ := newService(t, src)
	_, err := svc.Generate(context.Background(), dto.GenerateRequest{MaxCredit: intPtr(9)})

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrCatalog.Code, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.True(t, errors.Is(err, csvio.ErrMissingColumns))
}
