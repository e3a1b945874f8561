package csvio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/rhyrak/course-planner/pkg/model"
)

const sampleCatalog = `2024학년도 1학기 개설강좌
교과목명,학점,학년,수업교시,주담당교수
자료구조,3,2,월(09:00~10:30)/수(09:00~10:30),김민수
운영체제,3.0,3,화(13:00~14:30),이영희
,,,,
캡스톤디자인,abc,4,,박지훈
`

func TestParseCatalog(t *testing.T) {
	courses, err := ParseCatalog([]byte(sampleCatalog), DefaultLoaderConfig())
	require.NoError(t, err)
	require.Len(t, courses, 3)

	ds := courses[0]
	require.Equal(t, 0, ds.ID)
	require.Equal(t, "자료구조", ds.Name)
	require.Equal(t, 3, ds.Credit)
	require.Equal(t, "김민수", ds.Instructor)
	require.Equal(t, []model.Session{
		{Day: model.Monday, Start: model.MustClock("09:00"), End: model.MustClock("10:30")},
		{Day: model.Wednesday, Start: model.MustClock("09:00"), End: model.MustClock("10:30")},
	}, ds.Sessions)

	require.Equal(t, 3, courses[1].Credit)
	require.Equal(t, 2, courses[2].ID)
	require.Equal(t, 0, courses[2].Credit)
	require.Empty(t, courses[2].Sessions)
}

func TestParseCatalogCP949(t *testing.T) {
	encoded, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(sampleCatalog))
	require.NoError(t, err)
	courses, err := ParseCatalog(encoded, DefaultLoaderConfig())
	require.NoError(t, err)
	require.Len(t, courses, 3)
	require.Equal(t, "운영체제", courses[1].Name)
	require.Equal(t, "이영희", courses[1].Instructor)
}

func TestParseCatalogWithoutPreamble(t *testing.T) {
	data := "\xEF\xBB\xBF교과목명;학점;학년;수업교시;주담당교수\n선형대수;2;1;목(10:00~12:00);최\n"
	courses, err := ParseCatalog([]byte(data), LoaderConfig{HeaderRow: 0, Delimiter: ';'})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "선형대수", courses[0].Name)
	require.Equal(t, 2, courses[0].Credit)
}

func TestParseCatalogEmpty(t *testing.T) {
	_, err := ParseCatalog([]byte("only a title line\n"), DefaultLoaderConfig())
	require.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestParseCatalogHeaderOnly(t *testing.T) {
	courses, err := ParseCatalog([]byte("title\n교과목명,학점,학년,수업교시,주담당교수\n"), DefaultLoaderConfig())
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestParseCatalogRejectsMisplacedHeader(t *testing.T) {
	data := "교과목명,학점,학년,수업교시,주담당교수\n자료구조,3,2,월(09:00~10:30),김민수\n운영체제,3,3,화(13:00~14:30),이영희\n"
	_, err := ParseCatalog([]byte(data), DefaultLoaderConfig())
	require.ErrorIs(t, err, ErrMissingColumns)
	require.ErrorContains(t, err, "header row 2")

	courses, err := ParseCatalog([]byte(data), LoaderConfig{HeaderRow: 0})
	require.NoError(t, err)
	require.Len(t, courses, 2)
}

func TestParseCatalogRejectsForeignHeaders(t *testing.T) {
	data := "title\nname,credit,year,time,prof\nA,3,1,월(09:00~10:30),Kim\n"
	_, err := ParseCatalog([]byte(data), DefaultLoaderConfig())
	require.ErrorIs(t, err, ErrMissingColumns)
	require.ErrorContains(t, err, "교과목명")
}

func TestParseCatalogReorderedColumns(t *testing.T) {
	data := "주담당교수, 수업교시 ,비고,교과목명,학년,학점\n김민수,월(09:00~10:30),,자료구조,2,3\n"
	courses, err := ParseCatalog([]byte(data), LoaderConfig{HeaderRow: 0})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "자료구조", courses[0].Name)
	require.Equal(t, 3, courses[0].Credit)
	require.Equal(t, "김민수", courses[0].Instructor)
	require.Len(t, courses[0].Sessions, 1)
}

func TestCoerceCredit(t *testing.T) {
	for in, want := range map[string]int{"3": 3, " 2 ": 2, "3.0": 3, "1.5": 1, "": 0, "x": 0, "-1": 0, "NaN": 0} {
		require.Equal(t, want, coerceCredit(in), in)
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))
	courses, err := LoadCatalog(path, DefaultLoaderConfig())
	require.NoError(t, err)
	require.Len(t, courses, 3)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.csv"), DefaultLoaderConfig())
	require.Error(t, err)
}

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	courses, err := FetchCatalog(context.Background(), srv.Client(), srv.URL+"/catalog.csv", DefaultLoaderConfig())
	require.NoError(t, err)
	require.Len(t, courses, 3)

	_, err = FetchCatalog(context.Background(), srv.Client(), srv.URL+"/nope", DefaultLoaderConfig())
	require.ErrorContains(t, err, "unexpected status code 404")
}

func TestSourceCachesSuccessOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	src := &Source{Path: path, Config: DefaultLoaderConfig()}

	_, err := src.Catalog(context.Background())
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))
	first, err := src.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 3)

	require.NoError(t, os.Remove(path))
	second, err := src.Catalog(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = (&Source{}).Catalog(context.Background())
	require.Error(t, err)
}
