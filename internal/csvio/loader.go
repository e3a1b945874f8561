package csvio

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/rhyrak/course-planner/internal/scheduler"
	"github.com/rhyrak/course-planner/pkg/model"
)

var (
	// ErrEmptyCatalog is returned when the file has no header line.
	ErrEmptyCatalog = errors.New("catalog has no header row")
	// ErrMissingColumns is returned when the header row lacks a catalog
	// column, usually because HeaderRow does not match the file.
	ErrMissingColumns = errors.New("catalog header is missing columns")
)

// catalogColumns are the headers model.CatalogRow binds to.
var catalogColumns = []string{"교과목명", "학점", "학년", "수업교시", "주담당교수"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoaderConfig describes the layout of a catalog export.
type LoaderConfig struct {
	HeaderRow int  // lines to skip before the column header
	Delimiter rune // field separator, ',' when zero
}

func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{HeaderRow: 1, Delimiter: ','}
}

// LoadCatalog reads and parses given csv file for course data.
func LoadCatalog(path string, cfg LoaderConfig) ([]model.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data, cfg)
}

// FetchCatalog downloads a catalog export over HTTP.
func FetchCatalog(ctx context.Context, client *http.Client, url string, cfg LoaderConfig) ([]model.Course, error) {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}
	return ReadCatalog(resp.Body, cfg)
}

// ReadCatalog parses a catalog from r.
func ReadCatalog(r io.Reader, cfg LoaderConfig) ([]model.Course, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data, cfg)
}

// ParseCatalog decodes raw catalog bytes. Input that is not valid UTF-8 is
// read as CP949, the encoding of the Korean portal exports.
func ParseCatalog(data []byte, cfg LoaderConfig) ([]model.Course, error) {
	text, err := decode(data)
	if err != nil {
		return nil, err
	}
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ','
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = cfg.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	for i := 0; i < cfg.HeaderRow; i++ {
		if _, err := r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyCatalog
			}
			return nil, fmt.Errorf("skip preamble line %d: %w", i+1, err)
		}
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkColumns(header); err != nil {
		return nil, fmt.Errorf("header row %d: %w", cfg.HeaderRow+1, err)
	}

	rows := []*model.CatalogRow{}
	if err := gocsv.UnmarshalCSV(&headerReader{header: header, Reader: r}, &rows); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return normalize(rows), nil
}

func checkColumns(header []string) error {
	var missing []string
	for _, col := range catalogColumns {
		if !slices.Contains(header, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w %s (found %s)", ErrMissingColumns, strings.Join(missing, ", "), strings.Join(header, ", "))
	}
	return nil
}

// headerReader hands the already consumed header back to gocsv before the
// remaining records.
type headerReader struct {
	header []string
	*csv.Reader
}

func (h *headerReader) Read() ([]string, error) {
	if h.header != nil {
		rec := h.header
		h.header = nil
		return rec, nil
	}
	return h.Reader.Read()
}

func (h *headerReader) ReadAll() ([][]string, error) {
	rest, err := h.Reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if h.header == nil {
		return rest, nil
	}
	all := append([][]string{h.header}, rest...)
	h.header = nil
	return all, nil
}

func decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog as cp949: %w", err)
	}
	return out, nil
}

func normalize(rows []*model.CatalogRow) []model.Course {
	courses := make([]model.Course, 0, len(rows))
	for _, row := range rows {
		if blank(row) {
			continue
		}
		raw := strings.TrimSpace(row.Time)
		courses = append(courses, model.Course{
			ID:         len(courses),
			Name:       strings.TrimSpace(row.Name),
			Credit:     coerceCredit(row.Credit),
			Year:       strings.TrimSpace(row.Year),
			Instructor: strings.TrimSpace(row.Instructor),
			RawTime:    raw,
			Sessions:   scheduler.Parse(raw),
		})
	}
	return courses
}

func blank(row *model.CatalogRow) bool {
	return strings.TrimSpace(row.Name+row.Credit+row.Year+row.Time+row.Instructor) == ""
}

// coerceCredit turns "3", "3.0" or " 2 " into whole credits. Anything that
// is not a number, and negative values, count as 0.
func coerceCredit(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(f)
}

// Source loads a catalog once and serves it to concurrent requests.
type Source struct {
	Path   string
	URL    string
	Config LoaderConfig
	Client *http.Client

	mu      sync.Mutex
	courses []model.Course
}

// Catalog returns the cached catalog, loading it on first use. Failed
// loads are not cached.
func (s *Source) Catalog(ctx context.Context) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.courses != nil {
		return s.courses, nil
	}
	var courses []model.Course
	var err error
	switch {
	case s.Path != "":
		courses, err = LoadCatalog(s.Path, s.Config)
	case s.URL != "":
		courses, err = FetchCatalog(ctx, s.Client, s.URL, s.Config)
	default:
		err = errors.New("no catalog path or url configured")
	}
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	s.courses = courses
	return s.courses, nil
}
