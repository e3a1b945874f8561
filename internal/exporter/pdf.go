package exporter

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/rhyrak/course-planner/pkg/model"
)

const utf8Family = "planner"

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Day", 18},
	{"Time", 32},
	{"Course", 70},
	{"Instructor", 50},
	{"Credit", 20},
}

// PDFExporter renders ranked schedules as tables. Hangul needs a TrueType
// font with the glyphs; without FontPath the core Arial font is used.
type PDFExporter struct {
	FontPath string
}

func NewPDFExporter(fontPath string) *PDFExporter {
	return &PDFExporter{FontPath: fontPath}
}

// Render creates a PDF document with one table per schedule.
func (e *PDFExporter) Render(schedules []model.Schedule, title string) ([]byte, error) {
	if len(schedules) == 0 {
		return nil, fmt.Errorf("pdf requires at least one schedule")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)

	family := "Arial"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if e.FontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", e.FontPath)
		pdf.AddUTF8Font(utf8Family, "B", e.FontPath)
		family = utf8Family
		tr = func(s string) string { return s }
	}
	pdf.AddPage()

	if title != "" {
		pdf.SetFont(family, "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	for i, s := range schedules {
		pdf.SetFont(family, "B", 11)
		heading := fmt.Sprintf("#%d  %d credits, score %d", i+1, s.Credits, s.Score)
		if s.BackToBack {
			heading += ", back-to-back"
		}
		pdf.CellFormat(0, 8, heading, "", 1, "", false, 0, "")

		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(family, "", 9)
		for _, row := range tableRows(s) {
			for j, col := range pdfColumns {
				pdf.CellFormat(col.width, 7, tr(row[j]), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// tableRows lists sessions by weekday and start time, then courses that
// have no sessions.
func tableRows(s model.Schedule) [][]string {
	type entry struct {
		session model.Session
		course  model.Course
	}
	var entries []entry
	var rows [][]string
	var unscheduled [][]string
	for _, c := range s.Courses {
		if len(c.Sessions) == 0 {
			unscheduled = append(unscheduled, []string{"-", "-", c.Name, c.Instructor, strconv.Itoa(c.Credit)})
			continue
		}
		for _, ss := range c.Sessions {
			entries = append(entries, entry{ss, c})
		}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		if d := a.session.Day.Index() - b.session.Day.Index(); d != 0 {
			return d
		}
		return int(a.session.Start - b.session.Start)
	})
	for _, en := range entries {
		rows = append(rows, []string{
			en.session.Day.English(),
			en.session.Start.String() + "-" + en.session.End.String(),
			en.course.Name,
			en.course.Instructor,
			strconv.Itoa(en.course.Credit),
		})
	}
	return append(rows, unscheduled...)
}
