package dto

import (
	"github.com/rhyrak/course-planner/internal/wizard"
	"github.com/rhyrak/course-planner/pkg/model"
)

// GenerateRequest is a schedule request as sent by clients.
type GenerateRequest struct {
	MaxCredit      *int     `json:"maxCredit" validate:"required,min=0,max=200"`
	ExcludedDays   []string `json:"excludedDays" validate:"omitempty,max=7,dive,required"`
	Instructor     string   `json:"instructor" validate:"max=100"`
	TimeOfDay      string   `json:"timeOfDay" validate:"omitempty,oneof=any morning afternoon 전체 아침 오후"`
	BackToBack     bool     `json:"backToBack"`
	DesiredCourses []string `json:"desiredCourses" validate:"omitempty,max=50,dive,required"`
	TopN           int      `json:"topN" validate:"omitempty,min=1,max=50"`
}

// CourseView is a schedule member as shown to clients.
type CourseView struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Instructor string          `json:"instructor"`
	Credit     int             `json:"credit"`
	Year       string          `json:"year,omitempty"`
	RawTime    string          `json:"rawTime"`
	Sessions   []model.Session `json:"sessions"`
}

type ScheduleView struct {
	Rank       int          `json:"rank"`
	Credits    int          `json:"credits"`
	Score      int          `json:"score"`
	BackToBack bool         `json:"backToBack"`
	Courses    []CourseView `json:"courses"`
}

// GenerateResponse carries the ranked schedules and search statistics.
type GenerateResponse struct {
	ID         string         `json:"id"`
	Candidates int            `json:"candidates"`
	Feasible   int            `json:"feasible"`
	Nodes      int            `json:"nodes"`
	Truncated  bool           `json:"truncated"`
	Schedules  []ScheduleView `json:"schedules"`
}

// ExportRequest re-runs a generation and renders one format.
type ExportRequest struct {
	GenerateRequest
	Format    string `json:"format" validate:"required,oneof=csv ics pdf"`
	Rank      int    `json:"rank" validate:"omitempty,min=1"`
	TermStart string `json:"termStart" validate:"omitempty,datetime=2006-01-02"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type CatalogQuery struct {
	Query string `form:"q" validate:"max=100"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=1000"`
}

type CatalogResponse struct {
	Total   int          `json:"total"`
	Courses []CourseView `json:"courses"`
}

// WizardRequest advances a wizard. A missing state starts a new one and
// Input is ignored.
type WizardRequest struct {
	State *wizard.State `json:"state"`
	Input string        `json:"input" validate:"max=500"`
}

// WizardResponse has the next question, or the generated schedules once
// the last answer is in.
type WizardResponse struct {
	State  wizard.State      `json:"state"`
	Prompt wizard.Prompt     `json:"prompt"`
	Done   bool              `json:"done"`
	Result *GenerateResponse `json:"result,omitempty"`
}
