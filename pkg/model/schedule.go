package model

// Schedule is a conflict-free selection of courses in catalog order.
type Schedule struct {
	Courses    []Course `json:"courses"`
	Credits    int      `json:"credits"`
	Score      int      `json:"score"`
	BackToBack bool     `json:"backToBack"`
}

// Sessions returns every session of every course in the schedule.
func (s *Schedule) Sessions() []Session {
	var all []Session
	for _, c := range s.Courses {
		all = append(all, c.Sessions...)
	}
	return all
}

// Result is the ranked outcome of one generation request.
type Result struct {
	Schedules  []Schedule `json:"schedules"`
	Candidates int        `json:"candidates"`
	Feasible   int        `json:"feasible"`
	Nodes      int        `json:"nodes"`
	Truncated  bool       `json:"truncated"`
}

type ScheduleCSVRow struct {
	Rank       int    `csv:"rank"`
	Score      int    `csv:"score"`
	CourseName string `csv:"course_name"`
	Instructor string `csv:"instructor"`
	Credit     int    `csv:"credit"`
	Year       string `csv:"year"`
	Time       string `csv:"time"`
}
