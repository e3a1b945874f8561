package model

// CatalogRow is one raw line of the course catalog export.
type CatalogRow struct {
	Name       string `csv:"교과목명"`
	Credit     string `csv:"학점"`
	Year       string `csv:"학년"`
	Time       string `csv:"수업교시"`
	Instructor string `csv:"주담당교수"`
}

// Course is a normalized catalog entry. ID is the catalog position and is
// the only identity; two courses may share a name.
type Course struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Credit     int       `json:"credit"`
	Year       string    `json:"year"`
	Instructor string    `json:"instructor"`
	RawTime    string    `json:"rawTime"`
	Sessions   []Session `json:"sessions"`
}
