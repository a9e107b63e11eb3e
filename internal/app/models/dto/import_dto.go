package dto

// SkipReasonMissing marks rows dropped for absent required fields.
const SkipReasonMissing = "missing required fields"

// SkippedRow describes one row the import refused, with enough identity to
// find it in the source file.
type SkippedRow struct {
	Row    int    `json:"row" example:"2"` // 1-based data row number, header excluded
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Reason string `json:"reason" example:"duplicate email"`
}

// ImportSummary aggregates the outcome of a bulk import. Rows already created
// stay created regardless of later failures; partial success is the normal
// result, not an error.
type ImportSummary struct {
	Created          int          `json:"created"`
	SkippedMissing   int          `json:"skippedMissing"`
	SkippedDuplicate int          `json:"skippedDuplicate"`
	Skipped          []SkippedRow `json:"skipped,omitempty"`
}

// AddMissing records a row skipped for missing required fields.
func (s *ImportSummary) AddMissing(row int, name, email string) {
	s.SkippedMissing++
	s.Skipped = append(s.Skipped, SkippedRow{Row: row, Name: name, Email: email, Reason: SkipReasonMissing})
}

// AddDuplicate records a row skipped because of a uniqueness conflict.
func (s *ImportSummary) AddDuplicate(row int, name, email, reason string) {
	s.SkippedDuplicate++
	s.Skipped = append(s.Skipped, SkippedRow{Row: row, Name: name, Email: email, Reason: reason})
}

// StudentImportOptions carries the form fields accompanying a student upload.
type StudentImportOptions struct {
	Department       string `form:"department" binding:"required"`
	Category         string `form:"category"`
	Label            string `form:"label"`
	SessionStartYear int    `form:"sessionStartYear" binding:"required"`
	SessionEndYear   int    `form:"sessionEndYear" binding:"required"`
}

// TeacherImportOptions carries the form fields accompanying a teacher upload.
type TeacherImportOptions struct {
	Department       string `form:"department" binding:"required"`
	SessionStartYear int    `form:"sessionStartYear" binding:"required"`
	SessionEndYear   int    `form:"sessionEndYear" binding:"required"`
}
