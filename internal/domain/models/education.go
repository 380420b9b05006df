package models

// EducationTerm is a single glossary entry served by /api/education/terms.
type EducationTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}
