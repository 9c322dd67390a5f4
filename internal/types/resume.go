// Package types provides type definitions for structured data used throughout the resume-importer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the canonical four-section structure produced by the import pipeline.
// After normalization every declared field is present: absent source data becomes ""
// for strings and an empty collection for list- or map-valued fields, never null.
type ResumeRecord struct {
	Header     Header            `json:"header"`
	Education  Education         `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
}

// Header is the identity and contact block of a resume.
type Header struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Tagline  string `json:"tagline"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	// LastUpdated is a derived MM/YYYY stamp of parse time, never sourced from the document.
	LastUpdated string    `json:"lastUpdated"`
	Skills      SkillsMap `json:"skills"`
}

// Education models the single most-recent education entry (not a list).
type Education struct {
	University string   `json:"university"`
	Degree     string   `json:"degree"`
	Major      string   `json:"major"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	GPA        string   `json:"gpa"`
	Coursework []string `json:"coursework"`
}

// ExperienceEntry is a single work experience item. Title holds the employer name,
// Position the role; EndDate may be the literal "Present" for ongoing roles.
type ExperienceEntry struct {
	Description    string `json:"description"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Position       string `json:"position"`
	Location       string `json:"location"`
	EmploymentType string `json:"employmentType"`
	Title          string `json:"title"`
	URL            string `json:"url"`
}

// ProjectEntry is a single project item. Award accepts either a single string or a
// list of strings and round-trips in whichever shape it arrived.
type ProjectEntry struct {
	Award        Award  `json:"award"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	EndDate      string `json:"endDate"`
	Event        string `json:"event"`
	Organization string `json:"organization"`
	Title        string `json:"title"`
	URL          string `json:"url"`
}

// Employment type values the extraction prompt constrains the model to. The
// normalizer does not enforce this set; it is advisory (see DESIGN.md).
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentInternship = "Internship"
	EmploymentContract   = "Contract"
	EmploymentFreelance  = "Freelance"
)

// EmploymentTypes lists the closed employment type set in prompt order.
func EmploymentTypes() []string {
	return []string{
		EmploymentFullTime,
		EmploymentPartTime,
		EmploymentInternship,
		EmploymentContract,
		EmploymentFreelance,
	}
}
