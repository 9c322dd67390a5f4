package parsing

import (
	"encoding/json"
	"time"

	"github.com/jonathan/resume-importer/internal/types"
)

// lastUpdatedLayout renders a time as MM/YYYY.
const lastUpdatedLayout = "01/2006"

// Normalize repairs a candidate JSON document into the canonical resume record.
// It is total: any input, including scalars, arrays, and invalid bytes, yields a
// fully-shaped record. Absent fields become "" or empty collections, a skills
// value that is not a category→list mapping becomes {}, coursework that is not a
// list becomes [], and experience/project entries are backfilled per field
// without reordering, deduplication, or required-field checks. The
// employmentType enumeration is not enforced here; it is constrained only by
// the extraction prompt. header.lastUpdated is always overwritten with now's
// MM/YYYY stamp, never taken from the candidate.
func Normalize(doc json.RawMessage, now time.Time) *types.ResumeRecord {
	record := &types.ResumeRecord{
		Header:     types.Header{Skills: types.NewSkillsMap()},
		Education:  types.Education{Coursework: []string{}},
		Experience: []types.ExperienceEntry{},
		Projects:   []types.ProjectEntry{},
	}

	var sections map[string]json.RawMessage
	_ = json.Unmarshal(doc, &sections)

	normalizeHeader(sections["header"], &record.Header)
	normalizeEducation(sections["education"], &record.Education)
	record.Experience = normalizeExperience(sections["experience"])
	record.Projects = normalizeProjects(sections["projects"])

	// Provenance metadata, not extracted data.
	record.Header.LastUpdated = now.Format(lastUpdatedLayout)

	return record
}

func normalizeHeader(raw json.RawMessage, header *types.Header) {
	fields := objectFields(raw)

	header.Name = stringField(fields, "name")
	header.Email = stringField(fields, "email")
	header.Tagline = stringField(fields, "tagline")
	header.Website = stringField(fields, "website")
	header.LinkedIn = stringField(fields, "linkedin")
	header.GitHub = stringField(fields, "github")
	header.Phone = stringField(fields, "phone")
	header.Location = stringField(fields, "location")

	// SkillsMap decodes any non-mapping shape to {}; no partial recovery of
	// malformed skill data is attempted.
	if skillsRaw, ok := fields["skills"]; ok {
		_ = header.Skills.UnmarshalJSON(skillsRaw)
	}
}

func normalizeEducation(raw json.RawMessage, education *types.Education) {
	fields := objectFields(raw)

	education.University = stringField(fields, "university")
	education.Degree = stringField(fields, "degree")
	education.Major = stringField(fields, "major")
	education.StartDate = stringField(fields, "startDate")
	education.EndDate = stringField(fields, "endDate")
	education.GPA = stringField(fields, "gpa")
	education.Coursework = stringListField(fields, "coursework")
}

func normalizeExperience(raw json.RawMessage) []types.ExperienceEntry {
	entries := listItems(raw)
	out := make([]types.ExperienceEntry, 0, len(entries))
	for _, item := range entries {
		fields := objectFields(item)
		out = append(out, types.ExperienceEntry{
			Description:    stringField(fields, "description"),
			StartDate:      stringField(fields, "startDate"),
			EndDate:        stringField(fields, "endDate"),
			Position:       stringField(fields, "position"),
			Location:       stringField(fields, "location"),
			EmploymentType: stringField(fields, "employmentType"),
			Title:          stringField(fields, "title"),
			URL:            stringField(fields, "url"),
		})
	}
	return out
}

func normalizeProjects(raw json.RawMessage) []types.ProjectEntry {
	entries := listItems(raw)
	out := make([]types.ProjectEntry, 0, len(entries))
	for _, item := range entries {
		fields := objectFields(item)
		entry := types.ProjectEntry{
			Date:         stringField(fields, "date"),
			Description:  stringField(fields, "description"),
			EndDate:      stringField(fields, "endDate"),
			Event:        stringField(fields, "event"),
			Organization: stringField(fields, "organization"),
			Title:        stringField(fields, "title"),
			URL:          stringField(fields, "url"),
		}
		// Award keeps whichever representation the model chose: a bare
		// string stays a string, a list stays a list.
		entry.Award = types.Award{Values: []string{}}
		if awardRaw, ok := fields["award"]; ok {
			_ = entry.Award.UnmarshalJSON(awardRaw)
		}
		out = append(out, entry)
	}
	return out
}

// objectFields decodes raw as a JSON object. Anything else yields an empty set
// of fields, which makes every canonical field default.
func objectFields(raw json.RawMessage) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

// listItems decodes raw as a JSON array. Anything else yields no entries.
func listItems(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// stringField returns the string value of a field, or "" when the field is
// absent or not a JSON string.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// stringListField returns the string-list value of a field; a value that is not
// a list is forced to []. Non-string items within a list are dropped.
func stringListField(fields map[string]json.RawMessage, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return []string{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
