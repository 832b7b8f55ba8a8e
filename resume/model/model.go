package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ResumeDocument is the canonical resume payload. Identity is extrinsic:
// persisted copies are keyed by (owner, name), the value itself carries none.
type ResumeDocument struct {
	Personal       PersonalInfo    `json:"personal"`
	Summary        string          `json:"summary"`
	Skills         Skills          `json:"skills"`
	Work           []WorkEntry     `json:"work"`
	Projects       []ProjectEntry  `json:"projects"`
	Education      []EducationEntry `json:"education"`
	Certifications []string        `json:"certifications,omitempty"`
	Volunteer      []VolunteerEntry `json:"volunteer,omitempty"`
	Extras         *Extras         `json:"extras,omitempty"`
	Custom         []CustomSection `json:"custom,omitempty"`
}

// PersonalInfo captures contact and identity details. The first four fields
// are always present in serialized form; empty string means unset.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Skills groups skills into a required technical list and an optional soft
// list. Insertion order is display order.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft,omitempty"`
}

// WorkEntry is one work history item. Order in the slice is the display
// order; reverse-chronological is convention, not enforced.
type WorkEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// ProjectEntry is one project item.
type ProjectEntry struct {
	Name        string `json:"name"`
	TechStack   string `json:"techStack"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// EducationEntry is one education item.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	GPA       string `json:"gpa,omitempty"`
}

// VolunteerEntry is one volunteering item.
type VolunteerEntry struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Description  string `json:"description"`
}

// Extras holds the optional languages/interests/awards lists.
type Extras struct {
	Languages []string `json:"languages,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Awards    []string `json:"awards,omitempty"`
}

// CustomSection is a free-form extension section.
type CustomSection struct {
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

// CustomItem is one entry inside a custom section.
type CustomItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Empty returns the all-empty instance used when a user starts a new resume
// and as the fallback when a load fails.
func Empty() ResumeDocument {
	return ResumeDocument{
		Skills:    Skills{Technical: []string{}},
		Work:      []WorkEntry{},
		Projects:  []ProjectEntry{},
		Education: []EducationEntry{},
	}
}

// Validate enforces the required-key invariant: the four required personal
// fields must be present as keys (empty string is fine, absence is not, and
// absence cannot be expressed on the struct, so only list shape is checked).
func (d ResumeDocument) Validate() error {
	if d.Skills.Technical == nil {
		return errors.New("skills.technical is required")
	}
	if d.Work == nil || d.Projects == nil || d.Education == nil {
		return errors.New("work, projects and education lists are required")
	}
	return nil
}

// Normalize fills nil required lists with empty slices so every document
// satisfies Validate after decoding arbitrary JSON.
func (d ResumeDocument) Normalize() ResumeDocument {
	if d.Skills.Technical == nil {
		d.Skills.Technical = []string{}
	}
	if d.Work == nil {
		d.Work = []WorkEntry{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectEntry{}
	}
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	return d
}

// Clone returns a deep copy. Functional updates in the session store replace
// the held value with a copy so no slice is aliased across renders. List
// shape is preserved: nil stays nil and empty stays empty, so a clone of a
// valid document is still valid and serializes identically.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Skills.Technical = slices.Clone(d.Skills.Technical)
	out.Skills.Soft = slices.Clone(d.Skills.Soft)
	out.Work = slices.Clone(d.Work)
	out.Projects = slices.Clone(d.Projects)
	out.Education = slices.Clone(d.Education)
	out.Certifications = slices.Clone(d.Certifications)
	out.Volunteer = slices.Clone(d.Volunteer)
	if d.Extras != nil {
		extras := Extras{
			Languages: slices.Clone(d.Extras.Languages),
			Interests: slices.Clone(d.Extras.Interests),
			Awards:    slices.Clone(d.Extras.Awards),
		}
		out.Extras = &extras
	}
	if d.Custom != nil {
		out.Custom = make([]CustomSection, len(d.Custom))
		for i, section := range d.Custom {
			out.Custom[i] = CustomSection{
				Title: section.Title,
				Items: slices.Clone(section.Items),
			}
		}
	}
	return out
}

// EntryKeys returns the stable identity of every entry-bearing section, used
// to verify that a rewrite changed only string contents, never membership.
func (d ResumeDocument) EntryKeys() []string {
	keys := make([]string, 0, len(d.Work)+len(d.Projects)+len(d.Education)+len(d.Custom))
	for _, w := range d.Work {
		keys = append(keys, "work:"+strings.TrimSpace(w.Company))
	}
	for _, p := range d.Projects {
		keys = append(keys, "project:"+strings.TrimSpace(p.Name))
	}
	for _, e := range d.Education {
		keys = append(keys, "education:"+strings.TrimSpace(e.School))
	}
	for _, c := range d.Custom {
		keys = append(keys, fmt.Sprintf("custom:%s:%d", strings.TrimSpace(c.Title), len(c.Items)))
	}
	return keys
}
