package render

import (
	"fmt"
	"sort"
	"strings"

	"resume-builder-backend/resume/model"
)

// Renderer maps a resume document to a visual layout. Implementations are
// pure: no state, no side effects, and every optional field may be absent.
type Renderer interface {
	Name() string
	Render(doc model.ResumeDocument) *Document
}

// DefaultTemplate is the selection a new session starts with.
const DefaultTemplate = "classic"

type section int

const (
	secSummary section = iota
	secSkills
	secWork
	secProjects
	secEducation
	secCertifications
	secVolunteer
	secLanguages
	secInterests
	secAwards
	secCustom
)

// layout is a Renderer variant described by declarative options. All ten
// templates share the section builders; they differ in ordering and texture.
type layout struct {
	name        string
	order       []section
	contactSep  string
	skillsInline bool   // join technical skills on one line instead of bullets
	skillsJoin  string
	inlineDates bool // fold dates into the entry text instead of the meta slot
}

func (l layout) Name() string { return l.name }

func (l layout) Render(doc model.ResumeDocument) *Document {
	out := &Document{Template: l.name}
	out.name(doc.Personal.FullName)
	out.contact(contactLine(doc.Personal, l.contactSep))

	for _, sec := range l.order {
		switch sec {
		case secSummary:
			out.heading("SUMMARY")
			out.paragraph(doc.Summary)
		case secSkills:
			out.heading("SKILLS")
			l.renderSkills(out, doc.Skills)
		case secWork:
			out.heading("EXPERIENCE")
			for _, w := range doc.Work {
				l.renderEntry(out, entryTitle(w.Title, w.Company, w.Location), dateRange(w.StartDate, w.EndDate))
				out.paragraph(w.Description)
			}
		case secProjects:
			out.heading("PROJECTS")
			for _, p := range doc.Projects {
				l.renderEntry(out, p.Name, p.TechStack)
				out.paragraph(p.Description)
				out.paragraph(p.Link)
			}
		case secEducation:
			out.heading("EDUCATION")
			for _, e := range doc.Education {
				meta := dateRange(e.StartDate, e.EndDate)
				title := joinNonEmpty(" — ", e.Degree, e.School)
				if e.GPA != "" {
					title = joinNonEmpty(" — ", title, "GPA "+e.GPA)
				}
				l.renderEntry(out, title, meta)
			}
		case secCertifications:
			if len(doc.Certifications) == 0 {
				continue
			}
			out.heading("CERTIFICATIONS")
			out.list(doc.Certifications)
		case secVolunteer:
			if len(doc.Volunteer) == 0 {
				continue
			}
			out.heading("VOLUNTEER")
			for _, v := range doc.Volunteer {
				l.renderEntry(out, joinNonEmpty(", ", v.Role, v.Organization), dateRange(v.StartDate, v.EndDate))
				out.paragraph(v.Description)
			}
		case secLanguages:
			if doc.Extras == nil || len(doc.Extras.Languages) == 0 {
				continue
			}
			out.heading("LANGUAGES")
			out.paragraph(strings.Join(doc.Extras.Languages, ", "))
		case secInterests:
			if doc.Extras == nil || len(doc.Extras.Interests) == 0 {
				continue
			}
			out.heading("INTERESTS")
			out.paragraph(strings.Join(doc.Extras.Interests, ", "))
		case secAwards:
			if doc.Extras == nil || len(doc.Extras.Awards) == 0 {
				continue
			}
			out.heading("AWARDS")
			out.list(doc.Extras.Awards)
		case secCustom:
			for _, custom := range doc.Custom {
				if len(custom.Items) == 0 {
					continue
				}
				out.heading(strings.ToUpper(custom.Title))
				for _, item := range custom.Items {
					l.renderEntry(out, item.Name, "")
					out.paragraph(item.Description)
				}
			}
		}
	}
	return out
}

func (l layout) renderSkills(out *Document, skills model.Skills) {
	if l.skillsInline {
		out.paragraph(strings.Join(skills.Technical, l.skillsJoin))
	} else {
		out.list(skills.Technical)
	}
	if len(skills.Soft) > 0 {
		out.paragraph("Soft skills: " + strings.Join(skills.Soft, ", "))
	}
}

func (l layout) renderEntry(out *Document, title, meta string) {
	if l.inlineDates && meta != "" {
		out.entry(title+" ("+meta+")", "")
		return
	}
	out.entry(title, meta)
}

func contactLine(p model.PersonalInfo, sep string) string {
	return joinNonEmpty(sep, p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Portfolio)
}

func entryTitle(title, company, location string) string {
	out := joinNonEmpty(", ", joinNonEmpty(" — ", title, company), location)
	return out
}

func dateRange(start, end string) string {
	return joinNonEmpty(" – ", start, end)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

var standardTail = []section{secCertifications, secVolunteer, secLanguages, secInterests, secAwards, secCustom}

func withTail(head ...section) []section {
	return append(head, standardTail...)
}

var registry = map[string]Renderer{}

func register(r Renderer) {
	registry[r.Name()] = r
}

func init() {
	register(layout{name: "classic", order: withTail(secSummary, secSkills, secWork, secProjects, secEducation), contactSep: " | ", skillsInline: true, skillsJoin: " • "})
	register(layout{name: "modern", order: withTail(secSummary, secSkills, secWork, secProjects, secEducation), contactSep: " | "})
	register(layout{name: "minimal", order: withTail(secSummary, secWork, secProjects, secSkills, secEducation), contactSep: " · ", skillsInline: true, skillsJoin: ", ", inlineDates: true})
	register(layout{name: "elegant", order: withTail(secSummary, secWork, secEducation, secSkills, secProjects), contactSep: "  •  ", skillsInline: true, skillsJoin: " · "})
	register(layout{name: "professional", order: withTail(secSummary, secWork, secProjects, secSkills, secEducation), contactSep: " | "})
	register(layout{name: "creative", order: append([]section{secSummary, secProjects, secWork, secSkills, secEducation, secInterests}, secCertifications, secVolunteer, secLanguages, secAwards, secCustom)})
	register(layout{name: "compact", order: withTail(secSummary, secSkills, secWork, secEducation, secProjects), contactSep: " | ", skillsInline: true, skillsJoin: ", ", inlineDates: true})
	register(layout{name: "executive", order: withTail(secSummary, secWork, secProjects, secEducation, secSkills), contactSep: "  |  "})
	register(layout{name: "technical", order: withTail(secSkills, secSummary, secProjects, secWork, secEducation), contactSep: " | "})
	register(layout{name: "academic", order: withTail(secSummary, secEducation, secWork, secProjects, secSkills), contactSep: " | ", inlineDates: true})
}

// Get returns the renderer for a template name.
func Get(name string) (Renderer, error) {
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	return r, nil
}

// Names lists the registered template names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
