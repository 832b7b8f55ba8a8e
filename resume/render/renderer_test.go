package render

import (
	"strings"
	"testing"

	"resume-builder-backend/resume/model"
)

var requiredHeadings = []string{"SUMMARY", "SKILLS", "EXPERIENCE", "PROJECTS", "EDUCATION"}

var optionalHeadings = []string{"CERTIFICATIONS", "VOLUNTEER", "LANGUAGES", "INTERESTS", "AWARDS"}

func TestNamesListsTenTemplates(t *testing.T) {
	names := Names()
	if len(names) != 10 {
		t.Fatalf("expected 10 templates, got %d: %v", len(names), names)
	}
	if _, err := Get(DefaultTemplate); err != nil {
		t.Fatalf("default template missing: %v", err)
	}
	if _, err := Get("letterhead"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestEmptyDocumentRendersRequiredSectionsOnly(t *testing.T) {
	doc := model.Empty()
	for _, name := range Names() {
		r, err := Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		rendered := r.Render(doc)
		headings := rendered.SectionHeadings()

		for _, want := range requiredHeadings {
			if !containsString(headings, want) {
				t.Errorf("template %s: missing required heading %s (got %v)", name, want, headings)
			}
		}
		for _, forbidden := range optionalHeadings {
			if containsString(headings, forbidden) {
				t.Errorf("template %s: empty document rendered optional heading %s", name, forbidden)
			}
		}
		if len(headings) != len(requiredHeadings) {
			t.Errorf("template %s: expected exactly the required headings, got %v", name, headings)
		}
	}
}

func TestFullDocumentRendersEveryField(t *testing.T) {
	doc := model.Example()
	doc.Volunteer = []model.VolunteerEntry{{
		Organization: "Code Club",
		Role:         "Mentor",
		StartDate:    "2021",
		EndDate:      "Present",
		Description:  "Weekly beginner sessions.",
	}}
	doc.Extras.Awards = []string{"Hackathon winner 2023"}
	doc.Custom = []model.CustomSection{{
		Title: "Publications",
		Items: []model.CustomItem{{Name: "Queues at scale", Description: "Conference talk."}},
	}}

	for _, name := range Names() {
		r, _ := Get(name)
		rendered := r.Render(doc)
		text := strings.Join(rendered.PlainText(), "\n")

		for _, want := range []string{
			doc.Personal.FullName, doc.Personal.Email, doc.Summary,
			doc.Skills.Technical[0], doc.Work[0].Company, doc.Work[1].Description,
			doc.Projects[0].Name, doc.Education[0].School, doc.Certifications[0],
			"Code Club", "Hackathon winner 2023", "Queues at scale",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("template %s: rendered output missing %q", name, want)
			}
		}
		if !containsString(rendered.SectionHeadings(), "PUBLICATIONS") {
			t.Errorf("template %s: custom section heading missing", name)
		}
	}
}

func TestSourceOrderPreserved(t *testing.T) {
	doc := model.Empty()
	doc.Work = []model.WorkEntry{
		{Title: "Second Job", Company: "Beta Corp"},
		{Title: "First Job", Company: "Alpha Corp"},
	}
	for _, name := range Names() {
		r, _ := Get(name)
		text := strings.Join(r.Render(doc).PlainText(), "\n")
		if strings.Index(text, "Beta Corp") > strings.Index(text, "Alpha Corp") {
			t.Errorf("template %s: work entries re-ordered", name)
		}
	}
}

func TestEmptyCustomSectionOmitted(t *testing.T) {
	doc := model.Empty()
	doc.Custom = []model.CustomSection{{Title: "Talks", Items: []model.CustomItem{}}}
	for _, name := range Names() {
		r, _ := Get(name)
		if containsString(r.Render(doc).SectionHeadings(), "TALKS") {
			t.Errorf("template %s: empty custom section rendered", name)
		}
	}
}

func TestHTMLEscapesAndRenders(t *testing.T) {
	doc := model.Empty()
	doc.Personal.FullName = "Ada <script>Lovelace</script>"
	doc.Summary = "First programmer."
	r, _ := Get(DefaultTemplate)

	html, err := HTML(r.Render(doc))
	if err != nil {
		t.Fatalf("html render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("html output not escaped")
	}
	for _, want := range []string{"SUMMARY", "First programmer.", "tpl-classic"} {
		if !strings.Contains(html, want) {
			t.Errorf("html output missing %q", want)
		}
	}
}

func containsString(in []string, want string) bool {
	for _, s := range in {
		if s == want {
			return true
		}
	}
	return false
}
