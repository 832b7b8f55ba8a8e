package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"resume-builder-backend/resume/model"
)

func TestToDocxPreservesContent(t *testing.T) {
	doc := model.Example()
	out, err := ToDocx(doc)
	if err != nil {
		t.Fatalf("to docx: %v", err)
	}

	text, err := docxText(out)
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}

	wanted := []string{
		doc.Personal.FullName, doc.Personal.Email, doc.Personal.Phone,
		doc.Personal.Location, doc.Personal.LinkedIn, doc.Personal.GitHub,
		doc.Summary,
		doc.Skills.Technical[0], doc.Skills.Soft[0],
		doc.Work[0].Title, doc.Work[0].Company, doc.Work[0].Location,
		doc.Work[0].Description, doc.Work[0].StartDate, doc.Work[0].EndDate,
		doc.Work[1].Description,
		doc.Projects[0].Name, doc.Projects[0].TechStack, doc.Projects[0].Description, doc.Projects[0].Link,
		doc.Education[0].School, doc.Education[0].Degree, doc.Education[0].GPA,
		doc.Certifications[0],
	}
	for _, want := range wanted {
		if !strings.Contains(text, want) {
			t.Errorf("docx text missing %q", want)
		}
	}
}

func TestToDocxOmitsEmptySections(t *testing.T) {
	out, err := ToDocx(model.Empty())
	if err != nil {
		t.Fatalf("to docx: %v", err)
	}
	text, err := docxText(out)
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	for _, heading := range []string{"Summary", "Skills", "Experience", "Projects", "Education", "Certifications", "Awards"} {
		if strings.Contains(text, heading) {
			t.Errorf("empty document rendered heading %q", heading)
		}
	}
}

func TestToDocxConditionalAwards(t *testing.T) {
	doc := model.Empty()
	doc.Extras = &model.Extras{Awards: []string{"Employee of the month"}}
	out, err := ToDocx(doc)
	if err != nil {
		t.Fatalf("to docx: %v", err)
	}
	text, err := docxText(out)
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	if !strings.Contains(text, "Awards") || !strings.Contains(text, "Employee of the month") {
		t.Fatalf("awards section missing: %q", text)
	}
}

func TestToDocxEscapesMarkup(t *testing.T) {
	doc := model.Empty()
	doc.Personal.FullName = `Ada & Co <"quoted">`
	doc.Summary = "5 < 10 && 10 > 5"

	out, err := ToDocx(doc)
	if err != nil {
		t.Fatalf("to docx: %v", err)
	}
	text, err := docxText(out)
	if err != nil {
		t.Fatalf("docx is not well-formed after escaping: %v", err)
	}
	if !strings.Contains(text, `Ada & Co <"quoted">`) {
		t.Fatalf("escaped text did not round-trip: %q", text)
	}
}

// docxText unzips word/document.xml and strips it back to plain text.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return stripXML(raw)
	}
	return "", io.ErrUnexpectedEOF
}

func stripXML(raw []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" {
				buf.WriteString("\n")
			}
		}
	}
	return buf.String(), nil
}
