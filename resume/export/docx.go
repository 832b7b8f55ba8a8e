package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"resume-builder-backend/resume/model"
)

// DocxFilename is the fixed download name for the DOCX artifact.
const DocxFilename = "resume.docx"

// ToDocx builds the DOCX artifact directly from the document fields. Unlike
// the PDF path it ignores the selected visual template: one fixed structural
// layout, with sections whose backing value is empty omitted entirely.
func ToDocx(doc model.ResumeDocument) ([]byte, error) {
	var body docxBody

	body.heading1(doc.Personal.FullName)
	body.paragraph(contactText(doc.Personal))

	if strings.TrimSpace(doc.Summary) != "" {
		body.heading2("Summary")
		body.paragraph(doc.Summary)
	}
	if len(doc.Skills.Technical) > 0 || len(doc.Skills.Soft) > 0 {
		body.heading2("Skills")
		body.bullets(doc.Skills.Technical)
		body.bullets(doc.Skills.Soft)
	}
	if len(doc.Work) > 0 {
		body.heading2("Experience")
		for _, w := range doc.Work {
			body.boldParagraph(joinParts(" — ", w.Title, w.Company))
			body.paragraph(joinParts(" | ", w.Location, joinParts(" – ", w.StartDate, w.EndDate)))
			body.paragraph(w.Description)
		}
	}
	if len(doc.Projects) > 0 {
		body.heading2("Projects")
		for _, p := range doc.Projects {
			body.boldParagraph(joinParts(" — ", p.Name, p.TechStack))
			body.paragraph(p.Description)
			body.paragraph(p.Link)
		}
	}
	if len(doc.Education) > 0 {
		body.heading2("Education")
		for _, e := range doc.Education {
			body.boldParagraph(joinParts(" — ", e.Degree, e.School))
			meta := joinParts(" – ", e.StartDate, e.EndDate)
			if e.GPA != "" {
				meta = joinParts(" | ", meta, "GPA "+e.GPA)
			}
			body.paragraph(meta)
		}
	}
	if len(doc.Certifications) > 0 {
		body.heading2("Certifications")
		body.bullets(doc.Certifications)
	}
	if doc.Extras != nil && len(doc.Extras.Awards) > 0 {
		body.heading2("Awards")
		body.bullets(doc.Extras.Awards)
	}

	return packDocx(body.String())
}

func contactText(p model.PersonalInfo) string {
	return joinParts(" | ", p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Portfolio)
}

func joinParts(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

// docxBody accumulates word/document.xml paragraphs. Escaping happens at the
// text run level so the output is well-formed by construction.
type docxBody struct {
	buf strings.Builder
}

func (b *docxBody) heading1(text string) {
	b.styledParagraph("Heading1", text, true)
}

func (b *docxBody) heading2(text string) {
	b.styledParagraph("Heading2", text, true)
}

func (b *docxBody) paragraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.styledParagraph("", text, false)
}

func (b *docxBody) boldParagraph(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.styledParagraph("", text, true)
}

func (b *docxBody) bullets(items []string) {
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		b.buf.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>`)
		b.run(item, false)
		b.buf.WriteString(`</w:p>`)
	}
}

func (b *docxBody) styledParagraph(style, text string, bold bool) {
	b.buf.WriteString(`<w:p>`)
	if style != "" {
		b.buf.WriteString(`<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
	}
	b.run(text, bold)
	b.buf.WriteString(`</w:p>`)
}

func (b *docxBody) run(text string, bold bool) {
	b.buf.WriteString(`<w:r>`)
	if bold {
		b.buf.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	b.buf.WriteString(`<w:t xml:space="preserve">`)
	b.buf.WriteString(escapeXML(text))
	b.buf.WriteString(`</w:t></w:r>`)
}

func (b *docxBody) String() string {
	return b.buf.String()
}

func escapeXML(text string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(text))
	return buf.String()
}

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wmlNamespace + `">
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:b/><w:sz w:val="40"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/></w:style>
</w:styles>`

func packDocx(bodyXML string) ([]byte, error) {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="` + wmlNamespace + `"><w:body>` + bodyXML + `</w:body></w:document>`

	var out bytes.Buffer
	writer := zip.NewWriter(&out)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("pack docx part %s: %w", part.name, err)
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("pack docx part %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("pack docx: %w", err)
	}
	return out.Bytes(), nil
}
