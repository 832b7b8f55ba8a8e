// Package extract turns uploaded resume files into plain text for the
// prompt flows. Payloads arrive as base64 data URIs; the declared MIME
// type decides the decoder.
package extract

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedType is returned when the declared MIME type has no
// decoder. The declared type is authoritative: a docx uploaded as
// application/zip is rejected, not sniffed.
var ErrUnsupportedType = errors.New("unsupported file type")

// FromDataURI decodes a base64 data URI and extracts its text. The URI
// may carry a data:<mime>;base64, prefix or be a bare base64 payload;
// mimeType always wins over whatever the prefix declares.
func FromDataURI(dataURI string, mimeType string) (string, error) {
	raw, err := decodeDataURI(dataURI)
	if err != nil {
		return "", fmt.Errorf("extract mime=%s: %w", mimeType, err)
	}
	text, err := fromBytes(raw, mimeType)
	if err != nil {
		return "", fmt.Errorf("extract mime=%s: %w", mimeType, err)
	}
	return text, nil
}

func fromBytes(data []byte, mimeType string) (string, error) {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch {
	case clean == mimePDF:
		return extractPDF(data)
	case clean == mimeDOCX:
		return extractDOCX(data)
	case strings.HasPrefix(clean, "text/"):
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, clean)
	}
}

func decodeDataURI(dataURI string) ([]byte, error) {
	payload := dataURI
	if strings.HasPrefix(payload, "data:") {
		comma := strings.Index(payload, ",")
		if comma < 0 {
			return nil, errors.New("malformed data uri")
		}
		payload = payload[comma+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty payload")
	}
	return raw, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer reader.Close()
	return stripDocxXML(reader.Editable().GetContent()), nil
}

// stripDocxXML flattens word/document.xml markup to text, with a newline
// at each paragraph and line break.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
