package extract

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"resume-builder-backend/resume/export"
	"resume-builder-backend/resume/model"
)

func TestFromDataURIPlainText(t *testing.T) {
	body := "Jordan Reyes\nBackend engineer, six years."
	uri := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte(body))

	got, err := FromDataURI(uri, "text/plain")
	if err != nil {
		t.Fatalf("FromDataURI: %v", err)
	}
	if got != body {
		t.Fatalf("got %q, want %q", got, body)
	}
}

func TestFromDataURIBarePayload(t *testing.T) {
	body := "no prefix here"
	payload := base64.StdEncoding.EncodeToString([]byte(body))

	got, err := FromDataURI(payload, "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("FromDataURI: %v", err)
	}
	if got != body {
		t.Fatalf("got %q, want %q", got, body)
	}
}

func TestFromDataURIDocx(t *testing.T) {
	raw, err := export.ToDocx(model.Example())
	if err != nil {
		t.Fatalf("build docx: %v", err)
	}
	uri := "data:" + "application/vnd.openxmlformats-officedocument.wordprocessingml.document" + ";base64," + base64.StdEncoding.EncodeToString(raw)

	got, err := FromDataURI(uri, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	if err != nil {
		t.Fatalf("FromDataURI: %v", err)
	}
	for _, want := range []string{"Jordan Reyes", "Brightline Systems", "University of Texas at Austin"} {
		if !strings.Contains(got, want) {
			t.Errorf("extracted text missing %q", want)
		}
	}
}

func TestFromDataURIDeclaredZipRejected(t *testing.T) {
	// A real docx declared as application/zip is rejected, not sniffed.
	raw, err := export.ToDocx(model.Example())
	if err != nil {
		t.Fatalf("build docx: %v", err)
	}
	uri := "data:application/zip;base64," + base64.StdEncoding.EncodeToString(raw)

	_, err = FromDataURI(uri, "application/zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestFromDataURIBadBase64(t *testing.T) {
	if _, err := FromDataURI("data:text/plain;base64,!!!", "text/plain"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFromDataURIEmptyPayload(t *testing.T) {
	if _, err := FromDataURI("data:text/plain;base64,", "text/plain"); err == nil {
		t.Fatal("expected empty payload error")
	}
}
