// Package reader extracts plain text from candidate CV documents. It is the
// document-reading collaborator of the extraction core: any failure here is
// resolved before the core is invoked, and the core only ever sees a plain
// string.
package reader

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

var (
	xmlTags      = regexp.MustCompile(`<[^>]+>`)
	inlineSpaces = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns  = regexp.MustCompile(`\n+`)
)

// Supported reports whether the filename has a readable CV extension.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
		return true
	default:
		return false
	}
}

// FromFile reads a candidate document from disk and returns its plain text.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return Read(filepath.Base(path), data)
}

// Read extracts plain text from supported CV formats: .pdf, .docx and .txt.
func Read(filename string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return textFromPDF(data)
	case ".docx":
		return textFromDocx(data)
	case ".txt":
		return collapseSpacing(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func textFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}

	return collapseSpacing(buf.String()), nil
}

func textFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}

	// Paragraph boundaries become newlines, then all tags are stripped.
	// Naive but effective for CV bodies.
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := xmlTags.ReplaceAllString(xml, " ")

	return collapseSpacing(txt), nil
}

// collapseSpacing collapses inline whitespace and newline runs while
// preserving line structure: the name heuristic downstream needs lines.
func collapseSpacing(s string) string {
	// Non-breaking spaces first, so the run collapse below sees them.
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = inlineSpaces.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")

	return strings.TrimSpace(s)
}
