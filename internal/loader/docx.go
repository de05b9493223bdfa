package loader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentXML mirrors the paragraph/run/text structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text []struct {
					Content string `xml:",chardata"`
				} `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

// extractDocx extracts paragraph texts from a Word document and joins them
// with newlines, in document order. .doc and .docx are both treated as
// OOXML archives; legacy binary .doc files fail the zip open and are
// skipped upstream.
func extractDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open word archive: %w", err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		return parseDocumentXML(data)
	}
	return "", fmt.Errorf("word/document.xml not found")
}

func parseDocumentXML(data []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parse document xml: %w", err)
	}

	paragraphs := make([]string, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, run := range para.Runs {
			for _, t := range run.Text {
				b.WriteString(t.Content)
			}
		}
		paragraphs = append(paragraphs, b.String())
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}
