package loader

import (
	"bytes"
	"strings"

	"github.com/dslipak/pdf"
)

// extractPDF returns the concatenated text of every page in page order.
func extractPDF(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
