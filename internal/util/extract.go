package util

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
	"github.com/gen2brain/go-fitz"
)

// ExtractText pulls plain text out of an uploaded resume. PDF and DOCX are
// parsed; anything else is treated as plain text.
func ExtractText(content []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ExtractPDF(content)
	case ".docx":
		return ExtractDOCX(content)
	default:
		if !utf8.Valid(content) {
			return "", fmt.Errorf("unsupported file type: %s", filename)
		}
		return strings.TrimSpace(string(content)), nil
	}
}

func ExtractPDF(content []byte) (string, error) {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		pageText = strings.TrimSpace(pageText)
		if len(pageText) > 0 {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if len(result) == 0 {
		return "", fmt.Errorf("no text extracted from PDF (PDF might be empty or scanned)")
	}
	return result, nil
}

func ExtractDOCX(content []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}

	var fullText bytes.Buffer
	for _, item := range doc.Document.Body.Items {
		switch o := item.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&fullText, o)
		}
	}

	result := strings.TrimSpace(fullText.String())
	if len(result) == 0 {
		return "", fmt.Errorf("no text extracted from DOCX")
	}
	return result, nil
}
