package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"interview_prep_backend/internal/util"

	"github.com/ledongthuc/pdf"
)

// ParseResume extracts plain text from an uploaded resume. Only PDF and DOCX
// are accepted; anything else is ErrUnsupportedFile.
func ParseResume(filename string, content []byte) (string, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return extractPDFText(content)
	case strings.HasSuffix(lower, ".docx"):
		return extractDOCXText(content)
	default:
		return "", util.ErrUnsupportedFile
	}
}

func extractPDFText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// extractDOCXText pulls paragraph text out of word/document.xml. A DOCX file
// is a zip archive; w:t elements hold the runs, w:p closes a paragraph.
func extractDOCXText(content []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var document io.ReadCloser
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document, err = file.Open()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if document == nil {
		return "", util.ErrEmptyResumeText
	}
	defer document.Close()

	decoder := xml.NewDecoder(document)
	var text strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local == "t" {
				var run string
				if err := decoder.DecodeElement(&run, &element); err != nil {
					return "", err
				}
				text.WriteString(run)
			}
		case xml.EndElement:
			if element.Name.Local == "p" {
				text.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(text.String()), nil
}
