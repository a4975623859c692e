package service

import (
	"archive/zip"
	"bytes"
	"testing"

	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	entry, err := writer.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestParseResumeRejectsUnsupportedExtensions(t *testing.T) {
	for _, name := range []string{"resume.txt", "resume.doc", "resume"} {
		_, err := ParseResume(name, []byte("content"))
		assert.ErrorIs(t, err, util.ErrUnsupportedFile, name)
	}
}

func TestParseResumeDOCX(t *testing.T) {
	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior Go Developer with </w:t></w:r><w:r><w:t>5 years experience</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := ParseResume("Resume.DOCX", buildDOCX(t, document))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Go Developer with 5 years experience", text)
}

func TestParseResumeDOCXWithoutDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	entry, err := writer.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	_, err = ParseResume("resume.docx", buf.Bytes())
	assert.ErrorIs(t, err, util.ErrEmptyResumeText)
}

func TestParseResumeCorruptPDF(t *testing.T) {
	_, err := ParseResume("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}
