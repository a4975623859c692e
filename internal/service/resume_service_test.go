package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newResumeService(t *testing.T, db *gorm.DB) *ResumeService {
	t.Helper()

	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}
	return NewResumeService(
		repository.NewResumeRepository(db),
		NewAIServiceWithGenerator(nil),
		storage,
		newTestGamification(db),
	)
}

func TestUploadParsesAnalyzesAndAwardsXP(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "resume@example.com")
	svc := newResumeService(t, db)

	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>Experienced Go developer</w:t></w:r></w:p></w:body>
</w:document>`
	content := buildDOCX(t, document)

	result, err := svc.Upload(context.Background(), user.ID, "resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", content)
	require.NoError(t, err)
	assert.Equal(t, resumeUploadXP, result.XPEarned)
	assert.Equal(t, string(SourceFallback), result.Source)
	assert.Equal(t, 75.0, result.Analysis.ATSScore)
	assert.True(t, result.Analysis.ATSFriendly)

	updated, err := repository.NewUserRepository(db).FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, resumeUploadXP, updated.TotalXP)
}

func TestUploadRejectsUnsupportedFile(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "resume-bad@example.com")
	svc := newResumeService(t, db)

	_, err := svc.Upload(context.Background(), user.ID, "resume.txt", "text/plain", []byte("plain text"))
	assert.ErrorIs(t, err, util.ErrUnsupportedFile)
}

func TestUploadRejectsEmptyDocument(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "resume-empty@example.com")
	svc := newResumeService(t, db)

	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body></w:body>
</w:document>`

	_, err := svc.Upload(context.Background(), user.ID, "resume.docx", "", buildDOCX(t, document))
	assert.ErrorIs(t, err, util.ErrEmptyResumeText)
}

func TestListAndGetResumes(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "resume-list@example.com")
	svc := newResumeService(t, db)

	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>Resume body</w:t></w:r></w:p></w:body>
</w:document>`
	uploaded, err := svc.Upload(context.Background(), user.ID, "resume.docx", "", buildDOCX(t, document))
	require.NoError(t, err)

	list, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "resume.docx", list[0].Filename)

	detail, err := svc.Get(user.ID, uploaded.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, uploaded.Analysis.ATSScore, detail.ATSScore)
	assert.NotEmpty(t, detail.Suggestions)

	_, err = svc.Get(user.ID, 9999)
	assert.ErrorIs(t, err, util.ErrResumeNotFound)
}

func TestDeleteRemovesRecordAndFile(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "resume-del@example.com")

	dir := t.TempDir()
	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: dir},
	}}
	svc := NewResumeService(
		repository.NewResumeRepository(db),
		NewAIServiceWithGenerator(nil),
		storage,
		newTestGamification(db),
	)

	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>Delete me</w:t></w:r></w:p></w:body>
</w:document>`
	uploaded, err := svc.Upload(context.Background(), user.ID, "resume.docx", "", buildDOCX(t, document))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	stored := filepath.Join(dir, entries[0].Name())

	require.NoError(t, svc.Delete(context.Background(), user.ID, uploaded.ResumeID))

	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
	_, err = svc.Get(user.ID, uploaded.ResumeID)
	assert.ErrorIs(t, err, util.ErrResumeNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), user.ID, uploaded.ResumeID), util.ErrResumeNotFound)
}
