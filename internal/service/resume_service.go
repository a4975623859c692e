package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resumeUploadXP is paid once per successful upload and analysis.
const resumeUploadXP = 15

type ResumeService struct {
	ResumeRepo   *repository.ResumeRepository
	AI           *AIService
	Storage      *StorageService
	Gamification *GamificationService
}

func NewResumeService(resumeRepo *repository.ResumeRepository, ai *AIService, storage *StorageService, gamification *GamificationService) *ResumeService {
	return &ResumeService{ResumeRepo: resumeRepo, AI: ai, Storage: storage, Gamification: gamification}
}

// UploadResult is the analysis handed back right after an upload.
type UploadResult struct {
	ResumeID uint                 `json:"resume_id"`
	Filename string               `json:"filename"`
	Analysis model.ResumeAnalysis `json:"analysis"`
	XPEarned int                  `json:"xp_earned"`
	Source   string               `json:"source"`
}

// Upload stores the file, extracts its text, runs the analysis and persists
// the result. The stored filename is prefixed per user to avoid collisions.
func (s *ResumeService) Upload(ctx context.Context, userID uint, filename, contentType string, content []byte) (*UploadResult, error) {
	resumeText, err := ParseResume(filename, content)
	if err != nil {
		return nil, err
	}
	if resumeText == "" {
		return nil, util.ErrEmptyResumeText
	}

	storedName := fmt.Sprintf("%d_%s_%s", userID, time.Now().UTC().Format("20060102_150405"), filename)
	if _, err := s.Storage.Upload(ctx, storedName, bytes.NewReader(content), int64(len(content)), contentType); err != nil {
		return nil, err
	}

	analysis, source := s.AI.AnalyzeResume(ctx, resumeText)

	resume := &model.Resume{
		UserID:      userID,
		Filename:    filename,
		FilePath:    storedName,
		Analysis:    analysis,
		ATSScore:    analysis.ATSScore,
		Suggestions: analysis.Improvements,
	}
	if err := s.ResumeRepo.Create(resume); err != nil {
		return nil, err
	}

	if _, err := s.Gamification.AwardXP(userID, resumeUploadXP); err != nil {
		return nil, err
	}

	return &UploadResult{
		ResumeID: resume.ID,
		Filename: filename,
		Analysis: analysis,
		XPEarned: resumeUploadXP,
		Source:   string(source),
	}, nil
}

// ResumeSummary is one row of the resume listing.
type ResumeSummary struct {
	ID        uint    `json:"id"`
	Filename  string  `json:"filename"`
	ATSScore  float64 `json:"ats_score"`
	CreatedAt string  `json:"created_at"`
}

func (s *ResumeService) List(userID uint) ([]ResumeSummary, error) {
	resumes, err := s.ResumeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ResumeSummary, 0, len(resumes))
	for _, r := range resumes {
		summaries = append(summaries, ResumeSummary{
			ID:        r.ID,
			Filename:  r.Filename,
			ATSScore:  r.ATSScore,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// ResumeDetail is the stored analysis for one resume.
type ResumeDetail struct {
	ID          uint                 `json:"id"`
	Filename    string               `json:"filename"`
	ATSScore    float64              `json:"ats_score"`
	Analysis    model.ResumeAnalysis `json:"analysis"`
	Suggestions []string             `json:"suggestions"`
	CreatedAt   string               `json:"created_at"`
}

func (s *ResumeService) Get(userID, resumeID uint) (*ResumeDetail, error) {
	resume, err := s.ResumeRepo.FindByIDAndUser(resumeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResumeNotFound
		}
		return nil, err
	}

	return &ResumeDetail{
		ID:          resume.ID,
		Filename:    resume.Filename,
		ATSScore:    resume.ATSScore,
		Analysis:    resume.Analysis,
		Suggestions: resume.Suggestions,
		CreatedAt:   resume.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Delete removes the record and best-effort removes the stored file.
func (s *ResumeService) Delete(ctx context.Context, userID, resumeID uint) error {
	resume, err := s.ResumeRepo.FindByIDAndUser(resumeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrResumeNotFound
		}
		return err
	}

	if err := s.Storage.Delete(ctx, resume.FilePath); err != nil {
		logger.Log.Warn("Failed to delete resume file",
			zap.String("path", resume.FilePath), zap.Error(err))
	}

	return s.ResumeRepo.Delete(resume)
}
