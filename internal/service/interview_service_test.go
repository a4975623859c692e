package service

import (
	"context"
	"strings"
	"testing"

	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInterviewService(db *gorm.DB, generator TextGenerator) *InterviewService {
	return NewInterviewService(
		repository.NewInterviewRepository(db),
		NewAIServiceWithGenerator(generator),
		newTestGamification(db),
	)
}

func TestStartDefaultsQuestionCount(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "iv@example.com")
	svc := newInterviewService(db, nil)

	started, err := svc.Start(context.Background(), user.ID, "Backend Developer", "Medium", 0)
	require.NoError(t, err)
	assert.NotZero(t, started.InterviewID)
	assert.Len(t, started.Questions, 5)
	assert.Equal(t, string(SourceFallback), started.Source)
}

func TestSubmitResponseRecordsTranscript(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "iv-resp@example.com")
	svc := newInterviewService(db, nil)

	started, err := svc.Start(context.Background(), user.ID, "Backend Developer", "Medium", 2)
	require.NoError(t, err)

	result, err := svc.SubmitResponse(context.Background(), user.ID, started.InterviewID, &ResponseSubmission{
		QuestionID: 1,
		Question:   "Tell me about yourself.",
		Response:   "I build backend services.",
	})
	require.NoError(t, err)
	assert.Equal(t, 70.0, result.Evaluation.Score)
	assert.Equal(t, 7, result.XPEarned)

	feedback, err := svc.Feedback(user.ID, started.InterviewID)
	require.NoError(t, err)
	require.Len(t, feedback.Responses, 1)
	require.Len(t, feedback.Feedback, 1)
	assert.Equal(t, 1, feedback.Feedback[0].QuestionID)
}

func TestSubmitResponseUnknownInterview(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "iv-missing@example.com")
	svc := newInterviewService(db, nil)

	_, err := svc.SubmitResponse(context.Background(), user.ID, 999, &ResponseSubmission{
		Question: "Q",
		Response: "A",
	})
	assert.ErrorIs(t, err, util.ErrInterviewNotFound)
}

func TestCompleteAveragesScoresAndBanksXP(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "iv-complete@example.com")
	svc := newInterviewService(db, &stubGenerator{
		text: `{"score": 90, "feedback": "Solid answer", "strengths": ["clear"], "improvements": []}`,
	})

	started, err := svc.Start(context.Background(), user.ID, "Backend Developer", "Hard", 2)
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		_, err = svc.SubmitResponse(context.Background(), user.ID, started.InterviewID, &ResponseSubmission{
			QuestionID: i,
			Question:   "Q",
			Response:   "A",
		})
		require.NoError(t, err)
	}

	result, err := svc.Complete(user.ID, started.InterviewID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, result.OverallScore)
	assert.Equal(t, 110, result.XPEarned)
	assert.Equal(t, 110, result.TotalXP)
	require.Len(t, result.FeedbackSummary, 2)

	has, err := repository.NewAchievementRepository(db).HasType(user.ID, model.AchievementFirstInterview)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCompleteWithoutResponses(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "iv-empty@example.com")
	svc := newInterviewService(db, nil)

	started, err := svc.Start(context.Background(), user.ID, "Backend Developer", "Easy", 1)
	require.NoError(t, err)

	result, err := svc.Complete(user.ID, started.InterviewID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, 10, result.XPEarned)
}

func TestInterviewCertificateThreshold(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "iv-cert@example.com")
	svc := newInterviewService(db, nil)

	started, err := svc.Start(context.Background(), user.ID, "Backend Developer", "Medium", 1)
	require.NoError(t, err)

	// No responses yet; overall score is zero.
	_, err = svc.Certificate(user.ID, started.InterviewID, user.Name)
	assert.ErrorIs(t, err, util.ErrScoreTooLow)

	// Fallback evaluations score 70, exactly at the threshold.
	_, err = svc.SubmitResponse(context.Background(), user.ID, started.InterviewID, &ResponseSubmission{
		QuestionID: 1,
		Question:   "Q",
		Response:   "A",
	})
	require.NoError(t, err)
	_, err = svc.Complete(user.ID, started.InterviewID)
	require.NoError(t, err)

	cert, err := svc.Certificate(user.ID, started.InterviewID, user.Name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cert.CertificateID, "INT-"))
	assert.Equal(t, 70.0, cert.Score)
	assert.Equal(t, "AI Interview Prep System", cert.Instructor)
}

func TestHistoryListsInterviews(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "iv-hist@example.com")
	svc := newInterviewService(db, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Start(context.Background(), user.ID, "Data Engineer", "Medium", 3)
		require.NoError(t, err)
	}

	history, err := svc.History(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Data Engineer", history[0].Role)
	assert.Equal(t, 3, history[0].TotalQuestions)
}
