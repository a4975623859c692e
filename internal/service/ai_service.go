package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Source tells callers whether a payload came from the live model or from the
// static fallback bank. Generation never fails from the caller's point of view;
// this is the observable difference between the two paths.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// TextGenerator is the seam between prompt plumbing and the hosted model.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", errors.New("no response generated")
	}

	text, err := result.Text()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("empty response generated")
	}
	return text, nil
}

// AIService wraps prompt construction, the external model call, JSON extraction
// and the degrade-to-available fallback policy. It is constructed once and
// injected into the feature services.
type AIService struct {
	generator TextGenerator
	enabled   bool
}

func NewAIService(cfg config.AIConfig) *AIService {
	if cfg.APIKey == "" {
		logger.Log.Warn("Gemini API key not configured, using fallback content")
		return &AIService{}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Log.Warn("Failed to create Gemini client, using fallback content", zap.Error(err))
		return &AIService{}
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-pro"
	}

	return &AIService{
		generator: &geminiGenerator{client: client, model: modelName},
		enabled:   true,
	}
}

// NewAIServiceWithGenerator injects a custom generator; used by tests.
func NewAIServiceWithGenerator(g TextGenerator) *AIService {
	return &AIService{generator: g, enabled: g != nil}
}

// Enabled reports whether a live model is configured. When false every call
// takes the fallback path without touching the network.
func (s *AIService) Enabled() bool {
	return s.enabled
}

// stripCodeFence removes a surrounding markdown code block. Models frequently
// wrap JSON in ```json ... ``` despite being told not to.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	parts := strings.Split(text, "```")
	if len(parts) < 2 {
		return text
	}
	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}

// generateInto runs one generation and parses the result into out. Any failure
// at the call or parse stage reports SourceFallback; the caller then substitutes
// its static payload.
func (s *AIService) generateInto(ctx context.Context, feature, prompt string, out interface{}) Source {
	source := s.tryGenerate(ctx, feature, prompt, out)
	monitoring.AIGenerationCounter.WithLabelValues(feature, string(source)).Inc()
	return source
}

func (s *AIService) tryGenerate(ctx context.Context, feature, prompt string, out interface{}) Source {
	if !s.enabled {
		return SourceFallback
	}

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Log.Warn("AI generation failed, falling back",
			zap.String("feature", feature), zap.Error(err))
		return SourceFallback
	}

	if err := json.Unmarshal([]byte(stripCodeFence(text)), out); err != nil {
		logger.Log.Warn("AI response was not valid JSON, falling back",
			zap.String("feature", feature), zap.Error(err))
		return SourceFallback
	}

	return SourceModel
}

// GenerateAptitudeQuestions returns count questions for the category
// (Logical/Quantitative/Verbal) and difficulty, cycling through the fallback
// bank when the model is unavailable.
func (s *AIService) GenerateAptitudeQuestions(ctx context.Context, category, difficulty string, count int) ([]model.AptitudeQuestion, Source) {
	prompt := fmt.Sprintf(`Generate %d %s level %s aptitude questions in JSON format.
Each question should have:
- question: the question text
- options: array of 4 options
- correct_answer: index of correct option (0-3)
- explanation: brief explanation of the answer

Return ONLY a valid JSON array, nothing else.`, count, difficulty, category)

	var questions []model.AptitudeQuestion
	if source := s.generateInto(ctx, "aptitude_questions", prompt, &questions); source == SourceModel && len(questions) > 0 {
		if len(questions) > count {
			questions = questions[:count]
		}
		return questions, SourceModel
	}

	return FallbackAptitudeQuestions(category, count), SourceFallback
}

// GenerateInterviewQuestions mixes technical and behavioral questions for the role.
func (s *AIService) GenerateInterviewQuestions(ctx context.Context, role, difficulty string, count int) ([]model.InterviewQuestion, Source) {
	prompt := fmt.Sprintf(`Generate %d %s level interview questions for a %s position.
Include both technical and behavioral questions.

Return a JSON array where each question has:
- question: the question text
- type: "technical" or "behavioral"
- expected_points: key points that should be covered in answer

Return ONLY valid JSON, nothing else.`, count, difficulty, role)

	var questions []model.InterviewQuestion
	if source := s.generateInto(ctx, "interview_questions", prompt, &questions); source == SourceModel && len(questions) > 0 {
		if len(questions) > count {
			questions = questions[:count]
		}
		return questions, SourceModel
	}

	return FallbackInterviewQuestions(role, count), SourceFallback
}

// EvaluateInterviewResponse scores one answer 0-100 with qualitative feedback.
func (s *AIService) EvaluateInterviewResponse(ctx context.Context, question, response string, expectedPoints []string) (model.ResponseEvaluation, Source) {
	prompt := fmt.Sprintf(`Evaluate this interview response:

Question: %s
Expected Points: %s
Candidate's Response: %s

Provide:
- score: 0-100
- feedback: constructive feedback
- strengths: what was good
- improvements: what could be better

Return ONLY valid JSON with these fields.`, question, strings.Join(expectedPoints, ", "), response)

	var evaluation model.ResponseEvaluation
	if source := s.generateInto(ctx, "interview_evaluation", prompt, &evaluation); source == SourceModel {
		if evaluation.Feedback == "" {
			evaluation.Feedback = "Good attempt. Keep practicing!"
		}
		return evaluation, SourceModel
	}

	return FallbackEvaluation(), SourceFallback
}

// GenerateCodingProblems builds practice problems; SQL, bug-fixing and
// flashcard categories get tailored instructions.
func (s *AIService) GenerateCodingProblems(ctx context.Context, category, difficulty, language string, count int) ([]model.CodingProblem, Source) {
	var taskInstruction string
	switch {
	case strings.Contains(category, "SQL"):
		taskInstruction = "The problems should be SQL challenges. 'starter_code' should be a SQL query template. 'constraints' should describe the database schema."
	case strings.Contains(category, "Bug Fixing"):
		taskInstruction = fmt.Sprintf("The problems should be bug-fixing tasks. 'starter_code' should contain buggy %s code. 'examples' should show the buggy input/output vs expected.", language)
	case strings.Contains(category, "Flashcards"):
		taskInstruction = "The problems should be flashcard-style questions. 'title' is the question, 'description' is the concise answer, and 'constraints' are key bullet points to remember."
	default:
		taskInstruction = fmt.Sprintf("The problems should be standard coding challenges. 'starter_code' should be a function template in %s.", language)
	}

	prompt := fmt.Sprintf(`Generate %d %s level coding/technical problems for category '%s'.
%s

Each problem should have:
- title: Problem title or question
- description: Detailed description or answer
- constraints: Array of constraints or key points
- examples: Array of objects with 'input', 'output', 'explanation'
- starter_code: Code template, buggy code, or SQL script
- test_cases: Array of objects with 'input', 'expected_output'

Return ONLY a valid JSON array.`, count, difficulty, category, taskInstruction)

	var problems []model.CodingProblem
	if source := s.generateInto(ctx, "coding_problems", prompt, &problems); source == SourceModel && len(problems) > 0 {
		if len(problems) > count {
			problems = problems[:count]
		}
		return problems, SourceModel
	}

	return FallbackCodingProblems(count), SourceFallback
}

// GenerateAptitudeTutorial produces a structured tutorial for a topic.
func (s *AIService) GenerateAptitudeTutorial(ctx context.Context, category, topic string) (model.Tutorial, Source) {
	prompt := fmt.Sprintf(`Create a comprehensive tutorial for the aptitude topic '%s' in the category '%s'.
Include:
- title: Topic title
- overview: Brief introduction
- key_concepts: Array of key concepts with definitions
- formulas: Array of relevant formulas
- examples: Array of solved examples with step-by-step explanations
- tips: Array of shortcuts or tips

Return ONLY a valid JSON object.`, topic, category)

	var tutorial model.Tutorial
	if source := s.generateInto(ctx, "aptitude_tutorial", prompt, &tutorial); source == SourceModel && tutorial.Title != "" {
		return tutorial, SourceModel
	}

	return FallbackTutorial(category, topic), SourceFallback
}

// AnalyzeResume reviews extracted resume text and returns ATS scoring plus
// actionable feedback. Missing keys in the model output are defaulted.
func (s *AIService) AnalyzeResume(ctx context.Context, resumeText string) (model.ResumeAnalysis, Source) {
	prompt := fmt.Sprintf(`Analyze this resume in detail and provide comprehensive feedback:

%s

Provide a detailed JSON response with these fields:
- ats_score: ATS compatibility score (0-100) based on formatting, keywords, structure
- ats_friendly: boolean, true if score >= 75
- ats_analysis: object with formatting_score, keyword_optimization, structure_score, readability_score (each 0-100) and overall_feedback (string)
- positive_points: array of strings highlighting what's GOOD about the resume (at least 5 points)
- negative_points: array of strings highlighting what NEEDS IMPROVEMENT (at least 5 points)
- skills: extracted technical skills as array
- experience_years: estimated years of professional experience
- strengths: array of overall strengths (3-5 items)
- improvements: array of specific actionable suggestions (5-7 items)
- missing_sections: array of sections that should be added
- keywords_found: array of important industry keywords detected
- keywords_missing: array of important keywords that should be added

Be specific, constructive, and actionable. Return ONLY valid JSON.`, resumeText)

	var analysis model.ResumeAnalysis
	if source := s.generateInto(ctx, "resume_analysis", prompt, &analysis); source == SourceModel {
		applyAnalysisDefaults(&analysis)
		return analysis, SourceModel
	}

	return FallbackResumeAnalysis(), SourceFallback
}

// applyAnalysisDefaults mirrors the presence checks on the parsed structure:
// a handful of expected keys are filled with defaults when the model omits them.
func applyAnalysisDefaults(analysis *model.ResumeAnalysis) {
	if analysis.PositivePoints == nil {
		analysis.PositivePoints = []string{}
	}
	if analysis.NegativePoints == nil {
		analysis.NegativePoints = []string{}
	}
	if analysis.ATSAnalysis == (model.ATSBreakdown{}) {
		analysis.ATSAnalysis = model.ATSBreakdown{
			FormattingScore:     int(analysis.ATSScore),
			KeywordOptimization: 70,
			StructureScore:      75,
			ReadabilityScore:    80,
			OverallFeedback:     "ATS analysis completed",
		}
		analysis.ATSFriendly = analysis.ATSScore >= 75
	}
}

// ExplainLessonConcept returns free text, not parsed as structured data.
func (s *AIService) ExplainLessonConcept(ctx context.Context, courseTitle, lessonTitle, lessonContent string) (string, Source) {
	fallback := fmt.Sprintf("**%s**\n\nThis concept is fundamental to %s. Please refer to the video and text content for a detailed explanation.", lessonTitle, courseTitle)

	if !s.enabled {
		monitoring.AIGenerationCounter.WithLabelValues("lesson_explanation", string(SourceFallback)).Inc()
		return fallback, SourceFallback
	}

	prompt := fmt.Sprintf(`You are an expert tutor. Explain the concept of '%s' from the course '%s'.

Lesson Content Context:
%s

Provide a concise, beginner-friendly explanation (max 200 words).
Include:
1. Definition
2. Real-world analogy
3. Key takeaway

Format as clear Markdown.`, lessonTitle, courseTitle, lessonContent)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Log.Warn("AI explanation failed, falling back", zap.Error(err))
		monitoring.AIGenerationCounter.WithLabelValues("lesson_explanation", string(SourceFallback)).Inc()
		return fallback, SourceFallback
	}

	monitoring.AIGenerationCounter.WithLabelValues("lesson_explanation", string(SourceModel)).Inc()
	return strings.TrimSpace(text), SourceModel
}
