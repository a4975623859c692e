package service

import (
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
)

type FAQService struct {
	FAQRepo *repository.FAQRepository
}

func NewFAQService(faqRepo *repository.FAQRepository) *FAQService {
	return &FAQService{FAQRepo: faqRepo}
}

// FAQEntry is one question inside a category group.
type FAQEntry struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ListGrouped returns all FAQs grouped by category, seeding on first use.
func (s *FAQService) ListGrouped() (map[string][]FAQEntry, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}

	faqs, err := s.FAQRepo.FindAllOrdered()
	if err != nil {
		return nil, err
	}

	grouped := map[string][]FAQEntry{}
	for _, faq := range faqs {
		grouped[faq.Category] = append(grouped[faq.Category], FAQEntry{
			ID:       faq.ID,
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}
	return grouped, nil
}

func (s *FAQService) Search(query string) ([]model.FAQ, error) {
	return s.FAQRepo.Search(query)
}

func (s *FAQService) ensureSeeded() error {
	count, err := s.FAQRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, faq := range seedFAQs() {
		entry := faq
		if err := s.FAQRepo.Create(&entry); err != nil {
			return err
		}
	}
	return nil
}

func seedFAQs() []model.FAQ {
	return []model.FAQ{
		{
			Category: "General",
			Question: "What is AI Interview Prep?",
			Answer:   "AI Interview Prep is a comprehensive platform that helps you prepare for technical interviews using AI-powered mock interviews, aptitude tests, resume analysis, and structured courses.",
			Position: 1,
		},
		{
			Category: "General",
			Question: "How does the XP system work?",
			Answer:   "You earn XP points by completing tests, interviews, courses, and maintaining daily streaks. Every 1000 XP unlocks a new level, giving you access to more features and achievements.",
			Position: 2,
		},
		{
			Category: "Tests",
			Question: "What types of aptitude tests are available?",
			Answer:   "We offer Logical Reasoning, Quantitative Aptitude, and Verbal Ability tests with varying difficulty levels (Easy, Medium, Hard).",
			Position: 3,
		},
		{
			Category: "Tests",
			Question: "How are tests scored?",
			Answer:   "Tests are scored based on correct answers out of total questions. You receive immediate feedback and earn XP based on your performance.",
			Position: 4,
		},
		{
			Category: "Interviews",
			Question: "How do AI mock interviews work?",
			Answer:   "Select your desired role and difficulty level. Our AI generates relevant interview questions. Answer them, and receive detailed AI-powered feedback on your responses.",
			Position: 5,
		},
		{
			Category: "Interviews",
			Question: "Can I practice for specific roles?",
			Answer:   "Yes! We support multiple roles including Software Developer, Data Scientist, Product Manager, and more. Questions are tailored to each role.",
			Position: 6,
		},
		{
			Category: "Resume",
			Question: "What resume formats are supported?",
			Answer:   "We support PDF and DOCX formats. Upload your resume to get AI-powered analysis, ATS score, and improvement suggestions.",
			Position: 7,
		},
		{
			Category: "Resume",
			Question: "What is ATS score?",
			Answer:   "ATS (Applicant Tracking System) score indicates how well your resume will perform in automated screening systems used by companies. Higher scores mean better chances of getting through initial screening.",
			Position: 8,
		},
		{
			Category: "Courses",
			Question: "How do I enroll in courses?",
			Answer:   "Browse available courses and click 'Enroll'. Track your progress as you complete lessons. You'll earn XP and certificates upon completion.",
			Position: 9,
		},
		{
			Category: "Account",
			Question: "How do I maintain my streak?",
			Answer:   "Login daily and complete at least one activity (test, interview, or course lesson). Your streak increases with consecutive daily logins.",
			Position: 10,
		},
	}
}
