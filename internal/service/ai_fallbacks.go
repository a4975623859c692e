package service

import (
	"fmt"
	"strings"

	"interview_prep_backend/internal/model"
)

// Static content served when the model is unconfigured or its output cannot be
// used. Candidates always get a working test even when generation is down.

var logicalQuestionBank = []model.AptitudeQuestion{
	{
		Question:      "If A is taller than B, and B is taller than C, who is the shortest?",
		Options:       []string{"A", "B", "C", "Cannot determine"},
		CorrectAnswer: 2,
		Explanation:   "C is shorter than B, and B is shorter than A, so C is the shortest.",
	},
	{
		Question:      "What comes next in the series: 2, 6, 12, 20, 30, ?",
		Options:       []string{"38", "40", "42", "44"},
		CorrectAnswer: 2,
		Explanation:   "Pattern: +4, +6, +8, +10, +12. So 30 + 12 = 42",
	},
	{
		Question:      "If all roses are flowers and some flowers fade quickly, which statement is definitely true?",
		Options:       []string{"All roses fade quickly", "Some roses are flowers", "No flowers fade quickly", "All flowers are roses"},
		CorrectAnswer: 1,
		Explanation:   "From 'all roses are flowers', we can definitively say 'some roses are flowers'.",
	},
	{
		Question:      "In a certain code, COMPUTER is written as RFUVQNPC. How is MEDICINE written in that code?",
		Options:       []string{"EOJDEJFM", "MFEDJJOE", "NFEJDJOF", "EOJDJEFN"},
		CorrectAnswer: 2,
		Explanation:   "Each letter is moved one position forward in the alphabet.",
	},
	{
		Question:      "Five friends are sitting in a row. A is to the left of B but to the right of C. D is to the right of B and E is to the right of D. Who is in the middle?",
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: 1,
		Explanation:   "Order: C, A, B, D, E. So B is in the middle.",
	},
	{
		Question:      "Find the odd one out: 3, 5, 11, 14, 17, 21",
		Options:       []string{"5", "11", "14", "21"},
		CorrectAnswer: 2,
		Explanation:   "All are prime numbers except 14 (14 = 2 × 7).",
	},
	{
		Question:      "If '+' means '×', '×' means '-', '-' means '÷' and '÷' means '+', what is 15 + 2 × 9 - 3 ÷ 5?",
		Options:       []string{"20", "22", "25", "28"},
		CorrectAnswer: 3,
		Explanation:   "15 × 2 - 9 ÷ 3 + 5 = 30 - 3 + 5 - 4 = 28",
	},
	{
		Question:      "Which word does NOT belong: Square, Triangle, Circle, Rectangle, Cube?",
		Options:       []string{"Square", "Triangle", "Circle", "Cube"},
		CorrectAnswer: 3,
		Explanation:   "Cube is 3D, all others are 2D shapes.",
	},
	{
		Question:      "If the day before yesterday was Thursday, what will be the day after tomorrow?",
		Options:       []string{"Sunday", "Monday", "Tuesday", "Wednesday"},
		CorrectAnswer: 1,
		Explanation:   "Day before yesterday = Thursday, Yesterday = Friday, Today = Saturday, Tomorrow = Sunday, Day after tomorrow = Monday",
	},
	{
		Question:      "Complete the analogy: Book : Pages :: Tree : ?",
		Options:       []string{"Forest", "Leaves", "Branches", "Roots"},
		CorrectAnswer: 1,
		Explanation:   "A book is made of pages, similarly a tree has leaves.",
	},
	{
		Question:      "A is the father of B, but B is not A's son. What is the relationship of B to A?",
		Options:       []string{"Daughter", "Nephew", "Cousin", "Step-son"},
		CorrectAnswer: 0,
		Explanation:   "If B is not the son, then B must be the daughter.",
	},
	{
		Question:      "If CLOCK is coded as KCOLD, then how will WATCH be coded?",
		Options:       []string{"HCTAW", "HCTA X", "HCTAY", "HCTAZ"},
		CorrectAnswer: 0,
		Explanation:   "The word is reversed. WATCH reversed is HCTAW.",
	},
}

var quantitativeQuestionBank = []model.AptitudeQuestion{
	{
		Question:      "What is 15% of 200?",
		Options:       []string{"25", "30", "35", "40"},
		CorrectAnswer: 1,
		Explanation:   "15% of 200 = (15/100) × 200 = 30",
	},
	{
		Question:      "If a train travels 120 km in 2 hours, what is its average speed?",
		Options:       []string{"50 km/h", "55 km/h", "60 km/h", "65 km/h"},
		CorrectAnswer: 2,
		Explanation:   "Speed = Distance/Time = 120/2 = 60 km/h",
	},
	{
		Question:      "The average of 5 numbers is 27. If one number is excluded, the average becomes 25. What is the excluded number?",
		Options:       []string{"30", "33", "35", "37"},
		CorrectAnswer: 2,
		Explanation:   "Sum of 5 numbers = 27×5 = 135. Sum of 4 numbers = 25×4 = 100. Excluded = 135-100 = 35",
	},
	{
		Question:      "A shopkeeper offers a 20% discount and still makes a 20% profit. If the cost price is $100, what was the marked price?",
		Options:       []string{"$144", "$150", "$156", "$160"},
		CorrectAnswer: 1,
		Explanation:   "Selling price = 100 + 20% = $120. If 80% of Marked price = 120, then Marked price = 120/0.8 = $150",
	},
	{
		Question:      "If x + y = 10 and x - y = 4, what is the value of x?",
		Options:       []string{"5", "6", "7", "8"},
		CorrectAnswer: 2,
		Explanation:   "Adding both equations: 2x = 14, so x = 7",
	},
	{
		Question:      "What is the compound interest on $5000 for 2 years at 10% per annum?",
		Options:       []string{"$1000", "$1050", "$1100", "$1150"},
		CorrectAnswer: 1,
		Explanation:   "A = 5000(1.1)² = 6050. CI = 6050 - 5000 = $1050",
	},
	{
		Question:      "In a class of 50 students, 30 play cricket and 25 play football. If 10 play both, how many play neither?",
		Options:       []string{"3", "5", "7", "10"},
		CorrectAnswer: 1,
		Explanation:   "Total = Cricket + Football - Both + Neither. 50 = 30 + 25 - 10 + Neither. Neither = 5",
	},
	{
		Question:      "A can complete a work in 12 days and B in 18 days. How long will they take working together?",
		Options:       []string{"6.5 days", "7 days", "7.2 days", "8 days"},
		CorrectAnswer: 2,
		Explanation:   "Combined rate = 1/12 + 1/18 = 5/36. Time = 36/5 = 7.2 days",
	},
	{
		Question:      "The ratio of boys to girls in a class is 3:2. If there are 30 boys, how many girls are there?",
		Options:       []string{"15", "18", "20", "25"},
		CorrectAnswer: 2,
		Explanation:   "3:2 = 30:x. So x = (2×30)/3 = 20",
	},
	{
		Question:      "What is 25% of 25% of 400?",
		Options:       []string{"20", "25", "30", "35"},
		CorrectAnswer: 1,
		Explanation:   "25% of 400 = 100. 25% of 100 = 25",
	},
	{
		Question:      "Find the sum of the first 20 even natural numbers.",
		Options:       []string{"400", "420", "440", "460"},
		CorrectAnswer: 1,
		Explanation:   "Sum of first n even numbers = n(n+1) = 20(21) = 420",
	},
}

var verbalQuestionBank = []model.AptitudeQuestion{
	{
		Question:      "Choose the word most similar in meaning to GARRULOUS:",
		Options:       []string{"Silent", "Talkative", "Angry", "Happy"},
		CorrectAnswer: 1,
		Explanation:   "Garrulous means excessively talkative.",
	},
	{
		Question:      "Choose the antonym of ZENITH:",
		Options:       []string{"Peak", "Summit", "Nadir", "Apex"},
		CorrectAnswer: 2,
		Explanation:   "Zenith means highest point. Nadir means lowest point.",
	},
	{
		Question:      "Complete the sentence: Despite the _____ evidence, the jury remained unconvinced.",
		Options:       []string{"scant", "meager", "compelling", "dubious"},
		CorrectAnswer: 2,
		Explanation:   "'Despite' indicates contrast. Compelling evidence should convince, but didn't.",
	},
	{
		Question:      "Find the correctly spelled word:",
		Options:       []string{"Accomodate", "Accommodate", "Acommodate", "Acomodate"},
		CorrectAnswer: 1,
		Explanation:   "The correct spelling is 'Accommodate' with double 'c' and double 'm'.",
	},
	{
		Question:      "Choose the word that best completes: Optimist : Hopeful :: Pessimist : _____",
		Options:       []string{"Gloomy", "Happy", "Neutral", "Excited"},
		CorrectAnswer: 0,
		Explanation:   "An optimist is hopeful, while a pessimist is gloomy.",
	},
	{
		Question:      "Identify the grammatically correct sentence:",
		Options:       []string{"She don't like coffee", "She doesn't likes coffee", "She doesn't like coffee", "She don't likes coffee"},
		CorrectAnswer: 2,
		Explanation:   "'She doesn't like coffee' uses correct subject-verb agreement.",
	},
	{
		Question:      "What does the idiom 'A blessing in disguise' mean?",
		Options:       []string{"A hidden curse", "Something good that seemed bad at first", "A religious ceremony", "A perfect situation"},
		CorrectAnswer: 1,
		Explanation:   "It means something that appears bad but turns out to be good.",
	},
	{
		Question:      "Choose the synonym of EPHEMERAL:",
		Options:       []string{"Permanent", "Eternal", "Temporary", "Endless"},
		CorrectAnswer: 2,
		Explanation:   "Ephemeral means lasting for a very short time, i.e., temporary.",
	},
	{
		Question:      "Which word is a noun in this sentence: 'The quick brown fox jumps over the lazy dog'?",
		Options:       []string{"Quick", "Brown", "Fox", "Jumps"},
		CorrectAnswer: 2,
		Explanation:   "'Fox' is a noun (a thing/animal). Quick and brown are adjectives, jumps is a verb.",
	},
	{
		Question:      "Choose the correct form: Neither of the students _____ completed their homework.",
		Options:       []string{"have", "has", "are", "were"},
		CorrectAnswer: 1,
		Explanation:   "'Neither' is singular and takes a singular verb 'has'.",
	},
}

// FallbackAptitudeQuestions cycles through the bank for the category until
// count questions are produced. Unknown categories fall back to Logical.
func FallbackAptitudeQuestions(category string, count int) []model.AptitudeQuestion {
	var bank []model.AptitudeQuestion
	switch strings.ToLower(category) {
	case "quantitative":
		bank = quantitativeQuestionBank
	case "verbal":
		bank = verbalQuestionBank
	default:
		bank = logicalQuestionBank
	}

	result := make([]model.AptitudeQuestion, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, bank[i%len(bank)])
	}
	return result
}

func FallbackInterviewQuestions(role string, count int) []model.InterviewQuestion {
	questions := []model.InterviewQuestion{
		{
			Question:       fmt.Sprintf("Tell me about your experience with %s technologies.", role),
			Type:           "technical",
			ExpectedPoints: []string{"Specific technologies", "Projects", "Problem-solving"},
		},
		{
			Question:       "Describe a challenging project you worked on.",
			Type:           "behavioral",
			ExpectedPoints: []string{"Challenge", "Approach", "Result"},
		},
	}
	if count < len(questions) {
		questions = questions[:count]
	}
	return questions
}

func FallbackEvaluation() model.ResponseEvaluation {
	return model.ResponseEvaluation{
		Score:        70,
		Feedback:     "Good attempt. Keep practicing!",
		Strengths:    []string{"Clear communication"},
		Improvements: []string{"Add more technical details"},
	}
}

func FallbackCodingProblems(count int) []model.CodingProblem {
	problems := []model.CodingProblem{
		{
			Title:       "Two Sum",
			Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			Constraints: []string{"2 <= nums.length <= 10^4", "-10^9 <= nums[i] <= 10^9", "-10^9 <= target <= 10^9"},
			Examples: []model.ProblemExample{
				{Input: "nums = [2,7,11,15], target = 9", Output: "[0,1]", Explanation: "Because nums[0] + nums[1] == 9, we return [0, 1]."},
			},
			StarterCode: "def two_sum(nums, target):\n    # Write your code here\n    pass",
			TestCases: []model.ProblemTestCase{
				{Input: "[2,7,11,15], 9", ExpectedOutput: "[0,1]"},
			},
		},
		{
			Title:       "Valid Parentheses",
			Description: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.",
			Constraints: []string{"1 <= s.length <= 10^4", "s consists of parentheses only '()[]{}'."},
			Examples: []model.ProblemExample{
				{Input: "s = '()[]{}'", Output: "true"},
			},
			StarterCode: "def isValid(s):\n    # Your code here\n    pass",
			TestCases: []model.ProblemTestCase{
				{Input: "('()[]{}')", ExpectedOutput: "true"},
			},
		},
	}
	if count < len(problems) {
		problems = problems[:count]
	}
	return problems
}

func FallbackTutorial(category, topic string) model.Tutorial {
	return model.Tutorial{
		Title:       topic,
		Overview:    fmt.Sprintf("Learn about %s in %s aptitude.", topic, category),
		KeyConcepts: []model.KeyConcept{},
		Formulas:    []string{},
		Examples:    []model.TutorialExample{},
		Tips:        []string{"Practice regularly to improve speed and accuracy."},
	}
}

func FallbackResumeAnalysis() model.ResumeAnalysis {
	return model.ResumeAnalysis{
		ATSScore:    75,
		ATSFriendly: true,
		ATSAnalysis: model.ATSBreakdown{
			FormattingScore:     75,
			KeywordOptimization: 70,
			StructureScore:      75,
			ReadabilityScore:    80,
			OverallFeedback:     "Resume has decent ATS compatibility. Standard formatting detected with room for improvement in keyword optimization.",
		},
		PositivePoints: []string{
			"Clean and professional formatting",
			"Technical skills are listed clearly",
			"Experience section is present",
			"Contact information is provided",
			"Structured layout is easy to follow",
		},
		NegativePoints: []string{
			"Could benefit from more quantifiable achievements (metrics, percentages)",
			"Some descriptions may be too generic",
			"Consider adding more industry-specific keywords",
			"Action verbs could be more impactful",
			"May need to highlight key accomplishments better",
		},
		Skills:          []string{"Python", "JavaScript", "SQL", "Communication", "Problem Solving"},
		ExperienceYears: 2,
		Strengths: []string{
			"Good technical foundation",
			"Clear structure and organization",
			"Professional presentation",
		},
		Improvements: []string{
			"Add more quantifiable achievements with metrics",
			"Include specific technologies and tools used",
			"Expand on project outcomes and impact",
			"Add a projects section if missing",
			"Optimize with industry-relevant keywords",
			"Use stronger action verbs (Led, Architected, Optimized)",
			"Keep bullet points concise yet impactful",
		},
		MissingSections: []string{"Projects", "Certifications"},
		KeywordsFound:   []string{"Python", "JavaScript", "Development"},
		KeywordsMissing: []string{"API", "Cloud", "Testing", "CI/CD", "Agile"},
	}
}
