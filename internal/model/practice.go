package model

// Practice payloads are generated on demand and never persisted.

type ProblemExample struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

type ProblemTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type CodingProblem struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Constraints []string          `json:"constraints"`
	Examples    []ProblemExample  `json:"examples"`
	StarterCode string            `json:"starter_code"`
	TestCases   []ProblemTestCase `json:"test_cases"`
}

type TutorialExample struct {
	Problem     string `json:"problem"`
	Solution    string `json:"solution"`
	Explanation string `json:"explanation"`
}

type KeyConcept struct {
	Concept    string `json:"concept"`
	Definition string `json:"definition"`
}

type Tutorial struct {
	Title       string            `json:"title"`
	Overview    string            `json:"overview"`
	KeyConcepts []KeyConcept      `json:"key_concepts"`
	Formulas    []string          `json:"formulas"`
	Examples    []TutorialExample `json:"examples"`
	Tips        []string          `json:"tips"`
}
