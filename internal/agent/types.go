package agent

// Result types shared by the AI agents. Fallback results use the same shapes
// as AI-sourced ones; callers cannot (and should not) tell them apart.

// QuestionSpec is one generated interview prompt.
type QuestionSpec struct {
	QuestionNumber       int      `json:"question_number"`
	Question             string   `json:"question"`
	Difficulty           string   `json:"difficulty"`
	TimeLimit            int      `json:"time_limit"`
	Category             string   `json:"category"`
	ExpectedAnswerLength string   `json:"expected_answer_length"`
	EvaluationCriteria   []string `json:"evaluation_criteria"`
}

// EvaluationResult scores one submitted answer.
type EvaluationResult struct {
	Score             float64  `json:"score"`
	Feedback          string   `json:"feedback"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	TechnicalAccuracy float64  `json:"technical_accuracy"`
	Communication     float64  `json:"communication"`
	Depth             float64  `json:"depth"`
}

// SummaryResult is the final narrative over the whole interview. The overall
// score is always the aggregator's value; the model never overrides it.
type SummaryResult struct {
	OverallScore        float64  `json:"overall_score"`
	Recommendation      string   `json:"recommendation"`
	Summary             string   `json:"summary"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	TechnicalAssessment string   `json:"technical_assessment"`
	CommunicationSkills string   `json:"communication_skills"`
	NextSteps           string   `json:"next_steps"`
}

// ResumeProfile is the structured parse of a resume.
type ResumeProfile struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Experience      string   `json:"experience"`
	Skills          []string `json:"skills"`
	Education       string   `json:"education"`
	Projects        string   `json:"projects"`
	CurrentPosition string   `json:"current_position"`
	MissingFields   []string `json:"missing_fields"`
}

// QuestionAnswerRecord pairs a question with its recorded answer for summary
// generation.
type QuestionAnswerRecord struct {
	QuestionNumber int      `json:"question_number"`
	Question       string   `json:"question"`
	Difficulty     string   `json:"difficulty"`
	Answer         string   `json:"answer"`
	TimeTaken      int      `json:"time_taken"`
	Score          *float64 `json:"score"`
	Feedback       string   `json:"feedback"`
}
