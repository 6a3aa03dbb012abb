package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/interview-assistant/internal/agent"
	"github.com/fadilmartias/interview-assistant/internal/dto"
	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/pkg/logger"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"
	"github.com/fadilmartias/interview-assistant/internal/service"
	"github.com/fadilmartias/interview-assistant/internal/util"
	"github.com/google/uuid"
)

// resumeContentLimit bounds how much extracted resume text is stored on the
// session and fed to prompts.
const resumeContentLimit = 20000

// Agent contracts consumed by the interview flow. The concrete types live in
// internal/agent; tests substitute deterministic fakes.
type QuestionGenerator interface {
	Generate(ctx context.Context, difficulty string, questionNumber int, profile agent.ResumeProfile, previousQuestions []string) agent.QuestionSpec
}

type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question agent.QuestionSpec, answerText string, timeTaken int, profile agent.ResumeProfile) agent.EvaluationResult
}

type SummaryGenerator interface {
	Generate(ctx context.Context, candidate agent.ResumeProfile, records []agent.QuestionAnswerRecord, overallScore float64) agent.SummaryResult
}

type ResumeParser interface {
	Parse(ctx context.Context, resumeText string) agent.ResumeProfile
}

type InterviewUsecase struct {
	repo       contract.InterviewRepository
	questions  QuestionGenerator
	evaluator  AnswerEvaluator
	summarizer SummaryGenerator
	parser     ResumeParser
	storage    service.StorageServiceInterface
	logger     logger.ILogger
}

func NewInterviewUsecase(
	repo contract.InterviewRepository,
	questions QuestionGenerator,
	evaluator AnswerEvaluator,
	summarizer SummaryGenerator,
	parser ResumeParser,
	storage service.StorageServiceInterface,
	logger logger.ILogger,
) *InterviewUsecase {
	return &InterviewUsecase{
		repo:       repo,
		questions:  questions,
		evaluator:  evaluator,
		summarizer: summarizer,
		parser:     parser,
		storage:    storage,
		logger:     logger,
	}
}

func (u *InterviewUsecase) sessionByToken(ctx context.Context, token string) (*model.InterviewSession, error) {
	session, err := u.repo.FindSessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, NotFoundError{Resource: "interview session"}
	}
	return session, nil
}

// candidateProfile rebuilds the parsed resume profile stored on the session
// and overlays the confirmed identity fields, which always win over whatever
// the parser extracted.
func candidateProfile(session *model.InterviewSession) agent.ResumeProfile {
	var profile agent.ResumeProfile
	if session.ResumeSummary != "" {
		// Malformed stored JSON degrades to an empty profile.
		_ = json.Unmarshal([]byte(session.ResumeSummary), &profile)
	}
	if session.CandidateName != "" {
		profile.Name = session.CandidateName
	}
	if session.CandidateEmail != "" {
		profile.Email = session.CandidateEmail
	}
	if session.CandidatePhone != "" {
		profile.Phone = session.CandidatePhone
	}
	return profile
}

func (u *InterviewUsecase) GetSession(ctx context.Context, token string) (*dto.SessionDTO, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	out := dto.NewSessionDTO(session)
	return &out, nil
}

func (u *InterviewUsecase) UpdateCandidateInfo(ctx context.Context, token string, req dto.CandidateInfoRequest) (*dto.SessionDTO, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Status == model.StatusCompleted {
		return nil, PreconditionError{Reason: "interview already completed"}
	}

	session.CandidateName = req.Name
	session.CandidateEmail = req.Email
	session.CandidatePhone = req.Phone
	if err := u.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	out := dto.NewSessionDTO(session)
	return &out, nil
}

// UploadResume extracts text from the uploaded file, parses it into a profile
// and stores the original file. Storage and parsing failures are absorbed:
// the upload succeeds as long as text extraction does, and missing fields are
// reported back for manual entry.
func (u *InterviewUsecase) UploadResume(ctx context.Context, token, filename string, content []byte) (*dto.ResumeUploadResponse, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Status == model.StatusCompleted {
		return nil, PreconditionError{Reason: "interview already completed"}
	}

	text, err := util.ExtractText(content, filename)
	if err != nil {
		return nil, PreconditionError{Reason: fmt.Sprintf("could not read resume file: %v", err)}
	}
	if len(text) > resumeContentLimit {
		text = text[:resumeContentLimit]
	}

	profile := u.parser.Parse(ctx, text)

	resumeURL := ""
	if u.storage != nil {
		url, err := u.storage.StoreResume(ctx, content, filename, profile.Name)
		if err != nil {
			u.logger.Warn("interview_usecase", "resume file storage failed, keeping extracted text only", map[string]interface{}{
				"session_id": session.ID.String(),
				"error":      err.Error(),
			})
		} else {
			resumeURL = url
		}
	}

	summaryJSON, _ := json.Marshal(profile)

	session.ResumeFilename = filename
	session.ResumeURL = resumeURL
	session.ResumeContent = text
	session.ResumeSummary = string(summaryJSON)
	if session.CandidateName == "" {
		session.CandidateName = profile.Name
	}
	if session.CandidateEmail == "" {
		session.CandidateEmail = profile.Email
	}
	if session.CandidatePhone == "" {
		session.CandidatePhone = profile.Phone
	}
	if err := u.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return &dto.ResumeUploadResponse{
		ResumeURL:     resumeURL,
		Name:          profile.Name,
		Email:         profile.Email,
		Phone:         profile.Phone,
		MissingFields: missingCandidateFields(session),
	}, nil
}

func missingCandidateFields(session *model.InterviewSession) []string {
	missing := []string{}
	if session.CandidateName == "" {
		missing = append(missing, "name")
	}
	if session.CandidateEmail == "" {
		missing = append(missing, "email")
	}
	if session.CandidatePhone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// StartInterview generates the full question set and moves the session to
// in_progress. Starting is one-shot: an in_progress or completed session is
// rejected so a stray second click cannot regenerate questions.
func (u *InterviewUsecase) StartInterview(ctx context.Context, token string) (*dto.ContinueResponse, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case model.StatusInProgress:
		return nil, PreconditionError{Reason: "interview already started"}
	case model.StatusCompleted:
		return nil, PreconditionError{Reason: "interview already completed"}
	}
	if !session.HasCandidateInfo() {
		return nil, PreconditionError{Reason: "candidate name, email and phone are required before starting"}
	}

	profile := candidateProfile(session)

	// An answer submitted before Start already created its question row.
	// Those numbers keep their row; generating over them would violate the
	// unique index on (session_id, question_number).
	existing, err := u.repo.FindQuestions(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	existingText := make(map[int]string, len(existing))
	for _, q := range existing {
		existingText[q.QuestionNumber] = q.QuestionText
	}

	questions := make([]model.InterviewQuestion, 0, model.QuestionCount)
	previous := make([]string, 0, model.QuestionCount)
	now := time.Now()
	for n := 1; n <= model.QuestionCount; n++ {
		if text, ok := existingText[n]; ok {
			previous = append(previous, text)
			continue
		}
		difficulty := model.DifficultyForNumber(n)
		spec := u.questions.Generate(ctx, difficulty, n, profile, previous)
		previous = append(previous, spec.Question)
		questions = append(questions, model.InterviewQuestion{
			SessionID:      session.ID,
			QuestionNumber: n,
			Difficulty:     difficulty,
			QuestionText:   spec.Question,
			TimeLimit:      model.TimeLimitForDifficulty(difficulty),
			GeneratedAt:    now,
		})
	}

	err = u.repo.Transaction(ctx, func(repo contract.InterviewRepository) error {
		if len(questions) > 0 {
			if err := repo.CreateQuestions(ctx, questions); err != nil {
				return err
			}
		}
		session.Status = model.StatusInProgress
		session.StartedAt = &now
		session.CurrentQuestionIndex = 0
		return repo.SaveSession(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	return u.continueResponse(ctx, session)
}

// SubmitAnswer records and scores one answer. Resubmitting a question number
// replaces the earlier answer; the progress index only ever moves forward.
// Answering the final question completes the interview; resubmitting it after
// completion re-runs the aggregation, which is deterministic for unchanged
// inputs. There is no status gate here: a duplicate client retry must land
// idempotently, and a submission arriving before Start simply creates the
// question row from the static difficulty map.
func (u *InterviewUsecase) SubmitAnswer(ctx context.Context, token string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if req.QuestionNumber < 1 || req.QuestionNumber > model.QuestionCount {
		return nil, PreconditionError{Reason: fmt.Sprintf("question number must be between 1 and %d", model.QuestionCount)}
	}

	question, err := u.repo.FindQuestionByNumber(ctx, session.ID, req.QuestionNumber)
	if err != nil {
		return nil, err
	}
	if question == nil {
		// Missing row: either generation was interrupted mid-set or the
		// client submitted before Start. A placeholder keeps the slot so
		// the answer is never lost.
		difficulty := model.DifficultyForNumber(req.QuestionNumber)
		question = &model.InterviewQuestion{
			SessionID:      session.ID,
			QuestionNumber: req.QuestionNumber,
			Difficulty:     difficulty,
			QuestionText:   fmt.Sprintf("Question %d", req.QuestionNumber),
			TimeLimit:      model.TimeLimitForDifficulty(difficulty),
			GeneratedAt:    time.Now(),
		}
		if err := u.repo.CreateQuestions(ctx, []model.InterviewQuestion{*question}); err != nil {
			return nil, err
		}
		created, err := u.repo.FindQuestionByNumber(ctx, session.ID, req.QuestionNumber)
		if err != nil {
			return nil, err
		}
		if created != nil {
			question = created
		}
	}

	spec := agent.QuestionSpec{
		QuestionNumber: question.QuestionNumber,
		Question:       question.QuestionText,
		Difficulty:     question.Difficulty,
		TimeLimit:      question.TimeLimit,
	}
	evaluation := u.evaluator.Evaluate(ctx, spec, req.AnswerText, req.TimeTaken, candidateProfile(session))

	err = u.repo.Transaction(ctx, func(repo contract.InterviewRepository) error {
		existing, err := repo.FindAnswerByQuestion(ctx, question.ID)
		if err != nil {
			return err
		}
		score := evaluation.Score
		if existing != nil {
			existing.AnswerText = req.AnswerText
			existing.TimeTaken = req.TimeTaken
			existing.Score = &score
			existing.AIFeedback = evaluation.Feedback
			existing.SubmittedAt = time.Now()
			if err := repo.SaveAnswer(ctx, existing); err != nil {
				return err
			}
		} else {
			answer := model.InterviewAnswer{
				SessionID:   session.ID,
				QuestionID:  question.ID,
				AnswerText:  req.AnswerText,
				TimeTaken:   req.TimeTaken,
				Score:       &score,
				AIFeedback:  evaluation.Feedback,
				SubmittedAt: time.Now(),
			}
			if err := repo.CreateAnswer(ctx, &answer); err != nil {
				return err
			}
		}
		if req.QuestionNumber > session.CurrentQuestionIndex {
			session.CurrentQuestionIndex = req.QuestionNumber
		}
		return repo.SaveSession(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	response := &dto.SubmitAnswerResponse{
		Evaluation: dto.EvaluationDTO{
			Score:        evaluation.Score,
			Feedback:     evaluation.Feedback,
			Strengths:    evaluation.Strengths,
			Improvements: evaluation.Improvements,
		},
		CurrentQuestionIndex: session.CurrentQuestionIndex,
	}

	if req.QuestionNumber == model.QuestionCount {
		summaryJSON, err := u.completeInterview(ctx, session)
		if err != nil {
			return nil, err
		}
		response.InterviewComplete = true
		response.FinalSummary = summaryJSON
		return response, nil
	}

	next, err := u.repo.FindQuestionByNumber(ctx, session.ID, req.QuestionNumber+1)
	if err != nil {
		return nil, err
	}
	if next != nil {
		q := dto.NewQuestionDTO(next)
		response.NextQuestion = &q
	}
	return response, nil
}

// completeInterview aggregates the final score, generates the summary and
// closes the session, returning the serialized summary. The summary call sits
// between the answer transaction and the completion transaction so an AI
// stall can never hold a lock.
func (u *InterviewUsecase) completeInterview(ctx context.Context, session *model.InterviewSession) (string, error) {
	answers, err := u.repo.FindAnswers(ctx, session.ID)
	if err != nil {
		return "", err
	}
	questions, err := u.repo.FindQuestions(ctx, session.ID)
	if err != nil {
		return "", err
	}

	totalScore := TotalScore(answers)

	byQuestion := make(map[string]model.InterviewAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID.String()] = a
	}
	records := make([]agent.QuestionAnswerRecord, 0, len(questions))
	for _, q := range questions {
		a, ok := byQuestion[q.ID.String()]
		if !ok {
			continue
		}
		records = append(records, agent.QuestionAnswerRecord{
			QuestionNumber: q.QuestionNumber,
			Question:       q.QuestionText,
			Difficulty:     q.Difficulty,
			Answer:         a.AnswerText,
			TimeTaken:      a.TimeTaken,
			Score:          a.Score,
			Feedback:       a.AIFeedback,
		})
	}

	summary := u.summarizer.Generate(ctx, candidateProfile(session), records, totalScore)
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return "", err
	}

	err = u.repo.Transaction(ctx, func(repo contract.InterviewRepository) error {
		session.TotalScore = totalScore
		session.AISummary = string(summaryJSON)
		session.StudentAISummary = summary.Summary
		session.Status = model.StatusCompleted
		if session.CompletedAt == nil {
			now := time.Now()
			session.CompletedAt = &now
		}
		return repo.SaveSession(ctx, session)
	})
	if err != nil {
		return "", err
	}
	return string(summaryJSON), nil
}

// ContinueInterview resumes an interrupted session, spending one retry. The
// third attempt is rejected for good.
func (u *InterviewUsecase) ContinueInterview(ctx context.Context, token string) (*dto.ContinueResponse, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Status == model.StatusCompleted {
		return nil, PreconditionError{Reason: "interview already completed"}
	}
	if session.Status == model.StatusCreated {
		return nil, PreconditionError{Reason: "interview has not started"}
	}
	if session.RetryCount >= model.MaxRetries {
		return nil, PreconditionError{Reason: "maximum continuation attempts reached"}
	}

	session.RetryCount++
	session.Status = model.StatusInProgress
	if err := u.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return u.continueResponse(ctx, session)
}

func (u *InterviewUsecase) continueResponse(ctx context.Context, session *model.InterviewSession) (*dto.ContinueResponse, error) {
	questions, err := u.repo.FindQuestions(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	answers, err := u.repo.FindAnswers(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID.String()] = true
	}

	response := &dto.ContinueResponse{
		Session:   dto.NewSessionDTO(session),
		Questions: make([]dto.QuestionDTO, 0, len(questions)),
		Answers:   make([]dto.AnswerDTO, 0, len(answers)),
	}
	for i := range questions {
		response.Questions = append(response.Questions, dto.NewQuestionDTO(&questions[i]))
		if response.CurrentQuestion == nil && !answered[questions[i].ID.String()] {
			q := dto.NewQuestionDTO(&questions[i])
			response.CurrentQuestion = &q
		}
	}
	for i := range answers {
		response.Answers = append(response.Answers, dto.NewAnswerDTO(&answers[i]))
	}
	return response, nil
}

// ContinueStatus reports whether the session may still be resumed, whether
// every question is answered, and where to resume. It is a pure read; calling
// it never spends a retry.
func (u *InterviewUsecase) ContinueStatus(ctx context.Context, token string) (*dto.ContinueStatusResponse, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	response := &dto.ContinueStatusResponse{
		Status:           session.DisplayStatus(),
		RetryCount:       session.RetryCount,
		RetriesRemaining: model.MaxRetries - session.RetryCount,
	}
	if response.RetriesRemaining < 0 {
		response.RetriesRemaining = 0
	}

	if session.Status != model.StatusCreated {
		next, allAnswered, err := u.firstUnanswered(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		response.NextQuestionNumber = next
		response.AllAnswered = allAnswered
	}

	switch {
	case session.Status == model.StatusCompleted:
		response.Reason = "interview already completed"
	case session.Status == model.StatusCreated:
		response.Reason = "interview has not started"
	case session.RetryCount >= model.MaxRetries:
		response.Reason = "maximum continuation attempts reached"
	case response.AllAnswered:
		response.Reason = "all questions answered"
	default:
		response.CanContinue = true
	}
	return response, nil
}

// firstUnanswered returns the lowest unanswered question number and whether
// the full set is answered. A session with no generated questions yields
// (0, false).
func (u *InterviewUsecase) firstUnanswered(ctx context.Context, sessionID uuid.UUID) (int, bool, error) {
	questions, err := u.repo.FindQuestions(ctx, sessionID)
	if err != nil {
		return 0, false, err
	}
	if len(questions) == 0 {
		return 0, false, nil
	}
	answers, err := u.repo.FindAnswers(ctx, sessionID)
	if err != nil {
		return 0, false, err
	}
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID.String()] = true
	}
	for _, q := range questions {
		if !answered[q.ID.String()] {
			return q.QuestionNumber, false, nil
		}
	}
	return 0, true, nil
}

func (u *InterviewUsecase) AddChatMessage(ctx context.Context, token string, req dto.ChatMessageRequest) (*dto.ChatMessageDTO, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = "text"
	}
	message := model.ChatMessage{
		SessionID:   session.ID,
		Sender:      req.Sender,
		Message:     req.Message,
		MessageType: messageType,
		Timestamp:   time.Now(),
	}
	if err := u.repo.CreateChatMessage(ctx, &message); err != nil {
		return nil, err
	}
	out := dto.NewChatMessageDTO(&message)
	return &out, nil
}

func (u *InterviewUsecase) GetChatMessages(ctx context.Context, token string) ([]dto.ChatMessageDTO, error) {
	session, err := u.sessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	messages, err := u.repo.FindChatMessages(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageDTO, 0, len(messages))
	for i := range messages {
		out = append(out, dto.NewChatMessageDTO(&messages[i]))
	}
	return out, nil
}
