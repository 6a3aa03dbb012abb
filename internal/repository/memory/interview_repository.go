package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	sessionPrefix  = "session:"
	questionPrefix = "question:"
	answerPrefix   = "answer:"
	chatPrefix     = "chat:"
)

// InterviewRepository is a go-cache backed implementation used by tests and
// local development. Writes inside Transaction are serialized by a mutex but
// are not rolled back on error.
type InterviewRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewInterviewRepository() contract.InterviewRepository {
	return &InterviewRepository{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (r *InterviewRepository) CreateSession(ctx context.Context, session *model.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.putSession(session)
}

func (r *InterviewRepository) SaveSession(ctx context.Context, session *model.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.putSession(session)
}

func (r *InterviewRepository) putSession(session *model.InterviewSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = time.Now()
	clone := *session
	r.cache.Set(sessionPrefix+session.ID.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *InterviewRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(sessionPrefix + id.String())
	for key, item := range r.cache.Items() {
		switch v := item.Object.(type) {
		case *model.InterviewQuestion:
			if v.SessionID == id {
				r.cache.Delete(key)
			}
		case *model.InterviewAnswer:
			if v.SessionID == id {
				r.cache.Delete(key)
			}
		case *model.ChatMessage:
			if v.SessionID == id {
				r.cache.Delete(key)
			}
		}
	}
	return nil
}

func (r *InterviewRepository) FindSessionByToken(ctx context.Context, token string) (*model.InterviewSession, error) {
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*model.InterviewSession); ok && s.SessionToken == token {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *InterviewRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*model.InterviewSession, error) {
	if x, found := r.cache.Get(sessionPrefix + id.String()); found {
		clone := *x.(*model.InterviewSession)
		return &clone, nil
	}
	return nil, nil
}

func (r *InterviewRepository) FindSessionsByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]model.InterviewSession, error) {
	var sessions []model.InterviewSession
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*model.InterviewSession); ok && s.InterviewerID == interviewerID {
			sessions = append(sessions, *s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (r *InterviewRepository) CreateQuestions(ctx context.Context, questions []model.InterviewQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range questions {
		if questions[i].ID == uuid.Nil {
			questions[i].ID = uuid.New()
		}
		clone := questions[i]
		r.cache.Set(questionPrefix+questions[i].ID.String(), &clone, cache.NoExpiration)
	}
	return nil
}

func (r *InterviewRepository) FindQuestions(ctx context.Context, sessionID uuid.UUID) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	for _, item := range r.cache.Items() {
		if q, ok := item.Object.(*model.InterviewQuestion); ok && q.SessionID == sessionID {
			questions = append(questions, *q)
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].QuestionNumber < questions[j].QuestionNumber
	})
	return questions, nil
}

func (r *InterviewRepository) FindQuestionByNumber(ctx context.Context, sessionID uuid.UUID, number int) (*model.InterviewQuestion, error) {
	for _, item := range r.cache.Items() {
		if q, ok := item.Object.(*model.InterviewQuestion); ok && q.SessionID == sessionID && q.QuestionNumber == number {
			clone := *q
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *InterviewRepository) CreateAnswer(ctx context.Context, answer *model.InterviewAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.putAnswer(answer)
}

func (r *InterviewRepository) SaveAnswer(ctx context.Context, answer *model.InterviewAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.putAnswer(answer)
}

func (r *InterviewRepository) putAnswer(answer *model.InterviewAnswer) error {
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	clone := *answer
	r.cache.Set(answerPrefix+answer.ID.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *InterviewRepository) FindAnswers(ctx context.Context, sessionID uuid.UUID) ([]model.InterviewAnswer, error) {
	numbers := map[uuid.UUID]int{}
	for _, item := range r.cache.Items() {
		if q, ok := item.Object.(*model.InterviewQuestion); ok && q.SessionID == sessionID {
			numbers[q.ID] = q.QuestionNumber
		}
	}

	var answers []model.InterviewAnswer
	for _, item := range r.cache.Items() {
		if a, ok := item.Object.(*model.InterviewAnswer); ok && a.SessionID == sessionID {
			answers = append(answers, *a)
		}
	}
	sort.Slice(answers, func(i, j int) bool {
		return numbers[answers[i].QuestionID] < numbers[answers[j].QuestionID]
	})
	return answers, nil
}

func (r *InterviewRepository) FindAnswerByQuestion(ctx context.Context, questionID uuid.UUID) (*model.InterviewAnswer, error) {
	for _, item := range r.cache.Items() {
		if a, ok := item.Object.(*model.InterviewAnswer); ok && a.QuestionID == questionID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *InterviewRepository) CreateChatMessage(ctx context.Context, message *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	clone := *message
	r.cache.Set(chatPrefix+message.ID.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *InterviewRepository) FindChatMessages(ctx context.Context, sessionID uuid.UUID) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	for _, item := range r.cache.Items() {
		if m, ok := item.Object.(*model.ChatMessage); ok && m.SessionID == sessionID {
			messages = append(messages, *m)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *InterviewRepository) Transaction(ctx context.Context, fn func(repo contract.InterviewRepository) error) error {
	return fn(r)
}
