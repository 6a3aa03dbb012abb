package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/fadilmartias/interview-assistant/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type InterviewerRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewInterviewerRepository() contract.InterviewerRepository {
	return &InterviewerRepository{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (r *InterviewerRepository) Create(ctx context.Context, interviewer *model.Interviewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if interviewer.ID == uuid.Nil {
		interviewer.ID = uuid.New()
	}
	if interviewer.CreatedAt.IsZero() {
		interviewer.CreatedAt = time.Now()
	}
	clone := *interviewer
	r.cache.Set(interviewer.ID.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *InterviewerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Interviewer, error) {
	if x, found := r.cache.Get(id.String()); found {
		clone := *x.(*model.Interviewer)
		return &clone, nil
	}
	return nil, nil
}

func (r *InterviewerRepository) FindByEmail(ctx context.Context, email string) (*model.Interviewer, error) {
	for _, item := range r.cache.Items() {
		m := item.Object.(*model.Interviewer)
		if m.Email == email {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}
