package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sejanpass/sejanpass-go/internal/generator"
	"github.com/sejanpass/sejanpass-go/internal/model"
	"github.com/sejanpass/sejanpass-go/internal/repository"
)

var ErrInvalidEvent = errors.New("generation event is incomplete")

// AuditService records and summarizes generation events.
type AuditService struct {
	repo *repository.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(repo *repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record stores event, assigning an ID if it has none.
func (s *AuditService) Record(ctx context.Context, event *model.GenerationEvent) error {
	if event == nil || event.Length <= 0 || event.Count <= 0 || event.Rating == "" {
		return ErrInvalidEvent
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return s.repo.Insert(ctx, event)
}

// Stats totals recorded events. Every rating appears in ByRating, even at zero.
func (s *AuditService) Stats(ctx context.Context) (model.AuditStats, error) {
	counts, err := s.repo.CountByRating(ctx)
	if err != nil {
		return model.AuditStats{}, err
	}

	return summarize(counts), nil
}

func summarize(counts []repository.RatingCount) model.AuditStats {
	stats := model.AuditStats{
		ByRating: map[string]int64{
			generator.Weak.String():   0,
			generator.Medium.String(): 0,
			generator.Strong.String(): 0,
		},
	}
	for _, c := range counts {
		stats.Events += c.Events
		stats.Passwords += c.Passwords
		stats.ByRating[c.Rating] += c.Passwords
	}
	return stats
}
