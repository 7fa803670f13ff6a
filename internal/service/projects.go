package service

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"portfolioapi/internal/model"
)

// PinnedFetcher retrieves the pinned repositories of the configured account.
type PinnedFetcher interface {
	FetchPinned(ctx context.Context) ([]model.PinnedRepository, error)
}

// ProjectService exposes the pinned repositories shown on the projects page.
type ProjectService interface {
	// Pinned never fails: any upstream problem yields an empty list.
	Pinned(ctx context.Context) []model.PinnedRepository
}

type projectService struct {
	fetcher PinnedFetcher
	logger  *slog.Logger
	fetches *prometheus.CounterVec
}

// NewProjectService constructs a ProjectService. reg may be nil to skip metrics.
func NewProjectService(fetcher PinnedFetcher, logger *slog.Logger, reg prometheus.Registerer) (ProjectService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &projectService{fetcher: fetcher, logger: logger}
	if reg != nil {
		s.fetches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "github_pinned_fetch_total",
			Help: "Pinned repository lookups against GitHub, by result.",
		}, []string{"result"})
		if err := reg.Register(s.fetches); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *projectService) Pinned(ctx context.Context) []model.PinnedRepository {
	repos, err := s.fetcher.FetchPinned(ctx)
	if err != nil {
		s.logger.Warn("pinned repositories unavailable", slog.String("error", err.Error()))
		s.count("error")
		return []model.PinnedRepository{}
	}
	s.count("ok")
	if repos == nil {
		return []model.PinnedRepository{}
	}
	return repos
}

func (s *projectService) count(result string) {
	if s.fetches != nil {
		s.fetches.WithLabelValues(result).Inc()
	}
}
