package catalog

import (
	"context"

	"github.com/cesargomez89/saavnsource/internal/domain"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

// Manager routes raw host identifiers to the matching provider operation.
type Manager struct {
	provider Provider
	logger   *logger.Logger
}

func NewManager(provider Provider, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Discard()
	}
	return &Manager{
		provider: provider,
		logger:   log.WithComponent("manager"),
	}
}

func (m *Manager) GetProvider() Provider {
	return m.provider
}

// LoadTracks classifies identifier and dispatches it: search shortcuts to
// Search, recommendation shortcuts to Recommendations and URLs to LoadFrom.
// Identifiers the source does not recognise load as empty.
func (m *Manager) LoadTracks(ctx context.Context, identifier string) domain.LoadResult {
	c, ok := m.provider.Check(identifier)
	if !ok {
		m.logger.Debug("Identifier not handled by source", "identifier", identifier)
		return domain.EmptyResult{}
	}

	switch c.Kind {
	case domain.MatchSearch:
		return m.provider.Search(ctx, c.Identifier)
	case domain.MatchRecommendation:
		return m.provider.Recommendations(ctx, c.Identifier)
	default:
		return m.provider.LoadFrom(ctx, c.ContentType, c.URL)
	}
}
