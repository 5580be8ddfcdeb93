package catalog

import (
	"context"

	"github.com/cesargomez89/saavnsource/internal/domain"
)

// Provider is the whole surface a playback host needs from a source plugin.
// None of the methods return Go errors: every failure is folded into the
// returned result so the host can treat all sources the same way.
type Provider interface {
	Check(identifier string) (domain.Classification, bool)
	LoadFrom(ctx context.Context, contentType domain.ContentType, identifier string) domain.LoadResult
	Search(ctx context.Context, query string) domain.LoadResult
	Recommendations(ctx context.Context, songID string) domain.LoadResult
	RetrieveStream(ctx context.Context, identifier, title string) domain.StreamResult
}
