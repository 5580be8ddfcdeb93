package catalog

import (
	"context"

	"github.com/cesargomez89/saavnsource/internal/domain"
)

// Recorder counts operation outcomes.
type Recorder interface {
	ObserveLoad(operation, loadType string)
}

const (
	streamResolved  = "stream"
	streamException = "exception"
)

// InstrumentedProvider wraps a Provider and reports the kind of every result
// it returns. Results pass through unchanged.
type InstrumentedProvider struct {
	provider Provider
	recorder Recorder
}

func NewInstrumentedProvider(provider Provider, recorder Recorder) *InstrumentedProvider {
	return &InstrumentedProvider{
		provider: provider,
		recorder: recorder,
	}
}

func (p *InstrumentedProvider) Check(identifier string) (domain.Classification, bool) {
	return p.provider.Check(identifier)
}

func (p *InstrumentedProvider) LoadFrom(ctx context.Context, contentType domain.ContentType, identifier string) domain.LoadResult {
	return p.record(opLoad, p.provider.LoadFrom(ctx, contentType, identifier))
}

func (p *InstrumentedProvider) Search(ctx context.Context, query string) domain.LoadResult {
	return p.record(opSearch, p.provider.Search(ctx, query))
}

func (p *InstrumentedProvider) Recommendations(ctx context.Context, songID string) domain.LoadResult {
	return p.record(opRecommendations, p.provider.Recommendations(ctx, songID))
}

func (p *InstrumentedProvider) RetrieveStream(ctx context.Context, identifier, title string) domain.StreamResult {
	res := p.provider.RetrieveStream(ctx, identifier, title)
	kind := streamResolved
	if !res.OK() {
		kind = streamException
	}
	p.recorder.ObserveLoad(opStream, kind)
	return res
}

func (p *InstrumentedProvider) record(op string, res domain.LoadResult) domain.LoadResult {
	p.recorder.ObserveLoad(op, string(res.LoadType()))
	return res
}

var _ Provider = (*InstrumentedProvider)(nil)
