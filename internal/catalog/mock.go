package catalog

import (
	"context"

	"github.com/cesargomez89/saavnsource/internal/constants"
	"github.com/cesargomez89/saavnsource/internal/domain"
)

// MockProvider returns canned results without touching the network.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func mockTrack(id, title string) domain.EncodedTrack {
	return domain.EncodedTrack{
		Encoded: "mock-" + id,
		Info: domain.TrackInfo{
			Identifier: id,
			IsSeekable: true,
			Author:     domain.StringPtr("Mock Artist"),
			LengthMs:   180000,
			Title:      title,
			SourceURI:  "https://www.jiosaavn.com/song/mock/" + id,
			SourceName: constants.SourceName,
		},
	}
}

func (p *MockProvider) Check(identifier string) (domain.Classification, bool) {
	return Classify(identifier)
}

func (p *MockProvider) LoadFrom(ctx context.Context, contentType domain.ContentType, identifier string) domain.LoadResult {
	switch contentType {
	case domain.ContentSong:
		return domain.TrackResult{Track: mockTrack("1", "Mock Track")}
	case domain.ContentAlbum, domain.ContentPlaylist:
		t1, t2 := mockTrack("1", "Track 1"), mockTrack("2", "Track 2")
		c := domain.Collection{
			Info:   domain.CollectionInfo{Name: "Mock Collection"},
			Tracks: []*domain.EncodedTrack{&t1, &t2},
		}
		if contentType == domain.ContentAlbum {
			return domain.AlbumResult{Collection: c}
		}
		return domain.PlaylistResult{Collection: c}
	case "":
		return domain.ErrorResult{Err: domain.Fault("missing type", "Data extraction didn't give required keys/values (type)")}
	default:
		return domain.EmptyResult{}
	}
}

func (p *MockProvider) Search(ctx context.Context, query string) domain.LoadResult {
	if query == "" {
		return domain.EmptyResult{}
	}
	return domain.SearchResult{Tracks: []domain.EncodedTrack{mockTrack("1", "Mock Track")}}
}

func (p *MockProvider) Recommendations(ctx context.Context, songID string) domain.LoadResult {
	return domain.SearchResult{Tracks: []domain.EncodedTrack{mockTrack("3", "Mock Suggestion")}}
}

func (p *MockProvider) RetrieveStream(ctx context.Context, identifier, title string) domain.StreamResult {
	if identifier == "" {
		return domain.NewStreamException(domain.Fault(notPlayable, causeUnknown))
	}
	return domain.NewStream("https://aac.saavncdn.com/mock/" + identifier + "_320.mp4")
}

var _ Provider = (*MockProvider)(nil)
