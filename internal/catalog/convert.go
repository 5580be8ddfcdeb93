package catalog

import (
	"strings"

	"github.com/samber/lo"

	"github.com/cesargomez89/saavnsource/internal/constants"
	"github.com/cesargomez89/saavnsource/internal/domain"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

// Encoder turns track info into the opaque token the host stores.
type Encoder interface {
	Encode(info domain.TrackInfo) (string, error)
}

// ToTrackInfo is the single mapping from a provider song record to host track info.
func (s APISong) ToTrackInfo() domain.TrackInfo {
	var author *string
	if len(s.Artists.Primary) > 0 {
		names := lo.Map(s.Artists.Primary, func(a APIArtist, _ int) string { return a.Name })
		joined := strings.Join(names, ", ")
		author = &joined
	}

	return domain.TrackInfo{
		Identifier: s.ID,
		IsSeekable: true,
		Author:     author,
		LengthMs:   int64(float64(s.Duration) * 1000),
		IsStream:   false,
		Position:   0,
		Title:      s.Name,
		SourceURI:  s.URL,
		ArtworkURL: lastURL(s.Image),
		ISRC:       nil,
		SourceName: constants.SourceName,
	}
}

// ToEncodedTrack wraps the normalised info together with its token.
func (s APISong) ToEncodedTrack(enc Encoder) (domain.EncodedTrack, error) {
	info := s.ToTrackInfo()
	token, err := enc.Encode(info)
	if err != nil {
		return domain.EncodedTrack{}, err
	}
	return domain.EncodedTrack{
		Encoded:    token,
		Info:       info,
		PluginInfo: domain.PluginInfo{},
	}, nil
}

// normalizeSongs keeps provider order. Songs that cannot be encoded are
// logged and dropped so one bad record does not sink the whole result.
func normalizeSongs(songs []APISong, enc Encoder, log *logger.Logger) []domain.EncodedTrack {
	tracks := make([]domain.EncodedTrack, 0, len(songs))
	for _, song := range songs {
		track, err := song.ToEncodedTrack(enc)
		if err != nil {
			log.Warn("Failed to encode track", "track_id", song.ID, "error", err)
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks
}

// ToCollection builds album/playlist metadata around already normalised tracks.
func (c APICollection) ToCollection(tracks []domain.EncodedTrack) domain.Collection {
	ptrs := make([]*domain.EncodedTrack, len(tracks))
	for i := range tracks {
		ptrs[i] = &tracks[i]
	}
	return domain.Collection{
		Info: domain.CollectionInfo{
			Name:          c.Name,
			ArtworkURL:    lastURL(c.Image),
			SelectedTrack: 0,
		},
		PluginInfo: domain.PluginInfo{},
		Tracks:     ptrs,
	}
}

// lastURL returns the URL of the final entry; image lists are ordered by
// ascending resolution.
func lastURL(links []APILink) *string {
	if len(links) == 0 {
		return nil
	}
	return domain.StringPtr(links[len(links)-1].URL)
}
