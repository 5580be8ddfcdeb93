package catalog

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cesargomez89/saavnsource/internal/constants"
	"github.com/cesargomez89/saavnsource/internal/domain"
)

const notPlayable = "Track Not playable, no playable stream url found."

// QualityPreference lists the rendition bitrates to try, best match first.
// Unknown quality names resolve like high.
func QualityPreference(quality string) []string {
	switch quality {
	case constants.QualityLowest:
		return []string{constants.Bitrate12}
	case constants.QualityLow:
		return []string{constants.Bitrate48}
	case constants.QualityMedium:
		return []string{constants.Bitrate160, constants.Bitrate96}
	default:
		return []string{constants.Bitrate320}
	}
}

// SelectRendition returns the URL of the first preferred bitrate present in
// renditions, falling back to the last rendition in the list.
func SelectRendition(preference []string, renditions []APILink) (string, bool) {
	for _, quality := range preference {
		for _, r := range renditions {
			if r.Quality == quality && r.URL != "" {
				return r.URL, true
			}
		}
	}
	if len(renditions) == 0 {
		return "", false
	}
	last := renditions[len(renditions)-1].URL
	return last, last != ""
}

// RetrieveStream resolves a playable URL for a song id. The container is
// assumed to be MP4 rather than checked with a second request.
func (p *JioSaavnProvider) RetrieveStream(ctx context.Context, identifier, title string) domain.StreamResult {
	log := p.logger.WithOperation(opStream).WithQuery(title)

	resp := p.get(ctx, constants.PathSongs+"/"+url.PathEscape(identifier), nil)
	if resp.Err != nil || resp.StatusCode != http.StatusOK {
		msg := statusMessage(resp, "Requested Song Not found")
		log.Debug(msg, "track_id", identifier)
		return domain.NewStreamException(domain.Fault(msg, causeUnknown))
	}

	body := resp.JSON()
	if !body.Get("success").Bool() {
		info := unexpectedResponse(body)
		log.Warn(info.Message, "track_id", identifier)
		return domain.NewStreamException(info)
	}

	var payload APISongsResponse
	if err := resp.Decode(&payload); err != nil {
		log.Warn("Failed to decode song", "track_id", identifier, "error", err)
		return domain.NewStreamException(domain.Fault(notPlayable, causeUnknown))
	}

	var renditions []APILink
	if len(payload.Data) > 0 {
		renditions = payload.Data[0].DownloadURL
	}

	streamURL, ok := SelectRendition(QualityPreference(p.opts.Quality), renditions)
	if !ok {
		log.Debug(notPlayable, "track_id", identifier)
		return domain.NewStreamException(domain.Fault(notPlayable, causeUnknown))
	}

	log.Debug("Resolved stream", "track_id", identifier)
	return domain.NewStream(streamURL)
}
