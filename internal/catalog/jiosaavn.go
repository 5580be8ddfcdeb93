package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cesargomez89/saavnsource/internal/constants"
	"github.com/cesargomez89/saavnsource/internal/domain"
	"github.com/cesargomez89/saavnsource/internal/httpclient"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

const (
	opLoad            = "loadtracks"
	opSearch          = "search"
	opStream          = "retrieveStream"
	opRecommendations = "recommendations"

	causeUnknown = "Unknown"
)

// Options is the read-only configuration the provider is built with.
type Options struct {
	Enabled          bool
	APIBaseURL       string
	MaxSearchResults int
	Quality          string
}

// JioSaavnProvider resolves JioSaavn identifiers through the provider's JSON API.
// It keeps no state between calls and is safe for concurrent use.
type JioSaavnProvider struct {
	opts    Options
	client  httpclient.Requester
	encoder Encoder
	logger  *logger.Logger
}

func NewJioSaavnProvider(opts Options, client httpclient.Requester, enc Encoder, log *logger.Logger) *JioSaavnProvider {
	if log == nil {
		log = logger.Discard()
	}
	opts.APIBaseURL = strings.TrimRight(opts.APIBaseURL, "/")
	return &JioSaavnProvider{
		opts:    opts,
		client:  client,
		encoder: enc,
		logger:  log.WithSource(),
	}
}

// searchLimit bounds every list request independent of configuration.
func (p *JioSaavnProvider) searchLimit() int {
	return min(p.opts.MaxSearchResults, constants.MaxSearchResults)
}

func (p *JioSaavnProvider) get(ctx context.Context, path string, query url.Values) httpclient.Response {
	u := p.opts.APIBaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	p.logger.Debug("API request", "url", u)
	return p.client.Get(ctx, u, map[string]string{"Content-Type": constants.MimeTypeJSON})
}

// LoadFrom fetches a song, album or playlist by URL or provider id.
func (p *JioSaavnProvider) LoadFrom(ctx context.Context, contentType domain.ContentType, identifier string) domain.LoadResult {
	log := p.logger.WithOperation(opLoad).WithQuery(identifier)

	if contentType == "" || identifier == "" {
		var missing []string
		if contentType == "" {
			missing = append(missing, "type")
		}
		if identifier == "" {
			missing = append(missing, "identifier")
		}
		msg := fmt.Sprintf("Unable to extract url type from %s, Received type: %s", identifier, contentType)
		log.Warn(msg)
		return domain.ErrorResult{Err: domain.Fault(msg,
			fmt.Sprintf("Data extraction didn't give required keys/values (%s)", strings.Join(missing, ", ")))}
	}

	limit := p.searchLimit()
	path, query, ok := p.endpointFor(contentType, identifier, limit)
	if !ok {
		log.Debug("No matches found.", "type", contentType)
		return domain.EmptyResult{}
	}

	log.Debug("Loading", "type", contentType)

	resp := p.get(ctx, path, query)
	if resp.Err != nil || resp.StatusCode != http.StatusOK {
		log.Debug(statusMessage(resp, "No matches Found."), "type", contentType)
		return domain.EmptyResult{}
	}

	body := resp.JSON()
	if !truthy(body.Get("data")) && !body.Get("success").Bool() {
		return contractViolation(log, body)
	}

	var (
		result domain.LoadResult
		count  int
	)
	switch contentType {
	case domain.ContentSong:
		var payload APISongsResponse
		if err := resp.Decode(&payload); err != nil {
			return decodeFailure(log, err)
		}
		if len(payload.Data) == 0 {
			break
		}
		tracks := normalizeSongs(payload.Data[:1], p.encoder, log)
		if count = len(tracks); count > 0 {
			result = domain.TrackResult{Track: tracks[0]}
			log.Debug("Loaded track", "title", tracks[0].Info.Title)
		}

	case domain.ContentAlbum, domain.ContentPlaylist:
		var payload APICollectionResponse
		if err := resp.Decode(&payload); err != nil {
			return decodeFailure(log, err)
		}
		tracks := normalizeSongs(payload.Data.Songs, p.encoder, log)
		count = len(tracks)

		collection := payload.Data.ToCollection(tracks)
		collection.Tracks = sizeToReportedTotal(collection.Tracks, payload.Data.SongCount.Int(), limit)

		if contentType == domain.ContentAlbum {
			result = domain.AlbumResult{Collection: collection}
		} else {
			result = domain.PlaylistResult{Collection: collection}
		}
		log.Debug("Loaded collection", "name", payload.Data.Name, "tracks", count, "reported", payload.Data.SongCount.Int())
	}

	if count == 0 || result == nil {
		log.Debug("No matches found.", "type", contentType)
		return domain.EmptyResult{}
	}
	return result
}

// endpointFor maps a content type to the provider path and query. Artist
// pages are recognised by Check but have no listing endpoint here.
func (p *JioSaavnProvider) endpointFor(contentType domain.ContentType, identifier string, limit int) (string, url.Values, bool) {
	isLink := isURL(identifier)
	q := url.Values{}

	switch contentType {
	case domain.ContentSong:
		if isLink {
			q.Set("link", identifier)
		} else {
			q.Set("ids", identifier)
		}
		return constants.PathSongs, q, true
	case domain.ContentAlbum:
		if isLink {
			q.Set("link", identifier)
		} else {
			q.Set("id", identifier)
		}
		return constants.PathAlbums, q, true
	case domain.ContentPlaylist:
		if isLink {
			q.Set("link", identifier)
		} else {
			q.Set("id", identifier)
		}
		q.Set("page", "0")
		q.Set("limit", strconv.Itoa(limit))
		return constants.PathPlaylists, q, true
	default:
		return "", nil, false
	}
}

// sizeToReportedTotal resizes the track list to the provider's reported song
// count when it exceeds the page limit. Positions past the fetched page stay
// nil: remaining pages are not requested. Counts above MaxReportedTracks are
// not trusted and leave the fetched tracks as they are.
func sizeToReportedTotal(tracks []*domain.EncodedTrack, reported, limit int) []*domain.EncodedTrack {
	if reported <= limit || reported == len(tracks) || reported > constants.MaxReportedTracks {
		return tracks
	}
	if reported < len(tracks) {
		return tracks[:reported]
	}
	sized := make([]*domain.EncodedTrack, reported)
	copy(sized, tracks)
	return sized
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// truthy mirrors a loose presence check: null, false, 0 and "" do not count.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return r.Exists()
	}
}

func statusMessage(resp httpclient.Response, notFound string) string {
	if resp.Err != nil {
		return resp.Err.Error()
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Sprintf("%s %s status code: %d", constants.SourceDisplayName, notFound, resp.StatusCode)
	}
	return fmt.Sprintf("%s Returned invalid status code: %d", constants.SourceDisplayName, resp.StatusCode)
}

func unexpectedResponse(body gjson.Result) domain.ErrorInfo {
	data := body.Get("data").Raw
	if data == "" {
		data = "undefined"
	}
	return domain.Fault(
		fmt.Sprintf("Something went Wrong while requesting to %s, Response: %s", constants.SourceDisplayName, data),
		causeUnknown)
}

func contractViolation(log *logger.Logger, body gjson.Result) domain.LoadResult {
	info := unexpectedResponse(body)
	log.Warn(info.Message)
	return domain.ErrorResult{Err: info}
}

func decodeFailure(log *logger.Logger, err error) domain.LoadResult {
	msg := fmt.Sprintf("Unexpected response shape from %s: %v", constants.SourceDisplayName, err)
	log.Warn(msg)
	return domain.ErrorResult{Err: domain.Fault(msg, causeUnknown)}
}

var _ Provider = (*JioSaavnProvider)(nil)
