package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/cesargomez89/saavnsource/internal/constants"
	"github.com/cesargomez89/saavnsource/internal/domain"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

// Search queries the song search endpoint. It only ever returns a
// SearchResult or an EmptyResult.
func (p *JioSaavnProvider) Search(ctx context.Context, query string) domain.LoadResult {
	log := p.logger.WithOperation(opSearch).WithQuery(query)
	log.Debug("Searching")

	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(p.searchLimit()))
	q.Set("page", "0")

	resp := p.get(ctx, constants.PathSearchSongs, q)
	if resp.Err != nil || resp.StatusCode != http.StatusOK {
		log.Debug(statusMessage(resp, "No matches Found."))
		return domain.EmptyResult{}
	}

	body := resp.JSON()
	if !truthy(body.Get("data")) && !body.Get("success").Bool() {
		log.Debug("No matches found.")
		return domain.EmptyResult{}
	}

	var payload APISearchResponse
	if err := resp.Decode(&payload); err != nil {
		log.Debug("No matches found.", "error", err)
		return domain.EmptyResult{}
	}
	total := body.Get("data.total")
	if len(payload.Data.Results) == 0 || (total.Exists() && total.Type != gjson.Null && total.Int() == 0) {
		log.Debug("No matches found.")
		return domain.EmptyResult{}
	}

	return p.songList(log, payload.Data.Results)
}

// Recommendations lists songs the provider suggests after songID.
func (p *JioSaavnProvider) Recommendations(ctx context.Context, songID string) domain.LoadResult {
	log := p.logger.WithOperation(opRecommendations).WithQuery(songID)

	if songID == "" {
		log.Debug("No matches found.")
		return domain.EmptyResult{}
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.searchLimit()))

	resp := p.get(ctx, constants.PathSongs+"/"+url.PathEscape(songID)+constants.PathSuggestions, q)
	if resp.Err != nil || resp.StatusCode != http.StatusOK {
		log.Debug(statusMessage(resp, "No matches Found."))
		return domain.EmptyResult{}
	}

	var payload APISongsResponse
	if err := resp.Decode(&payload); err != nil || len(payload.Data) == 0 {
		log.Debug("No matches found.")
		return domain.EmptyResult{}
	}

	return p.songList(log, payload.Data)
}

// songList normalises songs into a search result capped at MaxSearchResults.
func (p *JioSaavnProvider) songList(log *logger.Logger, songs []APISong) domain.LoadResult {
	tracks := normalizeSongs(songs, p.encoder, log)
	if len(tracks) > constants.MaxSearchResults {
		tracks = tracks[:constants.MaxSearchResults]
	}
	if len(tracks) == 0 {
		log.Debug("No matches found.")
		return domain.EmptyResult{}
	}

	log.Debug("Found tracks", "tracks", len(tracks))
	return domain.SearchResult{Tracks: tracks}
}
