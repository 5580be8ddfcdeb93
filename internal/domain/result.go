package domain

import (
	"encoding/json"

	"github.com/cesargomez89/saavnsource/internal/constants"
)

type LoadType string

const (
	LoadTypeTrack    LoadType = "track"
	LoadTypeAlbum    LoadType = "album"
	LoadTypePlaylist LoadType = "playlist"
	LoadTypeSearch   LoadType = "search"
	LoadTypeEmpty    LoadType = "empty"
	LoadTypeError    LoadType = "error"
)

// ErrorInfo describes an unexpected condition: a provider response that broke
// its contract, or missing inputs detected before any request was made.
type ErrorInfo struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Cause    string `json:"cause"`
}

func (e ErrorInfo) Error() string {
	return e.Message
}

// Fault builds an ErrorInfo with fault severity.
func Fault(message, cause string) ErrorInfo {
	return ErrorInfo{Message: message, Severity: constants.SeverityFault, Cause: cause}
}

// LoadResult is the closed set of outcomes of a load or search call.
// Implementations: TrackResult, AlbumResult, PlaylistResult, SearchResult,
// EmptyResult, ErrorResult. Switch on the concrete type to handle each case.
type LoadResult interface {
	LoadType() LoadType
	json.Marshaler
	isLoadResult()
}

type TrackResult struct {
	Track EncodedTrack
}

type AlbumResult struct {
	Collection Collection
}

type PlaylistResult struct {
	Collection Collection
}

type SearchResult struct {
	Tracks []EncodedTrack
}

type EmptyResult struct{}

type ErrorResult struct {
	Err ErrorInfo
}

func (TrackResult) LoadType() LoadType    { return LoadTypeTrack }
func (AlbumResult) LoadType() LoadType    { return LoadTypeAlbum }
func (PlaylistResult) LoadType() LoadType { return LoadTypePlaylist }
func (SearchResult) LoadType() LoadType   { return LoadTypeSearch }
func (EmptyResult) LoadType() LoadType    { return LoadTypeEmpty }
func (ErrorResult) LoadType() LoadType    { return LoadTypeError }

func (TrackResult) isLoadResult()    {}
func (AlbumResult) isLoadResult()    {}
func (PlaylistResult) isLoadResult() {}
func (SearchResult) isLoadResult()   {}
func (EmptyResult) isLoadResult()    {}
func (ErrorResult) isLoadResult()    {}

type envelope struct {
	LoadType LoadType `json:"loadType"`
	Data     any      `json:"data"`
}

func (r TrackResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{LoadType: LoadTypeTrack, Data: r.Track})
}

func (r AlbumResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{LoadType: LoadTypeAlbum, Data: r.Collection})
}

func (r PlaylistResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{LoadType: LoadTypePlaylist, Data: r.Collection})
}

func (r SearchResult) MarshalJSON() ([]byte, error) {
	tracks := r.Tracks
	if tracks == nil {
		tracks = []EncodedTrack{}
	}
	return json.Marshal(envelope{LoadType: LoadTypeSearch, Data: tracks})
}

func (EmptyResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{LoadType: LoadTypeEmpty, Data: struct{}{}})
}

func (r ErrorResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{LoadType: LoadTypeError, Data: r.Err})
}

// Stream is a resolved, directly playable audio URL.
type Stream struct {
	URL      string `json:"url"`
	Protocol string `json:"protocol"`
	Format   string `json:"format"`
}

// StreamResult holds exactly one of Stream or Exception.
type StreamResult struct {
	Stream    *Stream
	Exception *ErrorInfo
}

func NewStream(url string) StreamResult {
	return StreamResult{Stream: &Stream{
		URL:      url,
		Protocol: constants.StreamProtocol,
		Format:   constants.MimeTypeMP4,
	}}
}

func NewStreamException(info ErrorInfo) StreamResult {
	return StreamResult{Exception: &info}
}

func (r StreamResult) OK() bool {
	return r.Stream != nil
}

func (r StreamResult) MarshalJSON() ([]byte, error) {
	if r.Stream != nil {
		return json.Marshal(r.Stream)
	}
	exc := r.Exception
	if exc == nil {
		e := Fault("No stream resolved.", "Unknown")
		exc = &e
	}
	return json.Marshal(struct {
		Exception *ErrorInfo `json:"exception"`
	}{exc})
}
