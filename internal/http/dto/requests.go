package dto

import (
	"net/url"
)

const maxParamLength = 2048

// LoadTracksRequest carries an identifier as the host would pass it: a
// shortcut-prefixed query or a provider URL.
type LoadTracksRequest struct {
	Identifier string
}

func LoadTracksRequestFromQuery(q url.Values) LoadTracksRequest {
	return LoadTracksRequest{Identifier: q.Get("identifier")}
}

func (r *LoadTracksRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRequired("identifier", r.Identifier)...)
	errs = append(errs, validateMaxLength("identifier", r.Identifier, maxParamLength)...)
	return errs
}

type SearchRequest struct {
	Query string
}

func SearchRequestFromQuery(q url.Values) SearchRequest {
	return SearchRequest{Query: q.Get("query")}
}

func (r *SearchRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRequired("query", r.Query)...)
	errs = append(errs, validateMaxLength("query", r.Query, maxParamLength)...)
	return errs
}

// StreamRequest names a provider song id. Title is only used for logging.
type StreamRequest struct {
	Identifier string
	Title      string
}

func StreamRequestFromQuery(q url.Values) StreamRequest {
	return StreamRequest{Identifier: q.Get("identifier"), Title: q.Get("title")}
}

func (r *StreamRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRequired("identifier", r.Identifier)...)
	errs = append(errs, validateMaxLength("identifier", r.Identifier, maxParamLength)...)
	errs = append(errs, validateMaxLength("title", r.Title, maxParamLength)...)
	return errs
}

type DecodeTrackRequest struct {
	EncodedTrack string
}

func DecodeTrackRequestFromQuery(q url.Values) DecodeTrackRequest {
	return DecodeTrackRequest{EncodedTrack: q.Get("encodedTrack")}
}

func (r *DecodeTrackRequest) Validate() []ValidationError {
	return validateRequired("encodedTrack", r.EncodedTrack)
}
