package dto

import (
	"time"

	"github.com/cesargomez89/saavnsource/internal/domain"
)

// DecodedTrack is the body of a successful decodetrack call.
type DecodedTrack struct {
	Encoded    string            `json:"encoded"`
	Info       domain.TrackInfo  `json:"info"`
	PluginInfo domain.PluginInfo `json:"pluginInfo"`
}

func NewDecodedTrack(encoded string, info domain.TrackInfo) DecodedTrack {
	return DecodedTrack{Encoded: encoded, Info: info, PluginInfo: domain.PluginInfo{}}
}

// CheckResponse reports whether the source recognises an identifier.
type CheckResponse struct {
	Matched        bool                   `json:"matched"`
	Classification *domain.Classification `json:"classification,omitempty"`
}

func NewCheckResponse(c domain.Classification, ok bool) CheckResponse {
	if !ok {
		return CheckResponse{}
	}
	return CheckResponse{Matched: true, Classification: &c}
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Timestamp int64             `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func NewErrorResponse(status int, reason, message, path string, now time.Time) ErrorResponse {
	return ErrorResponse{
		Timestamp: now.UnixMilli(),
		Status:    status,
		Error:     reason,
		Message:   message,
		Path:      path,
	}
}

// WithValidation attaches per-field messages and summarises them in Message.
func (e ErrorResponse) WithValidation(errs []ValidationError) ErrorResponse {
	e.Message = ToResponse(errs)
	e.Fields = ToMap(errs)
	return e
}
