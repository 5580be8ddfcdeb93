// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort             = "2333"
	DefaultAPIBaseURL       = "https://saavn.dev/api"
	DefaultQuality          = QualityHigh
	DefaultMaxSearchResults = 200
	DefaultHTTPTimeout      = 10 * time.Second
	DefaultRequestInterval  = 0 * time.Second
	ShutdownTimeout         = 5 * time.Second
)

// Source identity
const (
	SourceName        = "jiosaavn"
	SourceDisplayName = "JioSaavn"
)

// Identifier shortcut prefixes
const (
	SearchPrefix         = "jssearch:"
	RecommendationPrefix = "jsrec:"
)

// Quality levels as configured by the operator
const (
	QualityLowest = "lowest"
	QualityLow    = "low"
	QualityMedium = "medium"
	QualityHigh   = "high"
)

// Rendition bitrate labels reported by the provider
const (
	Bitrate12  = "12kbps"
	Bitrate48  = "48kbps"
	Bitrate96  = "96kbps"
	Bitrate160 = "160kbps"
	Bitrate320 = "320kbps"
)

// Provider API paths, relative to the configured base URL
const (
	PathSongs       = "/songs"
	PathAlbums      = "/albums"
	PathPlaylists   = "/playlists"
	PathSearchSongs = "/search/songs"
	PathSuggestions = "/suggestions"
)

// Stream defaults
const (
	StreamProtocol = "https"
	MimeTypeMP4    = "audio/mp4"
	MimeTypeJSON   = "application/json"
)

// Limits
const (
	// MaxSearchResults caps every list returned by the provider regardless of configuration.
	MaxSearchResults  = 50
	MaxBodyBytes      = 8 << 20
	// MaxReportedTracks bounds how far a collection is padded to the provider's song count.
	MaxReportedTracks = 10000
)

// SeverityFault is the only Lavalink exception severity the adapter emits.
const SeverityFault = "fault"
