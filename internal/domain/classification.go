package domain

// ContentType is the provider path segment naming what a URL points at.
type ContentType string

const (
	ContentSong     ContentType = "song"
	ContentAlbum    ContentType = "album"
	ContentPlaylist ContentType = "featured"
	ContentArtist   ContentType = "artist"
)

type MatchKind string

const (
	MatchSearch         MatchKind = "search"
	MatchRecommendation MatchKind = "recommendation"
	MatchURL            MatchKind = "url"
)

// Classification is the outcome of recognising an identifier as belonging to
// the provider. For shortcut prefixes Identifier is the text after the prefix,
// verbatim. For URLs ContentType and Identifier come from the path and URL
// keeps the full input.
type Classification struct {
	Kind        MatchKind   `json:"kind"`
	ContentType ContentType `json:"type,omitempty"`
	Identifier  string      `json:"identifier"`
	URL         string      `json:"url,omitempty"`
}
