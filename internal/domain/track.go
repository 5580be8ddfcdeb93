package domain

// TrackInfo is the host-facing description of a single playable track.
// Field names on the wire follow the Lavalink track info schema.
type TrackInfo struct {
	Identifier string  `json:"identifier" msgpack:"identifier"`
	IsSeekable bool    `json:"isSeekable" msgpack:"isSeekable"`
	Author     *string `json:"author" msgpack:"author"`
	LengthMs   int64   `json:"length" msgpack:"length"`
	IsStream   bool    `json:"isStream" msgpack:"isStream"`
	Position   int64   `json:"position" msgpack:"position"`
	Title      string  `json:"title" msgpack:"title"`
	SourceURI  string  `json:"uri" msgpack:"uri"`
	ArtworkURL *string `json:"artworkUrl" msgpack:"artworkUrl"`
	ISRC       *string `json:"isrc" msgpack:"isrc"`
	SourceName string  `json:"sourceName" msgpack:"sourceName"`
}

// PluginInfo is always serialised as an empty object.
type PluginInfo struct{}

// EncodedTrack is the unit returned to the host for every resolved song.
type EncodedTrack struct {
	Encoded    string     `json:"encoded"`
	Info       TrackInfo  `json:"info"`
	PluginInfo PluginInfo `json:"pluginInfo"`
}

// CollectionInfo carries the display metadata shared by an album or playlist.
type CollectionInfo struct {
	Name          string  `json:"name"`
	ArtworkURL    *string `json:"artworkUrl"`
	SelectedTrack int     `json:"selectedTrack"`
}

// Collection is an album or playlist.
//
// Tracks may be longer than the number of materialised entries: when the
// provider reports more songs than the fetched page holds, the slice is sized
// to the reported total and the missing positions are nil (serialised as null).
type Collection struct {
	Info       CollectionInfo  `json:"info"`
	PluginInfo PluginInfo      `json:"pluginInfo"`
	Tracks     []*EncodedTrack `json:"tracks"`
}

// Materialized returns the tracks that were actually fetched, in order.
func (c Collection) Materialized() []EncodedTrack {
	out := make([]EncodedTrack, 0, len(c.Tracks))
	for _, t := range c.Tracks {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// StringPtr returns nil for an empty string, otherwise a pointer to s.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
