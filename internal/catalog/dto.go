package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexNumber accepts a JSON number, a numeric string or null.
// The provider is not consistent about which one it sends for counts and durations.
type FlexNumber float64

// UnmarshalJSON implements custom JSON unmarshaling for FlexNumber
func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	// Handle string format
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = FlexNumber(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexNumber(v)
	return nil
}

// Int truncates toward zero. NaN and infinities read as zero.
func (f FlexNumber) Int() int {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return 0
	}
	return int(f)
}

// APILink is one entry of an image or download URL list.
type APILink struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

type APIArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	URL  string `json:"url"`
}

type APIArtists struct {
	Primary  []APIArtist `json:"primary"`
	Featured []APIArtist `json:"featured"`
	All      []APIArtist `json:"all"`
}

type APIAlbumRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APISong is the provider's song record, shared by every endpoint that lists songs.
type APISong struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Duration    FlexNumber  `json:"duration"`
	Language    string      `json:"language"`
	URL         string      `json:"url"`
	Album       APIAlbumRef `json:"album"`
	Artists     APIArtists  `json:"artists"`
	Image       []APILink   `json:"image"`
	DownloadURL []APILink   `json:"downloadUrl"`
}

// APICollection is an album or playlist body.
type APICollection struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	URL       string     `json:"url"`
	SongCount FlexNumber `json:"songCount"`
	Image     []APILink  `json:"image"`
	Songs     []APISong  `json:"songs"`
}

// APISongsResponse is returned by the song lookup, song-by-id and suggestion endpoints.
type APISongsResponse struct {
	Success bool      `json:"success"`
	Data    []APISong `json:"data"`
}

type APICollectionResponse struct {
	Success bool          `json:"success"`
	Data    APICollection `json:"data"`
}

type APISearchResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Total   FlexNumber `json:"total"`
		Start   FlexNumber `json:"start"`
		Results []APISong  `json:"results"`
	} `json:"data"`
}
