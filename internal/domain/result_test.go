package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrack() EncodedTrack {
	return EncodedTrack{
		Encoded: "token",
		Info: TrackInfo{
			Identifier: "EToxUyFp",
			IsSeekable: true,
			Author:     StringPtr("Arijit Singh"),
			LengthMs:   262000,
			Title:      "Tum Hi Ho",
			SourceURI:  "https://www.jiosaavn.com/song/tum-hi-ho/EToxUyFp",
			SourceName: "jiosaavn",
		},
	}
}

func TestLoadTypes(t *testing.T) {
	tests := []struct {
		result   LoadResult
		expected LoadType
	}{
		{TrackResult{}, "track"},
		{AlbumResult{}, "album"},
		{PlaylistResult{}, "playlist"},
		{SearchResult{}, "search"},
		{EmptyResult{}, "empty"},
		{ErrorResult{}, "error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.LoadType())

			raw, err := json.Marshal(tt.result)
			require.NoError(t, err)

			var env map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(raw, &env))
			assert.JSONEq(t, `"`+string(tt.expected)+`"`, string(env["loadType"]))
			assert.Contains(t, env, "data")
		})
	}
}

func TestEmptyResultJSON(t *testing.T) {
	raw, err := json.Marshal(EmptyResult{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"loadType":"empty","data":{}}`, string(raw))
}

func TestErrorResultJSON(t *testing.T) {
	raw, err := json.Marshal(ErrorResult{Err: Fault("boom", "Unknown")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"loadType":"error","data":{"message":"boom","severity":"fault","cause":"Unknown"}}`, string(raw))
}

func TestTrackResultJSON(t *testing.T) {
	raw, err := json.Marshal(TrackResult{Track: sampleTrack()})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"loadType": "track",
		"data": {
			"encoded": "token",
			"info": {
				"identifier": "EToxUyFp",
				"isSeekable": true,
				"author": "Arijit Singh",
				"length": 262000,
				"isStream": false,
				"position": 0,
				"title": "Tum Hi Ho",
				"uri": "https://www.jiosaavn.com/song/tum-hi-ho/EToxUyFp",
				"artworkUrl": null,
				"isrc": null,
				"sourceName": "jiosaavn"
			},
			"pluginInfo": {}
		}
	}`, string(raw))
}

func TestSearchResultNilTracks(t *testing.T) {
	raw, err := json.Marshal(SearchResult{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"loadType":"search","data":[]}`, string(raw))
}

func TestCollectionPaddedTracks(t *testing.T) {
	tr := sampleTrack()
	c := Collection{
		Info:   CollectionInfo{Name: "Aashiqui 2"},
		Tracks: []*EncodedTrack{&tr, nil, nil},
	}

	assert.Len(t, c.Tracks, 3)
	assert.Len(t, c.Materialized(), 1)

	raw, err := json.Marshal(AlbumResult{Collection: c})
	require.NoError(t, err)

	var decoded struct {
		Data struct {
			Tracks []json.RawMessage `json:"tracks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Data.Tracks, 3)
	assert.Equal(t, "null", string(decoded.Data.Tracks[2]))
}

func TestStreamResultJSON(t *testing.T) {
	raw, err := json.Marshal(NewStream("https://aac.saavncdn.com/x_320.mp4"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://aac.saavncdn.com/x_320.mp4","protocol":"https","format":"audio/mp4"}`, string(raw))

	exc := NewStreamException(Fault("Track Not playable, no playable stream url found.", "Unknown"))
	assert.False(t, exc.OK())
	raw, err = json.Marshal(exc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"exception":{"message":"Track Not playable, no playable stream url found.","severity":"fault","cause":"Unknown"}}`, string(raw))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	require.NotNil(t, StringPtr("x"))
	assert.Equal(t, "x", *StringPtr("x"))
}
