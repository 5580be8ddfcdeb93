package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesargomez89/saavnsource/internal/domain"
)

func TestClassify_Prefixes(t *testing.T) {
	c, ok := Classify("jssearch:arijit singh")
	require.True(t, ok)
	assert.Equal(t, domain.MatchSearch, c.Kind)
	assert.Equal(t, "arijit singh", c.Identifier)

	c, ok = Classify("jssearch:  spaced  ")
	require.True(t, ok)
	assert.Equal(t, "  spaced  ", c.Identifier, "rest of the input is kept verbatim")

	c, ok = Classify("jsrec:EToxUyFpcwQ")
	require.True(t, ok)
	assert.Equal(t, domain.MatchRecommendation, c.Kind)
	assert.Equal(t, "EToxUyFpcwQ", c.Identifier)
}

func TestClassify_URLs(t *testing.T) {
	tests := []struct {
		input       string
		contentType domain.ContentType
		id          string
	}{
		{"https://www.jiosaavn.com/song/tum-hi-ho/EToxUyFpcwQ", domain.ContentSong, "EToxUyFpcwQ"},
		{"http://jiosaavn.com/song/tum-hi-ho/EToxUyFpcwQ/", domain.ContentSong, "EToxUyFpcwQ"},
		{"https://www.jiosaavn.com/album/aashiqui-2/dXmQ0gqLiFo_", domain.ContentAlbum, "dXmQ0gqLiFo_"},
		{"https://www.jiosaavn.com/featured/trending-today/I3kvhipIy73uCJW60TJk1Q__", domain.ContentPlaylist, "I3kvhipIy73uCJW60TJk1Q__"},
		{"https://www.jiosaavn.com/artist/arijit-singh-songs/LlRWpHzy3Hk_", domain.ContentArtist, "LlRWpHzy3Hk_"},
		{"https://www.saavn.com/s/song/hindi/Aashiqui-2/Tum-Hi-Ho/EToxUyFpcwQ", domain.ContentSong, "EToxUyFpcwQ"},
		{"https://www.jiosaavn.com/song/album/EToxUyFpcwQ", domain.ContentSong, "EToxUyFpcwQ"},
		{"https://www.jiosaavn.com/song/tum-hi-ho/EToxUyFpcwQ?autoplay=1", domain.ContentSong, "EToxUyFpcwQ"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, ok := Classify(tt.input)
			require.True(t, ok)
			assert.Equal(t, domain.MatchURL, c.Kind)
			assert.Equal(t, tt.contentType, c.ContentType)
			assert.Equal(t, tt.id, c.Identifier)
			assert.Equal(t, tt.input, c.URL)
		})
	}
}

func TestClassify_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"https://www.jiosaavn.com/",
		"https://www.jiosaavn.com/songs/tum-hi-ho/EToxUyFpcwQ",
		"https://www.jiosaavn.com/podcast/some-show/abc123",
		"https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
		"https://example.com/song/tum-hi-ho/EToxUyFpcwQ",
		"ytsearch:tum hi ho",
		"JSSEARCH:upper",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, ok := Classify(input)
			assert.False(t, ok)
		})
	}
}

func TestCheck_DisabledSource(t *testing.T) {
	opts := defaultOptions()
	opts.Enabled = false
	req := respond(200, `{}`)
	p := newTestProvider(opts, req)

	for _, input := range []string{"jssearch:x", "jsrec:x", "https://www.jiosaavn.com/song/a/b"} {
		_, ok := p.Check(input)
		assert.False(t, ok, input)
	}
	assert.Zero(t, req.calls())
}

func TestCheck_EnabledSource(t *testing.T) {
	p := newTestProvider(defaultOptions(), respond(200, `{}`))

	c, ok := p.Check("https://www.jiosaavn.com/album/aashiqui-2/dXmQ0gqLiFo_")
	require.True(t, ok)
	assert.Equal(t, domain.ContentAlbum, c.ContentType)
}
