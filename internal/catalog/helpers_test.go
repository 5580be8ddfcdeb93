package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cesargomez89/saavnsource/internal/codec"
	"github.com/cesargomez89/saavnsource/internal/domain"
	"github.com/cesargomez89/saavnsource/internal/httpclient"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

const testBaseURL = "https://api.test/api"

type fakeRequester struct {
	mu      sync.Mutex
	urls    []string
	headers []map[string]string
	resp    httpclient.Response
}

func (f *fakeRequester) Get(ctx context.Context, u string, headers map[string]string) httpclient.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, u)
	f.headers = append(f.headers, headers)
	return f.resp
}

func (f *fakeRequester) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

func (f *fakeRequester) lastURL(t *testing.T) *url.URL {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.urls, "expected a request to be made")
	u, err := url.Parse(f.urls[len(f.urls)-1])
	require.NoError(t, err)
	return u
}

func respond(status int, body string) *fakeRequester {
	return &fakeRequester{resp: httpclient.Response{StatusCode: status, Body: []byte(body)}}
}

func respondJSON(t *testing.T, v any) *fakeRequester {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return respond(200, string(data))
}

func transportError() *fakeRequester {
	return &fakeRequester{resp: httpclient.Response{Err: errors.New("dial tcp: connection refused")}}
}

type failingEncoder struct{}

func (failingEncoder) Encode(domain.TrackInfo) (string, error) {
	return "", errors.New("encode failed")
}

func defaultOptions() Options {
	return Options{
		Enabled:          true,
		APIBaseURL:       testBaseURL,
		MaxSearchResults: 200,
		Quality:          "high",
	}
}

func newTestProvider(opts Options, req httpclient.Requester) *JioSaavnProvider {
	return NewJioSaavnProvider(opts, req, codec.New(), logger.Discard())
}

func song(id, name string, seconds float64, artists ...string) APISong {
	s := APISong{
		ID:       id,
		Name:     name,
		Type:     "song",
		Duration: FlexNumber(seconds),
		URL:      "https://www.jiosaavn.com/song/" + id + "/" + id,
		Image: []APILink{
			{Quality: "50x50", URL: "https://c.saavncdn.com/" + id + "-50x50.jpg"},
			{Quality: "150x150", URL: "https://c.saavncdn.com/" + id + "-150x150.jpg"},
			{Quality: "500x500", URL: "https://c.saavncdn.com/" + id + "-500x500.jpg"},
		},
		DownloadURL: renditions("12kbps", "48kbps", "96kbps", "160kbps", "320kbps"),
	}
	for _, a := range artists {
		s.Artists.Primary = append(s.Artists.Primary, APIArtist{Name: a})
	}
	return s
}

func renditions(qualities ...string) []APILink {
	links := make([]APILink, 0, len(qualities))
	for _, q := range qualities {
		links = append(links, APILink{Quality: q, URL: "https://aac.saavncdn.com/x_" + q + ".mp4"})
	}
	return links
}

func songs(n int) []APISong {
	out := make([]APISong, n)
	for i := range out {
		out[i] = song(fmt.Sprintf("id%03d", i), fmt.Sprintf("Song %d", i), 200, "Artist")
	}
	return out
}
