package flickr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okPayload = `{
	"photos": {
		"page": 1, "pages": 10, "perpage": 2, "total": 20,
		"photo": [
			{"id": "1", "owner": "a@N00", "title": "Cat", "url_s": "http://x/1.jpg"},
			{"id": "2", "owner": "b@N00", "title": "Dog"}
		]
	},
	"stat": "ok"
}`

// newTestServer returns a server that replies with body and forwards each
// request it receives on the returned channel.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, <-chan *http.Request) {
	t.Helper()
	reqs := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case reqs <- r.Clone(context.Background()):
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, reqs
}

func TestClient_Recent_Success(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK, okPayload)

	c := NewClient(srv.URL+"/", "key-123", 50)
	photos, err := c.Recent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Photo{
		{ID: "1", Title: "Cat", ImageURL: "http://x/1.jpg"},
		{ID: "2", Title: "Dog", ImageURL: ""},
	}, photos)
	assert.True(t, photos[0].HasImage())
	assert.False(t, photos[1].HasImage())

	req := <-reqs
	q := req.URL.Query()
	assert.Equal(t, methodRecent, q.Get("method"))
	assert.Equal(t, "key-123", q.Get("api_key"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "1", q.Get("nojsoncallback"))
	assert.Equal(t, "url_s", q.Get("extras"))
	assert.Equal(t, "50", q.Get("per_page"))
	assert.Empty(t, q.Get("text"))
	assert.Equal(t, userAgent, req.Header.Get("User-Agent"))
}

func TestClient_Search_SendsQuery(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK, okPayload)

	c := NewClient(srv.URL+"/", "key", 0)
	photos, err := c.Search(context.Background(), "red fox")
	require.NoError(t, err)
	assert.Len(t, photos, 2)

	req := <-reqs
	q := req.URL.Query()
	assert.Equal(t, methodSearch, q.Get("method"))
	assert.Equal(t, "red fox", q.Get("text"))
	assert.Empty(t, q.Get("per_page"), "per_page omitted when not configured")
}

func TestClient_EndpointWithQueryString(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK, okPayload)

	c := NewClient(srv.URL+"/rest/?region=eu&format=xml", "key", 10)
	_, err := c.Recent(context.Background())
	require.NoError(t, err)

	req := <-reqs
	assert.Equal(t, "/rest/", req.URL.Path)
	q := req.URL.Query()
	assert.Equal(t, "eu", q.Get("region"))
	assert.Equal(t, "json", q.Get("format"), "client parameters override the endpoint's")
	assert.Equal(t, methodRecent, q.Get("method"))
}

func TestClient_InvalidEndpoint(t *testing.T) {
	_, err := NewClient("http://bad host/%zz", "key", 10).Recent(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "invalid endpoint")
}

func TestClient_EmptyPhotoList(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"photos":{"photo":[]},"stat":"ok"}`)

	photos, err := NewClient(srv.URL, "key", 10).Recent(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)
}

func TestClient_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantDiag  string
		wantCause bool
	}{
		{
			name:     "api reported failure",
			status:   http.StatusOK,
			body:     `{"stat":"fail","code":100,"message":"Invalid API Key (Key has invalid format)"}`,
			wantDiag: `api stat "fail" (code 100): Invalid API Key (Key has invalid format)`,
		},
		{
			name:     "missing stat",
			status:   http.StatusOK,
			body:     `{"photos":{"photo":[]}}`,
			wantDiag: "missing stat in response",
		},
		{
			name:      "malformed payload",
			status:    http.StatusOK,
			body:      `{"photos":`,
			wantDiag:  "decode response",
			wantCause: true,
		},
		{
			name:     "http error status",
			status:   http.StatusBadGateway,
			body:     `upstream down`,
			wantDiag: "unexpected status: 502 Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)

			photos, err := NewClient(srv.URL, "key", 10).Search(context.Background(), "q")
			require.Error(t, err)
			assert.Nil(t, photos)
			assert.ErrorIs(t, err, ErrFetch)

			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "search", fe.Op)
			assert.Equal(t, tt.wantDiag, fe.Diagnostic)
			assert.Equal(t, tt.wantCause, fe.Err != nil)
		})
	}
}

// failingTransport simulates a network failure.
type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_TransportFailure(t *testing.T) {
	c := NewClient("http://flickr.invalid/", "key", 10)
	c.httpClient = &http.Client{Transport: failingTransport{}}

	_, err := c.Recent(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "flickr recent: http request")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_ContextCanceled(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, okPayload)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, "key", 10).Recent(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, context.Canceled)
}
