package gh

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/menubar/internal/logging"
)

func newTestProbe(t *testing.T, handler http.Handler) *FreezeProbe {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewRESTClient(NewHTTPClient("secret", 5*time.Second))
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return NewFreezeProbe(client, "hotfix", logging.Discard())
}

func TestFreezeProbe_Check(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/api/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hotfix", r.URL.Query().Get("base"))
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		assert.Equal(t, "bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"number": 12, "html_url": "https://github.com/acme/api/pull/12"}]`))
	})
	mux.HandleFunc("/repos/acme/web/pulls", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	probe := newTestProbe(t, mux)

	statuses, err := probe.Check(context.Background(), []string{"acme/api", "acme/web"})
	require.NoError(t, err)

	assert.Equal(t, []FreezeStatus{
		{Repository: "acme/api", Frozen: true, URL: "https://github.com/acme/api/pull/12"},
		{Repository: "acme/web", Frozen: false},
	}, statuses)
}

func TestFreezeProbe_Check_Errors(t *testing.T) {
	probe := newTestProbe(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))

	_, err := probe.Check(context.Background(), []string{"acme/missing"})
	assert.Error(t, err)

	_, err = probe.Check(context.Background(), []string{"not-a-repo"})
	assert.ErrorContains(t, err, "owner/name")
}

func TestFreezeProbe_Check_NoRepos(t *testing.T) {
	probe := newTestProbe(t, http.NotFoundHandler())

	statuses, err := probe.Check(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
