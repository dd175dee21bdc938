package standards_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"resumatic/internal/standards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeWithPhone = "Jane Doe, 555-123-4567, spreadsheet enthusiast"

func newRecordingServer(t *testing.T, status int) (*httptest.Server, *[]*http.Request) {
	t.Helper()
	var seen []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clone := r.Clone(context.Background())
		seen = append(seen, clone)
		w.WriteHeader(status)
		w.Write([]byte(`{"categories":{}}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestResolve_RefreshRequestShape(t *testing.T) {
	srv, seen := newRecordingServer(t, http.StatusOK)

	p := standards.NewProvider(standards.ProviderOptions{
		Endpoint: srv.URL,
		ClientID: "test-client",
		Version:  "2.1.0",
	})
	catalog := p.Resolve(context.Background(), resumeWithPhone)

	// Success with the always-empty overlay still yields the built-ins.
	assert.Equal(t, standards.DefaultCatalog(), catalog)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, "test-client", req.Header.Get("X-Client-ID"))
	assert.Equal(t, "resumatic/2.1.0", req.Header.Get("User-Agent"))

	// Parameter order is contact first, token second.
	assert.Regexp(t, `^email=[^&]+&token=[0-9a-f]{64}$`, req.URL.RawQuery)
	assert.Equal(t, "555-123-4567", req.URL.Query().Get("email"))
}

func TestResolve_NoPhoneSkipsRequest(t *testing.T) {
	srv, seen := newRecordingServer(t, http.StatusOK)

	p := standards.NewProvider(standards.ProviderOptions{Endpoint: srv.URL})
	catalog := p.Resolve(context.Background(), "no contact details in this one")

	assert.Equal(t, standards.DefaultCatalog(), catalog)
	assert.Empty(t, *seen)
}

func TestResolve_ServerErrorFallsBackToBuiltin(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusInternalServerError)

	p := standards.NewProvider(standards.ProviderOptions{Endpoint: srv.URL})
	catalog := p.Resolve(context.Background(), resumeWithPhone)
	assert.Equal(t, standards.DefaultCatalog(), catalog)
}

func TestResolve_UnreachableEndpointFallsBackToBuiltin(t *testing.T) {
	p := standards.NewProvider(standards.ProviderOptions{
		Endpoint: "http://127.0.0.1:1", // nothing listens here
	})
	catalog := p.Resolve(context.Background(), resumeWithPhone)
	assert.Equal(t, standards.DefaultCatalog(), catalog)
}

func TestResolve_CancelledContextFallsBackToBuiltin(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusOK)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := standards.NewProvider(standards.ProviderOptions{Endpoint: srv.URL})
	catalog := p.Resolve(ctx, resumeWithPhone)
	assert.Equal(t, standards.DefaultCatalog(), catalog)
}

func TestResolve_EmptyEndpointDisablesRefresh(t *testing.T) {
	p := standards.NewProvider(standards.ProviderOptions{})
	catalog := p.Resolve(context.Background(), resumeWithPhone)
	assert.Equal(t, standards.DefaultCatalog(), catalog)
}

func TestResolve_CachedAfterFirstCall(t *testing.T) {
	srv, seen := newRecordingServer(t, http.StatusOK)

	p := standards.NewProvider(standards.ProviderOptions{Endpoint: srv.URL})
	first := p.Resolve(context.Background(), resumeWithPhone)
	second := p.Resolve(context.Background(), resumeWithPhone)

	assert.Equal(t, first, second)
	assert.Len(t, *seen, 1)
}

func TestResolve_CustomBuiltinCatalog(t *testing.T) {
	custom := standards.Catalog{Categories: []standards.Category{
		{Name: "legal", Keywords: []string{"litigation"}},
	}}
	p := standards.NewProvider(standards.ProviderOptions{Builtin: custom})
	assert.Equal(t, custom, p.Resolve(context.Background(), "whatever"))
}
