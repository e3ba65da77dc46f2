package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "posting")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_NonOKStatusReturnsResultAndError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("gone"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, server.URL, fetchErr.URL)

	// The body is still available for inspection.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, "gone", result.HTML)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
}

func TestJSON_DecodesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "remoteok", "count": 2}`))
	}))
	defer server.Close()

	var payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, JSON(context.Background(), server.URL, nil, &payload))
	assert.Equal(t, "remoteok", payload.Name)
	assert.Equal(t, 2, payload.Count)
}

func TestJSON_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	var payload map[string]any
	err := JSON(context.Background(), server.URL, nil, &payload)
	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
}

func TestExtractMainText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>site nav</nav>
		<div class="job-description">Own the AI roadmap.</div>
		<footer>footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Own the AI roadmap.", text)
}

func TestExtractMainText_NoiseSelectorsRemoved(t *testing.T) {
	html := `<html><body><main>
		<p>Real description</p>
		<div class="eeo-statement">equal opportunity text</div>
	</main></body></html>`

	text, err := ExtractMainText(html, []string{"main"}, PlatformNoiseSelectors(PlatformUnknown)...)
	require.NoError(t, err)
	assert.Contains(t, text, "Real description")
	assert.NotContains(t, text, "equal opportunity")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText("<html><body><p>bare page</p></body></html>", []string{".missing"})
	require.NoError(t, err)
	assert.Equal(t, "bare page", text)
}
