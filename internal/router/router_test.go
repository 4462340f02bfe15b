package router

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"simple_todo/internal/static"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Root() string {
	return m.Called().String(0)
}

func (m *mockResolver) Path(requestPath string) string {
	return m.Called(requestPath).String(0)
}

func (m *mockResolver) Read(requestPath string) ([]byte, error) {
	args := m.Called(requestPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newPublicDir(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func TestRoute(t *testing.T) {
	root := newPublicDir(t, map[string]string{
		"index.html":       "<h1>Hi</h1>",
		"style.css":        strings.Repeat("a", 42),
		"app.js":           "console.log(1)",
		"img/logo.png":     "png",
		"photo.jpg":        "jpg",
		"photo.jpeg":       "jpeg",
		"anim.gif":         "gif",
		"favicon.ico":      "ico",
		"foo.unknownext":   "exists",
		"readme.txt":       "text",
		"STYLE.CSS":        "upper",
		"script.js.backup": "backup",
	})
	rt := New(static.New(root), zerolog.Nop())

	tests := []struct {
		name         string
		path         string
		expectStatus int
		expectType   string
		expectBody   string
		expectLength string
	}{
		{"root serves index", "/", 200, "text/html; charset=utf-8", "<h1>Hi</h1>", "11"},
		{"index document", "/index.html", 200, "text/html; charset=utf-8", "<h1>Hi</h1>", "11"},
		{"css", "/style.css", 200, "text/css; charset=utf-8", strings.Repeat("a", 42), "42"},
		{"js", "/app.js", 200, "application/javascript; charset=utf-8", "console.log(1)", "14"},
		{"nested png", "/img/logo.png", 200, "image/png; charset=utf-8", "png", "3"},
		{"jpg", "/photo.jpg", 200, "image/jpeg; charset=utf-8", "jpg", "3"},
		{"jpeg", "/photo.jpeg", 200, "image/jpeg; charset=utf-8", "jpeg", "4"},
		{"gif", "/anim.gif", 200, "image/gif; charset=utf-8", "gif", "3"},
		{"ico", "/favicon.ico", 200, "image/x-icon; charset=utf-8", "ico", "3"},
		{"missing asset", "/missing.png", 404, "text/html; charset=utf-8", "<html><body><h1>404 - Not Found</h1></body></html>", "50"},
		{"unknown extension even if present", "/foo.unknownext", 404, "text/html; charset=utf-8", "", ""},
		{"txt is not an asset", "/readme.txt", 404, "text/html; charset=utf-8", "", ""},
		{"suffix match is case-sensitive", "/STYLE.CSS", 404, "text/html; charset=utf-8", "", ""},
		{"suffix must be anchored", "/script.js.backup", 404, "text/html; charset=utf-8", "", ""},
		{"other html page", "/about.html", 404, "text/html; charset=utf-8", "", ""},
		{"empty path", "", 404, "text/html; charset=utf-8", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := rt.Route(tt.path)
			assert.Equal(t, tt.expectStatus, resp.StatusCode())
			assert.Equal(t, tt.expectType, resp.Header.Value("Content-Type"))
			assert.Equal(t, "close", resp.Header.Value("Connection"))
			assert.Equal(t, fmt.Sprint(len(resp.Body)), resp.Header.Value("Content-Length"))
			if tt.expectBody != "" {
				assert.Equal(t, tt.expectBody, string(resp.Body))
			}
			if tt.expectLength != "" {
				assert.Equal(t, tt.expectLength, resp.Header.Value("Content-Length"))
			}
		})
	}
}

func TestRouteMissingIndex(t *testing.T) {
	rt := New(static.New(t.TempDir()), zerolog.Nop())

	for _, path := range []string{"/", "/index.html"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, 404, rt.Route(path).StatusCode())
		})
	}
}

func TestRouteReadError(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("Read", "/style.css").Return(nil, errors.New("permission denied"))

	rt := New(resolver, zerolog.Nop())
	resp := rt.Route("/style.css")

	assert.Equal(t, 404, resp.StatusCode())
	resolver.AssertExpectations(t)
}

func TestRouteDoesNotTouchFilesystemForUnmatchedPaths(t *testing.T) {
	resolver := new(mockResolver)

	rt := New(resolver, zerolog.Nop())
	resp := rt.Route("/todos")

	assert.Equal(t, 404, resp.StatusCode())
	resolver.AssertNotCalled(t, "Read", mock.Anything)
}
