package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/domgiordano/sports-events/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type stubAuthenticator struct {
	tokens map[string]*domain.Identity
	seen   []string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, raw string) (*domain.Identity, error) {
	s.seen = append(s.seen, raw)
	if id, ok := s.tokens[raw]; ok {
		return id, nil
	}
	return nil, domain.ErrInvalidToken
}

func whoAmI(c *ginext.Context) {
	c.String(http.StatusOK, identity.UserID(c.Request.Context()))
}

func TestAuthenticate(t *testing.T) {
	auth := &stubAuthenticator{tokens: map[string]*domain.Identity{"good": {UserID: "u1", TokenID: "j1"}}}

	r := ginext.New("test")
	r.Use(Authenticate(auth, newTestLogger(t)))
	r.GET("/whoami", whoAmI)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid token", "Bearer good", "u1"},
		{"scheme is case insensitive", "bearer good", "u1"},
		{"unknown token stays anonymous", "Bearer bad", ""},
		{"no header", "", ""},
		{"other scheme", "Basic Zm9vOmJhcg==", ""},
		{"empty bearer", "Bearer   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(requestIDHeader))
}

func TestRecovery(t *testing.T) {
	log := newTestLogger(t)
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"message":"internal server error"}`, w.Body.String())
}

type observed struct {
	method string
	route  string
	status int
}

type stubObserver struct{ got []observed }

func (s *stubObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	s.got = append(s.got, observed{method, route, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	obs := &stubObserver{}
	r := ginext.New("test")
	r.Use(Metrics(obs))
	r.GET("/api/events/:id", func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/events/123", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, []observed{
		{http.MethodGet, "/api/events/:id", http.StatusNoContent},
		{http.MethodGet, "", http.StatusNotFound},
	}, obs.got)
}
