package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func reply(name string) func(c *ginext.Context) {
	return func(c *ginext.Context) { c.String(http.StatusOK, name) }
}

func (stubHandler) ListEvents(c *ginext.Context)  { reply("list")(c) }
func (stubHandler) GetEvent(c *ginext.Context)    { reply("get")(c) }
func (stubHandler) CreateEvent(c *ginext.Context) { reply("create")(c) }
func (stubHandler) UpdateEvent(c *ginext.Context) { reply("update")(c) }
func (stubHandler) DeleteEvent(c *ginext.Context) { reply("delete")(c) }
func (stubHandler) SignUp(c *ginext.Context)      { reply("sign-up")(c) }
func (stubHandler) SignIn(c *ginext.Context)      { reply("sign-in")(c) }
func (stubHandler) SignOut(c *ginext.Context)     { reply("sign-out")(c) }
func (stubHandler) Me(c *ginext.Context)          { reply("me")(c) }

func TestInitRouter_Routes(t *testing.T) {
	r := InitRouter("test", stubHandler{}, nil)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/api/events", "list"},
		{http.MethodPost, "/api/events", "create"},
		{http.MethodGet, "/api/events/abc", "get"},
		{http.MethodPut, "/api/events/abc", "update"},
		{http.MethodDelete, "/api/events/abc", "delete"},
		{http.MethodPost, "/api/auth/sign-up", "sign-up"},
		{http.MethodPost, "/api/auth/sign-in", "sign-in"},
		{http.MethodPost, "/api/auth/sign-out", "sign-out"},
		{http.MethodGet, "/api/auth/me", "me"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, http.StatusOK, w.Code, tt.method+" "+tt.path)
		assert.Equal(t, tt.want, w.Body.String())
	}
}

func TestInitRouter_Health(t *testing.T) {
	r := InitRouter("test", stubHandler{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"value":{"status":"ok"}}`, w.Body.String())
}

func TestInitRouter_Metrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})

	w := httptest.NewRecorder()
	InitRouter("test", stubHandler{}, metrics).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "# metrics", w.Body.String())

	w = httptest.NewRecorder()
	InitRouter("test", stubHandler{}, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
