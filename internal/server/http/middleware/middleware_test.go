package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dormdine/dormdine/internal/config"
	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	pkgAuth "github.com/dormdine/dormdine/internal/pkg/auth"
	testhelpers "github.com/dormdine/dormdine/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type adminCheckerStub struct {
	admin bool
	err   error
}

func (s adminCheckerStub) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.admin, s.err
}

func TestAuthRequired(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{}, config.TokenSourceBoth))
	router.GET("/", func(c *gin.Context) {})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}, config.TokenSourceBoth))
	router.GET("/", func(c *gin.Context) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Err: context.DeadlineExceeded}, config.TokenSourceBoth))
	router.GET("/", func(c *gin.Context) {})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var storedEmail string
	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Email: "resident@dorm.edu"}, config.TokenSourceBoth))
	router.GET("/", func(c *gin.Context) {
		storedEmail, _ = CurrentEmail(c)
		c.Status(http.StatusOK)
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if storedEmail != "resident@dorm.edu" {
		t.Fatalf("expected stored email, got %q", storedEmail)
	}
}

func TestAuthRequiredTokenSources(t *testing.T) {
	tests := []struct {
		name       string
		source     config.TokenSource
		setHeader  bool
		setCookie  bool
		wantStatus int
	}{
		{"header source accepts header", config.TokenSourceHeader, true, false, http.StatusOK},
		{"header source ignores cookie", config.TokenSourceHeader, false, true, http.StatusUnauthorized},
		{"cookie source accepts cookie", config.TokenSourceCookie, false, true, http.StatusOK},
		{"cookie source ignores header", config.TokenSourceCookie, true, false, http.StatusUnauthorized},
		{"both accepts header", config.TokenSourceBoth, true, false, http.StatusOK},
		{"both accepts cookie", config.TokenSourceBoth, false, true, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(AuthRequired(testhelpers.TokenParserStub{Email: "a@x.com"}, tt.source))
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.setHeader {
				req.Header.Set("Authorization", "Bearer token")
			}
			if tt.setCookie {
				req.AddCookie(&http.Cookie{Name: authCookieName, Value: "token"})
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.Code)
			}
		})
	}
}

func TestAdminRequired(t *testing.T) {
	newRouter := func(checker AdminChecker, authed bool) *gin.Engine {
		router := gin.New()
		if authed {
			router.Use(func(c *gin.Context) { c.Set(EmailContextKey, "chief@dorm.edu") })
		}
		router.Use(AdminRequired(checker))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	resp := httptest.NewRecorder()
	newRouter(adminCheckerStub{admin: true}, false).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	newRouter(adminCheckerStub{admin: false}, true).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	newRouter(adminCheckerStub{err: domainErrors.ErrNotFound}, true).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown account, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	newRouter(adminCheckerStub{err: errors.New("db down")}, true).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for lookup failure, got %d", resp.Code)
	}

	invoked := false
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set(EmailContextKey, "chief@dorm.edu") })
	router.Use(AdminRequired(adminCheckerStub{admin: true}))
	router.GET("/", func(c *gin.Context) {
		invoked = true
		c.Status(http.StatusOK)
	})
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK || !invoked {
		t.Fatalf("expected handler to run for admin, got %d invoked=%v", resp.Code, invoked)
	}
}

func TestRequireIdentityMatch(t *testing.T) {
	newRouter := func(email string) (*gin.Engine, *bool) {
		invoked := false
		router := gin.New()
		if email != "" {
			router.Use(func(c *gin.Context) { c.Set(EmailContextKey, email) })
		}
		router.Use(RequireIdentityMatch("email"))
		router.GET("/users/admin/:email", func(c *gin.Context) {
			invoked = true
			c.Status(http.StatusOK)
		})
		return router, &invoked
	}

	router, invoked := newRouter("a@x.com")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/users/admin/a@x.com", nil))
	if resp.Code != http.StatusOK || !*invoked {
		t.Fatalf("expected matching identity to pass, got %d invoked=%v", resp.Code, *invoked)
	}

	router, invoked = newRouter("a@x.com")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/users/admin/b@x.com", nil))
	if resp.Code != http.StatusForbidden || *invoked {
		t.Fatalf("expected 403 for mismatched identity, got %d invoked=%v", resp.Code, *invoked)
	}

	router, invoked = newRouter("")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/users/admin/a@x.com", nil))
	if resp.Code != http.StatusUnauthorized || *invoked {
		t.Fatalf("expected 401 without identity, got %d invoked=%v", resp.Code, *invoked)
	}
}

func TestRequireQueryIdentityMatch(t *testing.T) {
	newRouter := func(email string) (*gin.Engine, *bool) {
		invoked := false
		router := gin.New()
		if email != "" {
			router.Use(func(c *gin.Context) { c.Set(EmailContextKey, email) })
		}
		router.Use(RequireQueryIdentityMatch("email"))
		router.GET("/carts", func(c *gin.Context) {
			invoked = true
			c.Status(http.StatusOK)
		})
		return router, &invoked
	}

	router, invoked := newRouter("a@x.com")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/carts?email=a@x.com", nil))
	if resp.Code != http.StatusOK || !*invoked {
		t.Fatalf("expected matching identity to pass, got %d invoked=%v", resp.Code, *invoked)
	}

	router, invoked = newRouter("a@x.com")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/carts?email=b@x.com", nil))
	if resp.Code != http.StatusForbidden || *invoked {
		t.Fatalf("expected 403 for mismatched identity, got %d invoked=%v", resp.Code, *invoked)
	}

	router, invoked = newRouter("a@x.com")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/carts", nil))
	if resp.Code != http.StatusBadRequest || *invoked {
		t.Fatalf("expected 400 without email parameter, got %d invoked=%v", resp.Code, *invoked)
	}

	router, invoked = newRouter("")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/carts?email=a@x.com", nil))
	if resp.Code != http.StatusUnauthorized || *invoked {
		t.Fatalf("expected 401 without identity, got %d invoked=%v", resp.Code, *invoked)
	}
}

func TestSetAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetAuthCookie(c, "token")
	if got := recorder.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Value != "token" {
		t.Fatalf("expected cookie with token, got %+v", cookies)
	}
}

func TestClearAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	ClearAuthCookie(c)
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := extractToken(c, config.TokenSourceBoth); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := extractToken(c, config.TokenSourceBoth); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}
	c.Request.Header.Del("Authorization")
	c.Request.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie"})
	if token := extractToken(c, config.TokenSourceBoth); token != "cookie" {
		t.Fatalf("expected token from cookie, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestRequestLogger(t *testing.T) {
	var logged bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelInfo {
			logged = true
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if !logged {
		t.Fatalf("expected request to be logged")
	}
}
