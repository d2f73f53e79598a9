package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.Username] = user
	return user, nil
}

func newAuthFixture(ttl time.Duration) (*service.TokenService, *stubUserRepo) {
	tokens := service.NewTokenService([]byte("secret"), ttl)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"alice": {Username: "alice", Role: domain.RoleAdmin},
	}}
	return tokens, repo
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture(time.Hour)

	signed, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, repo)
	handler := mw(func(c echo.Context) error {
		called = true
		username, role, ok := Identity(c)
		if !ok {
			t.Fatalf("expected resolved identity")
		}
		if username != "alice" || role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %s/%s", username, role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture(time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, repo)
	handler := mw(func(c echo.Context) error {
		called = true
		if _, _, ok := Identity(c); ok {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("request must pass through unauthenticated")
	}
}

func TestAuthMiddleware_MalformedHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture(time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens, repo)
	handler := mw(func(c echo.Context) error {
		if _, _, ok := Identity(c); ok {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_ExpiredTokenIsAnonymous(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture(-time.Minute)

	signed, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens, repo)
	handler := mw(func(c echo.Context) error {
		if _, _, ok := Identity(c); ok {
			t.Fatalf("expired token must not resolve an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_DeletedAccountIsAnonymous(t *testing.T) {
	e := echo.New()
	tokens, repo := newAuthFixture(time.Hour)

	signed, err := tokens.Issue("ghost")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, repo)
	handler := mw(func(c echo.Context) error {
		called = true
		if _, _, ok := Identity(c); ok {
			t.Fatalf("token for a deleted account must not resolve an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("request must still be forwarded")
	}
}
