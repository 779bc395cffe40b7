package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/ctfboard/internal/model"
	"github.com/dtroode/ctfboard/internal/testutil"
)

type fakeAuth struct {
	identity model.Identity
	err      error
	gotToken string
}

func (f *fakeAuth) Authenticate(ctx context.Context, token string) (model.Identity, error) {
	f.gotToken = token
	return f.identity, f.err
}

func makeEngine(auth AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", NewAuthenticate(auth, testutil.MakeNoopLogger()).Handle(), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": identity.Username})
	})
	return engine
}

func TestAuthenticate_NoCookie(t *testing.T) {
	engine := makeEngine(&fakeAuth{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestAuthenticate_InvalidSession(t *testing.T) {
	auth := &fakeAuth{err: model.ErrUnauthorized}
	engine := makeEngine(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "forged", auth.gotToken)
}

func TestAuthenticate_ValidSession(t *testing.T) {
	auth := &fakeAuth{identity: model.Identity{Username: "alice"}}
	engine := makeEngine(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"alice"}`, w.Body.String())
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	auth := &fakeAuth{err: assert.AnError}
	engine := makeEngine(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token"})
	engine.ServeHTTP(w, req)

	// Store failures still deny access; they never leak details.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}
