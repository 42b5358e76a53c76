package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/devlink/pkg/auth"
)

func setupRouter(jwtMgr *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AuthMiddleware(jwtMgr), func(c *gin.Context) {
		userID := c.MustGet(UserIDKey).(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return r
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	r := setupRouter(auth.NewJWTManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"No Token, Authorization Denied"}`, w.Body.String())
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := setupRouter(auth.NewJWTManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(auth.TokenHeader, "garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"Token Is Not Valid"}`, w.Body.String())
}

func TestAuthMiddlewareForeignToken(t *testing.T) {
	r := setupRouter(auth.NewJWTManager("secret", time.Hour))

	foreign := auth.NewJWTManager("other-secret", time.Hour)
	token, err := foreign.Generate(uuid.NewString())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(auth.TokenHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", -time.Minute)
	r := setupRouter(jwtMgr)

	token, err := jwtMgr.Generate(uuid.NewString())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(auth.TokenHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareNonUUIDSubject(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	r := setupRouter(jwtMgr)

	token, err := jwtMgr.Generate("not-a-uuid")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(auth.TokenHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"Token Is Not Valid"}`, w.Body.String())
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	jwtMgr := auth.NewJWTManager("secret", time.Hour)
	r := setupRouter(jwtMgr)

	userID := uuid.New()
	token, err := jwtMgr.Generate(userID.String())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(auth.TokenHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"`+userID.String()+`"}`, w.Body.String())
}
