package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		id := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "email": id.Email, "role": id.Role})
	})
	r.GET("/admin", AuthMiddleware(cfg), RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_IssuedTokenRoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, &models.User{ID: "u1", Email: "u1@example.com", Role: "customer"}, time.Now())
	require.NoError(t, err)

	w := doGet(newAuthRouter(), "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","email":"u1@example.com","role":"customer"}`, w.Body.String())
}

func TestAuthMiddleware_AppMetadataRole(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":          "u9",
		"email":        "staff@example.com",
		"role":         "authenticated",
		"app_metadata": map[string]any{"role": "admin"},
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doGet(newAuthRouter(), "/admin", token)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired, err := IssueToken(testSecret, &models.User{ID: "u1"}, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	wrongKey, err := IssueToken("other", &models.User{ID: "u1"}, time.Now())
	require.NoError(t, err)
	noSubject, err := IssueToken(testSecret, &models.User{Email: "x@example.com"}, time.Now())
	require.NoError(t, err)

	r := newAuthRouter()
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", expired).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", wrongKey).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", noSubject).Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_ForbidsCustomer(t *testing.T) {
	token, err := IssueToken(testSecret, &models.User{ID: "u1", Role: "customer"}, time.Now())
	require.NoError(t, err)

	w := doGet(newAuthRouter(), "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")
}
