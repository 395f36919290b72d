package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"franchise-service/middleware"
	"franchise-service/models"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	assert.NoError(t, err)
	return signed
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":     userID.String(),
			"role":        middleware.GetRole(c),
			"location_id": middleware.GetLocationID(c).String(),
		})
	})
	r.GET("/admin", middleware.RequireRole(models.RoleFranchisor), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := authRouter()
	userID := uuid.New()
	locationID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":         userID.String(),
		"role":        models.RoleFranchisee,
		"location_id": locationID.String(),
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(r, "/whoami", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), locationID.String())
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := authRouter()

	w := doRequest(r, "/whoami", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	r := authRouter()
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": models.RoleFranchisee,
	})
	signed, err := other.SignedString([]byte("wrong-secret"))
	assert.NoError(t, err)

	w := doRequest(r, "/whoami", signed)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": models.RoleFranchisee,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	w := doRequest(r, "/whoami", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MissingRoleClaim(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.MapClaims{"sub": uuid.New().String()})

	w := doRequest(r, "/whoami", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": models.RoleFranchisee,
	})

	w := doRequest(r, "/admin", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": models.RoleFranchisor,
	})

	w := doRequest(r, "/admin", token)

	assert.Equal(t, http.StatusOK, w.Code)
}
