package auth

import (
	"net/http"
	"testing"
	"time"

	"pulso-backend/internal/database/models"
	"pulso-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService(t *testing.T) {
	service := NewAuthService("test-signing-key")

	t.Run("generate and validate round trip", func(t *testing.T) {
		employeeID := uuid.New()
		token, err := service.GenerateJWT(employeeID, "C12345", models.RoleManager)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, employeeID, claims.EmployeeID)
		assert.Equal(t, "C12345", claims.Registration)
		assert.Equal(t, models.RoleManager, claims.Role)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := NewAuthService("another-key")
		token, err := other.GenerateJWT(uuid.New(), "C12345", models.RoleAssistant)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		claims := &Claims{
			EmployeeID:   uuid.New(),
			Registration: "C12345",
			Role:         models.RoleAssistant,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("rejects unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			EmployeeID: uuid.New(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateJWT(signed)
		assert.Error(t, err)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := service.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})
}

func setupMiddlewareRouter(service *AuthService, extra ...gin.HandlerFunc) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	middleware := NewAuthMiddleware(service)

	handlers := []gin.HandlerFunc{middleware.RequireAuth()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employee_id": c.GetString("employee_id"),
			"role":        c.GetString("role"),
		})
	})
	httpSuite.Router.GET("/protected", handlers...)
	return httpSuite
}

func bearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRequireAuth(t *testing.T) {
	service := NewAuthService("test-signing-key")
	httpSuite := setupMiddlewareRouter(service)

	t.Run("missing authorization header", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/protected", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("header without bearer prefix", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{"Authorization": "Token abc"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, bearerHeader("not-a-token"))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token sets employee context", func(t *testing.T) {
		employeeID := uuid.New()
		token, err := service.GenerateJWT(employeeID, "C12345", models.RoleAssistant)
		require.NoError(t, err)

		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, bearerHeader(token))

		var body map[string]string
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, employeeID.String(), body["employee_id"])
		assert.Equal(t, string(models.RoleAssistant), body["role"])
	})
}

func TestRequireManager(t *testing.T) {
	service := NewAuthService("test-signing-key")
	middleware := NewAuthMiddleware(service)
	httpSuite := setupMiddlewareRouter(service, middleware.RequireManager())

	t.Run("assistant is forbidden", func(t *testing.T) {
		token, err := service.GenerateJWT(uuid.New(), "C12345", models.RoleAssistant)
		require.NoError(t, err)

		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, bearerHeader(token))
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "manager role is required")
	})

	t.Run("manager passes through", func(t *testing.T) {
		token, err := service.GenerateJWT(uuid.New(), "C99999", models.RoleManager)
		require.NoError(t, err)

		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, bearerHeader(token))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
