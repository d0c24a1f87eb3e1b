package middleware_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"examgen/internal/dto"
	"examgen/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockTokenValidator implements middleware.TokenValidator.
type ManualMockTokenValidator struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockTokenValidator) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

func claimsFor(teacherID, tokenType string) *dto.AuthClaims {
	return &dto.AuthClaims{
		TeacherID: teacherID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name             string
		authHeader       string
		validate         func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
		expectedStatus   int
		expectedTeacher  interface{}
		expectNextCalled bool
	}{
		{
			name:             "No Auth Header",
			expectedStatus:   fiber.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:             "Not Bearer",
			authHeader:       "Basic dXNlcjpwYXNz",
			expectedStatus:   fiber.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:             "Bearer No Token",
			authHeader:       "Bearer ",
			expectedStatus:   fiber.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:       "Valid Access Token",
			authHeader: "Bearer valid_access_token",
			validate: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				if tokenString != "valid_access_token" {
					return nil, errors.New("unexpected token")
				}
				return claimsFor("teacher-1", "access"), nil
			},
			expectedStatus:   fiber.StatusOK,
			expectedTeacher:  "teacher-1",
			expectNextCalled: true,
		},
		{
			name:       "Invalid Token",
			authHeader: "Bearer expired",
			validate: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				return nil, errors.New("token is expired")
			},
			expectedStatus:   fiber.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:       "Refresh Token Instead Of Access",
			authHeader: "Bearer valid_refresh_token",
			validate: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
				return claimsFor("teacher-1", "refresh"), nil
			},
			expectedStatus:   fiber.StatusForbidden,
			expectNextCalled: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			validator := &ManualMockTokenValidator{ValidateJWTFunc: tc.validate}

			nextHandlerCalled := false
			var teacherLocal interface{}
			var claims *dto.AuthClaims
			app.Get("/protected", middleware.Protected(validator), func(c *fiber.Ctx) error {
				nextHandlerCalled = true
				teacherLocal = c.Locals(middleware.TeacherIDKey)
				claims = middleware.Claims(c)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			assert.Equal(t, tc.expectNextCalled, nextHandlerCalled)
			assert.Equal(t, tc.expectedTeacher, teacherLocal)
			if tc.expectNextCalled {
				require.NotNil(t, claims)
				assert.Equal(t, "teacher-1", claims.TeacherID)
			}
		})
	}
}

func TestTeacherIDOutsideProtectedRoute(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/open", func(c *fiber.Ctx) error {
		got = middleware.TeacherID(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, got)
}
