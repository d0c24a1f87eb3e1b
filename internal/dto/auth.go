package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	TeacherID string `json:"teacher_id"`
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// RegisterRequest is the teacher sign-up form.
// @Description Request body for teacher registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest
// @Description Request body for teacher login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TeacherResponse is a teacher profile. The password hash is never exposed.
type TeacherResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse represents the response containing access and refresh tokens.
// @Description Response body for authentication tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse
// @Description Response body for a successful login
type LoginResponse struct {
	Teacher TeacherResponse `json:"teacher"`
	TokenResponse
}

// RefreshTokenRequest represents the request body for refreshing a token.
// @Description Request body for refreshing JWT tokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}
