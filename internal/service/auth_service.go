package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"examgen/internal/cache"
	"examgen/internal/config"
	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/logger"
	"examgen/internal/util"
	"examgen/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	tokenIssuer      = "examgen"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrTokenRevoked    = errors.New("token has been revoked")
)

// AuthService handles teacher accounts and JWT sessions.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Teacher, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Teacher, *dto.TokenResponse, error)
	GetTeacher(ctx context.Context, teacherID string) (*domain.Teacher, error)
	CreateJWT(ctx context.Context, teacher *domain.Teacher, ttl time.Duration, tokenType string) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken string, newRefreshToken string, err error)
	// Logout deny-lists the access token and, when given, the refresh token.
	Logout(ctx context.Context, accessClaims *dto.AuthClaims, refreshTokenString string) error
}

type authServiceImpl struct {
	teacherRepo domain.TeacherRepository
	cache       domain.Cache
	validator   *validation.Validator
	jwtCfg      config.JWTConfig
	bcryptCost  int
}

// NewAuthService creates a new instance of AuthService. cache may be nil, in
// which case logout cannot revoke tokens before they expire.
func NewAuthService(teacherRepo domain.TeacherRepository, cache domain.Cache, validator *validation.Validator, jwtCfg config.JWTConfig) (AuthService, error) {
	if jwtCfg.SecretKey == "" {
		return nil, errors.New("jwt.secret_key is not configured")
	}
	if len(jwtCfg.SecretKey) < 32 {
		return nil, errors.New("jwt.secret_key must be at least 32 bytes long")
	}
	return &authServiceImpl{
		teacherRepo: teacherRepo,
		cache:       cache,
		validator:   validator,
		jwtCfg:      jwtCfg,
		bcryptCost:  bcrypt.DefaultCost,
	}, nil
}

func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Teacher, error) {
	if errs := s.validator.ValidateRegisterRequest(req); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.teacherRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to register teacher", err)
	}
	if existing != nil {
		return nil, domain.NewInvalidInputError("Teacher already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to register teacher", err)
	}

	now := time.Now().UTC()
	teacher := &domain.Teacher{
		ID:           util.NewULID(),
		Name:         strings.TrimSpace(req.Name),
		Subject:      strings.TrimSpace(req.Subject),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to register teacher", err)
	}

	logger.Get().Info("Teacher registered", zap.String("teacher_id", teacher.ID))
	return teacher, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*domain.Teacher, *dto.TokenResponse, error) {
	if errs := s.validator.ValidateLoginRequest(req); len(errs) > 0 {
		return nil, nil, errs
	}

	teacher, err := s.teacherRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, domain.NewInternalError("Failed to log in", err)
	}
	if teacher == nil {
		return nil, nil, domain.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(req.Password)); err != nil {
		logger.Get().Info("Login rejected", zap.String("teacher_id", teacher.ID))
		return nil, nil, domain.NewUnauthorizedError("Invalid credentials")
	}

	tokens, err := s.issuePair(ctx, teacher)
	if err != nil {
		return nil, nil, err
	}
	logger.Get().Info("Teacher logged in", zap.String("teacher_id", teacher.ID))
	return teacher, tokens, nil
}

func (s *authServiceImpl) GetTeacher(ctx context.Context, teacherID string) (*domain.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch teacher", err)
	}
	if teacher == nil {
		return nil, domain.NewNotFoundError("Teacher not found")
	}
	return teacher, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, teacher *domain.Teacher, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		TeacherID: teacher.ID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			Issuer:    tokenIssuer,
			Subject:   teacher.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtCfg.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		logger.Get().Debug("JWT validation failed",
			zap.Error(err),
			zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.TeacherID == "" {
		return nil, ErrInvalidJWTToken
	}

	revoked, err := s.isRevoked(ctx, claims.ID)
	if err != nil {
		// deny-list unavailable: the signature check stands
		logger.Get().Warn("Could not check token deny-list", zap.Error(err))
	} else if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	claims, err := s.ValidateJWT(ctx, refreshTokenString)
	if err != nil {
		return "", "", domain.NewUnauthorizedError("Invalid refresh token")
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", "", domain.NewUnauthorizedError("Not a refresh token")
	}

	teacher, err := s.teacherRepo.GetByID(ctx, claims.TeacherID)
	if err != nil {
		return "", "", domain.NewInternalError("Failed to refresh token", err)
	}
	if teacher == nil {
		logger.Get().Warn("Teacher not found for refresh token", zap.String("teacher_id", claims.TeacherID))
		return "", "", domain.NewNotFoundError(fmt.Sprintf("Teacher %s not found for refresh token", claims.TeacherID))
	}

	tokens, err := s.issuePair(ctx, teacher)
	if err != nil {
		return "", "", err
	}
	// rotate: the used refresh token cannot be replayed
	s.revoke(ctx, claims)

	logger.Get().Info("JWT token refreshed", zap.String("teacher_id", teacher.ID))
	return tokens.AccessToken, tokens.RefreshToken, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, accessClaims *dto.AuthClaims, refreshTokenString string) error {
	if accessClaims == nil {
		return domain.NewUnauthorizedError("Authentication required")
	}
	s.revoke(ctx, accessClaims)

	if refreshTokenString != "" {
		refreshClaims, err := s.ValidateJWT(ctx, refreshTokenString)
		if err == nil && refreshClaims.TeacherID == accessClaims.TeacherID {
			s.revoke(ctx, refreshClaims)
		}
	}
	logger.Get().Info("Teacher logged out", zap.String("teacher_id", accessClaims.TeacherID))
	return nil
}

func (s *authServiceImpl) issuePair(ctx context.Context, teacher *domain.Teacher) (*dto.TokenResponse, error) {
	access, err := s.CreateJWT(ctx, teacher, s.jwtCfg.AccessTokenTTL, tokenTypeAccess)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create access token", err)
	}
	refresh, err := s.CreateJWT(ctx, teacher, s.jwtCfg.RefreshTokenTTL, tokenTypeRefresh)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create refresh token", err)
	}
	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// revoke deny-lists the token id until the token would have expired anyway.
func (s *authServiceImpl) revoke(ctx context.Context, claims *dto.AuthClaims) {
	if s.cache == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	if err := s.cache.Set(ctx, cache.RevokedTokenKey(claims.ID), claims.TokenType, ttl); err != nil {
		logger.Get().Warn("Failed to revoke token", zap.String("teacher_id", claims.TeacherID), zap.Error(err))
	}
}

func (s *authServiceImpl) isRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.cache == nil || tokenID == "" {
		return false, nil
	}
	return s.cache.Exists(ctx, cache.RevokedTokenKey(tokenID))
}
