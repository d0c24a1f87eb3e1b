package handler

import (
	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/logger"
	"examgen/internal/middleware"
	"examgen/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TeacherHandler handles teacher accounts and sessions.
type TeacherHandler struct {
	authService      service.AuthService
	dashboardService service.DashboardService
}

func NewTeacherHandler(authService service.AuthService, dashboardService service.DashboardService) *TeacherHandler {
	return &TeacherHandler{
		authService:      authService,
		dashboardService: dashboardService,
	}
}

// Register godoc
// @Summary Register a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param teacher body dto.RegisterRequest true "Sign-up form"
// @Success 201 {object} dto.TeacherResponse
// @Failure 400 {object} middleware.ErrorResponse "Teacher already exists"
// @Router /teachers/register [post]
func (h *TeacherHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	teacher, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(service.ToTeacherResponse(teacher))
}

// Login godoc
// @Summary Log in
// @Tags teachers
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Router /teachers/login [post]
func (h *TeacherHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	teacher, tokens, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		Teacher:       service.ToTeacherResponse(teacher),
		TokenResponse: *tokens,
	})
}

// RefreshToken godoc
// @Summary Refresh JWT tokens
// @Description The refresh token used is revoked and a new pair is issued.
// @Tags teachers
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /teachers/refresh [post]
func (h *TeacherHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.RefreshToken == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("refresh_token")}
	}

	access, refresh, err := h.authService.RefreshToken(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the access token and, if given, the refresh token.
// @Tags teachers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest false "Refresh token to revoke"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /teachers/logout [post]
func (h *TeacherHandler) Logout(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.Get().Debug("Ignoring unparsable logout body", zap.Error(err))
		}
	}

	if err := h.authService.Logout(c.UserContext(), middleware.Claims(c), req.RefreshToken); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// GetMe godoc
// @Summary Get my profile
// @Tags teachers
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.TeacherResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /teachers/me [get]
func (h *TeacherHandler) GetMe(c *fiber.Ctx) error {
	teacher, err := h.authService.GetTeacher(c.UserContext(), middleware.TeacherID(c))
	if err != nil {
		return err
	}
	return c.JSON(service.ToTeacherResponse(teacher))
}

// GetDashboard godoc
// @Summary Get my dashboard
// @Description Paper and question counts with the five newest papers
// @Tags teachers
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /teachers/me/dashboard [get]
func (h *TeacherHandler) GetDashboard(c *fiber.Ctx) error {
	summary, err := h.dashboardService.Summary(c.UserContext(), middleware.TeacherID(c))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
