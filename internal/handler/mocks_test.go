package handler_test

import (
	"context"
	"errors"
	"time"

	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/handler"
	"examgen/internal/middleware"
	"examgen/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// --- Manual Mocks ---

type MockGenerationService struct {
	GenerateFunc     func(ctx context.Context, req domain.GenerationRequest) (domain.NormalizedBatch, string, error)
	GetDraftFunc     func(ctx context.Context, draftID string) (domain.NormalizedBatch, error)
	DiscardDraftFunc func(ctx context.Context, draftID string) error
	SubjectsFunc     func() []domain.SubjectLevel
}

func (m *MockGenerationService) Generate(ctx context.Context, req domain.GenerationRequest) (domain.NormalizedBatch, string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	panic("MockGenerationService.GenerateFunc not implemented")
}
func (m *MockGenerationService) GetDraft(ctx context.Context, draftID string) (domain.NormalizedBatch, error) {
	if m.GetDraftFunc != nil {
		return m.GetDraftFunc(ctx, draftID)
	}
	panic("MockGenerationService.GetDraftFunc not implemented")
}
func (m *MockGenerationService) DiscardDraft(ctx context.Context, draftID string) error {
	if m.DiscardDraftFunc != nil {
		return m.DiscardDraftFunc(ctx, draftID)
	}
	panic("MockGenerationService.DiscardDraftFunc not implemented")
}
func (m *MockGenerationService) Subjects() []domain.SubjectLevel {
	if m.SubjectsFunc != nil {
		return m.SubjectsFunc()
	}
	return domain.SubjectCatalog()
}

type MockExamService struct {
	SaveFunc   func(ctx context.Context, req dto.SaveExamRequest) (*domain.Exam, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Exam, error)
	ListFunc   func(ctx context.Context) ([]dto.ExamSummary, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockExamService) Save(ctx context.Context, req dto.SaveExamRequest) (*domain.Exam, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	panic("MockExamService.SaveFunc not implemented")
}
func (m *MockExamService) Get(ctx context.Context, id string) (*domain.Exam, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	panic("MockExamService.GetFunc not implemented")
}
func (m *MockExamService) List(ctx context.Context) ([]dto.ExamSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	panic("MockExamService.ListFunc not implemented")
}
func (m *MockExamService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockExamService.DeleteFunc not implemented")
}

type MockPaperService struct {
	SaveFunc           func(ctx context.Context, teacherID string, req dto.SavePaperRequest) (*domain.Paper, error)
	ListForTeacherFunc func(ctx context.Context, callerID, teacherID string) ([]*domain.Paper, error)
	GetFunc            func(ctx context.Context, callerID, paperID string) (*domain.Paper, error)
	DeleteFunc         func(ctx context.Context, callerID, paperID string) error
}

func (m *MockPaperService) Save(ctx context.Context, teacherID string, req dto.SavePaperRequest) (*domain.Paper, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, teacherID, req)
	}
	panic("MockPaperService.SaveFunc not implemented")
}
func (m *MockPaperService) ListForTeacher(ctx context.Context, callerID, teacherID string) ([]*domain.Paper, error) {
	if m.ListForTeacherFunc != nil {
		return m.ListForTeacherFunc(ctx, callerID, teacherID)
	}
	panic("MockPaperService.ListForTeacherFunc not implemented")
}
func (m *MockPaperService) Get(ctx context.Context, callerID, paperID string) (*domain.Paper, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, callerID, paperID)
	}
	panic("MockPaperService.GetFunc not implemented")
}
func (m *MockPaperService) Delete(ctx context.Context, callerID, paperID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, callerID, paperID)
	}
	panic("MockPaperService.DeleteFunc not implemented")
}

type MockQuestionBankService struct {
	ListFunc   func(ctx context.Context, filter domain.BankFilter) ([]*domain.BankQuestion, error)
	AddFunc    func(ctx context.Context, teacherID string, req dto.BankQuestionRequest) (*domain.BankQuestion, error)
	UpdateFunc func(ctx context.Context, id string, patch dto.BankQuestionPatch) (*domain.BankQuestion, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockQuestionBankService) List(ctx context.Context, filter domain.BankFilter) ([]*domain.BankQuestion, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	panic("MockQuestionBankService.ListFunc not implemented")
}
func (m *MockQuestionBankService) Add(ctx context.Context, teacherID string, req dto.BankQuestionRequest) (*domain.BankQuestion, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, teacherID, req)
	}
	panic("MockQuestionBankService.AddFunc not implemented")
}
func (m *MockQuestionBankService) Update(ctx context.Context, id string, patch dto.BankQuestionPatch) (*domain.BankQuestion, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	panic("MockQuestionBankService.UpdateFunc not implemented")
}
func (m *MockQuestionBankService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockQuestionBankService.DeleteFunc not implemented")
}

// MockAuthService also acts as the middleware.TokenValidator: "good" is an
// access token for teacher-1, "refresh" is a refresh token.
type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, req dto.RegisterRequest) (*domain.Teacher, error)
	LoginFunc        func(ctx context.Context, req dto.LoginRequest) (*domain.Teacher, *dto.TokenResponse, error)
	GetTeacherFunc   func(ctx context.Context, teacherID string) (*domain.Teacher, error)
	RefreshTokenFunc func(ctx context.Context, refreshTokenString string) (string, string, error)
	LogoutFunc       func(ctx context.Context, accessClaims *dto.AuthClaims, refreshTokenString string) error
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Teacher, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	panic("MockAuthService.RegisterFunc not implemented")
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Teacher, *dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}
func (m *MockAuthService) GetTeacher(ctx context.Context, teacherID string) (*domain.Teacher, error) {
	if m.GetTeacherFunc != nil {
		return m.GetTeacherFunc(ctx, teacherID)
	}
	panic("MockAuthService.GetTeacherFunc not implemented")
}
func (m *MockAuthService) CreateJWT(ctx context.Context, teacher *domain.Teacher, ttl time.Duration, tokenType string) (string, error) {
	panic("not implemented in mock")
}
func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{
		TeacherID:        "teacher-1",
		RegisteredClaims: jwt.RegisteredClaims{ID: "01HGZ8VNRYXS8QKNJV5GRWPWDQ"},
	}
	switch tokenString {
	case "good":
		claims.TokenType = "access"
	case "refresh":
		claims.TokenType = "refresh"
	default:
		return nil, errors.New("invalid jwt token")
	}
	return claims, nil
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshTokenString)
	}
	panic("MockAuthService.RefreshTokenFunc not implemented")
}
func (m *MockAuthService) Logout(ctx context.Context, accessClaims *dto.AuthClaims, refreshTokenString string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accessClaims, refreshTokenString)
	}
	panic("MockAuthService.LogoutFunc not implemented")
}

type MockDashboardService struct {
	SummaryFunc func(ctx context.Context, teacherID string) (*dto.DashboardResponse, error)
}

func (m *MockDashboardService) Summary(ctx context.Context, teacherID string) (*dto.DashboardResponse, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, teacherID)
	}
	panic("MockDashboardService.SummaryFunc not implemented")
}

type testMocks struct {
	generation *MockGenerationService
	health     *fakePinger
	exams      *MockExamService
	papers     *MockPaperService
	bank       *MockQuestionBankService
	auth       *MockAuthService
	dashboard  *MockDashboardService
}

// newTestApp wires every handler with fresh mocks the way cmd/api does.
func newTestApp() (*fiber.App, *testMocks) {
	m := &testMocks{
		generation: &MockGenerationService{},
		health:     &fakePinger{},
		exams:      &MockExamService{},
		papers:     &MockPaperService{},
		bank:       &MockQuestionBankService{},
		auth:       &MockAuthService{},
		dashboard:  &MockDashboardService{},
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handler.Handlers{
		Exam:     handler.NewExamHandler(m.generation, m.exams),
		Teacher:  handler.NewTeacherHandler(m.auth, m.dashboard),
		Paper:    handler.NewPaperHandler(m.papers),
		Question: handler.NewQuestionHandler(m.bank),
		Health:   handler.NewHealthHandler(m.health, nil),
	}, m.auth, middleware.NewValidationMiddleware(validation.NewValidator(50), 10))
	return app, m
}
