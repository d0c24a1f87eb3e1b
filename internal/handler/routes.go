package handler

import (
	"examgen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups what RegisterRoutes mounts.
type Handlers struct {
	Exam     *ExamHandler
	Teacher  *TeacherHandler
	Paper    *PaperHandler
	Question *QuestionHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts the API under /api. Static exam paths are registered
// before /exams/:id.
func RegisterRoutes(app fiber.Router, h Handlers, tokens middleware.TokenValidator, vm *middleware.ValidationMiddleware) {
	protected := middleware.Protected(tokens)
	api := app.Group("/api")
	api.Get("/health", h.Health.Check)

	exams := api.Group("/exams")
	exams.Get("/subjects", h.Exam.GetSubjects)
	exams.Get("/generate", protected, vm.ValidateGenerationParams(), h.Exam.Generate)
	exams.Get("/drafts/:id", protected, h.Exam.GetDraft)
	exams.Delete("/drafts/:id", protected, h.Exam.DiscardDraft)
	exams.Post("/save", protected, h.Exam.SaveExam)
	exams.Get("/", protected, h.Exam.ListExams)
	exams.Get("/:id", protected, h.Exam.GetExam)
	exams.Delete("/:id", protected, h.Exam.DeleteExam)

	teachers := api.Group("/teachers")
	teachers.Post("/register", h.Teacher.Register)
	teachers.Post("/login", h.Teacher.Login)
	teachers.Post("/refresh", h.Teacher.RefreshToken)
	teachers.Post("/logout", protected, h.Teacher.Logout)
	teachers.Get("/me", protected, h.Teacher.GetMe)
	teachers.Get("/me/dashboard", protected, h.Teacher.GetDashboard)

	papers := api.Group("/papers", protected)
	papers.Post("/", h.Paper.CreatePaper)
	papers.Get("/teacher/:id", h.Paper.ListTeacherPapers)
	papers.Get("/:id", h.Paper.GetPaper)
	papers.Delete("/:id", h.Paper.DeletePaper)

	bank := api.Group("/questions/bank", protected)
	bank.Get("/", h.Question.ListQuestions)
	bank.Post("/", h.Question.AddQuestion)
	bank.Put("/:id", h.Question.UpdateQuestion)
	bank.Delete("/:id", h.Question.DeleteQuestion)
}
