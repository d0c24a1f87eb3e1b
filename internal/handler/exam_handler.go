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

// DraftIDHeader carries the id a generated batch was cached under.
const DraftIDHeader = "X-Draft-ID"

// ExamHandler handles exam generation and saved exams
type ExamHandler struct {
	generation service.GenerationService
	exams      service.ExamService
}

// NewExamHandler creates a new ExamHandler instance
func NewExamHandler(generation service.GenerationService, exams service.ExamService) *ExamHandler {
	return &ExamHandler{
		generation: generation,
		exams:      exams,
	}
}

// GetSubjects godoc
// @Summary List subjects
// @Description Returns the subjects offered for each student level
// @Tags exams
// @Produce json
// @Success 200 {object} dto.SubjectCatalogResponse
// @Router /exams/subjects [get]
func (h *ExamHandler) GetSubjects(c *fiber.Ctx) error {
	return c.JSON(dto.SubjectCatalogResponse{Levels: h.generation.Subjects()})
}

// Generate godoc
// @Summary Generate exam questions
// @Description Asks the model for a batch of questions and returns them normalized.
// @Description The batch is also kept as a draft; its id is in the X-Draft-ID header.
// @Tags exams
// @Security ApiKeyAuth
// @Produce json
// @Param amount query int false "Number of questions" default(10)
// @Param studentType query string true "class10, class12 or engineering"
// @Param subjectId query string false "Subject code"
// @Param difficulty query string false "Difficulty"
// @Param questionType query string false "mcq, true_false or fill_blank"
// @Success 200 {array} object
// @Header 200 {string} X-Draft-ID "Draft id"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse "API Key missing on server"
// @Failure 502 {object} middleware.ErrorResponse "Model failure or unparseable output"
// @Router /exams/generate [get]
func (h *ExamHandler) Generate(c *fiber.Ctx) error {
	req, ok := middleware.GenerationRequest(c)
	if !ok {
		return domain.NewInvalidInputError("Missing generation parameters")
	}

	batch, draftID, err := h.generation.Generate(c.UserContext(), req)
	if err != nil {
		return err
	}
	if draftID != "" {
		c.Set(DraftIDHeader, draftID)
	}
	return c.JSON(batch)
}

// GetDraft godoc
// @Summary Get a generated draft
// @Description Returns a previously generated batch while it is still cached
// @Tags exams
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {array} object
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exams/drafts/{id} [get]
func (h *ExamHandler) GetDraft(c *fiber.Ctx) error {
	batch, err := h.generation.GetDraft(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(batch)
}

// DiscardDraft godoc
// @Summary Discard a generated draft
// @Tags exams
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exams/drafts/{id} [delete]
func (h *ExamHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.generation.DiscardDraft(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Draft discarded"})
}

// SaveExam godoc
// @Summary Save an exam
// @Tags exams
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param exam body dto.SaveExamRequest true "Exam"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /exams/save [post]
func (h *ExamHandler) SaveExam(c *fiber.Ctx) error {
	var req dto.SaveExamRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse save exam body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}

	if _, err := h.exams.Save(c.UserContext(), req); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Saved successfully"})
}

// ListExams godoc
// @Summary List saved exams
// @Description Newest first
// @Tags exams
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.ExamSummary
// @Router /exams [get]
func (h *ExamHandler) ListExams(c *fiber.Ctx) error {
	exams, err := h.exams.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(exams)
}

// GetExam godoc
// @Summary Get a saved exam
// @Tags exams
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} domain.Exam
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exams/{id} [get]
func (h *ExamHandler) GetExam(c *fiber.Ctx) error {
	exam, err := h.exams.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(exam)
}

// DeleteExam godoc
// @Summary Delete a saved exam
// @Tags exams
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *fiber.Ctx) error {
	if err := h.exams.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Exam deleted successfully"})
}
