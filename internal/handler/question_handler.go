package handler

import (
	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/middleware"
	"examgen/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler serves the question bank.
type QuestionHandler struct {
	bank service.QuestionBankService
}

func NewQuestionHandler(bank service.QuestionBankService) *QuestionHandler {
	return &QuestionHandler{bank: bank}
}

// ListQuestions godoc
// @Summary List bank questions
// @Description "All" or an empty value disables a filter. topic is a case-insensitive substring of the question text.
// @Tags questions
// @Security ApiKeyAuth
// @Produce json
// @Param subject query string false "Subject"
// @Param difficulty query string false "Difficulty"
// @Param topic query string false "Topic"
// @Param mine query bool false "Only my questions"
// @Success 200 {array} domain.BankQuestion
// @Router /questions/bank [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	var q dto.BankQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.NewInvalidInputError("Invalid query parameters")
	}

	filter := domain.BankFilter{
		Subject:    q.Subject,
		Difficulty: q.Difficulty,
		Topic:      q.Topic,
	}
	if q.Mine {
		filter.TeacherID = middleware.TeacherID(c)
	}

	questions, err := h.bank.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	if questions == nil {
		questions = []*domain.BankQuestion{}
	}
	return c.JSON(questions)
}

// AddQuestion godoc
// @Summary Add a bank question
// @Tags questions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param question body dto.BankQuestionRequest true "Question"
// @Success 201 {object} domain.BankQuestion
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /questions/bank [post]
func (h *QuestionHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.BankQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	q, err := h.bank.Add(c.UserContext(), middleware.TeacherID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

// UpdateQuestion godoc
// @Summary Edit a bank question
// @Tags questions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.BankQuestionPatch true "Fields to change"
// @Success 200 {object} domain.BankQuestion
// @Failure 404 {object} middleware.ErrorResponse "Question not found"
// @Router /questions/bank/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	var patch dto.BankQuestionPatch
	if err := c.BodyParser(&patch); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	q, err := h.bank.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(q)
}

// DeleteQuestion godoc
// @Summary Delete a bank question
// @Tags questions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse "Question not found"
// @Router /questions/bank/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.bank.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Question deleted successfully"})
}
