package handler

import (
	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/middleware"
	"examgen/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PaperHandler struct {
	paperService service.PaperService
}

func NewPaperHandler(paperService service.PaperService) *PaperHandler {
	return &PaperHandler{paperService: paperService}
}

// CreatePaper godoc
// @Summary Save a paper
// @Description The authenticated teacher owns the paper; a teacherId in the body is ignored.
// @Tags papers
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param paper body dto.SavePaperRequest true "Paper"
// @Success 201 {object} domain.Paper
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse "Failed to save paper"
// @Router /papers [post]
func (h *PaperHandler) CreatePaper(c *fiber.Ctx) error {
	var req dto.SavePaperRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	paper, err := h.paperService.Save(c.UserContext(), middleware.TeacherID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(paper)
}

// ListTeacherPapers godoc
// @Summary List a teacher's papers
// @Tags papers
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {array} domain.Paper
// @Failure 403 {object} middleware.ErrorResponse
// @Router /papers/teacher/{id} [get]
func (h *PaperHandler) ListTeacherPapers(c *fiber.Ctx) error {
	papers, err := h.paperService.ListForTeacher(c.UserContext(), middleware.TeacherID(c), c.Params("id"))
	if err != nil {
		return err
	}
	if papers == nil {
		papers = []*domain.Paper{}
	}
	return c.JSON(papers)
}

// GetPaper godoc
// @Summary Get a paper
// @Tags papers
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Paper ID"
// @Success 200 {object} domain.Paper
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /papers/{id} [get]
func (h *PaperHandler) GetPaper(c *fiber.Ctx) error {
	paper, err := h.paperService.Get(c.UserContext(), middleware.TeacherID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(paper)
}

// DeletePaper godoc
// @Summary Delete a paper
// @Tags papers
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Paper ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /papers/{id} [delete]
func (h *PaperHandler) DeletePaper(c *fiber.Ctx) error {
	if err := h.paperService.Delete(c.UserContext(), middleware.TeacherID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Paper deleted successfully"})
}
