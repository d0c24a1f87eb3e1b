package middleware

import (
	"strconv"
	"strings"

	"examgen/internal/domain"
	"examgen/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenerationRequestKey holds the parsed domain.GenerationRequest in fiber.Ctx locals.
const GenerationRequestKey = "validated_generation_request"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator     *validation.Validator
	defaultAmount int
}

// NewValidationMiddleware creates a new validation middleware instance.
// defaultAmount is used when the amount query parameter is absent.
func NewValidationMiddleware(validator *validation.Validator, defaultAmount int) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator:     validator,
		defaultAmount: defaultAmount,
	}
}

// ValidateGenerationParams parses the generate query string into a
// domain.GenerationRequest and validates it.
func (vm *ValidationMiddleware) ValidateGenerationParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := domain.GenerationRequest{
			Amount:       vm.defaultAmount,
			StudentLevel: domain.StudentLevel(strings.TrimSpace(c.Query("studentType"))),
			SubjectCode:  strings.TrimSpace(c.Query("subjectId")),
			Difficulty:   strings.TrimSpace(c.Query("difficulty")),
			QuestionType: domain.QuestionType(strings.TrimSpace(c.Query("questionType"))),
		}

		if amountStr := strings.TrimSpace(c.Query("amount")); amountStr != "" {
			amount, err := strconv.Atoi(amountStr)
			if err != nil {
				return domain.ValidationErrors{
					domain.NewInvalidFormatError("amount", amountStr),
				}
			}
			req.Amount = amount
		}

		if errors := vm.validator.ValidateGenerationRequest(req); len(errors) > 0 {
			return errors
		}

		c.Locals(GenerationRequestKey, req)
		return c.Next()
	}
}

// GenerationRequest returns the request stored by ValidateGenerationParams.
func GenerationRequest(c *fiber.Ctx) (domain.GenerationRequest, bool) {
	req, ok := c.Locals(GenerationRequestKey).(domain.GenerationRequest)
	return req, ok
}
