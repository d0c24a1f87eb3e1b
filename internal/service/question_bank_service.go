package service

import (
	"context"
	"strings"
	"time"

	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/util"
	"examgen/internal/validation"
)

// QuestionBankService manages the curated question bank.
type QuestionBankService interface {
	List(ctx context.Context, filter domain.BankFilter) ([]*domain.BankQuestion, error)
	Add(ctx context.Context, teacherID string, req dto.BankQuestionRequest) (*domain.BankQuestion, error)
	Update(ctx context.Context, id string, patch dto.BankQuestionPatch) (*domain.BankQuestion, error)
	Delete(ctx context.Context, id string) error
}

type questionBankService struct {
	repo      domain.QuestionRepository
	validator *validation.Validator
}

func NewQuestionBankService(repo domain.QuestionRepository, validator *validation.Validator) QuestionBankService {
	return &questionBankService{repo: repo, validator: validator}
}

func (s *questionBankService) List(ctx context.Context, filter domain.BankFilter) ([]*domain.BankQuestion, error) {
	questions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch questions", err)
	}
	return questions, nil
}

func (s *questionBankService) Add(ctx context.Context, teacherID string, req dto.BankQuestionRequest) (*domain.BankQuestion, error) {
	if errs := s.validator.ValidateBankQuestionRequest(req); len(errs) > 0 {
		return nil, errs
	}
	q := &domain.BankQuestion{
		ID:            util.NewULID(),
		QuestionText:  strings.TrimSpace(req.QuestionText),
		QuestionType:  domain.QuestionType(req.QuestionType),
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Subject:       req.Subject,
		Difficulty:    req.Difficulty,
		Marks:         req.Marks,
		TeacherID:     teacherID,
		Source:        domain.SourceManual,
		CreatedAt:     time.Now().UTC(),
	}
	q.ApplyDefaults()
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, domain.NewInternalError("Failed to add question", err)
	}
	return q, nil
}

// Update applies the non-nil fields of patch.
func (s *questionBankService) Update(ctx context.Context, id string, patch dto.BankQuestionPatch) (*domain.BankQuestion, error) {
	if errs := s.validator.ValidateBankQuestionPatch(patch); len(errs) > 0 {
		return nil, errs
	}
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update question", err)
	}
	if q == nil {
		return nil, domain.NewNotFoundError("Question not found")
	}

	if patch.QuestionText != nil {
		q.QuestionText = strings.TrimSpace(*patch.QuestionText)
	}
	if patch.QuestionType != nil {
		q.QuestionType = domain.QuestionType(*patch.QuestionType)
	}
	if patch.Options != nil {
		q.Options = *patch.Options
	}
	if patch.CorrectAnswer != nil {
		q.CorrectAnswer = *patch.CorrectAnswer
	}
	if patch.Subject != nil {
		q.Subject = *patch.Subject
	}
	if patch.Difficulty != nil {
		q.Difficulty = *patch.Difficulty
	}
	if patch.Marks != nil {
		q.Marks = *patch.Marks
	}
	q.ApplyDefaults()

	ok, err := s.repo.Update(ctx, q)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update question", err)
	}
	if !ok {
		return nil, domain.NewNotFoundError("Question not found")
	}
	return q, nil
}

func (s *questionBankService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to delete question", err)
	}
	if !ok {
		return domain.NewNotFoundError("Question not found")
	}
	return nil
}
