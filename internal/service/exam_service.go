package service

import (
	"context"
	"strings"
	"time"

	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/logger"
	"examgen/internal/util"
	"examgen/internal/validation"

	"go.uber.org/zap"
)

// ExamService stores exams saved from the preview page.
type ExamService interface {
	Save(ctx context.Context, req dto.SaveExamRequest) (*domain.Exam, error)
	Get(ctx context.Context, id string) (*domain.Exam, error)
	List(ctx context.Context) ([]dto.ExamSummary, error)
	Delete(ctx context.Context, id string) error
}

type examService struct {
	repo      domain.ExamRepository
	validator *validation.Validator
}

func NewExamService(repo domain.ExamRepository, validator *validation.Validator) ExamService {
	return &examService{repo: repo, validator: validator}
}

func (s *examService) Save(ctx context.Context, req dto.SaveExamRequest) (*domain.Exam, error) {
	if errs := s.validator.ValidateSaveExamRequest(req); len(errs) > 0 {
		return nil, errs
	}

	questions := req.Questions
	if questions == nil {
		questions = []domain.ExamQuestion{}
	}
	for i := range questions {
		if questions[i].IncorrectAnswers == nil {
			questions[i].IncorrectAnswers = []string{}
		}
	}

	exam := &domain.Exam{
		ID:         util.NewULID(),
		SchoolName: strings.TrimSpace(req.SchoolName),
		ExamTitle:  strings.TrimSpace(req.ExamTitle),
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Questions:  questions,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, exam); err != nil {
		return nil, domain.NewInternalError("Failed to save exam", err)
	}

	logger.Get().Info("Exam saved", zap.String("exam_id", exam.ID), zap.Int("questions", len(questions)))
	return exam, nil
}

func (s *examService) Get(ctx context.Context, id string) (*domain.Exam, error) {
	exam, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch exam", err)
	}
	if exam == nil {
		return nil, domain.NewNotFoundError("Exam not found")
	}
	return exam, nil
}

func (s *examService) List(ctx context.Context) ([]dto.ExamSummary, error) {
	exams, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch exams", err)
	}
	out := make([]dto.ExamSummary, 0, len(exams))
	for _, e := range exams {
		out = append(out, dto.ExamSummary{
			ID:            e.ID,
			SchoolName:    e.SchoolName,
			ExamTitle:     e.ExamTitle,
			Category:      e.Category,
			Difficulty:    e.Difficulty,
			QuestionCount: len(e.Questions),
			CreatedAt:     e.CreatedAt,
		})
	}
	return out, nil
}

func (s *examService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to delete exam", err)
	}
	if !ok {
		return domain.NewNotFoundError("Exam not found")
	}
	return nil
}
