package service

import (
	"context"
	"encoding/json"
	"time"

	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/logger"
	"examgen/internal/util"
	"examgen/internal/validation"

	"go.uber.org/zap"
)

// PaperService manages a teacher's saved papers. Every operation takes the
// authenticated teacher id; papers of other teachers are forbidden.
type PaperService interface {
	Save(ctx context.Context, teacherID string, req dto.SavePaperRequest) (*domain.Paper, error)
	ListForTeacher(ctx context.Context, callerID, teacherID string) ([]*domain.Paper, error)
	Get(ctx context.Context, callerID, paperID string) (*domain.Paper, error)
	Delete(ctx context.Context, callerID, paperID string) error
}

type paperService struct {
	repo      domain.PaperRepository
	validator *validation.Validator
}

func NewPaperService(repo domain.PaperRepository, validator *validation.Validator) PaperService {
	return &paperService{repo: repo, validator: validator}
}

// Save stores the paper under teacherID. A teacherId in the request body is
// ignored.
func (s *paperService) Save(ctx context.Context, teacherID string, req dto.SavePaperRequest) (*domain.Paper, error) {
	if teacherID == "" {
		return nil, domain.NewUnauthorizedError("Authentication required")
	}
	if errs := s.validator.ValidateSavePaperRequest(req); len(errs) > 0 {
		return nil, errs
	}
	if req.TeacherID != "" && req.TeacherID != teacherID {
		logger.Get().Warn("Ignoring client supplied teacherId",
			zap.String("teacher_id", teacherID),
			zap.String("client_teacher_id", req.TeacherID),
		)
	}

	questions := req.Questions
	if len(questions) == 0 || string(questions) == "null" {
		questions = json.RawMessage("[]")
	}
	now := time.Now().UTC()
	paper := &domain.Paper{
		ID:         util.NewULID(),
		TeacherID:  teacherID,
		Title:      req.Title,
		Subject:    req.Subject,
		Questions:  questions,
		TotalMarks: req.TotalMarks,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, paper); err != nil {
		return nil, domain.NewInternalError("Failed to save paper", err)
	}
	logger.Get().Info("Paper saved", zap.String("paper_id", paper.ID), zap.String("teacher_id", teacherID))
	return paper, nil
}

func (s *paperService) ListForTeacher(ctx context.Context, callerID, teacherID string) ([]*domain.Paper, error) {
	if callerID != teacherID {
		return nil, domain.NewForbiddenError("Cannot view another teacher's papers")
	}
	papers, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch papers", err)
	}
	return papers, nil
}

func (s *paperService) Get(ctx context.Context, callerID, paperID string) (*domain.Paper, error) {
	paper, err := s.repo.GetByID(ctx, paperID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch paper", err)
	}
	if paper == nil {
		return nil, domain.NewNotFoundError("Paper not found")
	}
	if paper.TeacherID != callerID {
		return nil, domain.NewForbiddenError("Cannot access another teacher's paper")
	}
	return paper, nil
}

func (s *paperService) Delete(ctx context.Context, callerID, paperID string) error {
	if _, err := s.Get(ctx, callerID, paperID); err != nil {
		return err
	}
	ok, err := s.repo.Delete(ctx, paperID)
	if err != nil {
		return domain.NewInternalError("Failed to delete paper", err)
	}
	if !ok {
		return domain.NewNotFoundError("Paper not found")
	}
	return nil
}
