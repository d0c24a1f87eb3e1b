package service

import (
	"context"

	"examgen/internal/domain"
	"examgen/internal/dto"

	"golang.org/x/sync/errgroup"
)

const recentPaperLimit = 5

// DashboardService aggregates a teacher's account summary.
type DashboardService interface {
	Summary(ctx context.Context, teacherID string) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	teacherRepo  domain.TeacherRepository
	paperRepo    domain.PaperRepository
	questionRepo domain.QuestionRepository
}

func NewDashboardService(teacherRepo domain.TeacherRepository, paperRepo domain.PaperRepository, questionRepo domain.QuestionRepository) DashboardService {
	return &dashboardService{teacherRepo: teacherRepo, paperRepo: paperRepo, questionRepo: questionRepo}
}

// Summary runs the lookups concurrently; the first failure cancels the rest.
func (s *dashboardService) Summary(ctx context.Context, teacherID string) (*dto.DashboardResponse, error) {
	var (
		teacher    *domain.Teacher
		papers     []*domain.Paper
		paperCount int
		bankCount  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teacher, err = s.teacherRepo.GetByID(gctx, teacherID)
		return err
	})
	g.Go(func() error {
		var err error
		papers, err = s.paperRepo.ListByTeacher(gctx, teacherID)
		return err
	})
	g.Go(func() error {
		var err error
		paperCount, err = s.paperRepo.CountByTeacher(gctx, teacherID)
		return err
	})
	g.Go(func() error {
		var err error
		bankCount, err = s.questionRepo.CountByTeacher(gctx, teacherID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to load dashboard", err)
	}
	if teacher == nil {
		return nil, domain.NewNotFoundError("Teacher not found")
	}

	if len(papers) > recentPaperLimit {
		papers = papers[:recentPaperLimit]
	}
	if papers == nil {
		papers = []*domain.Paper{}
	}
	return &dto.DashboardResponse{
		Teacher:           ToTeacherResponse(teacher),
		PaperCount:        paperCount,
		BankQuestionCount: bankCount,
		RecentPapers:      papers,
	}, nil
}

// ToTeacherResponse strips the password hash.
func ToTeacherResponse(t *domain.Teacher) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:        t.ID,
		Name:      t.Name,
		Subject:   t.Subject,
		Email:     t.Email,
		CreatedAt: t.CreatedAt,
	}
}
