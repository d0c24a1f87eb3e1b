package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"examgen/internal/config"
	"examgen/internal/domain"
	"examgen/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const bankFillDifficulty = "Medium"

// BankFillResult counts what a fill run did.
type BankFillResult struct {
	Subjects int
	Failed   int
	Added    int
}

// BankFillService seeds the question bank from the model, one batch per
// catalog subject.
type BankFillService interface {
	Run(ctx context.Context) (BankFillResult, error)
}

type bankFillService struct {
	generator    GenerationService
	questionRepo domain.QuestionRepository
	txManager    domain.TransactionManager
	cfg          config.BatchConfig
	logger       *zap.Logger
}

func NewBankFillService(
	generator GenerationService,
	questionRepo domain.QuestionRepository,
	txManager domain.TransactionManager,
	cfg config.BatchConfig,
	logger *zap.Logger,
) BankFillService {
	return &bankFillService{
		generator:    generator,
		questionRepo: questionRepo,
		txManager:    txManager,
		cfg:          cfg,
		logger:       logger,
	}
}

type fillTarget struct {
	level   domain.StudentLevel
	subject domain.Subject
}

// Run generates and stores questions for every catalog subject. A subject
// that fails is logged and skipped; Run only errors when the context ends.
func (s *bankFillService) Run(ctx context.Context) (BankFillResult, error) {
	start := time.Now()
	var targets []fillTarget
	for _, lvl := range s.generator.Subjects() {
		for _, sub := range lvl.Subjects {
			targets = append(targets, fillTarget{level: lvl.Level, subject: sub})
		}
	}
	s.logger.Info("Starting question bank fill",
		zap.Int("subjects", len(targets)),
		zap.Int("per_subject", s.cfg.QuestionsPerSubject),
		zap.Int("concurrency", s.cfg.Concurrency),
	)

	limit := s.cfg.Concurrency
	if limit <= 0 {
		limit = 1
	}
	var added, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			n, err := s.fillOne(gctx, target)
			if err != nil {
				failed.Add(1)
				s.logger.Error("Failed to fill subject",
					zap.String("level", string(target.level)),
					zap.String("subject", target.subject.Code),
					zap.Error(err),
				)
				return nil
			}
			added.Add(int64(n))
			return nil
		})
	}
	err := g.Wait()

	result := BankFillResult{Subjects: len(targets), Failed: int(failed.Load()), Added: int(added.Load())}
	s.logger.Info("Question bank fill finished",
		zap.Int("added", result.Added),
		zap.Int("failed_subjects", result.Failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		return result, fmt.Errorf("bank fill interrupted: %w", err)
	}
	return result, nil
}

// fillOne generates one batch and inserts it in a single transaction.
func (s *bankFillService) fillOne(ctx context.Context, target fillTarget) (int, error) {
	req := domain.GenerationRequest{
		Amount:       s.cfg.QuestionsPerSubject,
		StudentLevel: target.level,
		SubjectCode:  target.subject.Code,
		Difficulty:   bankFillDifficulty,
		QuestionType: domain.QuestionTypeMCQ,
	}
	batch, _, err := s.generator.Generate(ctx, req)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	questions := make([]*domain.BankQuestion, 0, len(batch))
	for _, nq := range batch {
		q := &domain.BankQuestion{
			ID:            util.NewULID(),
			QuestionText:  strings.TrimSpace(nq.Question),
			QuestionType:  nq.QuestionType,
			Options:       nq.Options,
			CorrectAnswer: correctAnswerOf(nq),
			Subject:       target.subject.Name,
			Difficulty:    bankFillDifficulty,
			Source:        domain.SourceAIGenerated,
			CreatedAt:     now,
		}
		q.ApplyDefaults()
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return 0, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, q := range questions {
			if err := s.questionRepo.Create(txCtx, q); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(questions), nil
}

// correctAnswerOf prefers answerText and falls back to the indexed option.
func correctAnswerOf(q domain.NormalizedQuestion) string {
	if q.AnswerText != nil && *q.AnswerText != "" {
		return *q.AnswerText
	}
	if q.AnswerIndex != nil && *q.AnswerIndex >= 0 && *q.AnswerIndex < len(q.Options) {
		return q.Options[*q.AnswerIndex]
	}
	return ""
}
