package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"examgen/internal/cache"
	"examgen/internal/config"
	"examgen/internal/domain"
	"examgen/internal/logger"
	"examgen/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultDraftTTL = time.Hour

// GenerationService turns a generation request into a normalized batch of
// questions.
type GenerationService interface {
	// Generate returns the batch and, when a cache is configured, the id of
	// the draft it was stored under.
	Generate(ctx context.Context, req domain.GenerationRequest) (domain.NormalizedBatch, string, error)
	GetDraft(ctx context.Context, draftID string) (domain.NormalizedBatch, error)
	// DiscardDraft drops a draft once the preview has been saved or
	// abandoned. Discarding an expired draft is not an error.
	DiscardDraft(ctx context.Context, draftID string) error
	Subjects() []domain.SubjectLevel
}

type generationService struct {
	gateway    domain.ModelGateway
	normalizer *domain.Normalizer
	cache      domain.Cache
	draftTTL   time.Duration
	drafts     singleflight.Group
}

// NewGenerationService wires the pipeline. cache may be nil; drafts are then
// not kept.
func NewGenerationService(gateway domain.ModelGateway, normalizer *domain.Normalizer, cache domain.Cache, cfg config.GenerationConfig) GenerationService {
	if normalizer == nil {
		normalizer = domain.NewNormalizer(nil)
	}
	ttl := cfg.DraftTTL
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &generationService{
		gateway:    gateway,
		normalizer: normalizer,
		cache:      cache,
		draftTTL:   ttl,
	}
}

func (s *generationService) Generate(ctx context.Context, req domain.GenerationRequest) (domain.NormalizedBatch, string, error) {
	appLogger := logger.Get()

	if req.QuestionType == "" {
		req.QuestionType = domain.QuestionTypeMCQ
	}
	subjectName := domain.ResolveSubjectName(req.StudentLevel, req.SubjectCode)
	prompt := domain.BuildPrompt(req, subjectName, domain.DescribeQuestionType(req.QuestionType))

	start := time.Now()
	raw, err := s.gateway.Complete(ctx, prompt)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGatewayNotConfigured):
			appLogger.Error("Model credential is missing")
			return nil, "", domain.NewGatewayNotConfiguredError()
		case errors.Is(err, domain.ErrEmptyCompletion):
			appLogger.Warn("Model returned an empty response", zap.String("subject", subjectName))
			return nil, "", domain.NewEmptyModelResponseError()
		default:
			appLogger.Error("Model gateway call failed", zap.String("subject", subjectName), zap.Error(err))
			return nil, "", domain.NewModelGatewayError(err)
		}
	}

	batch, err := s.normalizer.Normalize(raw, req.QuestionType)
	if err != nil {
		var pf *domain.ParseFailure
		if errors.As(err, &pf) {
			appLogger.Error("Failed to parse model output",
				zap.String("reason", pf.Message),
				zap.String("raw_output", pf.OriginalText),
			)
		}
		return nil, "", domain.NewAIParseError(err)
	}

	appLogger.Info("Generated questions",
		zap.String("student_level", string(req.StudentLevel)),
		zap.String("subject", subjectName),
		zap.String("question_type", string(req.QuestionType)),
		zap.Int("requested", req.Amount),
		zap.Int("received", len(batch)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return batch, s.storeDraft(ctx, batch), nil
}

// storeDraft keeps the batch for the preview page. Failures are logged only.
func (s *generationService) storeDraft(ctx context.Context, batch domain.NormalizedBatch) string {
	if s.cache == nil {
		return ""
	}
	data, err := json.Marshal(batch)
	if err != nil {
		logger.Get().Warn("Failed to encode draft", zap.Error(err))
		return ""
	}
	draftID := util.NewULID()
	if err := s.cache.Set(ctx, cache.DraftKey(draftID), string(data), s.draftTTL); err != nil {
		logger.Get().Warn("Failed to store draft", zap.String("draft_id", draftID), zap.Error(err))
		return ""
	}
	return draftID
}

func (s *generationService) GetDraft(ctx context.Context, draftID string) (domain.NormalizedBatch, error) {
	if s.cache == nil || !util.IsULID(draftID) {
		return nil, domain.NewNotFoundError("Draft not found")
	}
	// Concurrent reloads of one draft share a single cache read.
	res, err, _ := s.drafts.Do(draftID, func() (interface{}, error) {
		data, err := s.cache.Get(ctx, cache.DraftKey(draftID))
		if err != nil {
			if errors.Is(err, domain.ErrCacheMiss) {
				return nil, domain.NewNotFoundError("Draft not found")
			}
			return nil, domain.NewInternalError("Failed to load draft", err)
		}
		var batch domain.NormalizedBatch
		if err := json.Unmarshal([]byte(data), &batch); err != nil {
			return nil, domain.NewInternalError("Failed to decode draft", err)
		}
		return batch, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(domain.NormalizedBatch), nil
}

func (s *generationService) DiscardDraft(ctx context.Context, draftID string) error {
	if s.cache == nil || !util.IsULID(draftID) {
		return domain.NewNotFoundError("Draft not found")
	}
	if err := s.cache.Delete(ctx, cache.DraftKey(draftID)); err != nil {
		return domain.NewInternalError("Failed to discard draft", err)
	}
	return nil
}

func (s *generationService) Subjects() []domain.SubjectLevel {
	return domain.SubjectCatalog()
}
