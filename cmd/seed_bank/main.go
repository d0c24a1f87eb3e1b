package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"examgen/cmd/seed_bank/internal/seedmodels"
	"examgen/internal/config"
	"examgen/internal/database"
	"examgen/internal/domain"
	"examgen/internal/logger"
	"examgen/internal/repository"
	"examgen/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultSeedFile = "config/seed/bank_questions.json"

var rootCmd = &cobra.Command{
	Use:   "seed_bank",
	Short: "Load curated questions into the question bank",
	Long:  "Reads a JSON seed file and inserts every question that is not in the bank yet, one transaction per subject.",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return run(cmd.Context(), file, dryRun)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringP("file", "f", defaultSeedFile, "Path to the seed file")
	rootCmd.Flags().Bool("dry-run", false, "Validate the seed file without writing")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, file string, dryRun bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Loading seed data from file", zap.String("path", file))
	byteValue, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", file, err)
	}
	var subjects []seedmodels.SeedSubject
	if err := json.Unmarshal(byteValue, &subjects); err != nil {
		return fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("subjects_loaded", len(subjects)))

	if dryRun {
		for _, s := range subjects {
			log.Info("Seed subject", zap.String("subject", s.Subject), zap.Int("questions", len(s.Questions)))
		}
		return nil
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(ctx, db.DB, cfg.DB.Driver); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	questionRepo := repository.NewQuestionDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	var inserted, failed int
	for _, s := range subjects {
		n, err := seedSubject(ctx, questionRepo, txManager, log, s)
		if err != nil {
			failed++
			log.Error("Error seeding subject, transaction rolled back", zap.String("subject", s.Subject), zap.Error(err))
			continue
		}
		inserted += n
	}
	log.Info("Seeding completed", zap.Int("inserted", inserted), zap.Int("failed_subjects", failed))
	if failed > 0 {
		return fmt.Errorf("%d subject(s) failed to seed", failed)
	}
	return nil
}

// seedSubject inserts the subject's questions that are not stored yet. A
// question already in the bank with the same subject and text is skipped.
func seedSubject(
	ctx context.Context,
	repo domain.QuestionRepository,
	txManager domain.TransactionManager,
	log *zap.Logger,
	s seedmodels.SeedSubject,
) (int, error) {
	inserted := 0
	err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted = 0
		for _, sq := range s.Questions {
			q := sq.ToBankQuestion(s.Subject)
			if q.QuestionText == "" {
				log.Warn("Skipping seed question without text", zap.String("subject", s.Subject))
				continue
			}

			existing, err := repo.List(txCtx, domain.BankFilter{Subject: s.Subject, Topic: q.QuestionText})
			if err != nil {
				return fmt.Errorf("failed to look up existing questions: %w", err)
			}
			if containsText(existing, q.QuestionText) {
				continue
			}

			q.ID = util.NewULID()
			q.CreatedAt = time.Now().UTC()
			if err := repo.Create(txCtx, q); err != nil {
				return fmt.Errorf("failed to save question %q: %w", util.Truncate(q.QuestionText, 50), err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Info("Seeded subject", zap.String("subject", s.Subject), zap.Int("inserted", inserted))
	return inserted, nil
}

func containsText(qs []*domain.BankQuestion, text string) bool {
	for _, q := range qs {
		if q.QuestionText == text {
			return true
		}
	}
	return false
}
