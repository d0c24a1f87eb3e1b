package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"examgen/internal/domain"
	"examgen/internal/repository/models"
	"examgen/internal/util"

	"github.com/jmoiron/sqlx"
)

const examColumns = `id, school_name, exam_title, category, difficulty, questions_json, created_at`

// ExamDatabaseAdapter implements domain.ExamRepository using sqlx.DB
type ExamDatabaseAdapter struct {
	db *sqlx.DB
}

// NewExamDatabaseAdapter creates a new instance of ExamDatabaseAdapter
func NewExamDatabaseAdapter(db *sqlx.DB) domain.ExamRepository {
	return &ExamDatabaseAdapter{db: db}
}

// Create implements domain.ExamRepository
func (a *ExamDatabaseAdapter) Create(ctx context.Context, exam *domain.Exam) error {
	row, err := fromDomainExam(exam)
	if err != nil {
		return err
	}
	query := a.db.Rebind(`INSERT INTO exams (` + examColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err = GetExecutor(ctx, a.db).ExecContext(ctx, query,
		row.ID, row.SchoolName, row.ExamTitle, row.Category, row.Difficulty, row.QuestionsJSON, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

// GetByID implements domain.ExamRepository
func (a *ExamDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Exam, error) {
	var row models.Exam
	query := a.db.Rebind(`SELECT ` + examColumns + ` FROM exams WHERE id = ?`)
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam by id: %w", err)
	}
	return toDomainExam(&row)
}

// List implements domain.ExamRepository. Newest first.
func (a *ExamDatabaseAdapter) List(ctx context.Context) ([]*domain.Exam, error) {
	var rows []models.Exam
	query := `SELECT ` + examColumns + ` FROM exams ORDER BY created_at DESC, id DESC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}

	exams := make([]*domain.Exam, 0, len(rows))
	for i := range rows {
		exam, err := toDomainExam(&rows[i])
		if err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}
	return exams, nil
}

// Delete implements domain.ExamRepository
func (a *ExamDatabaseAdapter) Delete(ctx context.Context, id string) (bool, error) {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, a.db.Rebind(`DELETE FROM exams WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete exam: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func toDomainExam(row *models.Exam) (*domain.Exam, error) {
	if row == nil {
		return nil, nil
	}
	exam := &domain.Exam{
		ID:         row.ID,
		SchoolName: row.SchoolName,
		ExamTitle:  row.ExamTitle,
		Category:   util.NullStringToString(row.Category),
		Difficulty: util.NullStringToString(row.Difficulty),
		CreatedAt:  row.CreatedAt,
	}
	if err := json.Unmarshal(row.QuestionsJSON, &exam.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions of exam %s: %w", row.ID, err)
	}
	if exam.Questions == nil {
		exam.Questions = []domain.ExamQuestion{}
	}
	return exam, nil
}

func fromDomainExam(exam *domain.Exam) (*models.Exam, error) {
	questions := exam.Questions
	if questions == nil {
		questions = []domain.ExamQuestion{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode exam questions: %w", err)
	}
	return &models.Exam{
		ID:            exam.ID,
		SchoolName:    exam.SchoolName,
		ExamTitle:     exam.ExamTitle,
		Category:      util.StringToNullString(exam.Category),
		Difficulty:    util.StringToNullString(exam.Difficulty),
		QuestionsJSON: data,
		CreatedAt:     exam.CreatedAt,
	}, nil
}
