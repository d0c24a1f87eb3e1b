package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"examgen/internal/domain"
	"examgen/internal/repository/models"
	"examgen/internal/util"

	"github.com/jmoiron/sqlx"
)

const bankQuestionColumns = `id, question_text, question_type, options_json, correct_answer, subject, difficulty, marks, teacher_id, source, created_at`

// filterAll is the listing sentinel the bank page sends for "no filter".
const filterAll = "All"

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (a *QuestionDatabaseAdapter) Create(ctx context.Context, q *domain.BankQuestion) error {
	row := fromDomainBankQuestion(q)
	query := a.db.Rebind(`INSERT INTO bank_questions (` + bankQuestionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		row.ID, row.QuestionText, row.QuestionType, row.Options, row.CorrectAnswer,
		row.Subject, row.Difficulty, row.Marks, row.TeacherID, row.Source, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bank question: %w", err)
	}
	return nil
}

func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.BankQuestion, error) {
	var row models.BankQuestion
	query := a.db.Rebind(`SELECT ` + bankQuestionColumns + ` FROM bank_questions WHERE id = ?`)
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bank question by id: %w", err)
	}
	return toDomainBankQuestion(&row), nil
}

// List applies the filter and returns matches newest first. The topic is a
// case-insensitive substring match on the question text.
func (a *QuestionDatabaseAdapter) List(ctx context.Context, filter domain.BankFilter) ([]*domain.BankQuestion, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Subject != "" && filter.Subject != filterAll {
		conds = append(conds, "subject = ?")
		args = append(args, filter.Subject)
	}
	if filter.Difficulty != "" && filter.Difficulty != filterAll {
		conds = append(conds, "difficulty = ?")
		args = append(args, filter.Difficulty)
	}
	if topic := strings.TrimSpace(filter.Topic); topic != "" {
		conds = append(conds, `LOWER(question_text) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+util.EscapeLike(strings.ToLower(topic))+"%")
	}
	if filter.TeacherID != "" {
		conds = append(conds, "teacher_id = ?")
		args = append(args, filter.TeacherID)
	}

	query := `SELECT ` + bankQuestionColumns + ` FROM bank_questions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	var rows []models.BankQuestion
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, a.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list bank questions: %w", err)
	}
	out := make([]*domain.BankQuestion, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainBankQuestion(&rows[i]))
	}
	return out, nil
}

// Update rewrites the editable fields. Owner, source and creation time are fixed.
func (a *QuestionDatabaseAdapter) Update(ctx context.Context, q *domain.BankQuestion) (bool, error) {
	row := fromDomainBankQuestion(q)
	query := a.db.Rebind(`UPDATE bank_questions SET
		question_text = ?,
		question_type = ?,
		options_json = ?,
		correct_answer = ?,
		subject = ?,
		difficulty = ?,
		marks = ?
	WHERE id = ?`)
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		row.QuestionText, row.QuestionType, row.Options, row.CorrectAnswer,
		row.Subject, row.Difficulty, row.Marks, row.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update bank question: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func (a *QuestionDatabaseAdapter) Delete(ctx context.Context, id string) (bool, error) {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, a.db.Rebind(`DELETE FROM bank_questions WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete bank question: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func (a *QuestionDatabaseAdapter) CountByTeacher(ctx context.Context, teacherID string) (int, error) {
	var n int
	query := a.db.Rebind(`SELECT COUNT(*) FROM bank_questions WHERE teacher_id = ?`)
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &n, query, teacherID); err != nil {
		return 0, fmt.Errorf("failed to count bank questions: %w", err)
	}
	return n, nil
}

func toDomainBankQuestion(row *models.BankQuestion) *domain.BankQuestion {
	if row == nil {
		return nil
	}
	options := []string(row.Options)
	if options == nil {
		options = []string{}
	}
	return &domain.BankQuestion{
		ID:            row.ID,
		QuestionText:  row.QuestionText,
		QuestionType:  domain.QuestionType(row.QuestionType),
		Options:       options,
		CorrectAnswer: util.NullStringToString(row.CorrectAnswer),
		Subject:       row.Subject,
		Difficulty:    row.Difficulty,
		Marks:         row.Marks,
		TeacherID:     util.NullStringToString(row.TeacherID),
		Source:        row.Source,
		CreatedAt:     row.CreatedAt,
	}
}

func fromDomainBankQuestion(q *domain.BankQuestion) *models.BankQuestion {
	return &models.BankQuestion{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		QuestionType:  string(q.QuestionType),
		Options:       models.StringSlice(q.Options),
		CorrectAnswer: util.StringToNullString(q.CorrectAnswer),
		Subject:       q.Subject,
		Difficulty:    q.Difficulty,
		Marks:         q.Marks,
		TeacherID:     util.StringToNullString(q.TeacherID),
		Source:        q.Source,
		CreatedAt:     q.CreatedAt,
	}
}
