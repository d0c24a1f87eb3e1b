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

const paperColumns = `id, teacher_id, title, subject, questions_json, total_marks, created_at, updated_at`

// PaperDatabaseAdapter implements domain.PaperRepository using sqlx.DB
type PaperDatabaseAdapter struct {
	db *sqlx.DB
}

func NewPaperDatabaseAdapter(db *sqlx.DB) domain.PaperRepository {
	return &PaperDatabaseAdapter{db: db}
}

func (a *PaperDatabaseAdapter) Create(ctx context.Context, paper *domain.Paper) error {
	row := fromDomainPaper(paper)
	query := a.db.Rebind(`INSERT INTO papers (` + paperColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		row.ID, row.TeacherID, row.Title, row.Subject, row.QuestionsJSON, row.TotalMarks, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create paper: %w", err)
	}
	return nil
}

func (a *PaperDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Paper, error) {
	var row models.Paper
	query := a.db.Rebind(`SELECT ` + paperColumns + ` FROM papers WHERE id = ?`)
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get paper by id: %w", err)
	}
	return toDomainPaper(&row), nil
}

// ListByTeacher returns the teacher's papers, newest first.
func (a *PaperDatabaseAdapter) ListByTeacher(ctx context.Context, teacherID string) ([]*domain.Paper, error) {
	var rows []models.Paper
	query := a.db.Rebind(`SELECT ` + paperColumns + ` FROM papers WHERE teacher_id = ? ORDER BY created_at DESC, id DESC`)
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, teacherID); err != nil {
		return nil, fmt.Errorf("failed to list papers: %w", err)
	}
	papers := make([]*domain.Paper, 0, len(rows))
	for i := range rows {
		papers = append(papers, toDomainPaper(&rows[i]))
	}
	return papers, nil
}

func (a *PaperDatabaseAdapter) CountByTeacher(ctx context.Context, teacherID string) (int, error) {
	var n int
	query := a.db.Rebind(`SELECT COUNT(*) FROM papers WHERE teacher_id = ?`)
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &n, query, teacherID); err != nil {
		return 0, fmt.Errorf("failed to count papers: %w", err)
	}
	return n, nil
}

func (a *PaperDatabaseAdapter) Delete(ctx context.Context, id string) (bool, error) {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, a.db.Rebind(`DELETE FROM papers WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete paper: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func toDomainPaper(row *models.Paper) *domain.Paper {
	if row == nil {
		return nil
	}
	return &domain.Paper{
		ID:         row.ID,
		TeacherID:  row.TeacherID,
		Title:      util.NullStringToString(row.Title),
		Subject:    util.NullStringToString(row.Subject),
		Questions:  json.RawMessage(row.QuestionsJSON),
		TotalMarks: row.TotalMarks,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func fromDomainPaper(p *domain.Paper) *models.Paper {
	return &models.Paper{
		ID:            p.ID,
		TeacherID:     p.TeacherID,
		Title:         util.StringToNullString(p.Title),
		Subject:       util.StringToNullString(p.Subject),
		QuestionsJSON: models.RawJSON(p.Questions),
		TotalMarks:    p.TotalMarks,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
