package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"examgen/internal/domain"
	"examgen/internal/repository/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const teacherColumns = `id, name, subject, email, password_hash, created_at, updated_at`

// TeacherDatabaseAdapter implements domain.TeacherRepository using sqlx.DB
type TeacherDatabaseAdapter struct {
	db *sqlx.DB
}

func NewTeacherDatabaseAdapter(db *sqlx.DB) domain.TeacherRepository {
	return &TeacherDatabaseAdapter{db: db}
}

// Create inserts the teacher. Emails are stored lower-cased.
func (a *TeacherDatabaseAdapter) Create(ctx context.Context, t *domain.Teacher) error {
	row := fromDomainTeacher(t)
	query := a.db.Rebind(`INSERT INTO teachers (` + teacherColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		row.ID, row.Name, row.Subject, row.Email, row.PasswordHash, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("Teacher already exists")
		}
		return fmt.Errorf("failed to create teacher: %w", err)
	}
	return nil
}

func (a *TeacherDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Teacher, error) {
	return a.getOne(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE id = ?`, id)
}

func (a *TeacherDatabaseAdapter) GetByEmail(ctx context.Context, email string) (*domain.Teacher, error) {
	return a.getOne(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE email = ?`, normalizeEmail(email))
}

func (a *TeacherDatabaseAdapter) getOne(ctx context.Context, query string, arg interface{}) (*domain.Teacher, error) {
	var row models.Teacher
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, a.db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	return toDomainTeacher(&row), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isUniqueViolation recognises duplicate-key errors from the supported drivers.
// sqlite and go-ora only expose them through the message.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "ORA-00001")
}

func toDomainTeacher(row *models.Teacher) *domain.Teacher {
	if row == nil {
		return nil
	}
	return &domain.Teacher{
		ID:           row.ID,
		Name:         row.Name,
		Subject:      row.Subject,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func fromDomainTeacher(t *domain.Teacher) *models.Teacher {
	return &models.Teacher{
		ID:           t.ID,
		Name:         t.Name,
		Subject:      t.Subject,
		Email:        normalizeEmail(t.Email),
		PasswordHash: t.PasswordHash,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
