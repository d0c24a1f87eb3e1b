package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"examgen/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teacherRowColumns = []string{"id", "name", "subject", "email", "password_hash", "created_at", "updated_at"}

func TestTeacherDatabaseAdapter_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTeacherDatabaseAdapter(db)
	now := time.Now()

	teacher := &domain.Teacher{
		ID:           "t1",
		Name:         "Ada",
		Subject:      "Math",
		Email:        "  Ada@School.EDU ",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	mock.ExpectExec(`INSERT INTO teachers`).
		WithArgs("t1", "Ada", "Math", "ada@school.edu", "$2a$10$hash", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), teacher))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherDatabaseAdapter_CreateDuplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: teachers.email (2067)")},
		{"postgres", &pgconn.PgError{Code: "23505"}},
		{"oracle", errors.New("ORA-00001: unique constraint (APP.SYS_C008) violated")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewTeacherDatabaseAdapter(db)

			mock.ExpectExec(`INSERT INTO teachers`).WillReturnError(tt.err)

			err := repo.Create(context.Background(), &domain.Teacher{ID: "t1", Email: "a@b.c"})
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeConflict, domainErr.Code)
		})
	}
}

func TestTeacherDatabaseAdapter_CreateOtherError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTeacherDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO teachers`).WillReturnError(errors.New("disk full"))
	err := repo.Create(context.Background(), &domain.Teacher{ID: "t1"})
	var domainErr *domain.DomainError
	assert.False(t, errors.As(err, &domainErr))
	assert.ErrorContains(t, err, "disk full")
}

func TestTeacherDatabaseAdapter_GetByEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTeacherDatabaseAdapter(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM teachers WHERE email = \?`).WithArgs("ada@school.edu").
		WillReturnRows(sqlmock.NewRows(teacherRowColumns).AddRow("t1", "Ada", "Math", "ada@school.edu", "h", now, now))

	teacher, err := repo.GetByEmail(context.Background(), "ADA@school.edu")
	require.NoError(t, err)
	require.NotNil(t, teacher)
	assert.Equal(t, "t1", teacher.ID)
	assert.Equal(t, "h", teacher.PasswordHash)

	mock.ExpectQuery(`FROM teachers WHERE email = \?`).WithArgs("who@x.y").WillReturnRows(sqlmock.NewRows(teacherRowColumns))
	teacher, err = repo.GetByEmail(context.Background(), "who@x.y")
	assert.NoError(t, err)
	assert.Nil(t, teacher)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherDatabaseAdapter_GetByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTeacherDatabaseAdapter(db)

	mock.ExpectQuery(`FROM teachers WHERE id = \?`).WithArgs("t1").WillReturnError(errors.New("timeout"))
	_, err := repo.GetByID(context.Background(), "t1")
	assert.ErrorContains(t, err, "timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}
