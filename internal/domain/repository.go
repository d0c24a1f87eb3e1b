package domain

import "context"

// Repositories return (nil, nil) from Get* when the record does not exist,
// and false from Update/Delete when nothing matched.

type ExamRepository interface {
	Create(ctx context.Context, exam *Exam) error
	GetByID(ctx context.Context, id string) (*Exam, error)
	List(ctx context.Context) ([]*Exam, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PaperRepository interface {
	Create(ctx context.Context, paper *Paper) error
	GetByID(ctx context.Context, id string) (*Paper, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*Paper, error)
	CountByTeacher(ctx context.Context, teacherID string) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, q *BankQuestion) error
	GetByID(ctx context.Context, id string) (*BankQuestion, error)
	List(ctx context.Context, filter BankFilter) ([]*BankQuestion, error)
	Update(ctx context.Context, q *BankQuestion) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByTeacher(ctx context.Context, teacherID string) (int, error)
}

type TeacherRepository interface {
	Create(ctx context.Context, t *Teacher) error
	GetByID(ctx context.Context, id string) (*Teacher, error)
	GetByEmail(ctx context.Context, email string) (*Teacher, error)
}

// TransactionManager runs fn in a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
