package models

import (
	"database/sql"
	"time"
)

// Exam is a row of the exams table. Questions are kept as a JSON document.
type Exam struct {
	ID            string         `db:"id"`
	SchoolName    string         `db:"school_name"`
	ExamTitle     string         `db:"exam_title"`
	Category      sql.NullString `db:"category"`
	Difficulty    sql.NullString `db:"difficulty"`
	QuestionsJSON RawJSON        `db:"questions_json"`
	CreatedAt     time.Time      `db:"created_at"`
}

type Paper struct {
	ID            string         `db:"id"`
	TeacherID     string         `db:"teacher_id"`
	Title         sql.NullString `db:"title"`
	Subject       sql.NullString `db:"subject"`
	QuestionsJSON RawJSON        `db:"questions_json"`
	TotalMarks    int            `db:"total_marks"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type BankQuestion struct {
	ID            string         `db:"id"`
	QuestionText  string         `db:"question_text"`
	QuestionType  string         `db:"question_type"`
	Options       StringSlice    `db:"options_json"`
	CorrectAnswer sql.NullString `db:"correct_answer"`
	Subject       string         `db:"subject"`
	Difficulty    string         `db:"difficulty"`
	Marks         int            `db:"marks"`
	TeacherID     sql.NullString `db:"teacher_id"`
	Source        string         `db:"source"`
	CreatedAt     time.Time      `db:"created_at"`
}

type Teacher struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Subject      string    `db:"subject"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
