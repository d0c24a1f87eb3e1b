package domain

import (
	"encoding/json"
	"time"
)

// ExamQuestion is the stored shape of a saved exam's question.
type ExamQuestion struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Exam is a generated exam saved from the preview page.
type Exam struct {
	ID         string         `json:"id"`
	SchoolName string         `json:"schoolName"`
	ExamTitle  string         `json:"examTitle"`
	Category   string         `json:"category,omitempty"`
	Difficulty string         `json:"difficulty,omitempty"`
	Questions  []ExamQuestion `json:"questions"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Paper is a teacher's saved paper. Questions are stored as the client sent them.
type Paper struct {
	ID         string          `json:"id"`
	TeacherID  string          `json:"teacherId"`
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`
	Questions  json.RawMessage `json:"questions"`
	TotalMarks int             `json:"totalMarks"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Question bank defaults.
const (
	DefaultBankSubject    = "General"
	DefaultBankDifficulty = "Medium"
	DefaultBankMarks      = 1
	SourceManual          = "Manual"
	SourceAIGenerated     = "AI-Generated"
)

// BankQuestion is a curated question in the question bank.
type BankQuestion struct {
	ID            string       `json:"id"`
	QuestionText  string       `json:"questionText"`
	QuestionType  QuestionType `json:"questionType"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	Subject       string       `json:"subject"`
	Difficulty    string       `json:"difficulty"`
	Marks         int          `json:"marks"`
	TeacherID     string       `json:"teacherId,omitempty"`
	Source        string       `json:"source"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// ApplyDefaults fills the fields the bank form may leave empty.
func (q *BankQuestion) ApplyDefaults() {
	if q.Subject == "" {
		q.Subject = DefaultBankSubject
	}
	if q.Difficulty == "" {
		q.Difficulty = DefaultBankDifficulty
	}
	if q.Marks <= 0 {
		q.Marks = DefaultBankMarks
	}
	if q.Source == "" {
		q.Source = SourceManual
	}
	if q.QuestionType == "" {
		q.QuestionType = QuestionTypeMCQ
	}
	if q.Options == nil {
		q.Options = []string{}
	}
}

// BankFilter narrows a bank listing. Empty values and "All" match everything.
type BankFilter struct {
	Subject    string
	Difficulty string
	Topic      string
	TeacherID  string
}

// Teacher is an account that owns papers and bank questions.
type Teacher struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Subject      string    `json:"subject"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
