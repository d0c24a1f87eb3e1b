package dto

import (
	"time"

	"examgen/internal/domain"
)

// SaveExamRequest is the preview page's save payload.
// @Description Request body for saving a generated exam
type SaveExamRequest struct {
	SchoolName string                `json:"schoolName"`
	ExamTitle  string                `json:"examTitle"`
	Category   string                `json:"category"`
	Difficulty string                `json:"difficulty"`
	Questions  []domain.ExamQuestion `json:"questions"`
}

// ExamSummary is one row of the saved exams listing.
type ExamSummary struct {
	ID            string    `json:"id"`
	SchoolName    string    `json:"schoolName"`
	ExamTitle     string    `json:"examTitle"`
	Category      string    `json:"category,omitempty"`
	Difficulty    string    `json:"difficulty,omitempty"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SubjectCatalogResponse lists the subjects offered per student level.
type SubjectCatalogResponse struct {
	Levels []domain.SubjectLevel `json:"levels"`
}
