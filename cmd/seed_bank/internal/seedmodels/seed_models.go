package seedmodels

import (
	"strings"

	"examgen/internal/domain"
)

// SeedQuestion is one question of the JSON seed file.
type SeedQuestion struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty string   `json:"difficulty"`
	Marks      int      `json:"marks"`
}

// SeedSubject groups the seed questions of one bank subject.
type SeedSubject struct {
	Subject   string         `json:"subject"`
	Questions []SeedQuestion `json:"questions"`
}

// ToBankQuestion maps a seed entry onto a bank record with the bank defaults
// applied. ID and CreatedAt are left to the caller.
func (q SeedQuestion) ToBankQuestion(subject string) *domain.BankQuestion {
	bq := &domain.BankQuestion{
		QuestionText:  strings.TrimSpace(q.Question),
		QuestionType:  domain.QuestionType(q.Type),
		Options:       q.Options,
		CorrectAnswer: q.Answer,
		Subject:       subject,
		Difficulty:    q.Difficulty,
		Marks:         q.Marks,
		Source:        domain.SourceManual,
	}
	bq.ApplyDefaults()
	return bq
}
