package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"examgen/internal/domain"
	"examgen/internal/dto"

	"github.com/stretchr/testify/assert"
)

func fields(errs domain.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateGenerationRequest(t *testing.T) {
	v := NewValidator(50)
	valid := domain.GenerationRequest{Amount: 10, StudentLevel: domain.LevelClass12, SubjectCode: "physics", Difficulty: "Hard"}

	tests := []struct {
		name   string
		mutate func(r *domain.GenerationRequest)
		want   []string
	}{
		{"valid", func(r *domain.GenerationRequest) {}, []string{}},
		{"unknown subject is fine", func(r *domain.GenerationRequest) { r.SubjectCode = "astrology" }, []string{}},
		{"zero amount", func(r *domain.GenerationRequest) { r.Amount = 0 }, []string{"amount"}},
		{"amount over max", func(r *domain.GenerationRequest) { r.Amount = 51 }, []string{"amount"}},
		{"max amount", func(r *domain.GenerationRequest) { r.Amount = 50 }, []string{}},
		{"missing level", func(r *domain.GenerationRequest) { r.StudentLevel = "" }, []string{"studentType"}},
		{"bad level", func(r *domain.GenerationRequest) { r.StudentLevel = "class11" }, []string{"studentType"}},
		{"bad type", func(r *domain.GenerationRequest) { r.QuestionType = "essay" }, []string{"questionType"}},
		{"good type", func(r *domain.GenerationRequest) { r.QuestionType = domain.QuestionTypeTrueFalse }, []string{}},
		{"long subject", func(r *domain.GenerationRequest) { r.SubjectCode = strings.Repeat("x", 256) }, []string{"subjectId"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Equal(t, tt.want, fields(v.ValidateGenerationRequest(req)))
		})
	}
}

func TestValidateSaveExamRequest(t *testing.T) {
	v := NewValidator(50)

	errs := v.ValidateSaveExamRequest(dto.SaveExamRequest{})
	assert.Equal(t, []string{"schoolName", "examTitle"}, fields(errs))

	errs = v.ValidateSaveExamRequest(dto.SaveExamRequest{
		SchoolName: "S", ExamTitle: "T",
		Questions: []domain.ExamQuestion{{Question: "ok"}, {Question: " "}},
	})
	assert.Equal(t, []string{"questions[1].question"}, fields(errs))
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator(50)

	assert.Empty(t, v.ValidateRegisterRequest(dto.RegisterRequest{Name: "Ada", Subject: "Math", Email: "ada@school.edu", Password: "secret1"}))

	errs := v.ValidateRegisterRequest(dto.RegisterRequest{})
	assert.Equal(t, []string{"name", "subject", "email", "password"}, fields(errs))
	for _, e := range errs {
		assert.Equal(t, domain.CodeMissingField, e.Code)
	}

	errs = v.ValidateRegisterRequest(dto.RegisterRequest{Name: "Ada", Subject: "Math", Email: "Ada <ada@school.edu>", Password: "123"})
	assert.Equal(t, []string{"email", "password"}, fields(errs))
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewValidator(50)
	assert.Empty(t, v.ValidateLoginRequest(dto.LoginRequest{Email: "a@b.c", Password: "x"}))
	assert.Equal(t, []string{"email", "password"}, fields(v.ValidateLoginRequest(dto.LoginRequest{})))
}

func TestValidateSavePaperRequest(t *testing.T) {
	v := NewValidator(50)
	assert.Empty(t, v.ValidateSavePaperRequest(dto.SavePaperRequest{Questions: json.RawMessage(`[]`)}))
	assert.Empty(t, v.ValidateSavePaperRequest(dto.SavePaperRequest{}))

	errs := v.ValidateSavePaperRequest(dto.SavePaperRequest{TotalMarks: -1, Questions: json.RawMessage(`{"a":1}`)})
	assert.Equal(t, []string{"totalMarks", "questions"}, fields(errs))
}

func TestValidateBankQuestion(t *testing.T) {
	v := NewValidator(50)

	assert.Empty(t, v.ValidateBankQuestionRequest(dto.BankQuestionRequest{QuestionText: "What?"}))
	assert.Equal(t, []string{"questionText", "questionType"},
		fields(v.ValidateBankQuestionRequest(dto.BankQuestionRequest{QuestionType: "essay"})))

	empty := ""
	zero := 0
	assert.Equal(t, []string{"questionText", "marks"},
		fields(v.ValidateBankQuestionPatch(dto.BankQuestionPatch{QuestionText: &empty, Marks: &zero})))
	assert.Empty(t, v.ValidateBankQuestionPatch(dto.BankQuestionPatch{}))
}
