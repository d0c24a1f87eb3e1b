package service

import (
	"context"
	"errors"
	"testing"

	"examgen/internal/domain"
	"examgen/internal/dto"
	"examgen/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuestionBankService_AddAppliesDefaults(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := NewQuestionBankService(repo, validation.NewValidator(50))
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	q, err := svc.Add(context.Background(), "teacher-1", dto.BankQuestionRequest{QuestionText: "What is inertia?"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBankSubject, q.Subject)
	assert.Equal(t, domain.DefaultBankDifficulty, q.Difficulty)
	assert.Equal(t, domain.DefaultBankMarks, q.Marks)
	assert.Equal(t, domain.SourceManual, q.Source)
	assert.Equal(t, domain.QuestionTypeMCQ, q.QuestionType)
	assert.Equal(t, []string{}, q.Options)
	assert.Equal(t, "teacher-1", q.TeacherID)
}

func TestQuestionBankService_AddValidation(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := NewQuestionBankService(repo, validation.NewValidator(50))

	_, err := svc.Add(context.Background(), "teacher-1", dto.BankQuestionRequest{QuestionType: "essay"})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestionBankService_List(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := NewQuestionBankService(repo, validation.NewValidator(50))
	filter := domain.BankFilter{Subject: "Physics", Topic: "motion"}
	repo.On("List", mock.Anything, filter).Return([]*domain.BankQuestion{{ID: "q1"}}, nil)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	repo2 := new(MockQuestionRepository)
	repo2.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	_, err = NewQuestionBankService(repo2, validation.NewValidator(50)).List(context.Background(), domain.BankFilter{})
	assertDomainCode(t, err, domain.CodeInternal)
}

func TestQuestionBankService_Update(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := NewQuestionBankService(repo, validation.NewValidator(50))
	stored := &domain.BankQuestion{
		ID: "q1", QuestionText: "Old", QuestionType: domain.QuestionTypeMCQ,
		Options: []string{"a", "b"}, Subject: "Physics", Difficulty: "Easy", Marks: 2, Source: domain.SourceManual,
	}
	repo.On("GetByID", mock.Anything, "q1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(q *domain.BankQuestion) bool {
		return q.QuestionText == "New" && q.Marks == 5 && q.Subject == "Physics"
	})).Return(true, nil)

	text, marks := " New ", 5
	q, err := svc.Update(context.Background(), "q1", dto.BankQuestionPatch{QuestionText: &text, Marks: &marks})
	require.NoError(t, err)
	assert.Equal(t, "New", q.QuestionText)
	assert.Equal(t, []string{"a", "b"}, q.Options)
	repo.AssertExpectations(t)
}

func TestQuestionBankService_UpdateErrors(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := NewQuestionBankService(repo, validation.NewValidator(50))
	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.Update(context.Background(), "missing", dto.BankQuestionPatch{})
	assertDomainCode(t, err, domain.CodeNotFound)
	assert.Equal(t, "Question not found", err.(*domain.DomainError).Message)

	zero := 0
	_, err = svc.Update(context.Background(), "q1", dto.BankQuestionPatch{Marks: &zero})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
}

func TestQuestionBankService_Delete(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := NewQuestionBankService(repo, validation.NewValidator(50))
	repo.On("Delete", mock.Anything, "q1").Return(true, nil)
	repo.On("Delete", mock.Anything, "missing").Return(false, nil)

	assert.NoError(t, svc.Delete(context.Background(), "q1"))
	assertDomainCode(t, svc.Delete(context.Background(), "missing"), domain.CodeNotFound)
}
