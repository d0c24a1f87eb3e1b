package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSubjectName(t *testing.T) {
	tests := []struct {
		level StudentLevel
		code  string
		want  string
	}{
		{LevelClass10, "maths", "Class 10 Mathematics"},
		{LevelClass10, "sst", "Class 10 Social Science"},
		{LevelClass10, "hindi", "Class 10 Hindi"},
		{LevelClass12, "pcm_physics", "Class 12 Physics"},
		{LevelClass12, "english", "Class 12 English"},
		{LevelEngineering, "ds_algo", "Data Structures"},
		{LevelEngineering, "dbms", "DBMS"},
		{LevelEngineering, "cn", "Computer Networks"},
		// unknown pairs
		{LevelClass12, "maths", FallbackSubjectName},
		{LevelClass10, "pcm_maths", FallbackSubjectName},
		{StudentLevel("phd"), "maths", FallbackSubjectName},
		{LevelEngineering, "", FallbackSubjectName},
		{"", "", FallbackSubjectName},
	}

	for _, tt := range tests {
		t.Run(string(tt.level)+"/"+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSubjectName(tt.level, tt.code))
		})
	}
}

func TestDescribeQuestionType(t *testing.T) {
	assert.Equal(t, "True/False questions", DescribeQuestionType(QuestionTypeTrueFalse))
	assert.Equal(t, "Fill in the blanks", DescribeQuestionType(QuestionTypeFillBlank))

	mcq := "MCQs with 4 options and one correct answer"
	for _, qt := range []QuestionType{QuestionTypeMCQ, "", "TRUE_FALSE", "essay", "fill blank", "\x00"} {
		assert.Equal(t, mcq, DescribeQuestionType(qt), "input %q", qt)
	}
}

func TestSubjectCatalog_MatchesResolver(t *testing.T) {
	catalog := SubjectCatalog()
	assert.Len(t, catalog, 3)
	for _, lvl := range catalog {
		assert.True(t, lvl.Level.Valid())
		for _, s := range lvl.Subjects {
			assert.Equal(t, s.Name, ResolveSubjectName(lvl.Level, s.Code))
		}
	}

	// callers cannot mutate the shared table
	catalog[0].Subjects[0].Name = "changed"
	assert.Equal(t, "Class 10 Mathematics", ResolveSubjectName(LevelClass10, "maths"))
	assert.Equal(t, "Class 10 Mathematics", SubjectCatalog()[0].Subjects[0].Name)
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, LevelClass12.Valid())
	assert.False(t, StudentLevel("class11").Valid())
	assert.True(t, QuestionTypeFillBlank.Valid())
	assert.False(t, QuestionType("essay").Valid())
}
