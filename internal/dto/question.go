package dto

// BankQuestionRequest creates a bank question.
// @Description Request body for adding a question to the bank
type BankQuestionRequest struct {
	QuestionText  string   `json:"questionText"`
	QuestionType  string   `json:"questionType"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Subject       string   `json:"subject"`
	Difficulty    string   `json:"difficulty"`
	Marks         int      `json:"marks"`
}

// BankQuestionPatch updates a bank question. Nil fields are left as they are.
// @Description Request body for editing a bank question
type BankQuestionPatch struct {
	QuestionText  *string   `json:"questionText,omitempty"`
	QuestionType  *string   `json:"questionType,omitempty"`
	Options       *[]string `json:"options,omitempty"`
	CorrectAnswer *string   `json:"correctAnswer,omitempty"`
	Subject       *string   `json:"subject,omitempty"`
	Difficulty    *string   `json:"difficulty,omitempty"`
	Marks         *int      `json:"marks,omitempty"`
}

// BankQuery holds the bank listing filters.
type BankQuery struct {
	Subject    string `query:"subject"`
	Difficulty string `query:"difficulty"`
	Topic      string `query:"topic"`
	Mine       bool   `query:"mine"`
}
