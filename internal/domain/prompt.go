package domain

import "fmt"

// SystemInstruction is sent as the system message of every completion.
const SystemInstruction = "You are an exam generator. You must output valid JSON only."

// GenerationRequest is the input of one generation round trip.
type GenerationRequest struct {
	Amount       int          `json:"amount"`
	StudentLevel StudentLevel `json:"studentType"`
	SubjectCode  string       `json:"subjectId"`
	Difficulty   string       `json:"difficulty"`
	QuestionType QuestionType `json:"questionType"`
}

const promptTemplate = `Generate exactly %d %s for %s level on %s.
Difficulty: %s.
Return ONLY a JSON object. No conversational text.
FORMAT:
{
  "questions": [ { "question": "string", "options": ["A","B","C","D"], "answerIndex": 0, "answerText": "string" } ]
}`

// BuildPrompt renders the user instruction for req. It is deterministic.
func BuildPrompt(req GenerationRequest, subjectName, typeDescription string) string {
	return fmt.Sprintf(promptTemplate, req.Amount, typeDescription, req.StudentLevel, subjectName, req.Difficulty)
}
