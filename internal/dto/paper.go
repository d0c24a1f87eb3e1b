package dto

import "encoding/json"

// SavePaperRequest
// @Description Request body for saving a paper. teacherId is ignored; the
// @Description authenticated teacher owns the paper.
type SavePaperRequest struct {
	TeacherID  string          `json:"teacherId,omitempty"`
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`
	Questions  json.RawMessage `json:"questions" swaggertype:"array,object"`
	TotalMarks int             `json:"totalMarks"`
}
