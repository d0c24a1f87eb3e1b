package validation

import (
	"net/mail"
	"strconv"
	"strings"

	"examgen/internal/domain"
	"examgen/internal/dto"
)

const (
	maxShortText    = 255
	maxQuestionText = 4000
	minPassword     = 6
	maxPassword     = 72 // bcrypt input limit
)

// Validator provides request validation functionality
type Validator struct {
	maxAmount int
}

// NewValidator creates a validator. maxAmount bounds the generation count.
func NewValidator(maxAmount int) *Validator {
	return &Validator{maxAmount: maxAmount}
}

// ValidateGenerationRequest checks the generate parameters. Unknown subject
// codes are allowed; they resolve to the fallback subject.
func (v *Validator) ValidateGenerationRequest(req domain.GenerationRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if req.Amount < 1 || req.Amount > v.maxAmount {
		errs = append(errs, domain.NewOutOfRangeError("amount", req.Amount, 1, v.maxAmount))
	}

	if req.StudentLevel == "" {
		errs = append(errs, domain.NewMissingFieldError("studentType"))
	} else if !req.StudentLevel.Valid() {
		errs = append(errs, domain.NewInvalidFormatError("studentType", req.StudentLevel))
	}

	if req.QuestionType != "" && !req.QuestionType.Valid() {
		errs = append(errs, domain.NewInvalidFormatError("questionType", req.QuestionType))
	}

	if len(req.SubjectCode) > maxShortText {
		errs = append(errs, domain.NewOutOfRangeError("subjectId", len(req.SubjectCode), 0, maxShortText))
	}
	if len(req.Difficulty) > maxShortText {
		errs = append(errs, domain.NewOutOfRangeError("difficulty", len(req.Difficulty), 0, maxShortText))
	}

	return errs
}

// ValidateSaveExamRequest
func (v *Validator) ValidateSaveExamRequest(req dto.SaveExamRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	errs = appendRequired(errs, "schoolName", req.SchoolName, maxShortText)
	errs = appendRequired(errs, "examTitle", req.ExamTitle, maxShortText)
	for i, q := range req.Questions {
		if strings.TrimSpace(q.Question) == "" {
			errs = append(errs, domain.NewMissingFieldError("questions["+strconv.Itoa(i)+"].question"))
		}
	}
	return errs
}

// ValidateRegisterRequest requires every field of the sign-up form.
func (v *Validator) ValidateRegisterRequest(req dto.RegisterRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	errs = appendRequired(errs, "name", req.Name, maxShortText)
	errs = appendRequired(errs, "subject", req.Subject, maxShortText)
	errs = appendEmail(errs, req.Email)
	if req.Password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < minPassword || len(req.Password) > maxPassword {
		errs = append(errs, domain.NewOutOfRangeError("password", len(req.Password), minPassword, maxPassword))
	}
	return errs
}

func (v *Validator) ValidateLoginRequest(req dto.LoginRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}
	return errs
}

func (v *Validator) ValidateSavePaperRequest(req dto.SavePaperRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if len(req.Title) > 500 {
		errs = append(errs, domain.NewOutOfRangeError("title", len(req.Title), 0, 500))
	}
	if len(req.Subject) > maxShortText {
		errs = append(errs, domain.NewOutOfRangeError("subject", len(req.Subject), 0, maxShortText))
	}
	if req.TotalMarks < 0 {
		errs = append(errs, domain.NewOutOfRangeError("totalMarks", req.TotalMarks, 0, 1<<31-1))
	}
	if q := strings.TrimSpace(string(req.Questions)); q != "" && q != "null" && !strings.HasPrefix(q, "[") {
		errs = append(errs, domain.NewInvalidFormatError("questions", "not an array"))
	}
	return errs
}

func (v *Validator) ValidateBankQuestionRequest(req dto.BankQuestionRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	errs = appendRequired(errs, "questionText", req.QuestionText, maxQuestionText)
	if req.QuestionType != "" && !domain.QuestionType(req.QuestionType).Valid() {
		errs = append(errs, domain.NewInvalidFormatError("questionType", req.QuestionType))
	}
	if req.Marks < 0 || req.Marks > 100 {
		errs = append(errs, domain.NewOutOfRangeError("marks", req.Marks, 0, 100))
	}
	return errs
}

func (v *Validator) ValidateBankQuestionPatch(p dto.BankQuestionPatch) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if p.QuestionText != nil {
		errs = appendRequired(errs, "questionText", *p.QuestionText, maxQuestionText)
	}
	if p.QuestionType != nil && !domain.QuestionType(*p.QuestionType).Valid() {
		errs = append(errs, domain.NewInvalidFormatError("questionType", *p.QuestionType))
	}
	if p.Marks != nil && (*p.Marks < 1 || *p.Marks > 100) {
		errs = append(errs, domain.NewOutOfRangeError("marks", *p.Marks, 1, 100))
	}
	return errs
}

func appendRequired(errs domain.ValidationErrors, field, value string, max int) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.NewMissingFieldError(field))
	}
	if len(value) > max {
		return append(errs, domain.NewOutOfRangeError(field, len(value), 1, max))
	}
	return errs
}

func appendEmail(errs domain.ValidationErrors, email string) domain.ValidationErrors {
	email = strings.TrimSpace(email)
	if email == "" {
		return append(errs, domain.NewMissingFieldError("email"))
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return append(errs, domain.NewInvalidFormatError("email", email))
	}
	return errs
}
