package domain

// StudentLevel is the audience a batch of questions is written for.
type StudentLevel string

const (
	LevelClass10     StudentLevel = "class10"
	LevelClass12     StudentLevel = "class12"
	LevelEngineering StudentLevel = "engineering"
)

// Valid reports whether l is one of the known levels.
func (l StudentLevel) Valid() bool {
	switch l {
	case LevelClass10, LevelClass12, LevelEngineering:
		return true
	}
	return false
}

// QuestionType is the shape of question the model is asked for.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"
	QuestionTypeTrueFalse QuestionType = "true_false"
	QuestionTypeFillBlank QuestionType = "fill_blank"
)

func (q QuestionType) Valid() bool {
	switch q {
	case QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeFillBlank:
		return true
	}
	return false
}

const FallbackSubjectName = "General Knowledge"

const (
	descTrueFalse = "True/False questions"
	descFillBlank = "Fill in the blanks"
	descMCQ       = "MCQs with 4 options and one correct answer"
)

// Subject is one selectable entry of the catalog.
type Subject struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubjectLevel groups the subjects offered for a student level.
type SubjectLevel struct {
	Level    StudentLevel `json:"level"`
	Subjects []Subject    `json:"subjects"`
}

// subjectCatalog keeps display order; subjectNames is built from it.
var subjectCatalog = []SubjectLevel{
	{Level: LevelClass10, Subjects: []Subject{
		{Code: "maths", Name: "Class 10 Mathematics"},
		{Code: "science", Name: "Class 10 Science"},
		{Code: "sst", Name: "Class 10 Social Science"},
		{Code: "english", Name: "Class 10 English"},
		{Code: "hindi", Name: "Class 10 Hindi"},
	}},
	{Level: LevelClass12, Subjects: []Subject{
		{Code: "pcm_maths", Name: "Class 12 Mathematics"},
		{Code: "pcm_physics", Name: "Class 12 Physics"},
		{Code: "pcm_chemistry", Name: "Class 12 Chemistry"},
		{Code: "english", Name: "Class 12 English"},
	}},
	{Level: LevelEngineering, Subjects: []Subject{
		{Code: "eng_maths", Name: "Engineering Mathematics"},
		{Code: "ds_algo", Name: "Data Structures"},
		{Code: "os", Name: "Operating Systems"},
		{Code: "dbms", Name: "DBMS"},
		{Code: "cn", Name: "Computer Networks"},
	}},
}

var subjectNames = func() map[StudentLevel]map[string]string {
	m := make(map[StudentLevel]map[string]string, len(subjectCatalog))
	for _, lvl := range subjectCatalog {
		names := make(map[string]string, len(lvl.Subjects))
		for _, s := range lvl.Subjects {
			names[s.Code] = s.Name
		}
		m[lvl.Level] = names
	}
	return m
}()

// ResolveSubjectName maps a level and subject code to its display name.
// Unknown pairs resolve to FallbackSubjectName.
func ResolveSubjectName(level StudentLevel, code string) string {
	if name, ok := subjectNames[level][code]; ok {
		return name
	}
	return FallbackSubjectName
}

// DescribeQuestionType returns the instruction fragment for qt.
// Anything that is not true_false or fill_blank is treated as MCQ.
func DescribeQuestionType(qt QuestionType) string {
	switch qt {
	case QuestionTypeTrueFalse:
		return descTrueFalse
	case QuestionTypeFillBlank:
		return descFillBlank
	default:
		return descMCQ
	}
}

// SubjectCatalog returns a copy of the level/subject table in display order.
func SubjectCatalog() []SubjectLevel {
	out := make([]SubjectLevel, len(subjectCatalog))
	for i, lvl := range subjectCatalog {
		out[i] = SubjectLevel{Level: lvl.Level, Subjects: append([]Subject(nil), lvl.Subjects...)}
	}
	return out
}
