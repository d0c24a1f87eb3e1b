package dto

import "examgen/internal/domain"

// DashboardResponse summarises a teacher's account.
type DashboardResponse struct {
	Teacher           TeacherResponse `json:"teacher"`
	PaperCount        int             `json:"paperCount"`
	BankQuestionCount int             `json:"bankQuestionCount"`
	RecentPapers      []*domain.Paper `json:"recentPapers"`
}
