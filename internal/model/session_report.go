package model

type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportResolved ReportStatus = "RESOLVED"
)

// SessionReport is a trainer-submitted postponement request attached to a
// seance. It is kept for audit; scheduling a replacement occurrence is a
// separate manual action.
// swagger:model SessionReport
type SessionReport struct {
	UUIDBase
	SeanceID      string       `gorm:"size:36;not null;index" json:"seanceId"`
	TrainerID     string       `gorm:"size:36;not null;index" json:"trainerId"`
	Reason        string       `gorm:"type:text;not null" json:"reason"`
	SuggestedDate string       `gorm:"size:10" json:"suggestedDate,omitempty"`
	Status        ReportStatus `gorm:"type:enum('PENDING','RESOLVED');default:'PENDING'" json:"status"`
}

func (SessionReport) TableName() string {
	return "session_reports"
}
