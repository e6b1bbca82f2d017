package model

import "fmt"

type SeanceStatus string

const (
	SeancePlanned    SeanceStatus = "PLANNED"
	SeanceInProgress SeanceStatus = "IN_PROGRESS"
	SeanceCompleted  SeanceStatus = "COMPLETED"
	SeanceReported   SeanceStatus = "REPORTED"
	SeanceCancelled  SeanceStatus = "CANCELLED"
)

func (s SeanceStatus) Valid() bool {
	switch s {
	case SeancePlanned, SeanceInProgress, SeanceCompleted, SeanceReported, SeanceCancelled:
		return true
	default:
		return false
	}
}

// seanceTransitions is the closed set of allowed lifecycle edges.
// COMPLETED, REPORTED and CANCELLED are terminal.
var seanceTransitions = map[SeanceStatus][]SeanceStatus{
	SeancePlanned:    {SeanceInProgress, SeanceReported, SeanceCancelled},
	SeanceInProgress: {SeanceCompleted},
}

// CanTransitionTo reports whether the status machine allows from -> to.
func (s SeanceStatus) CanTransitionTo(to SeanceStatus) bool {
	for _, next := range seanceTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Seance is one concrete scheduled occurrence of a (training, level, session)
// for one group with one trainer. Date and times are calendar values
// ("YYYY-MM-DD", "HH:MM"), never instants.
// swagger:model Seance
type Seance struct {
	UUIDBase
	TrainingID    string       `gorm:"size:36;not null;index" json:"trainingId"`
	SessionID     string       `gorm:"size:36;not null;index" json:"sessionId"`
	GroupID       string       `gorm:"size:36;not null;index" json:"groupId"`
	TrainerID     string       `gorm:"size:36;not null;index:idx_trainer_date" json:"trainerId"`
	Date          string       `gorm:"size:10;not null;index:idx_trainer_date;index" json:"date"`
	StartTime     string       `gorm:"size:5;not null" json:"startTime"`
	EndTime       string       `gorm:"size:5;not null" json:"endTime"`
	LevelNumber   int          `gorm:"not null" json:"levelNumber"`
	SessionNumber int          `gorm:"not null" json:"sessionNumber"`
	Title         string       `gorm:"size:200" json:"title"`
	Status        SeanceStatus `gorm:"type:enum('PLANNED','IN_PROGRESS','COMPLETED','REPORTED','CANCELLED');default:'PLANNED'" json:"status"`
}

func (Seance) TableName() string {
	return "seances"
}

// DefaultSeanceTitle is used when a create request carries no title.
func DefaultSeanceTitle(sessionTitle string, levelNumber, sessionNumber int) string {
	if sessionTitle == "" {
		sessionTitle = "Session"
	}
	return fmt.Sprintf("%s %d.%d", sessionTitle, levelNumber, sessionNumber)
}

// Overlaps applies the half-open interval test against another window on the
// same date: [startA, endA) and [startB, endB) overlap iff
// startA < endB && startB < endA. Times are "HH:MM", so string order is
// chronological order.
func (s *Seance) Overlaps(startTime, endTime string) bool {
	return s.StartTime < endTime && startTime < s.EndTime
}
