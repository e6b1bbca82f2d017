package model

import "time"

// Enrollment links one student to one training, at most once per pair.
// swagger:model Enrollment
type Enrollment struct {
	UUIDBase
	StudentID  string    `gorm:"size:36;not null;uniqueIndex:idx_enrollment_unique" json:"studentId"`
	TrainingID string    `gorm:"size:36;not null;uniqueIndex:idx_enrollment_unique" json:"trainingId"`
	GroupID    string    `gorm:"size:36;index" json:"groupId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
