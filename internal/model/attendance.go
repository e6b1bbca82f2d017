package model

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused:
		return true
	default:
		return false
	}
}

// CountsAsAttended reports whether the status counts toward progress.
// ABSENT (or no record at all) does not.
func (s AttendanceStatus) CountsAsAttended() bool {
	return s == AttendancePresent || s == AttendanceExcused
}

// AttendanceRecord links an enrollment to one (level, session) slot.
// At most one record per slot; later marks overwrite earlier ones.
// swagger:model AttendanceRecord
type AttendanceRecord struct {
	UUIDBase
	EnrollmentID  string           `gorm:"size:36;not null;uniqueIndex:idx_attendance_slot" json:"enrollmentId"`
	LevelNumber   int              `gorm:"not null;uniqueIndex:idx_attendance_slot" json:"levelNumber"`
	SessionNumber int              `gorm:"not null;uniqueIndex:idx_attendance_slot" json:"sessionNumber"`
	Status        AttendanceStatus `gorm:"type:enum('PRESENT','ABSENT','EXCUSED');not null" json:"status"`
	MarkedAt      time.Time        `json:"markedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
