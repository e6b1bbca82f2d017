package model

// LevelProgress is the per-level slice of a progress computation.
type LevelProgress struct {
	LevelNumber       int  `json:"levelNumber"`
	Validated         bool `json:"validated"`
	SessionsCompleted int  `json:"sessionsCompleted"`
	TotalSessions     int  `json:"totalSessions"`
}

// MissedSession identifies a slot that still blocks level validation.
type MissedSession struct {
	SessionID     string           `json:"sessionId,omitempty"`
	LevelNumber   int              `json:"levelNumber"`
	SessionNumber int              `json:"sessionNumber"`
	SessionTitle  string           `json:"sessionTitle,omitempty"`
	Status        AttendanceStatus `json:"status,omitempty"`
}

// TrainingProgress is derived from attendance records on every read.
// It is never stored, so a late attendance correction immediately
// changes eligibility.
type TrainingProgress struct {
	EnrollmentID           string          `json:"enrollmentId"`
	TrainingID             string          `json:"trainingId"`
	LevelsValidated        int             `json:"levelsValidated"`
	TotalLevels            int             `json:"totalLevels"`
	SessionsCompleted      int             `json:"sessionsCompleted"`
	TotalSessions          int             `json:"totalSessions"`
	Completed              bool            `json:"completed"`
	EligibleForCertificate bool            `json:"eligibleForCertificate"`
	Levels                 []LevelProgress `json:"levels"`
	MissedSessions         []MissedSession `json:"missedSessions"`
}

// CertificateMeta is the downstream certificate generator's read contract.
type CertificateMeta struct {
	Eligible      bool   `json:"eligible"`
	StudentName   string `json:"studentName,omitempty"`
	TrainingTitle string `json:"trainingTitle,omitempty"`
}

// DashboardStats is the manager dashboard summary.
type DashboardStats struct {
	TotalStudents        int64 `json:"totalStudents"`
	TotalTrainings       int64 `json:"totalTrainings"`
	SessionsToday        int64 `json:"sessionsToday"`
	EligibleCertificates int64 `json:"eligibleCertificates"`
}
