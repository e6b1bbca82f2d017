package service

import (
	"testing"
	"training_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressFixture() (*model.Enrollment, *model.Training) {
	enrollment := &model.Enrollment{
		StudentID:  "student-1",
		TrainingID: "training-1",
	}
	enrollment.ID = "enrollment-1"

	training := &model.Training{Levels: model.DefaultLevels()}
	training.ID = "training-1"
	return enrollment, training
}

func marksFor(levels []int, status model.AttendanceStatus) []model.AttendanceRecord {
	var records []model.AttendanceRecord
	for _, level := range levels {
		for s := 1; s <= model.SessionsPerLevel; s++ {
			records = append(records, model.AttendanceRecord{
				EnrollmentID:  "enrollment-1",
				LevelNumber:   level,
				SessionNumber: s,
				Status:        status,
			})
		}
	}
	return records
}

func TestComputeProgressNoRecords(t *testing.T) {
	enrollment, training := progressFixture()

	p := ComputeProgress(enrollment, training, nil)

	assert.Equal(t, model.LevelsPerTraining, p.TotalLevels)
	assert.Equal(t, model.SessionsPerTraining, p.TotalSessions)
	assert.Equal(t, 0, p.LevelsValidated)
	assert.Equal(t, 0, p.SessionsCompleted)
	assert.False(t, p.Completed)
	assert.False(t, p.EligibleForCertificate)
	assert.Len(t, p.MissedSessions, model.SessionsPerTraining)
}

func TestComputeProgressLevelValidation(t *testing.T) {
	enrollment, training := progressFixture()

	// Level 1 fully present, level 2 missing one session.
	records := marksFor([]int{1}, model.AttendancePresent)
	for s := 1; s <= model.SessionsPerLevel-1; s++ {
		records = append(records, model.AttendanceRecord{
			LevelNumber: 2, SessionNumber: s, Status: model.AttendancePresent,
		})
	}

	p := ComputeProgress(enrollment, training, records)

	assert.Equal(t, 1, p.LevelsValidated)
	assert.True(t, p.Levels[0].Validated)
	assert.False(t, p.Levels[1].Validated)
	assert.Equal(t, model.SessionsPerLevel-1, p.Levels[1].SessionsCompleted)
	assert.False(t, p.Completed)
}

func TestComputeProgressExcusedCountsAsAttended(t *testing.T) {
	enrollment, training := progressFixture()

	records := marksFor([]int{1, 2, 3}, model.AttendancePresent)
	records = append(records, marksFor([]int{4}, model.AttendanceExcused)...)

	p := ComputeProgress(enrollment, training, records)

	assert.Equal(t, model.LevelsPerTraining, p.LevelsValidated)
	assert.True(t, p.Completed)
	assert.True(t, p.EligibleForCertificate)
	assert.Empty(t, p.MissedSessions)
}

func TestComputeProgressAbsentBlocksValidation(t *testing.T) {
	enrollment, training := progressFixture()

	records := marksFor([]int{1, 2, 3, 4}, model.AttendancePresent)
	// Flip one slot to absent: 23 of 24 attended.
	records[10].Status = model.AttendanceAbsent

	p := ComputeProgress(enrollment, training, records)

	assert.Equal(t, model.LevelsPerTraining-1, p.LevelsValidated)
	assert.Equal(t, model.SessionsPerTraining-1, p.SessionsCompleted)
	assert.False(t, p.Completed)
	assert.False(t, p.EligibleForCertificate)

	require.Len(t, p.MissedSessions, 1)
	missed := p.MissedSessions[0]
	assert.Equal(t, records[10].LevelNumber, missed.LevelNumber)
	assert.Equal(t, records[10].SessionNumber, missed.SessionNumber)
	assert.Equal(t, model.AttendanceAbsent, missed.Status)
}

func TestComputeProgressCorrectionChangesEligibility(t *testing.T) {
	enrollment, training := progressFixture()

	records := marksFor([]int{1, 2, 3, 4}, model.AttendancePresent)
	records[5].Status = model.AttendanceAbsent
	assert.False(t, ComputeProgress(enrollment, training, records).EligibleForCertificate)

	// A later correction to excused must flip eligibility on the next read.
	records[5].Status = model.AttendanceExcused
	assert.True(t, ComputeProgress(enrollment, training, records).EligibleForCertificate)
}
